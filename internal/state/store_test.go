package state

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/five82/orchid/internal/catalog"
)

func sampleCategories() []catalog.Category {
	return []catalog.Category{
		{ID: "A", Name: "Phalaenopsis", Items: []catalog.Item{{ID: "A1", Name: "Widget"}, {ID: "A2", Name: "Gadget"}}},
		{ID: "B", Name: "Cattleya", Items: []catalog.Item{{ID: "B4", Name: "Bloom"}}},
	}
}

func TestStore_UpdateAndSnapshotClone(t *testing.T) {
	var s Store

	before := time.Now()
	s.Update(sampleCategories(), nil)

	snap := s.Snapshot()
	if !snap.HasCatalog || len(snap.Categories) != 2 {
		t.Fatalf("snapshot = %#v, want 2 categories", snap)
	}
	if snap.ItemCount() != 3 {
		t.Fatalf("ItemCount = %d, want 3", snap.ItemCount())
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil", snap.LastError)
	}

	// Returned snapshot should be independent of the stored one.
	snap.Categories[0].Items[0].ID = "mutated"
	snap2 := s.Snapshot()
	if snap2.Categories[0].Items[0].ID != "A1" {
		t.Fatalf("Snapshot should deep-copy items; got %q want A1", snap2.Categories[0].Items[0].ID)
	}
}

func TestStore_UpdateErrorKeepsPreviousData(t *testing.T) {
	var s Store

	s.Update(sampleCategories(), nil)
	prev := s.Snapshot()

	origErr := errors.New("boom")
	s.Update(nil, origErr)

	snap := s.Snapshot()
	if !reflect.DeepEqual(snap.Categories, prev.Categories) {
		t.Fatalf("categories changed on error: got %#v want %#v", snap.Categories, prev.Categories)
	}
	if !snap.HasCatalog {
		t.Fatalf("HasCatalog cleared on error")
	}
	if snap.LastError == nil || snap.LastError.Error() != "boom" {
		t.Fatalf("LastError = %v, want boom", snap.LastError)
	}
	if reflect.ValueOf(snap.LastError).Pointer() == reflect.ValueOf(origErr).Pointer() {
		t.Fatalf("Snapshot should clone error instance")
	}
}

func TestStore_ConsecutiveFailures(t *testing.T) {
	var s Store

	s.Update(nil, errors.New("fail 1"))
	if snap := s.Snapshot(); snap.ConsecutiveFailures != 1 || snap.IsOffline() {
		t.Fatalf("after 1 failure: %#v, want 1 failure and online", snap)
	}
	s.Update(nil, errors.New("fail 2"))
	if snap := s.Snapshot(); !snap.IsOffline() {
		t.Fatal("IsOffline() = false, want true with 2 failures")
	}
	s.Update(sampleCategories(), nil)
	if snap := s.Snapshot(); snap.ConsecutiveFailures != 0 || snap.IsOffline() {
		t.Fatalf("ConsecutiveFailures = %d, want 0 after success", snap.ConsecutiveFailures)
	}
}

func TestStore_CategoryLookupAndLoading(t *testing.T) {
	var s Store
	s.Update(sampleCategories(), nil)

	c, ok := s.Category("B")
	if !ok || c.Name != "Cattleya" {
		t.Fatalf("Category(B) = %#v, %v; want Cattleya", c, ok)
	}
	c.Items[0].ID = "mutated"
	if again, _ := s.Category("B"); again.Items[0].ID != "B4" {
		t.Fatalf("Category should return a copy")
	}
	if _, ok := s.Category("Z"); ok {
		t.Fatalf("Category(Z) found, want missing")
	}

	s.BeginLoading()
	s.BeginLoading()
	if !s.Snapshot().Loading {
		t.Fatalf("Loading = false, want true")
	}
	s.EndLoading()
	if !s.Snapshot().Loading {
		t.Fatalf("Loading = false with one fetch still running, want true")
	}
	s.EndLoading()
	s.EndLoading()
	if s.Snapshot().Loading {
		t.Fatalf("Loading = true, want false")
	}
}
