package app

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/five82/orchid/internal/browse"
	"github.com/five82/orchid/internal/catalog"
	"github.com/five82/orchid/internal/favorites"
	"github.com/five82/orchid/internal/state"
)

func TestCalculateBackoff(t *testing.T) {
	baseInterval := 2 * time.Second

	tests := []struct {
		name     string
		failures int
		want     time.Duration
	}{
		{"zero failures", 0, 2 * time.Second},
		{"negative failures", -1, 2 * time.Second},
		{"one failure", 1, 4 * time.Second},
		{"two failures", 2, 8 * time.Second},
		{"three failures", 3, 16 * time.Second},
		{"four failures capped", 4, 30 * time.Second},
		{"many failures capped", 10, 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calculateBackoff(tt.failures, baseInterval)
			if got != tt.want {
				t.Errorf("calculateBackoff(%d, %v) = %v, want %v", tt.failures, baseInterval, got, tt.want)
			}
		})
	}
}

func TestCalculateBackoff_MaxCap(t *testing.T) {
	baseInterval := 2 * time.Second
	for failures := 0; failures <= 64; failures++ {
		got := calculateBackoff(failures, baseInterval)
		if got > maxBackoff {
			t.Errorf("calculateBackoff(%d, %v) = %v, exceeds maxBackoff %v", failures, baseInterval, got, maxBackoff)
		}
	}
}

type countingLoader struct {
	calls atomic.Int32
	err   error
}

func (c *countingLoader) Refresh(ctx context.Context, active func() bool) error {
	c.calls.Add(1)
	return c.err
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestStartRefresher_LoadsOnlyWhileSignedIn(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var signedIn atomic.Bool
	loader := &countingLoader{}
	StartRefresher(ctx, loader, signedIn.Load, 10*time.Millisecond)

	time.Sleep(50 * time.Millisecond)
	if n := loader.calls.Load(); n != 0 {
		t.Fatalf("Refresh calls while signed out = %d, want 0", n)
	}

	signedIn.Store(true)
	waitFor(t, func() bool { return loader.calls.Load() >= 2 })
}

func TestStartRefresher_KeepsGoingAfterFailures(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loader := &countingLoader{err: errors.New("unreachable")}
	StartRefresher(ctx, loader, func() bool { return true }, time.Millisecond)

	waitFor(t, func() bool { return loader.calls.Load() >= 3 })
}

func TestStartRefresher_DisabledWithZeroInterval(t *testing.T) {
	loader := &countingLoader{}
	StartRefresher(context.Background(), loader, func() bool { return true }, 0)
	time.Sleep(20 * time.Millisecond)
	if n := loader.calls.Load(); n != 0 {
		t.Fatalf("Refresh calls = %d, want 0", n)
	}
}

type signOutLoader struct {
	model *browse.Model
	done  chan error
}

func (l *signOutLoader) Refresh(ctx context.Context, active func() bool) error {
	err := l.model.Refresh(ctx, active)
	select {
	case l.done <- err:
	default:
	}
	return err
}

func TestStartRefresher_SignOutDuringReloadDropsResponse(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var signedIn atomic.Bool
	signedIn.Store(true)
	store := &slowStore{
		categories: []catalog.Category{{ID: "A", Name: "Phalaenopsis", Items: []catalog.Item{{ID: "A1"}}}},
		onFetch:    func() { signedIn.Store(false) },
	}
	snapshots := &state.Store{}
	model := browse.New(store, snapshots, favorites.NewStore(&favorites.MemoryCache{}))
	loader := &signOutLoader{model: model, done: make(chan error, 1)}

	StartRefresher(ctx, loader, signedIn.Load, time.Millisecond)

	select {
	case err := <-loader.done:
		if err != nil {
			t.Fatalf("Refresh returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("refresh did not run")
	}
	if snap := snapshots.Snapshot(); snap.HasCatalog || len(snap.Categories) != 0 {
		t.Fatalf("snapshot = %+v, want nothing applied after sign-out", snap)
	}
}

// slowStore signs the user out while the fetch is in flight.
type slowStore struct {
	categories []catalog.Category
	onFetch    func()
}

func (s *slowStore) FetchMenu(ctx context.Context) ([]catalog.Category, error) {
	s.onFetch()
	return catalog.CloneCategories(s.categories), nil
}

func (s *slowStore) ReplaceCategory(ctx context.Context, category catalog.Category) (*catalog.Category, error) {
	return &category, nil
}

func (s *slowStore) Login(ctx context.Context, email, password string) (catalog.User, error) {
	return catalog.User{}, errors.New("not supported")
}
