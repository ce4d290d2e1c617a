package menud

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/five82/orchid/internal/catalog"
)

func newTestServer(t *testing.T, prefix string) (*Server, *httptest.Server) {
	t.Helper()
	s := NewServer(DefaultCategories())
	if err := s.AddUser("Lan", "lan@example.com", "hunter2"); err != nil {
		t.Fatalf("AddUser: %v", err)
	}
	srv := httptest.NewServer(s.NewRouter(prefix))
	t.Cleanup(srv.Close)
	return s, srv
}

func TestServer_ClientRoundTrip(t *testing.T) {
	s, srv := newTestServer(t, "/api")
	client, err := catalog.NewClient(srv.URL + "/api")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	ctx := context.Background()

	menu, err := client.FetchMenu(ctx)
	if err != nil {
		t.Fatalf("FetchMenu: %v", err)
	}
	if len(menu) != len(DefaultCategories()) {
		t.Fatalf("FetchMenu returned %d categories, want %d", len(menu), len(DefaultCategories()))
	}

	dend := menu[2]
	dend.Items = dend.Items[:1]
	got, err := client.ReplaceCategory(ctx, dend)
	if err != nil {
		t.Fatalf("ReplaceCategory: %v", err)
	}
	if got.ID != "D" || len(got.Items) != 1 {
		t.Fatalf("ReplaceCategory = %#v, want D with 1 item", got)
	}
	if stored := s.Categories()[2]; len(stored.Items) != 1 {
		t.Fatalf("stored category has %d items, want 1", len(stored.Items))
	}

	user, err := client.Login(ctx, "LAN@example.com ", "hunter2")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.Display() != "Lan" {
		t.Fatalf("Display = %q, want Lan", user.Display())
	}
}

func TestServer_UnknownCategoryIs404(t *testing.T) {
	_, srv := newTestServer(t, "")
	client, err := catalog.NewClient(srv.URL)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	_, err = client.ReplaceCategory(context.Background(), catalog.Category{ID: "Z"})
	var statusErr *catalog.StatusError
	if !errors.As(err, &statusErr) || statusErr.Code != http.StatusNotFound {
		t.Fatalf("ReplaceCategory(Z) error = %v, want 404 StatusError", err)
	}
}

func TestServer_BadCredentialsAre401(t *testing.T) {
	_, srv := newTestServer(t, "")

	for _, body := range []loginRequest{
		{Email: "lan@example.com", Password: "wrong"},
		{Email: "nobody@example.com", Password: "hunter2"},
	} {
		payload, _ := json.Marshal(body)
		resp, err := http.Post(srv.URL+"/login", "application/json", bytes.NewReader(payload))
		if err != nil {
			t.Fatalf("POST /login: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401 for %s", resp.StatusCode, body.Email)
		}
	}
}

func TestServer_EmptyItemsStayArray(t *testing.T) {
	_, srv := newTestServer(t, "")

	req, err := http.NewRequest(http.MethodPut, srv.URL+"/menu/V", bytes.NewReader([]byte(`{"id":"V","name":"Vanda"}`)))
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("PUT: %v", err)
	}
	defer resp.Body.Close()

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if string(raw["items"]) != "[]" {
		t.Fatalf("items = %s, want []", raw["items"])
	}
}
