package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" {
		t.Fatalf("scheme = %q, want http", u.Scheme)
	}
	if u.Host != defaultAPIBase {
		t.Fatalf("host = %q, want %q", u.Host, defaultAPIBase)
	}

	u, err = parseBaseURL("https://example.com:1234/api/v1/?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Path != "/api/v1" {
		t.Fatalf("path = %q, want /api/v1", u.Path)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}

	if _, err := parseBaseURL("http://"); err == nil {
		t.Fatalf("parseBaseURL returned nil error for missing host")
	}
}

func TestClient_FetchReplaceAndLogin(t *testing.T) {
	t.Parallel()

	var gotPut Category
	var gotLogin loginRequest
	var gotUserAgent, gotRequestID, gotPath string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Header().Set("Content-Type", "application/json")

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/menu":
			_ = json.NewEncoder(w).Encode([]Category{{ID: "A", Name: "Phalaenopsis", Items: []Item{{ID: "A1", Name: "Widget"}}}})
		case r.Method == http.MethodPut && r.URL.Path == "/api/menu/A":
			gotPath = r.URL.Path
			_ = json.NewDecoder(r.Body).Decode(&gotPut)
			_ = json.NewEncoder(w).Encode(gotPut)
		case r.Method == http.MethodPost && r.URL.Path == "/api/login":
			_ = json.NewDecoder(r.Body).Decode(&gotLogin)
			_, _ = w.Write([]byte(`{"name":"Lan","email":"lan@example.com"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL + "/api/")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	categories, err := c.FetchMenu(ctx)
	if err != nil {
		t.Fatalf("FetchMenu returned error: %v", err)
	}
	if len(categories) != 1 || categories[0].ID != "A" || len(categories[0].Items) != 1 {
		t.Fatalf("FetchMenu = %#v, want one category A with one item", categories)
	}

	updated, err := c.ReplaceCategory(ctx, Category{ID: "A", Name: "Phalaenopsis"})
	if err != nil {
		t.Fatalf("ReplaceCategory returned error: %v", err)
	}
	if gotPath != "/api/menu/A" {
		t.Fatalf("PUT path = %q, want /api/menu/A", gotPath)
	}
	if gotPut.Items == nil || len(gotPut.Items) != 0 {
		t.Fatalf("PUT items = %#v, want empty non-nil list", gotPut.Items)
	}
	if updated.Name != "Phalaenopsis" {
		t.Fatalf("ReplaceCategory name = %q, want Phalaenopsis", updated.Name)
	}

	user, err := c.Login(ctx, "lan@example.com", "secret")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if gotLogin.Email != "lan@example.com" || gotLogin.Password != "secret" {
		t.Fatalf("login body = %#v, want email/password", gotLogin)
	}
	if user.Display() != "Lan" {
		t.Fatalf("Display = %q, want Lan", user.Display())
	}

	if !strings.HasPrefix(gotUserAgent, "orchid/") {
		t.Fatalf("User-Agent = %q, want orchid/*", gotUserAgent)
	}
	if gotRequestID == "" {
		t.Fatalf("X-Request-ID missing")
	}
}

func TestClient_PutBodyEchoesCategoryFields(t *testing.T) {
	t.Parallel()

	var raw map[string]json.RawMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &raw)
		_, _ = w.Write(body)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = c.ReplaceCategory(context.Background(), Category{ID: "B", Name: "Cattleya", Items: []Item{{ID: "B4", Rating: "5.0"}}})
	if err != nil {
		t.Fatalf("ReplaceCategory returned error: %v", err)
	}
	for _, key := range []string{"id", "name", "items"} {
		if _, ok := raw[key]; !ok {
			t.Fatalf("PUT body missing %q: %v", key, raw)
		}
	}
}

func TestClient_ErrorsAndEmptyBodies(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/menu":
			_, _ = w.Write([]byte("{not-json"))
		case "/menu/A":
			_, _ = w.Write([]byte("null"))
		case "/login":
			http.Error(w, "nope", http.StatusUnauthorized)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.FetchMenu(context.Background())
	if err == nil || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("FetchMenu error = %v, want decode response error", err)
	}

	_, err = c.ReplaceCategory(context.Background(), Category{ID: "A"})
	if !errors.Is(err, ErrEmptyResponse) {
		t.Fatalf("ReplaceCategory error = %v, want ErrEmptyResponse", err)
	}

	_, err = c.Login(context.Background(), "a@b.c", "x")
	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.Code != http.StatusUnauthorized {
		t.Fatalf("Login error = %v, want StatusError 401", err)
	}

	_, err = c.ReplaceCategory(context.Background(), Category{})
	if err == nil {
		t.Fatalf("ReplaceCategory returned nil error for empty id")
	}
}

func TestClient_FetchMenuNullBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("null"))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	categories, err := c.FetchMenu(context.Background())
	if !errors.Is(err, ErrEmptyResponse) {
		t.Fatalf("FetchMenu error = %v, want ErrEmptyResponse", err)
	}
	if categories != nil {
		t.Fatalf("FetchMenu categories = %v, want nil", categories)
	}
}

func TestClient_FetchMenuEmptyArrayIsEmptyCatalog(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("[]"))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	categories, err := c.FetchMenu(context.Background())
	if err != nil {
		t.Fatalf("FetchMenu returned error: %v", err)
	}
	if len(categories) != 0 {
		t.Fatalf("FetchMenu categories = %v, want none", categories)
	}
}

func TestClient_LoginFalsyPayload(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("false"))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if _, err := c.Login(context.Background(), "a@b.c", "x"); !errors.Is(err, ErrEmptyResponse) {
		t.Fatalf("Login error = %v, want ErrEmptyResponse", err)
	}
}
