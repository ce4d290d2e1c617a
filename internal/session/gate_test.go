package session

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/five82/orchid/internal/catalog"
)

type fakeAuth struct {
	user  catalog.User
	err   error
	calls int
}

func (f *fakeAuth) Login(ctx context.Context, email, password string) (catalog.User, error) {
	f.calls++
	return f.user, f.err
}

func TestGate_StartsUnauthenticated(t *testing.T) {
	var g Gate
	if g.State() != Unauthenticated {
		t.Fatalf("State = %v, want unauthenticated", g.State())
	}
	if g.InitialScreen() != ScreenSignIn {
		t.Fatalf("InitialScreen = %v, want sign-in", g.InitialScreen())
	}
}

func TestGate_LoginRequiresBothFields(t *testing.T) {
	var g Gate
	auth := &fakeAuth{}
	for _, tc := range []struct{ email, password string }{
		{"", "secret"},
		{"  ", "secret"},
		{"lan@example.com", ""},
	} {
		if err := g.Login(context.Background(), auth, tc.email, tc.password); !errors.Is(err, ErrMissingCredentials) {
			t.Fatalf("Login(%q,%q) error = %v, want ErrMissingCredentials", tc.email, tc.password, err)
		}
	}
	if auth.calls != 0 {
		t.Fatalf("store called %d times, want 0", auth.calls)
	}
}

func TestGate_LoginSuccessAndLogout(t *testing.T) {
	var g Gate
	auth := &fakeAuth{user: catalog.User{Raw: json.RawMessage(`{"name":"Lan"}`)}}

	if err := g.Login(context.Background(), auth, "lan@example.com", "secret"); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	snap := g.Snapshot()
	if snap.State != Authenticated || snap.User.Display() != "Lan" {
		t.Fatalf("Snapshot = %#v, want authenticated Lan", snap)
	}
	if g.InitialScreen() != ScreenCatalog {
		t.Fatalf("InitialScreen = %v, want catalog", g.InitialScreen())
	}

	g.Logout()
	snap = g.Snapshot()
	if snap.State != Unauthenticated || !snap.User.Empty() {
		t.Fatalf("Snapshot after logout = %#v, want unauthenticated without user", snap)
	}
}

func TestGate_LoginFailureKeepsState(t *testing.T) {
	var g Gate
	auth := &fakeAuth{err: errors.New("network down")}
	if err := g.Login(context.Background(), auth, "lan@example.com", "secret"); err == nil {
		t.Fatalf("Login returned nil error")
	}
	if g.State() != Unauthenticated {
		t.Fatalf("State = %v after failure, want unauthenticated", g.State())
	}

	auth = &fakeAuth{user: catalog.User{Raw: json.RawMessage("null")}}
	if err := g.Login(context.Background(), auth, "lan@example.com", "secret"); !errors.Is(err, catalog.ErrEmptyResponse) {
		t.Fatalf("Login error = %v, want ErrEmptyResponse", err)
	}
	if g.State() != Unauthenticated {
		t.Fatalf("State = %v after falsy payload, want unauthenticated", g.State())
	}
}
