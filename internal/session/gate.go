// Package session tracks whether the user is signed in.
//
// The session lives in memory only: every process start begins
// Unauthenticated.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/five82/orchid/internal/catalog"
)

// State is the authentication state of the process.
type State int

const (
	Unauthenticated State = iota
	Authenticated
)

func (s State) String() string {
	switch s {
	case Authenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

// Screen names the initial screen stack chosen at entry.
type Screen int

const (
	ScreenSignIn Screen = iota
	ScreenCatalog
)

// ErrMissingCredentials is returned when email or password is blank.
var ErrMissingCredentials = errors.New("please enter both email and password")

// Authenticator checks credentials against the catalog store.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (catalog.User, error)
}

// Snapshot is a point-in-time view of the gate.
type Snapshot struct {
	State State
	User  catalog.User
}

// Gate is the two-state session machine.
type Gate struct {
	mu    sync.RWMutex
	state State
	user  catalog.User
}

// Login authenticates and moves to Authenticated on success. On failure the
// state is left as it was.
func (g *Gate) Login(ctx context.Context, auth Authenticator, email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return ErrMissingCredentials
	}
	user, err := auth.Login(ctx, email, password)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if user.Empty() {
		return fmt.Errorf("login: %w", catalog.ErrEmptyResponse)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.state = Authenticated
	g.user = user
	return nil
}

// Logout returns to Unauthenticated and forgets the user payload.
func (g *Gate) Logout() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.state = Unauthenticated
	g.user = catalog.User{}
}

// State reports the current state.
func (g *Gate) State() State {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state
}

// Snapshot returns the state together with the user payload.
func (g *Gate) Snapshot() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return Snapshot{State: g.state, User: g.user}
}

// InitialScreen picks the screen shown at application entry.
func (g *Gate) InitialScreen() Screen {
	if g.State() == Authenticated {
		return ScreenCatalog
	}
	return ScreenSignIn
}
