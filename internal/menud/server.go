package menud

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/mux"
	"golang.org/x/crypto/bcrypt"

	"github.com/five82/orchid/internal/catalog"
)

// ErrInvalidCredentials is returned when email or password do not match.
var ErrInvalidCredentials = errors.New("invalid email or password")

type account struct {
	Name         string
	Email        string
	PasswordHash []byte
}

// Server is an in-memory catalog store.
type Server struct {
	mu         sync.RWMutex
	categories []catalog.Category
	accounts   map[string]account
}

// NewServer seeds a server with categories. Users are added with AddUser.
func NewServer(categories []catalog.Category) *Server {
	return &Server{
		categories: catalog.CloneCategories(categories),
		accounts:   make(map[string]account),
	}
}

// AddUser registers credentials. The password is stored as a bcrypt hash.
func (s *Server) AddUser(name, email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return err
	}
	key := strings.ToLower(strings.TrimSpace(email))
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[key] = account{Name: name, Email: key, PasswordHash: hash}
	return nil
}

// Categories returns a copy of the current catalog.
func (s *Server) Categories() []catalog.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return catalog.CloneCategories(s.categories)
}

func (s *Server) replace(id string, next catalog.Category) (catalog.Category, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.categories {
		if c.ID != id {
			continue
		}
		if strings.TrimSpace(next.Name) != "" {
			c.Name = next.Name
		}
		c.Items = catalog.CloneItems(next.Items)
		if c.Items == nil {
			c.Items = []catalog.Item{}
		}
		s.categories[i] = c
		return c.Clone(), true
	}
	return catalog.Category{}, false
}

func (s *Server) authenticate(email, password string) (account, error) {
	s.mu.RLock()
	acct, ok := s.accounts[strings.ToLower(strings.TrimSpace(email))]
	s.mu.RUnlock()
	if !ok {
		return account{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(acct.PasswordHash, []byte(password)); err != nil {
		return account{}, ErrInvalidCredentials
	}
	return acct, nil
}

// NewRouter mounts the store routes under prefix ("" or "/api").
func (s *Server) NewRouter(prefix string) *mux.Router {
	r := mux.NewRouter()
	routes := r
	if p := strings.TrimRight(prefix, "/"); p != "" {
		routes = r.PathPrefix(p).Subrouter()
	}
	routes.HandleFunc("/menu", s.handleMenu).Methods(http.MethodGet)
	routes.HandleFunc("/menu/{categoryId}", s.handleReplace).Methods(http.MethodPut)
	routes.HandleFunc("/login", s.handleLogin).Methods(http.MethodPost)
	r.Use(logRequests)
	return r
}

func (s *Server) handleMenu(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Categories())
}

func (s *Server) handleReplace(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["categoryId"]

	var body catalog.Category
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid category body", http.StatusBadRequest)
		return
	}

	updated, ok := s.replace(id, body)
	if !ok {
		http.Error(w, "category not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body loginRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid login body", http.StatusBadRequest)
		return
	}
	acct, err := s.authenticate(body.Email, body.Password)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{Name: acct.Name, Email: acct.Email})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("%s %s request_id=%s", r.Method, r.URL.Path, r.Header.Get("X-Request-ID"))
		next.ServeHTTP(w, r)
	})
}
