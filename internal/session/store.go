// Package session persists the bearer token and the cached user object
// between runs. The session file is the only state the client keeps; it is
// created on login, rewritten when the profile is refreshed, and removed on
// logout or on any authorization failure.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"vaulterm/internal/api"
)

const fileName = "session.json"

// Session is the on-disk shape.
type Session struct {
	Token     string    `json:"token"`
	User      api.User  `json:"user"`
	SavedAt   time.Time `json:"saved_at"`
	ServerURL string    `json:"server_url,omitempty"`
}

// Store reads and writes the session file under the state directory.
type Store struct {
	path    string
	mu      sync.RWMutex
	current *Session
}

// NewStore opens a store rooted at dir (usually ~/.vaulterm). The file is
// loaded lazily; a missing file just means logged out.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(home, ".vaulterm")
	}

	s := &Store{path: filepath.Join(dir, fileName)}
	if err := s.load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load session: %w", err)
	}
	return s, nil
}

func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}
	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		// A corrupt session file is treated as logged out rather than
		// blocking startup.
		return nil
	}
	s.mu.Lock()
	s.current = &sess
	s.mu.Unlock()
	return nil
}

// Save persists a new session, replacing any previous one.
func (s *Store) Save(token string, user api.User) error {
	sess := &Session{Token: token, User: user, SavedAt: time.Now()}

	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}
	// 0600: the file holds a live credential.
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return err
	}

	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()
	return nil
}

// UpdateUser rewrites the cached user object, keeping the token.
func (s *Store) UpdateUser(user api.User) error {
	s.mu.RLock()
	cur := s.current
	s.mu.RUnlock()
	if cur == nil {
		return fmt.Errorf("no active session")
	}
	return s.Save(cur.Token, user)
}

// Clear removes the session file and forgets the in-memory copy. Safe to
// call when already logged out.
func (s *Store) Clear() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
	_ = os.Remove(s.path)
}

// Token returns the bearer token, or "" when logged out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return ""
	}
	return s.current.Token
}

// User returns the cached user object and whether a session exists.
func (s *Store) User() (api.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return api.User{}, false
	}
	return s.current.User, true
}

// IsAuthenticated reports whether a token is present.
func (s *Store) IsAuthenticated() bool {
	return s.Token() != ""
}

// IsAdmin reports whether the cached user carries the admin flag.
func (s *Store) IsAdmin() bool {
	u, ok := s.User()
	return ok && u.IsAdmin
}

// TokenExpiry decodes the token's exp claim without verifying the
// signature. Display only: the token is otherwise treated as opaque and
// the server remains the authority on validity.
func (s *Store) TokenExpiry() (time.Time, bool) {
	token := s.Token()
	if token == "" {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
