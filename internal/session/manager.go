// Package session replaces the frontend's ambient token storage with an
// explicit session object. Every authenticated operation receives a Session
// looked up here; nothing reads tokens from global state.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session carries the remote API credentials of one logged-in user.
// The access token is opaque; it is only ever forwarded as a Bearer header.
type Session struct {
	ID           string
	ProfileName  string
	AccessToken  string
	VenueManager bool
	CreatedAt    time.Time
}

// Manager owns the in-memory session table. Safe for concurrent use.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

// NewManager creates an empty session manager.
func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]Session),
	}
}

// Login records a new session for the given profile and returns it.
// The session ID is the handle handed back to the caller; the token never
// leaves the gateway.
func (m *Manager) Login(profileName, accessToken string, venueManager bool) Session {
	s := Session{
		ID:           uuid.NewString(),
		ProfileName:  profileName,
		AccessToken:  accessToken,
		VenueManager: venueManager,
		CreatedAt:    time.Now(),
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	return s
}

// Logout removes the session. Removing an unknown ID is a no-op.
func (m *Manager) Logout(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// Current returns the session for the given ID.
func (m *Manager) Current(id string) (Session, bool) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	return s, ok
}
