// internal/session/registry.go
//
// In-memory registry of active solver sessions, keyed by UUID.
//
// The registry is the only shared mutable structure in the service:
// sessions themselves are single-caller, but creation/lookup/deletion
// can race across requests, so the map is guarded by an RWMutex.
// State is intentionally lost on restart; sessions are ephemeral.

package session

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/calebcoatney/wordle-bot/internal/solver"
)

// ErrNotFound is returned when a session ID is unknown (or was deleted).
var ErrNotFound = errors.New("session not found")

// Registry owns the id → session mapping.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*solver.Session
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*solver.Session)}
}

// Create stores s under a fresh UUID and returns the key.
func (r *Registry) Create(s *solver.Session) string {
	id := uuid.NewString()
	r.mu.Lock()
	r.sessions[id] = s
	r.mu.Unlock()
	return id
}

// Get looks up a session by ID.
func (r *Registry) Get(id string) (*solver.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if s, ok := r.sessions[id]; ok {
		return s, nil
	}
	return nil, ErrNotFound
}

// Delete removes a session; unknown IDs report ErrNotFound.
func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(r.sessions, id)
	return nil
}

// Len reports the number of active sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
