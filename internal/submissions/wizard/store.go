package wizard

import (
	"sync"
	"time"

	"trusthome_backend/platform/apperr"

	"github.com/google/uuid"
)

// sessionTTL is how long an untouched session survives before the sweeper
// discards it.
const sessionTTL = 2 * time.Hour

// Store holds active wizard sessions in memory. The store guards only the
// map; each session carries its own lock.
type Store struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{sessions: make(map[uuid.UUID]*Session)}
}

// Put registers a session.
func (st *Store) Put(s *Session) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[s.ID] = s
}

// Get returns the session with the given id.
func (st *Store) Get(id uuid.UUID) (*Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[id]
	if !ok {
		return nil, apperr.NotFound("booking session not found")
	}
	return s, nil
}

// Delete discards a session and everything it accumulated.
func (st *Store) Delete(id uuid.UUID) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

// Sweep removes sessions that have not been touched within the TTL and
// returns how many were dropped.
func (st *Store) Sweep(now time.Time) int {
	st.mu.Lock()
	defer st.mu.Unlock()

	var dropped int
	for id, s := range st.sessions {
		s.mu.Lock()
		stale := now.Sub(s.UpdatedAt) > sessionTTL
		s.mu.Unlock()
		if stale {
			delete(st.sessions, id)
			dropped++
		}
	}
	return dropped
}
