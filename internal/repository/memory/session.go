package memory

import (
	"sync"
	"time"

	"dictbot/internal/domain"
)

type session struct {
	saved    *domain.SavedWords
	lastSeen time.Time
}

// SessionRepo implements repository.SessionRepository in process memory.
// Nothing survives a restart.
type SessionRepo struct {
	mu       sync.Mutex
	sessions map[int64]*session
	now      func() time.Time
}

// NewSessionRepo creates an empty session registry
func NewSessionRepo() *SessionRepo {
	return &SessionRepo{
		sessions: make(map[int64]*session),
		now:      time.Now,
	}
}

// Session returns the user's saved words, starting a new session on first contact
func (r *SessionRepo) Session(userID int64) *domain.SavedWords {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, exists := r.sessions[userID]
	if !exists {
		s = &session{saved: domain.NewSavedWords()}
		r.sessions[userID] = s
	}
	s.lastSeen = r.now()
	return s.saved
}

// ExpireIdle ends sessions with no activity for longer than idle
// and returns the users whose sessions ended
func (r *SessionRepo) ExpireIdle(idle time.Duration) []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-idle)
	var expired []int64
	for userID, s := range r.sessions {
		if s.lastSeen.Before(cutoff) {
			delete(r.sessions, userID)
			expired = append(expired, userID)
		}
	}
	return expired
}

// Count returns the number of live sessions
func (r *SessionRepo) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
