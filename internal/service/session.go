package service

import (
	"time"

	"dictbot/internal/repository"

	"go.uber.org/zap"
)

// SessionService ends idle sessions
type SessionService struct {
	sessionRepo repository.SessionRepository
	idleTTL     time.Duration
	logger      *zap.Logger
}

// NewSessionService creates a new session service
func NewSessionService(sessionRepo repository.SessionRepository, idleTTL time.Duration, logger *zap.Logger) *SessionService {
	return &SessionService{
		sessionRepo: sessionRepo,
		idleTTL:     idleTTL,
		logger:      logger,
	}
}

// CleanupIdleSessions discards sessions idle longer than the TTL
// and returns the users whose sessions ended.
func (s *SessionService) CleanupIdleSessions() []int64 {
	expired := s.sessionRepo.ExpireIdle(s.idleTTL)

	s.logger.Info("Idle sessions cleaned up",
		zap.Int("expired", len(expired)),
		zap.Int("active", s.sessionRepo.Count()),
		zap.Duration("idle_ttl", s.idleTTL),
	)
	return expired
}

// Touch starts the user's session if needed and marks it active
func (s *SessionService) Touch(userID int64) {
	s.sessionRepo.Session(userID)
}
