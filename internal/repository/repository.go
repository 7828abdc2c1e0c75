package repository

import (
	"context"
	"time"

	"dictbot/internal/domain"
)

// DictionaryRepository looks words up in an external dictionary
type DictionaryRepository interface {
	// Lookup returns the entries for word, or false on any failure
	Lookup(ctx context.Context, word string) ([]domain.WordEntry, bool)
}

// SessionRepository keeps per-user session state
type SessionRepository interface {
	Session(userID int64) *domain.SavedWords
	ExpireIdle(idle time.Duration) []int64
	Count() int
}
