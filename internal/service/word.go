package service

import (
	"context"
	"strings"

	"dictbot/internal/domain"
	"dictbot/internal/repository"

	"go.uber.org/zap"
)

// WordService handles lookups and saved words
type WordService struct {
	dictRepo    repository.DictionaryRepository
	sessionRepo repository.SessionRepository
	logger      *zap.Logger
}

// NewWordService creates a new word service
func NewWordService(
	dictRepo repository.DictionaryRepository,
	sessionRepo repository.SessionRepository,
	logger *zap.Logger,
) *WordService {
	return &WordService{
		dictRepo:    dictRepo,
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

// LookupWord looks a word up and reshapes the result for display.
// Any lookup failure or empty result is reported as domain.ErrWordNotFound.
func (s *WordService) LookupWord(ctx context.Context, word string) (*domain.WordView, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return nil, domain.ErrEmptyWord
	}

	entries, ok := s.dictRepo.Lookup(ctx, word)
	if !ok || len(entries) == 0 {
		return nil, domain.ErrWordNotFound
	}

	view := Normalize(entries)
	s.logger.Debug("Word looked up",
		zap.String("word", word),
		zap.Int("parts_of_speech", len(view.Definitions)),
		zap.Int("examples", len(view.Examples)),
	)
	return view, nil
}

// SaveWord adds word to the user's session unless it is already there
func (s *WordService) SaveWord(userID int64, word string) (domain.SaveOutcome, error) {
	if word == "" {
		return 0, domain.ErrEmptyWord
	}
	return s.sessionRepo.Session(userID).Save(word), nil
}

// SavedWords returns the user's saved words in the order they were saved
func (s *WordService) SavedWords(userID int64) []string {
	return s.sessionRepo.Session(userID).List()
}
