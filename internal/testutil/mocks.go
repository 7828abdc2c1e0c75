package testutil

import (
	"context"
	"time"

	"dictbot/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockDictionaryRepository is a mock for DictionaryRepository
type MockDictionaryRepository struct {
	mock.Mock
}

func (m *MockDictionaryRepository) Lookup(ctx context.Context, word string) ([]domain.WordEntry, bool) {
	args := m.Called(ctx, word)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).([]domain.WordEntry), args.Bool(1)
}

// MockSessionRepository is a mock for SessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Session(userID int64) *domain.SavedWords {
	args := m.Called(userID)
	return args.Get(0).(*domain.SavedWords)
}

func (m *MockSessionRepository) ExpireIdle(idle time.Duration) []int64 {
	args := m.Called(idle)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]int64)
}

func (m *MockSessionRepository) Count() int {
	args := m.Called()
	return args.Int(0)
}
