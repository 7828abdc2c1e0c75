package testutil

import (
	"dictbot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// StrPtr returns a pointer to s
func StrPtr(s string) *string {
	return &s
}

// NewTestMeaning creates a meaning whose definitions have no examples
func NewTestMeaning(pos string, definitions ...string) domain.Meaning {
	m := domain.Meaning{PartOfSpeech: pos}
	for _, d := range definitions {
		m.Definitions = append(m.Definitions, domain.Definition{Definition: d})
	}
	return m
}

// NewTestEntry creates a word entry with the given meanings
func NewTestEntry(word string, meanings ...domain.Meaning) domain.WordEntry {
	return domain.WordEntry{
		Word:     word,
		Meanings: meanings,
	}
}
