package domain

import "sync"

// SaveOutcome reports what SavedWords.Save did
type SaveOutcome int

const (
	SaveOutcomeSaved SaveOutcome = iota
	SaveOutcomeAlreadySaved
)

func (o SaveOutcome) String() string {
	switch o {
	case SaveOutcomeSaved:
		return "saved"
	case SaveOutcomeAlreadySaved:
		return "already_saved"
	default:
		return "unknown"
	}
}

// SavedWords is the ordered set of words a user saved during one session.
// Words are compared exactly, so "Cat" and "cat" are different entries.
type SavedWords struct {
	mu    sync.Mutex
	words []string
	index map[string]struct{}
}

// NewSavedWords creates an empty collection
func NewSavedWords() *SavedWords {
	return &SavedWords{index: make(map[string]struct{})}
}

// Save appends word unless it is already present
func (s *SavedWords) Save(word string) SaveOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.index[word]; exists {
		return SaveOutcomeAlreadySaved
	}
	s.index[word] = struct{}{}
	s.words = append(s.words, word)
	return SaveOutcomeSaved
}

// List returns a copy of the saved words in insertion order
func (s *SavedWords) List() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.words))
	copy(out, s.words)
	return out
}

// Contains reports whether word was saved
func (s *SavedWords) Contains(word string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, exists := s.index[word]
	return exists
}

// Len returns the number of saved words
func (s *SavedWords) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.words)
}
