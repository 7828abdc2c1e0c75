package service

import "dictbot/internal/domain"

// MaxDisplayedSynonyms caps the synonyms shown for a word
const MaxDisplayedSynonyms = 5

// Normalize reshapes the first entry of a lookup result for display.
// Returns nil when there are no entries.
func Normalize(entries []domain.WordEntry) *domain.WordView {
	if len(entries) == 0 {
		return nil
	}
	entry := entries[0]

	view := &domain.WordView{
		Word:        entry.Word,
		Definitions: []domain.PartOfSpeechGroup{},
		Examples:    []string{},
		Synonyms:    []string{},
	}
	if phonetic, ok := entry.PhoneticText(); ok {
		view.Phonetic = phonetic
	}
	if audio, ok := entry.AudioURL(); ok {
		view.AudioURL = audio
	}

	// Same part of speech in several meaning groups shares one bucket.
	groupIndex := make(map[string]int)
	seenSynonyms := make(map[string]struct{})

	for _, meaning := range entry.Meanings {
		idx, exists := groupIndex[meaning.PartOfSpeech]
		if !exists {
			idx = len(view.Definitions)
			groupIndex[meaning.PartOfSpeech] = idx
			view.Definitions = append(view.Definitions, domain.PartOfSpeechGroup{
				PartOfSpeech: meaning.PartOfSpeech,
				Definitions:  []string{},
			})
		}

		for _, def := range meaning.Definitions {
			view.Definitions[idx].Definitions = append(view.Definitions[idx].Definitions, def.Definition)
			if example, ok := def.ExampleText(); ok {
				view.Examples = append(view.Examples, example)
			}
		}

		for _, syn := range meaning.Synonyms {
			if _, seen := seenSynonyms[syn]; seen {
				continue
			}
			seenSynonyms[syn] = struct{}{}
			if len(view.Synonyms) < MaxDisplayedSynonyms {
				view.Synonyms = append(view.Synonyms, syn)
			}
		}
	}

	return view
}
