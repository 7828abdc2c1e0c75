package domain

// PartOfSpeechGroup holds the definitions displayed under one part of speech
type PartOfSpeechGroup struct {
	PartOfSpeech string
	Definitions  []string
}

// WordView is a looked-up word reshaped for display
type WordView struct {
	Word     string
	Phonetic string
	AudioURL string

	// Definitions keeps parts of speech in the order they were first seen
	Definitions []PartOfSpeechGroup
	Examples    []string
	Synonyms    []string
}

// ByPartOfSpeech returns the definitions keyed by part of speech
func (v *WordView) ByPartOfSpeech() map[string][]string {
	out := make(map[string][]string, len(v.Definitions))
	for _, g := range v.Definitions {
		out[g.PartOfSpeech] = g.Definitions
	}
	return out
}

// HasExamples reports whether any example sentence was found
func (v *WordView) HasExamples() bool {
	return len(v.Examples) > 0
}

// HasSynonyms reports whether any synonym was found
func (v *WordView) HasSynonyms() bool {
	return len(v.Synonyms) > 0
}
