package domain

// WordEntry is one dictionary record for a looked-up word
type WordEntry struct {
	Word      string     `json:"word"`
	Phonetic  *string    `json:"phonetic,omitempty"`
	Phonetics []Phonetic `json:"phonetics"`
	Origin    *string    `json:"origin,omitempty"`
	Meanings  []Meaning  `json:"meanings"`
}

// Phonetic is a pronunciation variant. Either field may be empty.
type Phonetic struct {
	Text  string `json:"text"`
	Audio string `json:"audio"`
}

// Meaning groups definitions under one part of speech
type Meaning struct {
	PartOfSpeech string       `json:"partOfSpeech"`
	Definitions  []Definition `json:"definitions"`
	Synonyms     []string     `json:"synonyms"`
	Antonyms     []string     `json:"antonyms"`
}

// Definition is a single sense of a word
type Definition struct {
	Definition string   `json:"definition"`
	Example    *string  `json:"example,omitempty"`
	Synonyms   []string `json:"synonyms"`
}

// ExampleText returns the example sentence and whether it is present and non-empty
func (d Definition) ExampleText() (string, bool) {
	if d.Example == nil || *d.Example == "" {
		return "", false
	}
	return *d.Example, true
}

// PhoneticText returns the entry-level phonetic spelling, falling back to
// the first phonetic variant that has text.
func (e WordEntry) PhoneticText() (string, bool) {
	if e.Phonetic != nil && *e.Phonetic != "" {
		return *e.Phonetic, true
	}
	for _, ph := range e.Phonetics {
		if ph.Text != "" {
			return ph.Text, true
		}
	}
	return "", false
}

// AudioURL returns the first non-empty audio link
func (e WordEntry) AudioURL() (string, bool) {
	for _, ph := range e.Phonetics {
		if ph.Audio != "" {
			return ph.Audio, true
		}
	}
	return "", false
}
