package dictapi

// apiEntry is a single entry of the dictionary API response.
// The API returns an array of entries, one per etymology.
type apiEntry struct {
	Word      string        `json:"word"`
	Phonetic  *string       `json:"phonetic"`
	Phonetics []apiPhonetic `json:"phonetics"`
	Origin    *string       `json:"origin"`
	Meanings  []apiMeaning  `json:"meanings"`
}

type apiPhonetic struct {
	Text  string `json:"text"`
	Audio string `json:"audio"`
}

type apiMeaning struct {
	PartOfSpeech string          `json:"partOfSpeech"`
	Definitions  []apiDefinition `json:"definitions"`
	Synonyms     []string        `json:"synonyms"`
	Antonyms     []string        `json:"antonyms"`
}

type apiDefinition struct {
	Definition string   `json:"definition"`
	Example    *string  `json:"example"`
	Synonyms   []string `json:"synonyms"`
}
