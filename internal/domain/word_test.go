package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestDefinition_ExampleText(t *testing.T) {
	tests := []struct {
		name        string
		example     *string
		expected    string
		expectedHas bool
	}{
		{name: "absent", example: nil, expected: "", expectedHas: false},
		{name: "empty", example: strPtr(""), expected: "", expectedHas: false},
		{name: "present", example: strPtr("a cat sat"), expected: "a cat sat", expectedHas: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Definition{Definition: "x", Example: tt.example}
			text, ok := d.ExampleText()
			assert.Equal(t, tt.expected, text)
			assert.Equal(t, tt.expectedHas, ok)
		})
	}
}

func TestWordEntry_PhoneticText(t *testing.T) {
	tests := []struct {
		name        string
		entry       WordEntry
		expected    string
		expectedHas bool
	}{
		{
			name:        "entry phonetic",
			entry:       WordEntry{Phonetic: strPtr("/kæt/"), Phonetics: []Phonetic{{Text: "/other/"}}},
			expected:    "/kæt/",
			expectedHas: true,
		},
		{
			name:        "fallback to variants",
			entry:       WordEntry{Phonetics: []Phonetic{{Audio: "a.mp3"}, {Text: "/kæt/"}}},
			expected:    "/kæt/",
			expectedHas: true,
		},
		{
			name:        "nothing",
			entry:       WordEntry{},
			expected:    "",
			expectedHas: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, ok := tt.entry.PhoneticText()
			assert.Equal(t, tt.expected, text)
			assert.Equal(t, tt.expectedHas, ok)
		})
	}
}

func TestWordEntry_AudioURL(t *testing.T) {
	entry := WordEntry{Phonetics: []Phonetic{
		{Text: "/kæt/"},
		{Text: "/kæt/", Audio: "https://example.com/cat-us.mp3"},
		{Audio: "https://example.com/cat-uk.mp3"},
	}}

	url, ok := entry.AudioURL()
	assert.True(t, ok)
	assert.Equal(t, "https://example.com/cat-us.mp3", url)

	_, ok = WordEntry{}.AudioURL()
	assert.False(t, ok)
}

func TestWordView_ByPartOfSpeech(t *testing.T) {
	view := &WordView{Definitions: []PartOfSpeechGroup{
		{PartOfSpeech: "noun", Definitions: []string{"a test"}},
		{PartOfSpeech: "verb", Definitions: []string{"to test", "to try"}},
	}}

	assert.Equal(t, map[string][]string{
		"noun": {"a test"},
		"verb": {"to test", "to try"},
	}, view.ByPartOfSpeech())
	assert.False(t, view.HasExamples())
	assert.False(t, view.HasSynonyms())
}
