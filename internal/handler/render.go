package handler

import (
	"strings"
	"unicode/utf8"

	"dictbot/internal/domain"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Telegram caps message text at 4096 characters
const maxMessageRunes = 4096

// renderWordView formats a looked-up word as a chat message
func renderWordView(view *domain.WordView) string {
	var b strings.Builder
	// Casers keep state, so each render gets its own
	title := cases.Title(language.English)

	b.WriteString("📖 ")
	b.WriteString(view.Word)
	b.WriteString("\n")
	if view.Phonetic != "" {
		b.WriteString("🔤 Pronunciation: ")
		b.WriteString(view.Phonetic)
		b.WriteString("\n")
	}

	for _, group := range view.Definitions {
		b.WriteString("\n")
		b.WriteString(title.String(group.PartOfSpeech))
		b.WriteString("\n")
		for _, def := range group.Definitions {
			b.WriteString("• ")
			b.WriteString(def)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n📝 Examples:\n")
	if view.HasExamples() {
		writeBullets(&b, view.Examples)
	} else {
		b.WriteString("No examples available.\n")
	}

	b.WriteString("\n🔁 Synonyms:\n")
	if view.HasSynonyms() {
		writeBullets(&b, view.Synonyms)
	} else {
		b.WriteString("No synonyms available.\n")
	}

	return truncateMessage(strings.TrimRight(b.String(), "\n"))
}

func writeBullets(b *strings.Builder, items []string) {
	for _, item := range items {
		b.WriteString("• ")
		b.WriteString(item)
		b.WriteString("\n")
	}
}

// truncateMessage cuts text to the Telegram limit, ending with an ellipsis
func truncateMessage(text string) string {
	if utf8.RuneCountInString(text) <= maxMessageRunes {
		return text
	}
	runes := []rune(text)
	return string(runes[:maxMessageRunes-1]) + "…"
}
