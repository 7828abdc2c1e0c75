package main

import (
	"strings"

	"dictbot/internal/domain"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	phoneticStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("244"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginTop(1)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)
)

// render formats a word for the terminal. A nil view renders the not-found message.
func render(word string, view *domain.WordView) string {
	if view == nil {
		return errorStyle.Render(word + ": word not found. Please check the spelling.")
	}

	title := cases.Title(language.English)
	lines := []string{titleStyle.Render(view.Word)}
	if view.Phonetic != "" {
		lines = append(lines, phoneticStyle.Render(view.Phonetic))
	}
	if view.AudioURL != "" {
		lines = append(lines, infoStyle.Render("audio: "+view.AudioURL))
	}

	for _, group := range view.Definitions {
		lines = append(lines, sectionStyle.Render(title.String(group.PartOfSpeech)))
		lines = append(lines, bullets(group.Definitions)...)
	}

	lines = append(lines, sectionStyle.Render("Examples"))
	if view.HasExamples() {
		lines = append(lines, bullets(view.Examples)...)
	} else {
		lines = append(lines, infoStyle.Render("No examples available."))
	}

	lines = append(lines, sectionStyle.Render("Synonyms"))
	if view.HasSynonyms() {
		lines = append(lines, bullets(view.Synonyms)...)
	} else {
		lines = append(lines, infoStyle.Render("No synonyms available."))
	}

	return strings.Join(lines, "\n")
}

func bullets(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, "  • "+item)
	}
	return out
}
