package handler

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"dictbot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const notFoundText = "Word not found. Please check the spelling."

// Telegram rejects callback data over 64 bytes
const maxCallbackData = 64

// fitsCallback reports whether payload fits in the "\f<unique>|<payload>" callback data
func fitsCallback(unique, payload string) bool {
	return len(unique)+len(payload)+2 <= maxCallbackData
}

// handleText looks up the word in a text message
func (h *Handler) handleText(c tele.Context) error {
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if text == "" || strings.HasPrefix(text, "/") {
		return nil
	}

	return h.lookupAndReply(c, text)
}

// lookupAndReply sends the rendered word, or the not-found message
func (h *Handler) lookupAndReply(c tele.Context, word string) error {
	userID := c.Sender().ID

	view, err := h.wordService.LookupWord(context.Background(), word)
	if err != nil {
		if !errors.Is(err, domain.ErrWordNotFound) && !errors.Is(err, domain.ErrEmptyWord) {
			h.logger.Error("Failed to look up word", zap.Error(err), zap.Int64("user_id", userID))
		}
		return c.Send(notFoundText)
	}

	h.logger.Info("Word looked up",
		zap.Int64("user_id", userID),
		zap.String("word", word),
	)

	// The save button stores what the user typed, not the API's spelling.
	h.SetState(userID, &domain.StateData{LastWord: word})

	if err := c.Send(renderWordView(view), saveMarkup(word)); err != nil {
		return err
	}

	if view.AudioURL != "" {
		if err := c.Send(&tele.Audio{File: tele.FromURL(view.AudioURL)}); err != nil {
			h.logger.Warn("Failed to send pronunciation audio",
				zap.Error(err),
				zap.String("audio_url", view.AudioURL),
			)
		}
	}
	return nil
}

// saveMarkup returns the save button for word. Words too long for callback
// data get a button without payload and are resolved from the user's state.
func saveMarkup(word string) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	payload := word
	if !fitsCallback(btnSave.Unique, payload) {
		payload = ""
	}
	markup.Inline(
		markup.Row(markup.Data(btnSave.Text, btnSave.Unique, payload)),
		markup.Row(btnSavedWords),
	)
	return markup
}

// handleSave saves the word attached to the button
func (h *Handler) handleSave(c tele.Context) error {
	userID := c.Sender().ID

	word := c.Data()
	if word == "" {
		word = h.GetState(userID).LastWord
	}
	if word == "" {
		return c.Respond(&tele.CallbackResponse{Text: "Look a word up first"})
	}

	outcome, err := h.wordService.SaveWord(userID, word)
	if err != nil {
		h.logger.Error("Failed to save word", zap.Error(err), zap.Int64("user_id", userID))
		return c.Respond(&tele.CallbackResponse{Text: "Could not save the word"})
	}

	h.logger.Info("Save word",
		zap.Int64("user_id", userID),
		zap.String("word", word),
		zap.Stringer("outcome", outcome),
	)

	return c.Respond(&tele.CallbackResponse{Text: saveOutcomeText(word, outcome)})
}

func saveOutcomeText(word string, outcome domain.SaveOutcome) string {
	if outcome == domain.SaveOutcomeAlreadySaved {
		return fmt.Sprintf("'%s' is already saved!", word)
	}
	return fmt.Sprintf("'%s' has been saved!", word)
}

// handleSavedWords lists the session's saved words as lookup shortcuts
func (h *Handler) handleSavedWords(c tele.Context) error {
	userID := c.Sender().ID
	words := h.wordService.SavedWords(userID)

	if len(words) == 0 {
		if c.Callback() != nil {
			return c.Respond(&tele.CallbackResponse{
				Text:      "You have no saved words yet",
				ShowAlert: true,
			})
		}
		return c.Send("You have no saved words yet. Look a word up and tap \"Save word\".")
	}

	text := fmt.Sprintf("📚 Saved words (%d):", len(words))
	markup := savedWordsMarkup(words)

	if c.Callback() != nil {
		if err := c.Edit(text, markup); err != nil {
			if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
				return nil
			}
			return c.Send(text, markup)
		}
		return c.Respond()
	}
	return c.Send(text, markup)
}

// savedWordsMarkup builds one shortcut button per saved word. Buttons carry
// the word itself; words too long for callback data carry their position.
func savedWordsMarkup(words []string) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(words)+1)
	for i, word := range words {
		btn := markup.Data(word, btnLookup.Unique, word)
		if !fitsCallback(btnLookup.Unique, word) {
			btn = markup.Data(word, btnLookupAt.Unique, strconv.Itoa(i))
		}
		rows = append(rows, markup.Row(btn))
	}
	rows = append(rows, markup.Row(btnMainMenu))
	markup.Inline(rows...)
	return markup
}

// handleLookupShortcut looks up the word carried by a saved-list button
func (h *Handler) handleLookupShortcut(c tele.Context) error {
	word := c.Data()
	if word == "" {
		return c.Respond(&tele.CallbackResponse{Text: "This word is no longer saved"})
	}

	if err := c.Respond(); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}
	return h.lookupAndReply(c, word)
}

// handleLookupAt looks up a long saved word by its position in the list.
// The position only resolves within the session that rendered the button.
func (h *Handler) handleLookupAt(c tele.Context) error {
	userID := c.Sender().ID

	idx, err := strconv.Atoi(strings.TrimSpace(c.Data()))
	words := h.wordService.SavedWords(userID)
	if err != nil || idx < 0 || idx >= len(words) || fitsCallback(btnLookup.Unique, words[idx]) {
		return c.Respond(&tele.CallbackResponse{Text: "This word is no longer saved"})
	}

	if err := c.Respond(); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}
	return h.lookupAndReply(c, words[idx])
}
