package handler

import (
	"strings"
	"unicode"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	// Already showing the same content, nothing to do
	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already up to date, acknowledging",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		_ = c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// handleCallback handles callbacks that did not match a registered button,
// e.g. when the unique prefix was stripped by a client
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	data := cleanCallbackData(callback.Data)
	unique := callback.Unique
	if unique == "" {
		unique, data, _ = strings.Cut(data, "|")
	}

	h.logger.Debug("handleCallback: processing callback",
		zap.String("unique", unique),
		zap.String("data", data),
		zap.Int64("user_id", c.Sender().ID),
	)

	switch unique {
	case btnSave.Unique:
		return h.handleSave(&callbackContext{Context: c, data: data})
	case btnLookup.Unique:
		return h.handleLookupShortcut(&callbackContext{Context: c, data: data})
	case btnLookupAt.Unique:
		return h.handleLookupAt(&callbackContext{Context: c, data: data})
	case btnSavedWords.Unique:
		return h.handleSavedWords(c)
	case btnMainMenu.Unique:
		return h.handleStart(c)
	}

	h.logger.Warn("Unhandled callback",
		zap.String("data", callback.Data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}

// callbackContext overrides the payload seen by button handlers
type callbackContext struct {
	tele.Context
	data string
}

func (c *callbackContext) Data() string {
	return c.data
}
