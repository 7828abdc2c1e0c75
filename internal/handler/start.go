package handler

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const welcomeText = "📚 Dictionary\n\n" +
	"Send me an English word and I will find its meanings, pronunciation, " +
	"examples and synonyms using the Free Dictionary API.\n\n" +
	"Tap \"Save word\" under a result to keep it for this session; /saved lists what you kept."

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	h.logger.Info("User started bot",
		zap.Int64("user_id", c.Sender().ID),
		zap.String("username", c.Sender().Username),
	)

	if c.Callback() != nil {
		if err := c.Edit(welcomeText, mainMenuMarkup()); err != nil {
			if handleErr := h.handleEditError(err, c, c.Sender().ID); handleErr == nil {
				return nil
			}
			return c.Send(welcomeText, mainMenuMarkup())
		}
		return c.Respond()
	}
	return c.Send(welcomeText, mainMenuMarkup())
}
