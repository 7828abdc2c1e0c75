package middleware

import (
	"dictbot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// SessionMiddleware starts or refreshes the sender's session on every update
func SessionMiddleware(sessionService *service.SessionService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil {
				logger.Debug("Update without sender, skipping session")
				return next(c)
			}

			sessionService.Touch(sender.ID)
			return next(c)
		}
	}
}
