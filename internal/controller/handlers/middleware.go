package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// LogUpdates логирует входящие команды и перехватывает паники обработчиков
func (h *Handlers) LogUpdates(next bot.HandlerFunc) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		if chatID, isGroup, ok := incomingChat(update); ok {
			h.logger.Debug("Incoming message",
				zap.Int64("chat_id", chatID),
				zap.Bool("is_group", isGroup),
				zap.String("command", ParseCommand(update.Message.Text)))
		}

		defer func() {
			if r := recover(); r != nil {
				h.logger.Error("Handler panic recovered", zap.Any("panic", r))
			}
		}()

		next(ctx, b, update)
	}
}
