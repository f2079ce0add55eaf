package handlers

import (
	"context"

	"github.com/Freeeeeet/lesson_alert_bot/internal/controller/formatting"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// incomingChat возвращает чат входящего сообщения
func incomingChat(update *models.Update) (chatID int64, isGroup bool, ok bool) {
	if update == nil || update.Message == nil {
		return 0, false, false
	}

	chatType := string(update.Message.Chat.Type)
	return update.Message.Chat.ID, chatType == "group" || chatType == "supergroup", true
}

// sendMessage отправляет сообщение и логирует если не удалось
func (h *Handlers) sendMessage(ctx context.Context, chatID int64, text string) {
	if err := h.sender.SendText(ctx, chatID, text); err != nil {
		h.logger.Error("Failed to send message",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
	}
}

// sendError логирует ошибку и отправляет в чат общий текст без подробностей
func (h *Handlers) sendError(ctx context.Context, chatID int64, msg string, err error) {
	h.logger.Error(msg,
		zap.Int64("chat_id", chatID),
		zap.Error(err),
	)
	h.sendMessage(ctx, chatID, formatting.ErrorText)
}
