package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// MatchMembership пропускает изменения статуса самого бота в чате
func MatchMembership(update *models.Update) bool {
	return update.MyChatMember != nil
}

// HandleMembership логирует добавление бота в группу.
// Если бота удалили из чата, подписка чата снимается: доставить туда уже ничего нельзя.
func (h *Handlers) HandleMembership(_ context.Context, _ *bot.Bot, update *models.Update) {
	change := update.MyChatMember
	if change == nil {
		return
	}

	chatID := change.Chat.ID
	wasIn := isChatMember(string(change.OldChatMember.Type))
	isIn := isChatMember(string(change.NewChatMember.Type))

	switch {
	case !wasIn && isIn:
		h.logger.Info("Bot added to chat",
			zap.Int64("chat_id", chatID),
			zap.String("chat_type", string(change.Chat.Type)),
			zap.String("title", change.Chat.Title),
			zap.Int64("added_by", change.From.ID))
	case wasIn && !isIn:
		removed := h.subscribers.Remove(chatID)
		h.logger.Info("Bot removed from chat",
			zap.Int64("chat_id", chatID),
			zap.Bool("unsubscribed", removed))
	}
}

// isChatMember статус, при котором бот получает сообщения чата
func isChatMember(status string) bool {
	switch status {
	case "creator", "administrator", "member", "restricted":
		return true
	}
	return false
}
