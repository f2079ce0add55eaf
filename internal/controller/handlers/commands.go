package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/Freeeeeet/lesson_alert_bot/internal/controller/formatting"
	"github.com/Freeeeeet/lesson_alert_bot/internal/controller/weekimage"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleHelp обрабатывает команды /start и /help
func (h *Handlers) HandleHelp(ctx context.Context, _ *bot.Bot, update *models.Update) {
	chatID, _, ok := incomingChat(update)
	if !ok {
		return
	}

	h.sendMessage(ctx, chatID, formatting.FormatHelp(h.subscribers.Len()))
}

// HandleNotify обрабатывает команду /notify - подписка чата на уведомления
func (h *Handlers) HandleNotify(ctx context.Context, _ *bot.Bot, update *models.Update) {
	chatID, isGroup, ok := incomingChat(update)
	if !ok {
		return
	}

	h.sendMessage(ctx, chatID, h.Subscribe(chatID, isGroup))
}

// HandleStopNotify обрабатывает команду /stopnotify - отписка чата
func (h *Handlers) HandleStopNotify(ctx context.Context, _ *bot.Bot, update *models.Update) {
	chatID, _, ok := incomingChat(update)
	if !ok {
		return
	}

	h.sendMessage(ctx, chatID, h.Unsubscribe(chatID))
}

// HandleCurrent обрабатывает команду /current - какой урок идёт сейчас
func (h *Handlers) HandleCurrent(ctx context.Context, _ *bot.Bot, update *models.Update) {
	chatID, _, ok := incomingChat(update)
	if !ok {
		return
	}

	text, err := h.CurrentLesson(h.clock.Now())
	if err != nil {
		h.sendError(ctx, chatID, "Failed to resolve current lesson", err)
		return
	}

	h.sendMessage(ctx, chatID, text)
}

// HandleNext обрабатывает команду /next - какой урок следующий
func (h *Handlers) HandleNext(ctx context.Context, _ *bot.Bot, update *models.Update) {
	chatID, _, ok := incomingChat(update)
	if !ok {
		return
	}

	text, err := h.NextLesson(h.clock.Now())
	if err != nil {
		h.sendError(ctx, chatID, "Failed to resolve next lesson", err)
		return
	}

	h.sendMessage(ctx, chatID, text)
}

// HandleWeek обрабатывает команду /week - картинка с расписанием на неделю
func (h *Handlers) HandleWeek(ctx context.Context, _ *bot.Bot, update *models.Update) {
	chatID, _, ok := incomingChat(update)
	if !ok {
		return
	}

	now := h.clock.Now()
	current, err := h.scheduleService.FindCurrentLesson(now)
	if err != nil {
		h.sendError(ctx, chatID, "Failed to resolve current lesson", err)
		return
	}

	image, err := weekimage.Generate(h.scheduleService.Week(), current, now)
	if err != nil {
		h.sendError(ctx, chatID, "Failed to generate week image", err)
		return
	}

	caption := fmt.Sprintf("🗓 Расписание на неделю, сегодня %s", formatting.GetWeekdayName(now.Weekday()))
	if err := h.sender.SendPhoto(ctx, chatID, "week.png", image, caption); err != nil {
		h.logger.Error("Failed to send week image",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
	}
}

// Subscribe подписывает чат и возвращает ответ для него
func (h *Handlers) Subscribe(chatID int64, isGroup bool) string {
	if !h.subscribers.Add(chatID) {
		return formatting.AlreadySubscribedText
	}

	h.logger.Info("Chat subscribed to lesson alerts",
		zap.Int64("chat_id", chatID),
		zap.Bool("is_group", isGroup),
		zap.Int("subscribers", h.subscribers.Len()))

	return formatting.SubscribedText
}

// Unsubscribe отписывает чат и возвращает ответ для него
func (h *Handlers) Unsubscribe(chatID int64) string {
	if !h.subscribers.Remove(chatID) {
		return formatting.NotSubscribedText
	}

	h.logger.Info("Chat unsubscribed from lesson alerts",
		zap.Int64("chat_id", chatID),
		zap.Int("subscribers", h.subscribers.Len()))

	return formatting.UnsubscribedText
}

// CurrentLesson возвращает ответ на запрос текущего урока
func (h *Handlers) CurrentLesson(now time.Time) (string, error) {
	current, err := h.scheduleService.FindCurrentLesson(now)
	if err != nil {
		return "", err
	}
	return formatting.FormatCurrentLesson(current), nil
}

// NextLesson возвращает ответ на запрос следующего урока
func (h *Handlers) NextLesson(now time.Time) (string, error) {
	next, err := h.scheduleService.FindNextLesson(now)
	if err != nil {
		return "", err
	}
	return formatting.FormatNextLesson(next, now.Weekday()), nil
}
