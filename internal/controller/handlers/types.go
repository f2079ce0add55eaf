package handlers

import (
	"context"

	"github.com/Freeeeeet/lesson_alert_bot/internal/service"
	"github.com/Freeeeeet/lesson_alert_bot/internal/subscription"
	"go.uber.org/zap"
)

// Sender отправляет ответы в чат
type Sender interface {
	service.MessageSender
	SendPhoto(ctx context.Context, chatID int64, filename string, data []byte, caption string) error
}

// Handlers содержит все зависимости для обработки команд
type Handlers struct {
	scheduleService *service.ScheduleService
	subscribers     *subscription.Registry
	sender          Sender
	clock           service.Clock
	logger          *zap.Logger
}

// NewHandlers создаёт новый обработчик команд
func NewHandlers(
	scheduleService *service.ScheduleService,
	subscribers *subscription.Registry,
	sender Sender,
	clock service.Clock,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		scheduleService: scheduleService,
		subscribers:     subscribers,
		sender:          sender,
		clock:           clock,
		logger:          logger,
	}
}
