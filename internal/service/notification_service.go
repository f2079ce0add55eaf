package service

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultSendTimeout сколько ждём ответа Telegram на одно сообщение рассылки
const DefaultSendTimeout = 30 * time.Second

// MessageSender отправляет текст в чат
type MessageSender interface {
	SendText(ctx context.Context, chatID int64, text string) error
}

// BroadcastResult итог рассылки
type BroadcastResult struct {
	Delivered int
	Failed    int
}

// NotificationService рассылает сообщения подписчикам
type NotificationService struct {
	sender      MessageSender
	sendTimeout time.Duration
	logger      *zap.Logger
}

// NewNotificationService создаёт сервис рассылки
func NewNotificationService(sender MessageSender, sendTimeout time.Duration, logger *zap.Logger) *NotificationService {
	if sendTimeout <= 0 {
		sendTimeout = DefaultSendTimeout
	}

	return &NotificationService{
		sender:      sender,
		sendTimeout: sendTimeout,
		logger:      logger,
	}
}

// Broadcast отправляет сообщение всем получателям, каждому в своей горутине.
// Медленный или недоступный получатель не задерживает остальных: у каждой
// отправки свой таймаут, ошибка логируется и не прерывает рассылку.
// Возвращается после того, как все отправки завершились.
func (s *NotificationService) Broadcast(ctx context.Context, text string, recipients []int64) BroadcastResult {
	var delivered, failed atomic.Int64

	var g errgroup.Group
	for _, chatID := range recipients {
		chatID := chatID // per-iteration copy for go < 1.22 loop semantics
		g.Go(func() error {
			sendCtx, cancel := context.WithTimeout(ctx, s.sendTimeout)
			defer cancel()

			if err := s.sender.SendText(sendCtx, chatID, text); err != nil {
				failed.Add(1)
				s.logger.Error("Failed to deliver notification",
					zap.Int64("chat_id", chatID),
					zap.Error(err),
				)
				return nil
			}
			delivered.Add(1)
			return nil
		})
	}

	// горутины всегда возвращают nil
	_ = g.Wait()

	result := BroadcastResult{
		Delivered: int(delivered.Load()),
		Failed:    int(failed.Load()),
	}

	s.logger.Info("Broadcast finished",
		zap.Int("recipients", len(recipients)),
		zap.Int("delivered", result.Delivered),
		zap.Int("failed", result.Failed),
	)

	return result
}
