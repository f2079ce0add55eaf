package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"
)

type recordingSender struct {
	mu        sync.Mutex
	delivered map[int64]string
	failFor   map[int64]bool
}

func (s *recordingSender) SendText(_ context.Context, chatID int64, text string) error {
	if s.failFor[chatID] {
		return errors.New("blocked by user")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.delivered[chatID] = text
	return nil
}

func TestNotificationService_Broadcast(t *testing.T) {
	sender := &recordingSender{
		delivered: make(map[int64]string),
		failFor:   map[int64]bool{2: true},
	}
	s := NewNotificationService(sender, 0, zaptest.NewLogger(t))

	result := s.Broadcast(context.Background(), "aula", []int64{1, 2, 3, 4})

	assert.Equal(t, BroadcastResult{Delivered: 3, Failed: 1}, result)
	assert.Equal(t, map[int64]string{1: "aula", 3: "aula", 4: "aula"}, sender.delivered)
}

func TestNotificationService_Broadcast_NoRecipients(t *testing.T) {
	sender := &recordingSender{delivered: make(map[int64]string)}
	s := NewNotificationService(sender, time.Second, zaptest.NewLogger(t))

	result := s.Broadcast(context.Background(), "aula", nil)

	assert.Equal(t, BroadcastResult{}, result)
	assert.Empty(t, sender.delivered)
}

// blockingSender держит отправку в медленные чаты, пока не закрыт release или не истёк ctx
type blockingSender struct {
	slow    map[int64]bool
	release chan struct{}

	mu        sync.Mutex
	delivered map[int64]time.Time
}

func (s *blockingSender) SendText(ctx context.Context, chatID int64, _ string) error {
	if s.slow[chatID] {
		select {
		case <-s.release:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.delivered[chatID] = time.Now()
	return nil
}

func (s *blockingSender) isDelivered(chatID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.delivered[chatID]
	return ok
}

func TestNotificationService_Broadcast_SlowRecipientsDoNotDelayOthers(t *testing.T) {
	sender := &blockingSender{
		slow:      make(map[int64]bool),
		release:   make(chan struct{}),
		delivered: make(map[int64]time.Time),
	}

	recipients := make([]int64, 0, 21)
	for i := int64(1); i <= 20; i++ {
		sender.slow[i] = true
		recipients = append(recipients, i)
	}
	recipients = append(recipients, 100)

	s := NewNotificationService(sender, time.Minute, zaptest.NewLogger(t))

	done := make(chan BroadcastResult)
	go func() {
		done <- s.Broadcast(context.Background(), "aula", recipients)
	}()

	assert.Eventually(t, func() bool { return sender.isDelivered(100) },
		time.Second, 5*time.Millisecond)

	close(sender.release)
	result := <-done
	assert.Equal(t, BroadcastResult{Delivered: 21}, result)
}

func TestNotificationService_Broadcast_StalledSendTimesOut(t *testing.T) {
	sender := &blockingSender{
		slow:      map[int64]bool{1: true},
		release:   make(chan struct{}),
		delivered: make(map[int64]time.Time),
	}
	s := NewNotificationService(sender, 20*time.Millisecond, zaptest.NewLogger(t))

	started := time.Now()
	result := s.Broadcast(context.Background(), "aula", []int64{1, 2})

	assert.Equal(t, BroadcastResult{Delivered: 1, Failed: 1}, result)
	assert.Less(t, time.Since(started), time.Second)
	assert.True(t, sender.isDelivered(2))
}
