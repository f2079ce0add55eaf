package app

import (
	"context"
	"sync"
	"time"

	"github.com/Freeeeeet/lesson_alert_bot/internal/controller/formatting"
	"github.com/Freeeeeet/lesson_alert_bot/internal/model"
	"github.com/Freeeeeet/lesson_alert_bot/internal/service"
	"github.com/Freeeeeet/lesson_alert_bot/internal/subscription"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// preStartLead за сколько до начала урока отправляется напоминание
	preStartLead = 3 * time.Minute
	// preStartMinDelay напоминание не ставится, если до него осталось меньше
	preStartMinDelay = 30 * time.Second
	// rearmDelay следующий цикл начинается через 6 минут после начала урока
	rearmDelay = 6 * time.Minute
	// retryDelay повтор цикла, если следующий урок определить не удалось
	retryDelay = time.Hour
)

// Scheduler ставит таймеры уведомлений о следующем уроке и перезапускает себя
// после каждого урока. Задержки каждого цикла считаются заново от текущего времени.
type Scheduler struct {
	scheduleService     *service.ScheduleService
	notificationService *service.NotificationService
	subscribers         *subscription.Registry
	clock               service.Clock
	logger              *zap.Logger

	mu       sync.Mutex
	ctx      context.Context
	timers   []service.Timer
	running  bool
	stopped  bool
	stopChan chan struct{}
	wg       sync.WaitGroup
}

// NewScheduler создаёт новый планировщик уведомлений
func NewScheduler(
	scheduleService *service.ScheduleService,
	notificationService *service.NotificationService,
	subscribers *subscription.Registry,
	clock service.Clock,
	logger *zap.Logger,
) *Scheduler {
	return &Scheduler{
		scheduleService:     scheduleService,
		notificationService: notificationService,
		subscribers:         subscribers,
		clock:               clock,
		logger:              logger,
		ctx:                 context.Background(),
		stopChan:            make(chan struct{}),
	}
}

// Start запускает первый цикл. Отмена ctx останавливает планировщик.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	if s.running || s.stopped {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.ctx = ctx
	s.mu.Unlock()

	s.logger.Info("Starting lesson alert scheduler")

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		select {
		case <-ctx.Done():
			s.Stop()
		case <-s.stopChan:
		}
	}()

	s.runCycle()
}

// Stop останавливает все ещё не сработавшие таймеры
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}
	s.stopped = true
	close(s.stopChan)

	for _, timer := range s.timers {
		timer.Stop()
	}
	s.timers = nil

	s.logger.Info("Lesson alert scheduler stopped")
}

// runCycle определяет следующий урок и ставит таймеры напоминания, начала и следующего цикла
func (s *Scheduler) runCycle() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}

	// Таймеры прошлого цикла к этому моменту уже сработали
	s.timers = s.timers[:0]

	now := s.clock.Now()
	cycleLogger := s.logger.With(zap.String("cycle_id", uuid.NewString()))

	next, err := s.scheduleService.FindNextLesson(now)
	if err != nil {
		cycleLogger.Error("Failed to resolve next lesson, retrying later",
			zap.Duration("retry_in", retryDelay),
			zap.Error(err))
		s.arm(retryDelay, s.runCycle)
		return
	}

	startsIn := next.StartsIn()

	preStartIn := startsIn - preStartLead
	if preStartIn > preStartMinDelay {
		s.arm(preStartIn, func() {
			s.notify(cycleLogger, next, formatting.FormatPreStart(next))
		})
	}

	s.arm(startsIn, func() {
		s.notify(cycleLogger, next, formatting.FormatStart(next))
	})

	s.arm(startsIn+rearmDelay, s.runCycle)

	cycleLogger.Info("Lesson alerts armed",
		zap.String("weekday", next.Weekday.String()),
		zap.Int("position", next.Position),
		zap.String("subject", next.Subject),
		zap.String("time", next.Time),
		zap.Duration("starts_in", startsIn),
		zap.Bool("pre_start_armed", preStartIn > preStartMinDelay))
}

// arm ставит одноразовый таймер; вызывается под s.mu
func (s *Scheduler) arm(delay time.Duration, f func()) {
	s.timers = append(s.timers, s.clock.AfterFunc(delay, f))
}

// notify рассылает сообщение всем подписчикам на момент срабатывания таймера
func (s *Scheduler) notify(logger *zap.Logger, lesson *model.ResolvedLesson, text string) {
	recipients := s.subscribers.Snapshot()
	if len(recipients) == 0 {
		logger.Debug("No subscribers, skipping notification",
			zap.Int("position", lesson.Position))
		return
	}

	s.mu.Lock()
	ctx := s.ctx
	s.mu.Unlock()

	s.notificationService.Broadcast(ctx, text, recipients)
}
