package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Freeeeeet/lesson_alert_bot/internal/app"
	"github.com/Freeeeeet/lesson_alert_bot/internal/config"
	"github.com/Freeeeeet/lesson_alert_bot/internal/controller"
	"github.com/Freeeeeet/lesson_alert_bot/internal/controller/handlers"
	"github.com/Freeeeeet/lesson_alert_bot/internal/service"
	"github.com/Freeeeeet/lesson_alert_bot/internal/subscription"
	"github.com/go-telegram/bot"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	logger.Sugar().Infow("Starting lesson alert bot",
		"environment", cfg.Environment,
		"token_length", len(cfg.TelegramToken),
		"use_database", cfg.UseDatabase())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	week, err := app.LoadTimetable(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to load timetable", zap.Error(err))
	}
	logger.Info("Timetable loaded", zap.Int("lessons", week.Count()))

	botInstance, err := bot.New(cfg.TelegramToken)
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	clock := service.NewSystemClock()
	sender := controller.NewTelegramSender(botInstance)
	subscribers := subscription.NewRegistry()

	scheduleService := service.NewScheduleService(week, logger)
	notificationService := service.NewNotificationService(sender, cfg.BroadcastSendTimeout, logger)

	scheduler := app.NewScheduler(scheduleService, notificationService, subscribers, clock, logger)

	cmdHandlers := handlers.NewHandlers(scheduleService, subscribers, sender, clock, logger)
	botController := controller.NewBotController(botInstance, cmdHandlers, logger)

	if err := botController.RegisterHandlers(ctx); err != nil {
		// Меню команд не обязательно для работы
		logger.Warn("Bot commands menu not set", zap.Error(err))
	}

	scheduler.Start(ctx)
	defer scheduler.Stop()

	if err := botController.Start(ctx); err != nil {
		logger.Error("Bot stopped with error", zap.Error(err))
	}

	logger.Info("Lesson alert bot stopped")
}
