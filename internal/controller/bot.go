package controller

import (
	"context"

	"github.com/Freeeeeet/lesson_alert_bot/internal/controller/handlers"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

type BotController struct {
	bot      *bot.Bot
	handlers *handlers.Handlers
	logger   *zap.Logger
}

func NewBotController(botInstance *bot.Bot, cmdHandlers *handlers.Handlers, logger *zap.Logger) *BotController {
	return &BotController{
		bot:      botInstance,
		handlers: cmdHandlers,
		logger:   logger,
	}
}

// RegisterHandlers регистрирует все обработчики команд
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	h := c.handlers

	c.register(h.HandleHelp, handlers.CommandStart, handlers.CommandHelp)
	c.register(h.HandleNotify, handlers.CommandNotify, handlers.AliasNotify)
	c.register(h.HandleStopNotify, handlers.CommandStopNotify, handlers.AliasStopNotify)
	c.register(h.HandleCurrent, handlers.CommandCurrent, handlers.AliasCurrent)
	c.register(h.HandleNext, handlers.CommandNext, handlers.AliasNext)
	c.register(h.HandleWeek, handlers.CommandWeek)

	c.bot.RegisterHandlerMatchFunc(handlers.MatchMembership, h.HandleMembership)

	// Устанавливаем меню команд
	return c.setCommands(ctx)
}

// register вешает обработчик на команду и её псевдонимы
func (c *BotController) register(handler bot.HandlerFunc, commands ...string) {
	c.bot.RegisterHandlerMatchFunc(handlers.MatchCommand(commands...), handler, c.handlers.LogUpdates)
}

// setCommands устанавливает список команд в меню бота
func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "notify", Description: "🔔 Включить уведомления об уроках"},
		{Command: "stopnotify", Description: "🔕 Выключить уведомления"},
		{Command: "current", Description: "📖 Какой урок идёт сейчас"},
		{Command: "next", Description: "📚 Какой урок следующий"},
		{Command: "week", Description: "🗓 Расписание на неделю"},
		{Command: "help", Description: "❓ Справка по командам"},
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: commands,
	})

	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("✅ Bot commands menu set")
	return nil
}

// Start запускает long polling, блокируется до отмены контекста
func (c *BotController) Start(ctx context.Context) error {
	c.logger.Info("Starting bot...")
	c.bot.Start(ctx)
	return nil
}
