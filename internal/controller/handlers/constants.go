package handlers

import (
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Команды бота и их текстовые псевдонимы
const (
	CommandStart      = "/start"
	CommandHelp       = "/help"
	CommandNotify     = "/notify"
	CommandStopNotify = "/stopnotify"
	CommandCurrent    = "/current"
	CommandNext       = "/next"
	CommandWeek       = "/week"

	AliasNotify     = "!notificar"
	AliasStopNotify = "!parar-notificar"
	AliasCurrent    = "!aula-atual"
	AliasNext       = "!prox-aula"
)

// ParseCommand возвращает команду из текста сообщения.
// В группах Telegram добавляет имя бота: /next@lesson_bot -> /next
func ParseCommand(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}

	command := fields[0]
	if at := strings.Index(command, "@"); at > 0 && strings.HasPrefix(command, "/") {
		command = command[:at]
	}
	return strings.ToLower(command)
}

// MatchCommand проверяет, что сообщение - одна из указанных команд
func MatchCommand(names ...string) bot.MatchFunc {
	return func(update *models.Update) bool {
		if update.Message == nil {
			return false
		}

		command := ParseCommand(update.Message.Text)
		for _, name := range names {
			if command == name {
				return true
			}
		}
		return false
	}
}
