package formatting

import (
	"fmt"
	"html"
	"time"

	"github.com/Freeeeeet/lesson_alert_bot/internal/model"
)

// Ответы на команды подписки
const (
	SubscribedText        = "🟢 Уведомления включены."
	AlreadySubscribedText = "🟡 Уведомления уже включены."
	UnsubscribedText      = "🔴 Уведомления выключены."
	NotSubscribedText     = "🟡 Уведомления не были включены."
	NoCurrentLessonText   = "😴 Сейчас никакой урок не идёт."
	ErrorText             = "❌ Произошла ошибка. Попробуйте позже."
)

// formatLessonTitle форматирует "2-й урок: Математика (Иванова)"
func formatLessonTitle(lesson model.Lesson) string {
	return fmt.Sprintf("<b>%d-й</b> урок: <b>%s</b> (%s)",
		lesson.Position,
		html.EscapeString(lesson.Subject),
		html.EscapeString(lesson.Teacher),
	)
}

// FormatPreStart сообщение за 3 минуты до начала урока
func FormatPreStart(lesson *model.ResolvedLesson) string {
	return fmt.Sprintf("⏰ %s начнётся через 3 минуты.", formatLessonTitle(lesson.Lesson))
}

// FormatStart сообщение о начале урока
func FormatStart(lesson *model.ResolvedLesson) string {
	return fmt.Sprintf("🔔 %s начался.", formatLessonTitle(lesson.Lesson))
}

// FormatNextLesson ответ на запрос следующего урока
func FormatNextLesson(lesson *model.ResolvedLesson, today time.Weekday) string {
	when := "в <b>" + lesson.Time + "</b>"
	if lesson.Weekday != today {
		when = fmt.Sprintf("в %s в <b>%s</b>", GetWeekdayShort(lesson.Weekday), lesson.Time)
	}

	return fmt.Sprintf("📚 Следующий %s\n🕐 Начало %s, через <b>%s</b>.",
		formatLessonTitle(lesson.Lesson),
		when,
		FormatStartsIn(lesson.StartsIn()),
	)
}

// FormatCurrentLesson ответ на запрос текущего урока, nil - урока нет
func FormatCurrentLesson(lesson *model.ResolvedLesson) string {
	if lesson == nil {
		return NoCurrentLessonText
	}

	startedAgo := RoundMinutes(lesson.Elapsed())
	endsIn := RoundMinutes(model.LessonDuration) - startedAgo

	return fmt.Sprintf("📖 Сейчас идёт %s\n🕐 Начался в <b>%s</b>, %d %s назад, закончится через <b>%d %s</b>.",
		formatLessonTitle(lesson.Lesson),
		lesson.Time,
		startedAgo, PluralizeMinutes(startedAgo),
		endsIn, PluralizeMinutes(endsIn),
	)
}

// FormatHelp справка по командам
func FormatHelp(subscribers int) string {
	return "📚 Бот напоминает о начале уроков по расписанию.\n\n" +
		"/notify - Включить уведомления в этом чате\n" +
		"/stopnotify - Выключить уведомления\n" +
		"/current - Какой урок идёт сейчас\n" +
		"/next - Какой урок следующий\n" +
		"/week - Расписание на неделю\n" +
		"/help - Показать эту справку\n\n" +
		"Команды из старой версии бота тоже работают: " +
		"!notificar, !parar-notificar, !aula-atual, !prox-aula.\n\n" +
		fmt.Sprintf("Сейчас уведомления получают %d %s.", subscribers, PluralizeSubscribers(subscribers))
}
