package formatting

import (
	"testing"
	"time"

	"github.com/Freeeeeet/lesson_alert_bot/internal/model"
	"github.com/stretchr/testify/assert"
)

var testLesson = model.Lesson{Position: 2, Subject: "Física", Teacher: "Ana & Co", Time: "09:00"}

func TestFormatStartsIn(t *testing.T) {
	tests := []struct {
		name string
		in   time.Duration
		want string
	}{
		{"minutes", 205 * time.Second, "3 минуты"},
		{"one minute", 61 * time.Second, "1 минуту"},
		{"exactly an hour", time.Hour, "60 минут"},
		{"hours after sixty minutes", 61 * time.Minute, "1 час"},
		{"many hours", 44 * time.Hour, "44 часа"},
		{"rounded hours", 5*time.Hour + 40*time.Minute, "6 часов"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatStartsIn(tt.in))
		})
	}
}

func TestPluralizeMinutes(t *testing.T) {
	assert.Equal(t, "минуту", PluralizeMinutes(21))
	assert.Equal(t, "минут", PluralizeMinutes(11))
	assert.Equal(t, "минуты", PluralizeMinutes(34))
	assert.Equal(t, "минут", PluralizeMinutes(0))
}

func TestFormatNextLesson(t *testing.T) {
	lesson := &model.ResolvedLesson{Lesson: testLesson, Weekday: time.Monday, SecondsToStart: 20 * 60}

	text := FormatNextLesson(lesson, time.Monday)
	assert.Contains(t, text, "<b>2-й</b> урок: <b>Física</b> (Ana &amp; Co)")
	assert.Contains(t, text, "в <b>09:00</b>")
	assert.Contains(t, text, "через <b>20 минут</b>")

	text = FormatNextLesson(lesson, time.Saturday)
	assert.Contains(t, text, "в Пн в <b>09:00</b>")
}

func TestFormatCurrentLesson(t *testing.T) {
	assert.Equal(t, NoCurrentLessonText, FormatCurrentLesson(nil))

	lesson := &model.ResolvedLesson{Lesson: testLesson, Weekday: time.Monday, SecondsToStart: -1200}
	text := FormatCurrentLesson(lesson)

	assert.Contains(t, text, "Начался в <b>09:00</b>, 20 минут назад")
	assert.Contains(t, text, "закончится через <b>25 минут</b>")
}

func TestFormatAlerts(t *testing.T) {
	lesson := &model.ResolvedLesson{Lesson: testLesson, SecondsToStart: 180}

	assert.Contains(t, FormatPreStart(lesson), "начнётся через 3 минуты")
	assert.Contains(t, FormatStart(lesson), "начался")
}

func TestFormatHelp(t *testing.T) {
	text := FormatHelp(3)

	for _, command := range []string{"/notify", "/stopnotify", "/current", "/next", "/week", "/help"} {
		assert.Contains(t, text, command)
	}
	for _, alias := range []string{"!notificar", "!parar-notificar", "!aula-atual", "!prox-aula"} {
		assert.Contains(t, text, alias)
	}
	assert.Contains(t, text, "3 подписчика")
}
