package formatting

import (
	"fmt"
	"math"
	"time"
)

// GetWeekdayName возвращает название дня недели на русском
func GetWeekdayName(weekday time.Weekday) string {
	names := []string{
		"Воскресенье",
		"Понедельник",
		"Вторник",
		"Среда",
		"Четверг",
		"Пятница",
		"Суббота",
	}
	if weekday >= 0 && int(weekday) < len(names) {
		return names[weekday]
	}
	return "Неизвестно"
}

// GetWeekdayShort возвращает короткое название дня недели
func GetWeekdayShort(weekday time.Weekday) string {
	names := []string{"Вс", "Пн", "Вт", "Ср", "Чт", "Пт", "Сб"}
	if weekday >= 0 && int(weekday) < len(names) {
		return names[weekday]
	}
	return "?"
}

// RoundMinutes округляет длительность до целых минут
func RoundMinutes(d time.Duration) int {
	return int(math.Round(d.Minutes()))
}

// FormatStartsIn форматирует время до начала: минуты, а больше часа - часы
func FormatStartsIn(d time.Duration) string {
	minutes := RoundMinutes(d)
	if minutes > 60 {
		hours := int(math.Round(float64(minutes) / 60))
		return fmt.Sprintf("%d %s", hours, PluralizeHours(hours))
	}
	return fmt.Sprintf("%d %s", minutes, PluralizeMinutes(minutes))
}
