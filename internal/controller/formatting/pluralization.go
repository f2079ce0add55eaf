package formatting

// pluralize выбирает форму слова для числа: 1 урок, 2 урока, 5 уроков
func pluralize(count int, one, few, many string) string {
	if count < 0 {
		count = -count
	}
	if count%10 == 1 && count%100 != 11 {
		return one
	}
	if count%10 >= 2 && count%10 <= 4 && (count%100 < 10 || count%100 >= 20) {
		return few
	}
	return many
}

// PluralizeMinutes возвращает склонение слова "минута" (через 1 минуту, 5 минут)
func PluralizeMinutes(count int) string {
	return pluralize(count, "минуту", "минуты", "минут")
}

// PluralizeHours возвращает склонение слова "час"
func PluralizeHours(count int) string {
	return pluralize(count, "час", "часа", "часов")
}

// PluralizeSubscribers возвращает склонение слова "подписчик"
func PluralizeSubscribers(count int) string {
	return pluralize(count, "подписчик", "подписчика", "подписчиков")
}
