package model

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// LessonDuration длительность одного урока
const LessonDuration = 45 * time.Minute

// DaysInWeek количество дней в недельном расписании
const DaysInWeek = 7

var (
	ErrEmptyTimetable    = errors.New("timetable has no lessons")
	ErrInvalidLessonTime = errors.New("invalid lesson time")
)

var lessonTimeRegex = regexp.MustCompile(`^([0-1][0-9]|2[0-3]):([0-5][0-9])$`)

// Lesson урок из недельного расписания
type Lesson struct {
	Position int    `json:"position"` // порядковый номер урока в дне, с 1
	Subject  string `json:"subject"`
	Teacher  string `json:"teacher"`
	Time     string `json:"time"` // ЧЧ:ММ
}

// ValidateTime проверяет формат времени урока
func (l Lesson) ValidateTime() error {
	if !lessonTimeRegex.MatchString(l.Time) {
		return fmt.Errorf("%w: %q", ErrInvalidLessonTime, l.Time)
	}
	return nil
}

// Week недельное расписание, индекс - time.Weekday (0 = воскресенье)
type Week [DaysInWeek][]Lesson

// Lessons возвращает уроки дня недели (может быть пустым)
func (w *Week) Lessons(weekday time.Weekday) []Lesson {
	return w[int(weekday)%DaysInWeek]
}

// Count возвращает общее количество уроков за неделю
func (w *Week) Count() int {
	total := 0
	for _, lessons := range w {
		total += len(lessons)
	}
	return total
}

// Validate проверяет расписание перед запуском планировщика
func (w *Week) Validate() error {
	for day, lessons := range w {
		for _, lesson := range lessons {
			if err := lesson.ValidateTime(); err != nil {
				return fmt.Errorf("%s, lesson %d: %w", time.Weekday(day), lesson.Position, err)
			}
		}
	}

	if w.Count() == 0 {
		return ErrEmptyTimetable
	}

	return nil
}

// ResolvedLesson урок, привязанный к текущему моменту.
// Живёт один цикл уведомлений и нигде не сохраняется.
type ResolvedLesson struct {
	Lesson
	Weekday time.Weekday
	// SecondsToStart секунд до начала; отрицательное значение - урок уже идёт
	SecondsToStart int
}

// StartsIn возвращает время до начала урока
func (r *ResolvedLesson) StartsIn() time.Duration {
	return time.Duration(r.SecondsToStart) * time.Second
}

// Elapsed возвращает сколько прошло с начала урока
func (r *ResolvedLesson) Elapsed() time.Duration {
	return -r.StartsIn()
}

// EndsIn возвращает время до конца урока
func (r *ResolvedLesson) EndsIn() time.Duration {
	return r.StartsIn() + LessonDuration
}
