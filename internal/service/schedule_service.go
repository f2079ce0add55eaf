package service

import (
	"fmt"
	"time"

	"github.com/Freeeeeet/lesson_alert_bot/internal/model"
	"go.uber.org/zap"
)

// ScheduleService определяет текущий и следующий урок по недельному расписанию
type ScheduleService struct {
	week   model.Week
	logger *zap.Logger
}

// NewScheduleService создаёт сервис расписания. Расписание после создания не меняется.
func NewScheduleService(week model.Week, logger *zap.Logger) *ScheduleService {
	return &ScheduleService{
		week:   week,
		logger: logger,
	}
}

// Week возвращает недельное расписание
func (s *ScheduleService) Week() model.Week {
	return s.week
}

// FindNextLesson ищет ближайший предстоящий урок.
// Дни без уроков и дни, где все уроки уже прошли, пропускаются; к смещению
// добавляются полные сутки за каждый пропущенный день.
func (s *ScheduleService) FindNextLesson(now time.Time) (*model.ResolvedLesson, error) {
	// 8 дней: при единственном учебном дне урок может оказаться через неделю
	for addDays := 0; addDays <= model.DaysInWeek; addDays++ {
		weekday := Weekday(now, addDays)

		var next *model.ResolvedLesson
		for _, lesson := range s.week.Lessons(weekday) {
			lessonStart, err := ParseLessonTime(lesson.Time)
			if err != nil {
				return nil, fmt.Errorf("%s, lesson %d: %w", weekday, lesson.Position, err)
			}

			offset := offsetToStart(lessonStart, now) + addDays*secondsInDay
			if offset < 0 {
				continue
			}

			if next == nil || offset < next.SecondsToStart {
				next = &model.ResolvedLesson{
					Lesson:         lesson,
					Weekday:        weekday,
					SecondsToStart: offset,
				}
			}
		}

		if next != nil {
			s.logger.Debug("Next lesson resolved",
				zap.String("weekday", weekday.String()),
				zap.Int("position", next.Position),
				zap.Int("seconds_to_start", next.SecondsToStart))
			return next, nil
		}
	}

	return nil, model.ErrEmptyTimetable
}

// FindCurrentLesson возвращает урок, который идёт сейчас, или nil.
// Берётся последний начавшийся урок, если он начался не больше 45 минут назад.
// Вчерашние уроки тоже проверяются: урок в 23:30 идёт и после полуночи.
func (s *ScheduleService) FindCurrentLesson(now time.Time) (*model.ResolvedLesson, error) {
	nowSeconds := SecondsSinceMidnight(now)

	var current *model.ResolvedLesson
	for daysAgo := 0; daysAgo <= 1; daysAgo++ {
		weekday := Weekday(now, -daysAgo)

		for _, lesson := range s.week.Lessons(weekday) {
			lessonStart, err := ParseLessonTime(lesson.Time)
			if err != nil {
				return nil, fmt.Errorf("%s, lesson %d: %w", weekday, lesson.Position, err)
			}

			elapsed := nowSeconds - lessonStart + daysAgo*secondsInDay
			if elapsed < 0 || elapsed > lessonLength {
				continue
			}

			if current == nil || -elapsed > current.SecondsToStart {
				current = &model.ResolvedLesson{
					Lesson:         lesson,
					Weekday:        weekday,
					SecondsToStart: -elapsed,
				}
			}
		}
	}

	return current, nil
}
