package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Freeeeeet/lesson_alert_bot/internal/model"
)

const (
	secondsInDay    = 24 * 60 * 60
	lessonLength    = int(model.LessonDuration / time.Second)
	startSkewSecond = 15 // урок, начавшийся в последние 15 секунд, ещё считается предстоящим
)

// Timer отложенный вызов, который можно остановить
type Timer interface {
	Stop() bool
}

// Clock источник времени и таймеров
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

type systemClock struct{}

// NewSystemClock возвращает часы поверх локального времени процесса
func NewSystemClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// ParseLessonTime переводит ЧЧ:ММ в секунды от полуночи
func ParseLessonTime(lessonTime string) (int, error) {
	parts := strings.Split(lessonTime, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", model.ErrInvalidLessonTime, lessonTime)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("%w: hours in %q", model.ErrInvalidLessonTime, lessonTime)
	}

	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("%w: minutes in %q", model.ErrInvalidLessonTime, lessonTime)
	}

	return hours*3600 + minutes*60, nil
}

// SecondsSinceMidnight возвращает секунды от локальной полуночи
func SecondsSinceMidnight(now time.Time) int {
	return now.Hour()*3600 + now.Minute()*60 + now.Second()
}

// offsetToStart смещение до начала урока сегодня, без переноса на завтра
func offsetToStart(lessonSeconds int, now time.Time) int {
	return lessonSeconds - (SecondsSinceMidnight(now) - startSkewSecond)
}

// SecondsToStart возвращает секунды до ближайшего начала урока, результат в [0, 86399]
func SecondsToStart(lessonTime string, now time.Time) (int, error) {
	seconds, err := ParseLessonTime(lessonTime)
	if err != nil {
		return 0, err
	}

	offset := offsetToStart(seconds, now)
	if offset < 0 {
		offset += secondsInDay
	}
	return offset, nil
}

// Weekday возвращает день недели через addDays дней
func Weekday(now time.Time, addDays int) time.Weekday {
	day := (int(now.Weekday()) + addDays) % model.DaysInWeek
	if day < 0 {
		day += model.DaysInWeek
	}
	return time.Weekday(day)
}
