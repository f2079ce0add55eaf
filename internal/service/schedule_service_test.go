package service

import (
	"testing"
	"time"

	"github.com/Freeeeeet/lesson_alert_bot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// 2024-01-01 - понедельник
func at(day, h, m, s int) time.Time {
	return time.Date(2024, 1, day, h, m, s, 0, time.UTC)
}

func schoolWeek() model.Week {
	var week model.Week
	for day := time.Monday; day <= time.Friday; day++ {
		week[day] = []model.Lesson{
			{Position: 1, Subject: "Matemática", Teacher: "Ana", Time: "07:30"},
			{Position: 2, Subject: "Português", Teacher: "Bruno", Time: "08:15"},
			{Position: 3, Subject: "Química", Teacher: "Carla", Time: "09:00"},
		}
	}
	return week
}

func TestScheduleService_FindNextLesson(t *testing.T) {
	tests := []struct {
		name         string
		now          time.Time
		wantWeekday  time.Weekday
		wantPosition int
		wantSeconds  int
	}{
		{
			name:         "Should return first lesson before the school day",
			now:          at(1, 6, 0, 0),
			wantWeekday:  time.Monday,
			wantPosition: 1,
			wantSeconds:  90*60 + 15,
		},
		{
			name:         "Should return the lesson that is about to start",
			now:          at(1, 8, 10, 0),
			wantWeekday:  time.Monday,
			wantPosition: 2,
			wantSeconds:  5*60 + 15,
		},
		{
			name:         "Should keep a lesson due within the skew",
			now:          at(1, 8, 15, 10),
			wantWeekday:  time.Monday,
			wantPosition: 2,
			wantSeconds:  5,
		},
		{
			name:         "Should move to tomorrow after the last lesson",
			now:          at(1, 10, 0, 0),
			wantWeekday:  time.Tuesday,
			wantPosition: 1,
			wantSeconds:  86400 - (10*3600 - 7*3600 - 30*60) + 15,
		},
		{
			name:         "Should skip the weekend from Saturday noon",
			now:          at(6, 12, 0, 0),
			wantWeekday:  time.Monday,
			wantPosition: 1,
			wantSeconds:  2*86400 - 12*3600 + 7*3600 + 30*60 + 15,
		},
		{
			name:         "Should skip the weekend after Friday's last lesson",
			now:          at(5, 9, 30, 0),
			wantWeekday:  time.Monday,
			wantPosition: 1,
			wantSeconds:  3*86400 - (9*3600 + 30*60) + 7*3600 + 30*60 + 15,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScheduleService(schoolWeek(), zaptest.NewLogger(t))

			got, err := s.FindNextLesson(tt.now)
			require.NoError(t, err)
			require.NotNil(t, got)

			assert.Equal(t, tt.wantWeekday, got.Weekday)
			assert.Equal(t, tt.wantPosition, got.Position)
			assert.Equal(t, tt.wantSeconds, got.SecondsToStart)
			assert.GreaterOrEqual(t, got.SecondsToStart, 0)
		})
	}
}

func TestScheduleService_FindNextLesson_SingleLessonWeek(t *testing.T) {
	var week model.Week
	week[time.Monday] = []model.Lesson{{Position: 1, Subject: "Artes", Teacher: "Davi", Time: "14:00"}}
	s := NewScheduleService(week, zaptest.NewLogger(t))

	got, err := s.FindNextLesson(at(1, 13, 56, 50))
	require.NoError(t, err)
	assert.Equal(t, 205, got.SecondsToStart)

	// после урока - тот же урок через неделю
	got, err = s.FindNextLesson(at(1, 15, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, time.Monday, got.Weekday)
	assert.Equal(t, 7*86400-3600+15, got.SecondsToStart)
}

func TestScheduleService_FindNextLesson_IsIdempotent(t *testing.T) {
	s := NewScheduleService(schoolWeek(), zaptest.NewLogger(t))
	now := at(3, 8, 0, 0)

	first, err := s.FindNextLesson(now)
	require.NoError(t, err)
	second, err := s.FindNextLesson(now)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestScheduleService_FindNextLesson_UnorderedDay(t *testing.T) {
	var week model.Week
	week[time.Wednesday] = []model.Lesson{
		{Position: 3, Subject: "Geografia", Teacher: "Eva", Time: "10:00"},
		{Position: 1, Subject: "Inglês", Teacher: "Fábio", Time: "08:00"},
		{Position: 2, Subject: "Biologia", Teacher: "Gil", Time: "09:00"},
	}
	s := NewScheduleService(week, zaptest.NewLogger(t))

	got, err := s.FindNextLesson(at(3, 8, 30, 0))
	require.NoError(t, err)
	assert.Equal(t, 2, got.Position)
}

func TestScheduleService_FindNextLesson_EmptyWeek(t *testing.T) {
	s := NewScheduleService(model.Week{}, zaptest.NewLogger(t))

	got, err := s.FindNextLesson(at(1, 8, 0, 0))
	assert.ErrorIs(t, err, model.ErrEmptyTimetable)
	assert.Nil(t, got)
}

func TestScheduleService_FindNextLesson_InvalidTime(t *testing.T) {
	var week model.Week
	week[time.Monday] = []model.Lesson{{Position: 1, Subject: "Música", Teacher: "Hugo", Time: "8h"}}
	s := NewScheduleService(week, zaptest.NewLogger(t))

	_, err := s.FindNextLesson(at(1, 7, 0, 0))
	assert.ErrorIs(t, err, model.ErrInvalidLessonTime)
}

func TestScheduleService_FindCurrentLesson(t *testing.T) {
	tests := []struct {
		name         string
		now          time.Time
		wantPosition int // 0 - урока нет
		wantElapsed  int
	}{
		{name: "Should return the lesson 20 minutes in", now: at(1, 9, 20, 0), wantPosition: 3, wantElapsed: 1200},
		{name: "Should return none 50 minutes after start", now: at(1, 9, 50, 0), wantPosition: 0},
		{name: "Should include the lesson exactly at 45 minutes", now: at(1, 9, 45, 0), wantPosition: 3, wantElapsed: 2700},
		{name: "Should return none one second after 45 minutes", now: at(1, 9, 45, 1), wantPosition: 0},
		{name: "Should return the lesson at its first second", now: at(1, 8, 15, 0), wantPosition: 2, wantElapsed: 0},
		{name: "Should return none before the school day", now: at(1, 7, 29, 50), wantPosition: 0},
		{name: "Should return none on a day without lessons", now: at(6, 9, 20, 0), wantPosition: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScheduleService(schoolWeek(), zaptest.NewLogger(t))

			got, err := s.FindCurrentLesson(tt.now)
			require.NoError(t, err)

			if tt.wantPosition == 0 {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.wantPosition, got.Position)
			assert.Equal(t, tt.wantElapsed, int(got.Elapsed()/time.Second))
		})
	}
}

func TestScheduleService_FindCurrentLesson_AcrossMidnight(t *testing.T) {
	var week model.Week
	week[time.Monday] = []model.Lesson{{Position: 1, Subject: "Astronomia", Teacher: "Iris", Time: "23:30"}}
	s := NewScheduleService(week, zaptest.NewLogger(t))

	got, err := s.FindCurrentLesson(at(2, 0, 10, 0))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, time.Monday, got.Weekday)
	assert.Equal(t, 40*time.Minute, got.Elapsed())
	assert.Equal(t, 5*time.Minute, got.EndsIn())
}

func TestScheduleService_FindCurrentLesson_MostRecentStart(t *testing.T) {
	var week model.Week
	week[time.Monday] = []model.Lesson{
		{Position: 1, Subject: "Filosofia", Teacher: "João", Time: "10:00"},
		{Position: 2, Subject: "Sociologia", Teacher: "Karen", Time: "10:30"},
	}
	s := NewScheduleService(week, zaptest.NewLogger(t))

	got, err := s.FindCurrentLesson(at(1, 10, 40, 0))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 2, got.Position)
}
