package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/lesson_alert_bot/internal/model"
	"github.com/Freeeeeet/lesson_alert_bot/internal/repository/base"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// LessonRepository читает недельное расписание из PostgreSQL
type LessonRepository struct {
	*base.Repository
	logger *zap.Logger
}

// NewLessonRepository создаёт новый репозиторий
func NewLessonRepository(pool *pgxpool.Pool, logger *zap.Logger) *LessonRepository {
	return &LessonRepository{
		Repository: base.NewRepository(pool),
		logger:     logger,
	}
}

// LoadWeek читает все уроки и раскладывает их по дням недели
func (r *LessonRepository) LoadWeek(ctx context.Context) (model.Week, error) {
	query := `
		SELECT weekday, position, subject, teacher, to_char(start_time, 'HH24:MI')
		FROM lessons
		ORDER BY weekday, start_time, position
	`

	lessonRows, err := base.QueryAll(ctx, r.Repository, scanLessonRow, query)
	if err != nil {
		return model.Week{}, fmt.Errorf("get lessons: %w", err)
	}

	week, err := buildWeek(lessonRows)
	if err != nil {
		return model.Week{}, err
	}

	r.logger.Info("Timetable loaded from database",
		zap.Int("lessons", week.Count()))

	return week, nil
}

type lessonRow struct {
	weekday int
	lesson  model.Lesson
}

func scanLessonRow(row pgx.CollectableRow) (lessonRow, error) {
	var lr lessonRow
	err := row.Scan(
		&lr.weekday,
		&lr.lesson.Position,
		&lr.lesson.Subject,
		&lr.lesson.Teacher,
		&lr.lesson.Time,
	)
	return lr, err
}

// buildWeek раскладывает строки таблицы по дням недели (0 - воскресенье)
func buildWeek(rows []lessonRow) (model.Week, error) {
	var week model.Week
	for _, lr := range rows {
		if lr.weekday < 0 || lr.weekday >= model.DaysInWeek {
			return model.Week{}, fmt.Errorf("lesson %q has invalid weekday %d", lr.lesson.Subject, lr.weekday)
		}
		week[lr.weekday] = append(week[lr.weekday], lr.lesson)
	}

	if err := week.Validate(); err != nil {
		return model.Week{}, err
	}
	return week, nil
}
