package app

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/lesson_alert_bot/internal/config"
	"github.com/Freeeeeet/lesson_alert_bot/internal/model"
	"github.com/Freeeeeet/lesson_alert_bot/internal/repository"
	"go.uber.org/zap"
)

// LoadTimetable загружает расписание один раз при старте: из PostgreSQL, если задан DB_DSN, иначе из файла
func LoadTimetable(ctx context.Context, cfg *config.Config, logger *zap.Logger) (model.Week, error) {
	if !cfg.UseDatabase() {
		return repository.NewFileTimetableRepository(cfg.TimetablePath, logger).Load()
	}

	pool, err := OpenPool(ctx, cfg.DBDSN)
	if err != nil {
		return model.Week{}, err
	}
	// Расписание читается один раз, пул больше не нужен
	defer pool.Close()

	migrator, err := NewMigrator(pool, cfg.MigrationsPath, logger)
	if err != nil {
		return model.Week{}, err
	}
	defer migrator.Close()

	if err := migrator.Run(ctx); err != nil {
		return model.Week{}, err
	}

	week, err := repository.NewLessonRepository(pool, logger).LoadWeek(ctx)
	if err != nil {
		return model.Week{}, fmt.Errorf("load timetable from database: %w", err)
	}

	return week, nil
}
