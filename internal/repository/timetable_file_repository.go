package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/Freeeeeet/lesson_alert_bot/internal/model"
	"go.uber.org/zap"
)

// ErrMissingWeekday в файле расписания нет списка для дня недели
var ErrMissingWeekday = errors.New("weekday is missing in timetable")

// timetableFile формат файла расписания: {"week": {"0": [...], ..., "6": [...]}}
type timetableFile struct {
	Week map[string][]model.Lesson `json:"week"`
}

// FileTimetableRepository читает недельное расписание из JSON файла
type FileTimetableRepository struct {
	path   string
	logger *zap.Logger
}

// NewFileTimetableRepository создаёт репозиторий расписания из файла
func NewFileTimetableRepository(path string, logger *zap.Logger) *FileTimetableRepository {
	return &FileTimetableRepository{
		path:   path,
		logger: logger,
	}
}

// Load читает и проверяет расписание
func (r *FileTimetableRepository) Load() (model.Week, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return model.Week{}, fmt.Errorf("read timetable file: %w", err)
	}

	week, err := ParseTimetable(data)
	if err != nil {
		return model.Week{}, fmt.Errorf("parse timetable %s: %w", r.path, err)
	}

	r.logger.Info("Timetable loaded from file",
		zap.String("path", r.path),
		zap.Int("lessons", week.Count()))

	return week, nil
}

// ParseTimetable разбирает JSON расписания.
// Пустой список - день без уроков, отсутствующий ключ - ошибка конфигурации.
func ParseTimetable(data []byte) (model.Week, error) {
	var file timetableFile
	if err := json.Unmarshal(data, &file); err != nil {
		return model.Week{}, fmt.Errorf("decode timetable: %w", err)
	}

	var week model.Week
	for day := 0; day < model.DaysInWeek; day++ {
		lessons, ok := file.Week[strconv.Itoa(day)]
		if !ok {
			return model.Week{}, fmt.Errorf("%w: %s", ErrMissingWeekday, time.Weekday(day))
		}
		week[day] = lessons
	}

	if err := week.Validate(); err != nil {
		return model.Week{}, err
	}

	return week, nil
}
