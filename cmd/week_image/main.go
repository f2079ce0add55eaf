package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Freeeeeet/lesson_alert_bot/internal/controller/weekimage"
	"github.com/Freeeeeet/lesson_alert_bot/internal/repository"
	"github.com/Freeeeeet/lesson_alert_bot/internal/service"
	"go.uber.org/zap"
)

// Рендерит картинку недельного расписания из файла, чтобы проверить её без запуска бота
func main() {
	timetablePath := flag.String("timetable", "week.json", "путь к файлу расписания")
	output := flag.String("out", "week.png", "куда сохранить картинку")
	flag.Parse()

	logger := zap.NewNop()

	week, err := repository.NewFileTimetableRepository(*timetablePath, logger).Load()
	if err != nil {
		fmt.Printf("Ошибка загрузки расписания: %v\n", err)
		os.Exit(1)
	}

	now := time.Now()
	current, err := service.NewScheduleService(week, logger).FindCurrentLesson(now)
	if err != nil {
		fmt.Printf("Ошибка поиска текущего урока: %v\n", err)
		os.Exit(1)
	}

	// Генерируем изображение
	imageData, err := weekimage.Generate(week, current, now)
	if err != nil {
		fmt.Printf("Ошибка генерации изображения: %v\n", err)
		os.Exit(1)
	}

	// Сохраняем в файл
	if err := os.WriteFile(*output, imageData, 0644); err != nil {
		fmt.Printf("Ошибка сохранения файла: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Изображение успешно сохранено в %s\n", *output)
	fmt.Printf("📊 Уроков: %d\n", week.Count())
}
