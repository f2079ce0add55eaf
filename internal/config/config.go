package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	TelegramToken        string        `mapstructure:"TELEGRAM_TOKEN"`
	Environment          string        `mapstructure:"ENV"`
	TimetablePath        string        `mapstructure:"TIMETABLE_PATH"`
	DBDSN                string        `mapstructure:"DB_DSN"`
	MigrationsPath       string        `mapstructure:"MIGRATIONS_PATH"`
	BroadcastSendTimeout time.Duration `mapstructure:"BROADCAST_SEND_TIMEOUT"`
}

func Load() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	} else {
		log.Println("✅ Loaded configuration from .env file")
	}

	return FromEnv()
}

// FromEnv читает конфигурацию из переменных окружения
func FromEnv() (*Config, error) {
	cfg := &Config{
		TelegramToken:  os.Getenv("TELEGRAM_TOKEN"),
		Environment:    getEnv("ENV", "development"),
		TimetablePath:  getEnv("TIMETABLE_PATH", "week.json"),
		DBDSN:          os.Getenv("DB_DSN"),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "migrations"),
	}

	sendTimeout, err := time.ParseDuration(getEnv("BROADCAST_SEND_TIMEOUT", "30s"))
	if err != nil || sendTimeout <= 0 {
		return nil, fmt.Errorf("BROADCAST_SEND_TIMEOUT must be a positive duration like 30s")
	}
	cfg.BroadcastSendTimeout = sendTimeout

	// Проверяем обязательные поля
	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_TOKEN is required but not set")
	}

	return cfg, nil
}

// UseDatabase расписание читается из PostgreSQL, а не из файла
func (c *Config) UseDatabase() bool {
	return c.DBDSN != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
