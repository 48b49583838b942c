package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	Log       LogConfig
	Sheets    SheetsConfig
	Calendar  CalendarConfig
	Cache     CacheConfig
	Queue     QueueConfig
	Scheduler SchedulerConfig
	Database  DatabaseConfig
}

type LogConfig struct {
	Level string
	File  string
}

// SheetsConfig - пустой SpreadsheetID включает документ в памяти
type SheetsConfig struct {
	SpreadsheetID   string
	CredentialsFile string
}

// CalendarConfig - TemplateDays используется только при создании шаблона в новом документе
type CalendarConfig struct {
	TemplateStart string
	TemplateDays  int
}

type CacheConfig struct {
	ShortTTL      time.Duration
	LongTTL       time.Duration
	SweepInterval time.Duration
}

type QueueConfig struct {
	TickInterval time.Duration
	TaskTimeout  time.Duration
}

// SchedulerConfig - Enabled=false оставляет цикл запущенным, но выключенным до POST /work
type SchedulerConfig struct {
	Enabled  bool
	Interval time.Duration
}

// DatabaseConfig - Postgres для dead letter; Enabled=false отключает подключение
type DatabaseConfig struct {
	Enabled  bool
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	var errs *multierror.Error

	cfg := &Config{
		Port: getEnv("PORT", "3000"),
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", ""),
		},
		Sheets: SheetsConfig{
			SpreadsheetID:   getEnv("SPREADSHEET_ID", ""),
			CredentialsFile: getEnv("GOOGLE_APPLICATION_CREDENTIALS", ""),
		},
		Calendar: CalendarConfig{
			TemplateStart: getEnv("TEMPLATE_START_DATE", "2024-01-01"),
			TemplateDays:  getInt("TEMPLATE_DAYS", 364, &errs),
		},
		Cache: CacheConfig{
			ShortTTL:      getDuration("CACHE_SHORT_TTL", time.Minute, &errs),
			LongTTL:       getDuration("CACHE_LONG_TTL", 30*time.Minute, &errs),
			SweepInterval: getDuration("CACHE_SWEEP_INTERVAL", 5*time.Minute, &errs),
		},
		Queue: QueueConfig{
			TickInterval: getDuration("QUEUE_TICK_INTERVAL", time.Second, &errs),
			TaskTimeout:  getDuration("QUEUE_TASK_TIMEOUT", 0, &errs),
		},
		Scheduler: SchedulerConfig{
			Enabled:  getBool("SCHEDULER_ENABLED", true, &errs),
			Interval: getDuration("SCHEDULER_INTERVAL", time.Hour, &errs),
		},
		Database: DatabaseConfig{
			Enabled:  getBool("DB_ENABLED", false, &errs),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "ross"),
			Password: getEnv("DB_PASSWORD", "ross"),
			DBName:   getEnv("DB_NAME", "ross"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
	}

	if _, err := time.Parse("2006-01-02", cfg.Calendar.TemplateStart); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("TEMPLATE_START_DATE: %w", err))
	}
	if cfg.Calendar.TemplateDays < 0 {
		errs = multierror.Append(errs, fmt.Errorf("TEMPLATE_DAYS must not be negative"))
	}
	if cfg.Queue.TickInterval <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("QUEUE_TICK_INTERVAL must be positive"))
	}
	if cfg.Scheduler.Interval <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("SCHEDULER_INTERVAL must be positive"))
	}
	if cfg.Cache.SweepInterval <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("CACHE_SWEEP_INTERVAL must be positive"))
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration, errs **multierror.Error) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		*errs = multierror.Append(*errs, fmt.Errorf("%s: %w", key, err))
		return defaultValue
	}
	return d
}

func getBool(key string, defaultValue bool, errs **multierror.Error) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		*errs = multierror.Append(*errs, fmt.Errorf("%s: %w", key, err))
		return defaultValue
	}
	return b
}

func getInt(key string, defaultValue int, errs **multierror.Error) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		*errs = multierror.Append(*errs, fmt.Errorf("%s: %w", key, err))
		return defaultValue
	}
	return n
}
