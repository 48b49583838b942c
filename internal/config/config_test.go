package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("значения по умолчанию", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "3000", cfg.Port)
		assert.Equal(t, time.Second, cfg.Queue.TickInterval)
		assert.Equal(t, time.Duration(0), cfg.Queue.TaskTimeout)
		assert.False(t, cfg.Database.Enabled)
		assert.Equal(t, "2024-01-01", cfg.Calendar.TemplateStart)
		assert.Equal(t, 364, cfg.Calendar.TemplateDays)
		assert.True(t, cfg.Scheduler.Enabled)
		assert.Equal(t, time.Hour, cfg.Scheduler.Interval)
	})

	t.Run("значения из окружения", func(t *testing.T) {
		t.Setenv("PORT", "8080")
		t.Setenv("CACHE_SHORT_TTL", "15s")
		t.Setenv("QUEUE_TASK_TIMEOUT", "30s")
		t.Setenv("DB_ENABLED", "true")
		t.Setenv("SCHEDULER_ENABLED", "false")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, 15*time.Second, cfg.Cache.ShortTTL)
		assert.Equal(t, 30*time.Second, cfg.Queue.TaskTimeout)
		assert.True(t, cfg.Database.Enabled)
		assert.False(t, cfg.Scheduler.Enabled)
	})

	t.Run("ошибка: все некорректные значения собираются вместе", func(t *testing.T) {
		t.Setenv("CACHE_LONG_TTL", "forever")
		t.Setenv("DB_ENABLED", "maybe")
		t.Setenv("TEMPLATE_START_DATE", "01/01/2024")
		t.Setenv("TEMPLATE_DAYS", "many")
		t.Setenv("SCHEDULER_INTERVAL", "0s")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "CACHE_LONG_TTL")
		assert.Contains(t, err.Error(), "DB_ENABLED")
		assert.Contains(t, err.Error(), "TEMPLATE_START_DATE")
		assert.Contains(t, err.Error(), "TEMPLATE_DAYS")
		assert.Contains(t, err.Error(), "SCHEDULER_INTERVAL")
	})
}
