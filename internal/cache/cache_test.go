package cache

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countingLoader(calls *atomic.Int32) Loader {
	return func(ctx context.Context, args ...any) (any, error) {
		n := calls.Add(1)
		return int(n), nil
	}
}

func TestMemoizer_Register(t *testing.T) {
	m := New(time.Minute, time.Hour)
	var calls atomic.Int32

	require.NoError(t, m.Register("fetchTeams", Long, countingLoader(&calls)))

	err := m.Register("fetchTeams", Short, countingLoader(&calls))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateRegistration))

	_, err = m.Invoke(context.Background(), "unknown")
	assert.True(t, errors.Is(err, ErrNotRegistered))
}

func TestMemoizer_Invoke(t *testing.T) {
	ctx := context.Background()

	t.Run("fetchX: 1000ms TTL, повторный вызов после 1100ms", func(t *testing.T) {
		m := New(time.Minute, time.Hour)
		var calls atomic.Int32
		require.NoError(t, m.RegisterTTL("fetchX", 1000*time.Millisecond, countingLoader(&calls)))

		_, err := m.Invoke(ctx, "fetchX")
		require.NoError(t, err)
		time.Sleep(500 * time.Millisecond)
		_, err = m.Invoke(ctx, "fetchX")
		require.NoError(t, err)
		assert.Equal(t, int32(1), calls.Load())

		time.Sleep(1100 * time.Millisecond)
		_, err = m.Invoke(ctx, "fetchX")
		require.NoError(t, err)
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("разные аргументы - разные записи", func(t *testing.T) {
		m := New(time.Minute, time.Hour)
		var calls atomic.Int32
		require.NoError(t, m.Register("teamByName", Short, countingLoader(&calls)))

		a, err := Call[int](ctx, m, "teamByName", "backend")
		require.NoError(t, err)
		b, err := Call[int](ctx, m, "teamByName", "frontend")
		require.NoError(t, err)
		again, err := Call[int](ctx, m, "teamByName", "backend")
		require.NoError(t, err)

		assert.Equal(t, 1, a)
		assert.Equal(t, 2, b)
		assert.Equal(t, 1, again)
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("ошибки не кэшируются", func(t *testing.T) {
		m := New(time.Minute, time.Hour)
		var calls atomic.Int32
		require.NoError(t, m.Register("flaky", Short, func(ctx context.Context, args ...any) (any, error) {
			if calls.Add(1) == 1 {
				return nil, errors.New("store unavailable")
			}
			return "ok", nil
		}))

		_, err := m.Invoke(ctx, "flaky")
		require.Error(t, err)

		value, err := Call[string](ctx, m, "flaky")
		require.NoError(t, err)
		assert.Equal(t, "ok", value)
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("ошибка: неверный тип в Call", func(t *testing.T) {
		m := New(time.Minute, time.Hour)
		var calls atomic.Int32
		require.NoError(t, m.Register("count", Short, countingLoader(&calls)))

		_, err := Call[string](ctx, m, "count")
		require.Error(t, err)
	})
}

func TestMemoizer_InvalidateNamespace(t *testing.T) {
	ctx := context.Background()
	m := New(time.Hour, time.Hour)

	var teamCalls, channelCalls atomic.Int32
	require.NoError(t, m.Register("team", Long, countingLoader(&teamCalls)))
	require.NoError(t, m.Register("teamByChannel", Long, countingLoader(&channelCalls)))

	_, _ = m.Invoke(ctx, "team", "backend")
	_, _ = m.Invoke(ctx, "team", "frontend")
	_, _ = m.Invoke(ctx, "teamByChannel", "C1")

	m.InvalidateNamespace("team")

	_, _ = m.Invoke(ctx, "team", "backend")
	_, _ = m.Invoke(ctx, "team", "frontend")
	_, _ = m.Invoke(ctx, "teamByChannel", "C1")

	assert.Equal(t, int32(4), teamCalls.Load())
	assert.Equal(t, int32(1), channelCalls.Load(), "операция с общим префиксом имени не затрагивается")
}

func TestMemoizer_FlushAll(t *testing.T) {
	ctx := context.Background()
	m := New(time.Hour, time.Hour)

	var calls atomic.Int32
	require.NoError(t, m.Register("members", Long, countingLoader(&calls)))

	_, _ = m.Invoke(ctx, "members")
	m.FlushAll()
	assert.Equal(t, 0, m.Len())

	_, _ = m.Invoke(ctx, "members")
	assert.Equal(t, int32(2), calls.Load())
}

func TestMemoizer_SweepExpired(t *testing.T) {
	ctx := context.Background()
	m := New(50*time.Millisecond, time.Hour)

	var shortCalls, longCalls atomic.Int32
	require.NoError(t, m.Register("status", Short, countingLoader(&shortCalls)))
	require.NoError(t, m.Register("sprints", Long, countingLoader(&longCalls)))

	_, _ = m.Invoke(ctx, "status", "backend")
	_, _ = m.Invoke(ctx, "sprints")

	time.Sleep(100 * time.Millisecond)
	m.SweepExpired()

	assert.Equal(t, 1, m.Len())

	_, _ = m.Invoke(ctx, "sprints")
	assert.Equal(t, int32(1), longCalls.Load())
}

func TestKey(t *testing.T) {
	key, err := Key("sprints")
	require.NoError(t, err)
	assert.Equal(t, "sprints", key)

	key, err = Key("team", "backend")
	require.NoError(t, err)
	assert.Equal(t, `team#v1:["backend"]`, key)

	a, err := Key("status", "backend", 4)
	require.NoError(t, err)
	b, err := Key("status", "backend4")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	_, err = Key("bad", make(chan int))
	require.Error(t, err)
}
