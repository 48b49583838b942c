package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

// keyVersion меняется при изменении формата ключа
const keyVersion = "v1"

var (
	ErrDuplicateRegistration = errors.New("operation already registered")
	ErrNotRegistered         = errors.New("operation not registered")
)

// Tier - уровень TTL по волатильности данных
type Tier int

const (
	Short Tier = iota
	Long
)

// Loader - исходная операция чтения
type Loader func(ctx context.Context, args ...any) (any, error)

type operation struct {
	ttl    time.Duration
	loader Loader
}

// Memoizer кэширует результаты зарегистрированных операций чтения.
// Одновременные промахи по одному ключу не объединяются: каждый вызывает loader.
type Memoizer struct {
	mu    sync.RWMutex
	ops   map[string]operation
	tiers map[Tier]time.Duration
	items *ttlcache.Cache[string, any]
}

func New(shortTTL, longTTL time.Duration) *Memoizer {
	return &Memoizer{
		ops: make(map[string]operation),
		tiers: map[Tier]time.Duration{
			Short: shortTTL,
			Long:  longTTL,
		},
		items: ttlcache.New[string, any](
			ttlcache.WithDisableTouchOnHit[string, any](),
		),
	}
}

// Register привязывает операцию к уровню TTL
func (m *Memoizer) Register(op string, tier Tier, loader Loader) error {
	ttl, ok := m.tiers[tier]
	if !ok {
		return fmt.Errorf("unknown cache tier %d", tier)
	}
	return m.RegisterTTL(op, ttl, loader)
}

// RegisterTTL привязывает операцию к явному TTL
func (m *Memoizer) RegisterTTL(op string, ttl time.Duration, loader Loader) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.ops[op]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateRegistration, op)
	}
	m.ops[op] = operation{ttl: ttl, loader: loader}
	return nil
}

// Invoke возвращает живой результат из кэша или вызывает loader и сохраняет результат.
// Ошибки не кэшируются.
func (m *Memoizer) Invoke(ctx context.Context, op string, args ...any) (any, error) {
	m.mu.RLock()
	o, ok := m.ops[op]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotRegistered, op)
	}

	key, err := Key(op, args...)
	if err != nil {
		return nil, err
	}

	if item := m.items.Get(key); item != nil {
		return item.Value(), nil
	}

	value, err := o.loader(ctx, args...)
	if err != nil {
		return nil, err
	}
	m.items.Set(key, value, o.ttl)

	return value, nil
}

// InvalidateNamespace удаляет все варианты аргументов операции.
// Совпадает только ключ op или префикс "op#": teams не задевает teamsByName.
func (m *Memoizer) InvalidateNamespace(op string) {
	prefix := op + "#"
	removed := 0
	for _, key := range m.items.Keys() {
		if key == op || strings.HasPrefix(key, prefix) {
			m.items.Delete(key)
			removed++
		}
	}
	slog.Debug("cache namespace invalidated", "operation", op, "removed", removed)
}

// FlushAll удаляет все записи
func (m *Memoizer) FlushAll() {
	m.items.DeleteAll()
	slog.Debug("cache flushed")
}

// SweepExpired удаляет только просроченные записи
func (m *Memoizer) SweepExpired() {
	m.items.DeleteExpired()
}

// Len - количество записей, включая просроченные, но еще не удаленные
func (m *Memoizer) Len() int {
	return m.items.Len()
}

// Janitor периодически удаляет просроченные записи до отмены ctx
func (m *Memoizer) Janitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.SweepExpired()
		}
	}
}

// Key строит ключ кэша: имя операции без аргументов или op#v1:<json>
func Key(op string, args ...any) (string, error) {
	if len(args) == 0 {
		return op, nil
	}
	encoded, err := json.Marshal(args)
	if err != nil {
		return "", fmt.Errorf("failed to encode cache key for %s: %w", op, err)
	}
	return op + "#" + keyVersion + ":" + string(encoded), nil
}

// Call - типизированная обертка над Invoke
func Call[T any](ctx context.Context, m *Memoizer, op string, args ...any) (T, error) {
	var zero T
	value, err := m.Invoke(ctx, op, args...)
	if err != nil {
		return zero, err
	}
	typed, ok := value.(T)
	if !ok {
		return zero, fmt.Errorf("cache operation %s returned %T", op, value)
	}
	return typed, nil
}
