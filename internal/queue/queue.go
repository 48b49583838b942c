package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const DefaultInterval = time.Second

var ErrClosed = errors.New("write queue is shut down")

// Task - отложенная мутация документа
type Task func(ctx context.Context) (any, error)

// FailureHandler вызывается для каждой задачи, завершившейся ошибкой
type FailureHandler func(ctx context.Context, p *Pending)

type Option func(*Queue)

// WithInterval задает период тика
func WithInterval(d time.Duration) Option {
	return func(q *Queue) {
		q.interval = d
	}
}

// WithTaskTimeout ограничивает время выполнения одной задачи; 0 - без ограничения.
// Задача, игнорирующая ctx, все равно блокирует очередь.
func WithTaskTimeout(d time.Duration) Option {
	return func(q *Queue) {
		q.taskTimeout = d
	}
}

// WithFailureHandler задает обработчик упавших задач (dead letter)
func WithFailureHandler(h FailureHandler) Option {
	return func(q *Queue) {
		q.onFailure = h
	}
}

type queued struct {
	task    Task
	pending *Pending
}

// Queue выполняет мутации строго по одной в порядке поступления, не больше одной за тик
type Queue struct {
	interval    time.Duration
	taskTimeout time.Duration
	onFailure   FailureHandler

	mu      sync.Mutex
	backlog []queued
	closed  bool

	exec     sync.Mutex
	inflight sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once
}

func New(opts ...Option) *Queue {
	q := &Queue{
		interval: DefaultInterval,
		backlog:  make([]queued, 0),
		stop:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(q)
	}
	q.registerMetrics()
	return q
}

func (q *Queue) registerMetrics() {
	meter := otel.Meter("github.com/gaganjakhotiya/ross/internal/queue")
	_, err := meter.Int64ObservableGauge(
		"ross.write_queue.pending",
		metric.WithDescription("Number of mutations waiting in the write queue"),
		metric.WithInt64Callback(func(ctx context.Context, o metric.Int64Observer) error {
			o.Observe(int64(q.PendingCount()))
			return nil
		}),
	)
	if err != nil {
		slog.Warn("Failed to register write queue gauge", slog.Any("error", err))
	}
}

// Submit ставит задачу в конец очереди и сразу возвращает handle
func (q *Queue) Submit(label string, task Task) *Pending {
	p := newPending(uuid.NewString(), label)

	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		p.finish(nil, fmt.Errorf("%w: %s", ErrClosed, label))
		return p
	}
	q.backlog = append(q.backlog, queued{task: task, pending: p})

	return p
}

// PendingCount - текущая длина очереди без учета выполняемой задачи
func (q *Queue) PendingCount() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.backlog)
}

// Tick извлекает не более одной задачи и выполняет ее до конца.
// Возвращает false, если очередь пуста или остановлена.
func (q *Queue) Tick(ctx context.Context) bool {
	q.exec.Lock()
	defer q.exec.Unlock()

	q.mu.Lock()
	if q.closed || len(q.backlog) == 0 {
		q.mu.Unlock()
		return false
	}
	next := q.backlog[0]
	q.backlog[0] = queued{}
	q.backlog = q.backlog[1:]
	q.inflight.Add(1)
	q.mu.Unlock()

	defer q.inflight.Done()
	q.execute(ctx, next)

	return true
}

func (q *Queue) execute(ctx context.Context, item queued) {
	// задача доживает до конца даже при остановке очереди
	base := context.WithoutCancel(ctx)
	taskCtx := base
	if q.taskTimeout > 0 {
		var cancel context.CancelFunc
		taskCtx, cancel = context.WithTimeout(base, q.taskTimeout)
		defer cancel()
	}

	p := item.pending
	p.setState(StateRunning)
	started := time.Now()

	value, err := q.run(taskCtx, item)
	p.finish(value, err)

	if err != nil {
		slog.Error("Write task failed",
			slog.String("task_id", p.ID),
			slog.String("label", p.Label),
			slog.Duration("elapsed", time.Since(started)),
			slog.Any("error", err))
		if q.onFailure != nil {
			q.onFailure(base, p)
		}
		return
	}

	slog.Debug("Write task completed",
		slog.String("task_id", p.ID),
		slog.String("label", p.Label),
		slog.Duration("elapsed", time.Since(started)))
}

// run изолирует панику задачи: она становится обычной ошибкой handle
func (q *Queue) run(ctx context.Context, item queued) (value any, err error) {
	defer func() {
		if r := recover(); r != nil {
			value = nil
			err = fmt.Errorf("task %s panicked: %v", item.pending.Label, r)
		}
	}()
	return item.task(ctx)
}

// Run дренирует очередь по тику до отмены ctx или Shutdown
func (q *Queue) Run(ctx context.Context) {
	ticker := time.NewTicker(q.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-q.stop:
			return
		case <-ticker.C:
			q.Tick(ctx)
		}
	}
}

// Shutdown останавливает тики и ждет выполняемую задачу.
// Оставшиеся в очереди задачи брошены, их handle не разрешаются.
func (q *Queue) Shutdown(ctx context.Context) error {
	q.mu.Lock()
	q.closed = true
	abandoned := len(q.backlog)
	q.mu.Unlock()

	q.stopOnce.Do(func() { close(q.stop) })

	if abandoned > 0 {
		slog.Warn("Write queue shut down with pending tasks", slog.Int("abandoned", abandoned))
	}

	done := make(chan struct{})
	go func() {
		q.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
