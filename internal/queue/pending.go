package queue

import (
	"context"
	"sync"
)

type State int

const (
	StateQueued State = iota
	StateRunning
	StateCompleted
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateQueued:
		return "queued"
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Pending - handle результата конкретной задачи
type Pending struct {
	ID    string
	Label string

	mu    sync.Mutex
	state State
	value any
	err   error
	done  chan struct{}
}

func newPending(id, label string) *Pending {
	return &Pending{
		ID:    id,
		Label: label,
		state: StateQueued,
		done:  make(chan struct{}),
	}
}

func (p *Pending) setState(s State) {
	p.mu.Lock()
	p.state = s
	p.mu.Unlock()
}

func (p *Pending) finish(value any, err error) {
	p.mu.Lock()
	p.value = value
	p.err = err
	if err != nil {
		p.state = StateFailed
	} else {
		p.state = StateCompleted
	}
	p.mu.Unlock()
	close(p.done)
}

func (p *Pending) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Done закрывается после завершения задачи
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Err - ошибка задачи; nil до завершения
func (p *Pending) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

// Wait ждет завершения задачи или отмены ctx
func (p *Pending) Wait(ctx context.Context) (any, error) {
	select {
	case <-p.done:
		p.mu.Lock()
		defer p.mu.Unlock()
		return p.value, p.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
