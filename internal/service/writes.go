package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gaganjakhotiya/ross/internal/queue"
)

// timeNow подменяется в тестах
var timeNow = time.Now

// submit ставит мутацию в очередь записи и ждет ее результата.
// Проверки, зависящие от текущего содержимого документа, выполняются внутри task.
func submit[T any](ctx context.Context, q *queue.Queue, label string, task func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	p := q.Submit(label, func(ctx context.Context) (any, error) {
		return task(ctx)
	})

	value, err := p.Wait(ctx)
	if err != nil {
		return zero, err
	}
	typed, ok := value.(T)
	if !ok {
		return zero, fmt.Errorf("write %s returned %T", label, value)
	}
	return typed, nil
}
