package repository

import (
	"context"

	"github.com/gaganjakhotiya/ross/internal/domain"
)

// SprintRepository возвращает таблицу спринтов; элемент 0 соответствует строке заголовка
type SprintRepository interface {
	List(ctx context.Context) ([]domain.Sprint, error)
}
