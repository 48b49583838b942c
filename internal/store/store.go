package store

import "context"

// Reader - чтение диапазонов табличного документа
type Reader interface {
	ReadRange(ctx context.Context, rng Range) ([][]string, error)
	BatchRead(ctx context.Context, ranges []Range) ([][][]string, error)
}

// Writer - запись диапазонов и управление листами
type Writer interface {
	WriteRange(ctx context.Context, rng Range, values [][]string) error
	BatchWrite(ctx context.Context, updates []Update) error
	CreateSheet(ctx context.Context, name string) error
	SheetExists(ctx context.Context, name string) (bool, error)
}

// Store - внешний документ без индексов, транзакций и блокировок
type Store interface {
	Reader
	Writer
}

// Update - одна запись в составе BatchWrite
type Update struct {
	Range  Range
	Values [][]string
}
