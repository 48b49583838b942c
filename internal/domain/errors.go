package domain

import "fmt"

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Это позволяет использовать errors.Is()
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

const (
	CodeTeamExists        = "TEAM_EXISTS"
	CodeMemberExists      = "MEMBER_EXISTS"
	CodeNotFound          = "NOT_FOUND"
	CodeOutOfRange        = "OUT_OF_RANGE"
	CodeRangeExceeded     = "RANGE_EXCEEDED"
	CodeInvalidTransition = "INVALID_TRANSITION"
	CodeSchemaMismatch    = "SCHEMA_MISMATCH"
	CodeBadRequest        = "BAD_REQUEST"
)

var (
	// ErrTeamExists - команда с таким именем или каналом уже существует
	ErrTeamExists = &DomainError{
		Code:    CodeTeamExists,
		Message: "team name or channel already exists",
	}

	// ErrMemberExists - участник с таким email или handle уже зарегистрирован
	ErrMemberExists = &DomainError{
		Code:    CodeMemberExists,
		Message: "member email or handle already exists",
	}

	// ErrNotFound - ресурс не найден
	ErrNotFound = &DomainError{
		Code:    CodeNotFound,
		Message: "resource not found",
	}

	// ErrOutOfRange - дата раньше опорной даты шаблона
	ErrOutOfRange = &DomainError{
		Code:    CodeOutOfRange,
		Message: "date precedes anchor date",
	}

	// ErrRangeExceeded - колонка выходит за пределы A-Z
	ErrRangeExceeded = &DomainError{
		Code:    CodeRangeExceeded,
		Message: "column out of single-letter range",
	}

	// ErrInvalidTransition - переход статуса запрещен таблицей
	ErrInvalidTransition = &DomainError{
		Code:    CodeInvalidTransition,
		Message: "invalid status transition",
	}

	// ErrSchemaMismatch - заголовки листа не совпадают с ожидаемыми
	ErrSchemaMismatch = &DomainError{
		Code:    CodeSchemaMismatch,
		Message: "sheet layout does not match expected header",
	}
)

// NewNotFoundError создает ошибку NOT_FOUND с дополнительным контекстом
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewOutOfRangeError создает ошибку OUT_OF_RANGE для даты раньше якоря
func NewOutOfRangeError(date, anchor string) *DomainError {
	return &DomainError{
		Code:    CodeOutOfRange,
		Message: fmt.Sprintf("date %s precedes anchor date %s", date, anchor),
	}
}

// NewAfterRangeError создает ошибку OUT_OF_RANGE для даты за концом шаблона
func NewAfterRangeError(date, end string) *DomainError {
	return &DomainError{
		Code:    CodeOutOfRange,
		Message: fmt.Sprintf("date %s is after calendar end date %s", date, end),
	}
}

// NewRangeExceededError создает ошибку RANGE_EXCEEDED для адресации колонки
func NewRangeExceededError(start byte, ordinal int) *DomainError {
	return &DomainError{
		Code:    CodeRangeExceeded,
		Message: fmt.Sprintf("column %c+%d exceeds single-letter range", start, ordinal),
	}
}

// NewSchemaMismatchError создает ошибку SCHEMA_MISMATCH для листа
func NewSchemaMismatchError(sheet string, expected, actual []string) *DomainError {
	return &DomainError{
		Code:    CodeSchemaMismatch,
		Message: fmt.Sprintf("sheet %s header mismatch: expected %v, got %v", sheet, expected, actual),
	}
}

// NewBadRequestError создает ошибку BAD_REQUEST с сообщением
func NewBadRequestError(message string) *DomainError {
	return &DomainError{
		Code:    CodeBadRequest,
		Message: message,
	}
}

// InvalidTransitionError несет оба статуса запрещенного перехода
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot change status from %s to %s", e.From, e.To)
}

func (e *InvalidTransitionError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return t.Code == CodeInvalidTransition
	}
	return false
}
