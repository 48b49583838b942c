package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gaganjakhotiya/ross/internal/domain"
	"github.com/gaganjakhotiya/ross/internal/queue"
)

func (h *Handler) handleError(w http.ResponseWriter, err error) {
	var transitionErr *domain.InvalidTransitionError
	if errors.As(err, &transitionErr) {
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error: ErrorDetail{
				Code:    domain.CodeInvalidTransition,
				Message: err.Error(),
			},
		})
		return
	}

	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		statusCode := getStatusCode(domainErr.Code)
		if statusCode == http.StatusInternalServerError {
			slog.Error("Request failed", slog.String("code", domainErr.Code), slog.Any("error", err))
		}
		writeJSON(w, statusCode, ErrorResponse{
			Error: ErrorDetail{
				Code:    domainErr.Code,
				Message: domainErr.Message,
			},
		})
		return
	}

	if errors.Is(err, queue.ErrClosed) {
		writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{
			Error: ErrorDetail{
				Code:    "UNAVAILABLE",
				Message: "service is shutting down",
			},
		})
		return
	}

	slog.Error("Request failed", slog.Any("error", err))
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error: ErrorDetail{
			Code:    "INTERNAL_ERROR",
			Message: "internal server error",
		},
	})
}

func getStatusCode(errorCode string) int {
	switch errorCode {
	case domain.CodeBadRequest, domain.CodeOutOfRange:
		return http.StatusBadRequest
	case domain.CodeNotFound:
		return http.StatusNotFound
	case domain.CodeTeamExists, domain.CodeMemberExists:
		return http.StatusConflict
	case domain.CodeInvalidTransition, domain.CodeRangeExceeded:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Warn("Failed to encode response", slog.Any("error", err))
	}
}

// decode читает JSON-тело запроса; ошибка разбора - BAD_REQUEST
func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return domain.NewBadRequestError("invalid request body: " + err.Error())
	}
	return nil
}
