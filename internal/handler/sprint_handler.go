package handler

import (
	"net/http"
	"strconv"

	"github.com/gaganjakhotiya/ross/internal/domain"
)

func (h *Handler) GetSprintProgress(w http.ResponseWriter, r *http.Request) {
	date, err := parseDate(r.URL.Query().Get("date"), "date")
	if err != nil {
		h.handleError(w, err)
		return
	}

	details, err := h.sprintService.Progress(r.Context(), date)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, sprintDetailsToHTTP(details))
}

func parseOffset(value string) (int, error) {
	if value == "" {
		return 0, nil
	}
	offset, err := strconv.Atoi(value)
	if err != nil {
		return 0, domain.NewBadRequestError("offset must be an integer")
	}
	return offset, nil
}

// GetSprint возвращает спринт со смещением offset от спринта на дату
func (h *Handler) GetSprint(w http.ResponseWriter, r *http.Request) {
	date, err := parseDate(r.URL.Query().Get("date"), "date")
	if err != nil {
		h.handleError(w, err)
		return
	}
	offset, err := parseOffset(r.URL.Query().Get("offset"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	sprint, err := h.sprintService.Relative(r.Context(), date, offset)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainSprintToHTTP(sprint))
}

// GetSprintLeaves - отпуска участников активных команд за спринт со смещением offset
func (h *Handler) GetSprintLeaves(w http.ResponseWriter, r *http.Request) {
	at, err := parseMoment(r.URL.Query().Get("at"))
	if err != nil {
		h.handleError(w, err)
		return
	}
	offset, err := parseOffset(r.URL.Query().Get("offset"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	leaves, err := h.reminderService.Leaves(r.Context(), at, offset)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, sprintLeavesToHTTP(leaves))
}
