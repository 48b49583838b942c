package handler

import (
	"net/http"
	"time"

	"github.com/gaganjakhotiya/ross/internal/domain"
)

// parseMoment разбирает at в RFC3339; пустое значение - текущий момент
func parseMoment(value string) (time.Time, error) {
	if value == "" {
		return timeNow(), nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, domain.NewBadRequestError("at must be in RFC3339 format")
	}
	return t, nil
}

func (h *Handler) GetReminders(w http.ResponseWriter, r *http.Request) {
	at, err := parseMoment(r.URL.Query().Get("at"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	digest, err := h.reminderService.Pending(r.Context(), at)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, digestToHTTP(digest))
}

func (h *Handler) MarkAway(w http.ResponseWriter, r *http.Request) {
	at, err := parseMoment(r.URL.Query().Get("at"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	marked, err := h.reminderService.MarkAway(r.Context(), at)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, MarkAwayResponse{Marked: marked})
}
