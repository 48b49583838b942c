package handler

import (
	"net/http"
	"strconv"

	"github.com/gaganjakhotiya/ross/internal/domain"
)

const defaultFailedLimit = 20

func (h *Handler) GetQueue(w http.ResponseWriter, r *http.Request) {
	resp := QueueResponse{
		Pending: h.queue.PendingCount(),
		Failed:  []FailedWriteResponse{},
	}

	if h.deadLetterRepo != nil {
		limit := defaultFailedLimit
		if value := r.URL.Query().Get("limit"); value != "" {
			n, err := strconv.Atoi(value)
			if err != nil || n <= 0 {
				h.handleError(w, domain.NewBadRequestError("limit must be a positive integer"))
				return
			}
			limit = n
		}

		failed, err := h.deadLetterRepo.List(r.Context(), limit)
		if err != nil {
			h.handleError(w, err)
			return
		}
		resp.Failed = failedWritesToHTTP(failed)
	}

	writeJSON(w, http.StatusOK, resp)
}
