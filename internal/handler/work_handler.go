package handler

import (
	"net/http"
	"strings"

	"github.com/gaganjakhotiya/ross/internal/domain"
)

func (h *Handler) GetWork(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, WorkResponse{Enabled: h.schedulerService.Enabled()})
}

// SetWork включает или выключает ежечасный цикл; once собирает напоминания сразу
func (h *Handler) SetWork(w http.ResponseWriter, r *http.Request) {
	var req WorkRequest
	if err := decode(r, &req); err != nil {
		h.handleError(w, err)
		return
	}

	switch strings.ToLower(req.Mode) {
	case "on":
		h.schedulerService.SetEnabled(true)
	case "off":
		h.schedulerService.SetEnabled(false)
	case "once":
		at, err := parseMoment(req.At)
		if err != nil {
			h.handleError(w, err)
			return
		}
		digest, err := h.schedulerService.RunOnce(r.Context(), at)
		if err != nil {
			h.handleError(w, err)
			return
		}
		resp := digestToHTTP(digest)
		writeJSON(w, http.StatusOK, WorkResponse{Enabled: h.schedulerService.Enabled(), Digest: &resp})
		return
	default:
		h.handleError(w, domain.NewBadRequestError("mode must be one of once, on, off"))
		return
	}

	writeJSON(w, http.StatusOK, WorkResponse{Enabled: h.schedulerService.Enabled()})
}

// FlushCache сбрасывает все кэшированные чтения документа
func (h *Handler) FlushCache(w http.ResponseWriter, r *http.Request) {
	h.schedulerService.FlushCache()
	w.WriteHeader(http.StatusNoContent)
}
