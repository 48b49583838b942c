package handler

import (
	"net/http"
	"time"

	"github.com/gaganjakhotiya/ross/internal/calendar"
	"github.com/gaganjakhotiya/ross/internal/domain"
)

// parseDate разбирает дату YYYY-MM-DD; пустое значение - сегодня по региональному времени
func parseDate(value, field string) (time.Time, error) {
	if value == "" {
		return calendar.Day(timeNow()), nil
	}
	d, err := calendar.ParseDate(value)
	if err != nil {
		return time.Time{}, domain.NewBadRequestError(field + " must be in YYYY-MM-DD format")
	}
	return d, nil
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateStatusRequest
	if err := decode(r, &req); err != nil {
		h.handleError(w, err)
		return
	}
	date, err := parseDate(req.Date, "date")
	if err != nil {
		h.handleError(w, err)
		return
	}

	status := domain.Status(req.Status)
	changed, err := h.attendanceService.UpdateStatus(r.Context(), req.TeamName, req.Handle, date, status)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, UpdateStatusResponse{
		Changed: changed,
		Status:  statusToHTTP(status),
	})
}

func (h *Handler) PlanLeave(w http.ResponseWriter, r *http.Request) {
	var req PlanLeaveRequest
	if err := decode(r, &req); err != nil {
		h.handleError(w, err)
		return
	}
	if req.StartDate == "" || req.EndDate == "" {
		h.handleError(w, domain.NewBadRequestError("start_date and end_date are required"))
		return
	}
	start, err := parseDate(req.StartDate, "start_date")
	if err != nil {
		h.handleError(w, err)
		return
	}
	end, err := parseDate(req.EndDate, "end_date")
	if err != nil {
		h.handleError(w, err)
		return
	}

	planned, err := h.attendanceService.PlanLeave(r.Context(), req.TeamName, req.Handle, start, end)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, PlanLeaveResponse{Dates: datesToHTTP(planned)})
}

func (h *Handler) MarkHoliday(w http.ResponseWriter, r *http.Request) {
	var req MarkHolidayRequest
	if err := decode(r, &req); err != nil {
		h.handleError(w, err)
		return
	}
	if req.Date == "" {
		h.handleError(w, domain.NewBadRequestError("date is required"))
		return
	}
	date, err := parseDate(req.Date, "date")
	if err != nil {
		h.handleError(w, err)
		return
	}

	if err := h.attendanceService.MarkHoliday(r.Context(), date); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) SetMemberActive(w http.ResponseWriter, r *http.Request) {
	var req SetMemberActiveRequest
	if err := decode(r, &req); err != nil {
		h.handleError(w, err)
		return
	}
	if req.From == "" {
		h.handleError(w, domain.NewBadRequestError("from is required"))
		return
	}
	from, err := parseDate(req.From, "from")
	if err != nil {
		h.handleError(w, err)
		return
	}
	var to time.Time
	if req.To != "" {
		if to, err = parseDate(req.To, "to"); err != nil {
			h.handleError(w, err)
			return
		}
	}

	updated, err := h.attendanceService.SetMemberActive(r.Context(), req.TeamName, req.Handle, req.IsActive, from, to)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, UpdatedResponse{Updated: updated})
}

func (h *Handler) GetDayStatus(w http.ResponseWriter, r *http.Request) {
	teamName := r.URL.Query().Get("team_name")
	if teamName == "" {
		h.handleError(w, domain.NewBadRequestError("team_name parameter is required"))
		return
	}
	date, err := parseDate(r.URL.Query().Get("date"), "date")
	if err != nil {
		h.handleError(w, err)
		return
	}

	statuses, err := h.attendanceService.DayStatus(r.Context(), teamName, date)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dayStatusesToHTTP(teamName, date, statuses))
}
