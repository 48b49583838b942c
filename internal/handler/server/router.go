package server

import (
	"net/http"

	"github.com/gaganjakhotiya/ross/internal/handler"
)

func SetupRoutes(mux *http.ServeMux, h *handler.Handler) {
	mux.HandleFunc("GET /{$}", h.Hello)

	mux.HandleFunc("POST /team/add", h.CreateTeam)
	mux.HandleFunc("GET /team/get", h.GetTeam)
	mux.HandleFunc("GET /team/list", h.ListTeams)
	mux.HandleFunc("POST /team/member", h.AddTeamMember)
	mux.HandleFunc("POST /team/setIsActive", h.SetTeamActive)
	mux.HandleFunc("POST /team/setLeader", h.SetLeader)

	mux.HandleFunc("POST /member/add", h.RegisterMember)
	mux.HandleFunc("GET /member/get", h.GetMember)

	mux.HandleFunc("POST /attendance/status", h.UpdateStatus)
	mux.HandleFunc("POST /attendance/leave", h.PlanLeave)
	mux.HandleFunc("POST /attendance/holiday", h.MarkHoliday)
	mux.HandleFunc("POST /attendance/memberActive", h.SetMemberActive)
	mux.HandleFunc("GET /attendance/day", h.GetDayStatus)

	mux.HandleFunc("GET /sprint/get", h.GetSprint)
	mux.HandleFunc("GET /sprint/progress", h.GetSprintProgress)
	mux.HandleFunc("GET /sprint/leaves", h.GetSprintLeaves)

	mux.HandleFunc("GET /reminders", h.GetReminders)
	mux.HandleFunc("POST /reminders/markAway", h.MarkAway)

	mux.HandleFunc("GET /work", h.GetWork)
	mux.HandleFunc("POST /work", h.SetWork)
	mux.HandleFunc("POST /cache/flush", h.FlushCache)

	mux.HandleFunc("GET /queue", h.GetQueue)
}
