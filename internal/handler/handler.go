package handler

import (
	"net/http"
	"time"

	"github.com/gaganjakhotiya/ross/internal/queue"
	"github.com/gaganjakhotiya/ross/internal/repository"
	"github.com/gaganjakhotiya/ross/internal/service"
)

var timeNow = time.Now

type Handler struct {
	teamService       service.TeamService
	memberService     service.MemberService
	attendanceService service.AttendanceService
	sprintService     service.SprintService
	reminderService   service.ReminderService
	schedulerService  service.SchedulerService
	queue             *queue.Queue
	deadLetterRepo    repository.DeadLetterRepository
}

// NewHandler собирает HTTP-обработчики. deadLetterRepo может быть nil,
// тогда /queue отдает только длину очереди.
func NewHandler(
	teamService service.TeamService,
	memberService service.MemberService,
	attendanceService service.AttendanceService,
	sprintService service.SprintService,
	reminderService service.ReminderService,
	schedulerService service.SchedulerService,
	q *queue.Queue,
	deadLetterRepo repository.DeadLetterRepository,
) *Handler {
	return &Handler{
		teamService:       teamService,
		memberService:     memberService,
		attendanceService: attendanceService,
		sprintService:     sprintService,
		reminderService:   reminderService,
		schedulerService:  schedulerService,
		queue:             q,
		deadLetterRepo:    deadLetterRepo,
	}
}

func (h *Handler) Hello(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Hello from Ross!"))
}
