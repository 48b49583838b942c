package handler

import (
	"net/http"

	"github.com/gaganjakhotiya/ross/internal/domain"
)

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var req TeamRequest
	if err := decode(r, &req); err != nil {
		h.handleError(w, err)
		return
	}

	createdTeam, err := h.teamService.CreateTeam(r.Context(), httpTeamToDomain(req))
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, CreateTeamResponse{
		Team: domainTeamToHTTP(createdTeam),
	})
}

// GetTeam ищет команду по team_name или по channel_id
func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	teamName := r.URL.Query().Get("team_name")
	channelID := r.URL.Query().Get("channel_id")

	var (
		team *domain.Team
		err  error
	)
	switch {
	case teamName != "":
		team, err = h.teamService.GetTeam(r.Context(), teamName)
	case channelID != "":
		team, err = h.teamService.GetTeamByChannel(r.Context(), channelID)
	default:
		err = domain.NewBadRequestError("team_name or channel_id parameter is required")
	}
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainTeamToHTTP(team))
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.teamService.ListTeams(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	resp := make([]TeamResponse, 0, len(teams))
	for _, team := range teams {
		resp = append(resp, domainTeamToHTTP(team))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) AddTeamMember(w http.ResponseWriter, r *http.Request) {
	var req AddTeamMemberRequest
	if err := decode(r, &req); err != nil {
		h.handleError(w, err)
		return
	}

	team, err := h.teamService.AddMember(r.Context(), req.TeamName, req.Handle)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainTeamToHTTP(team))
}

func (h *Handler) SetTeamActive(w http.ResponseWriter, r *http.Request) {
	var req SetTeamActiveRequest
	if err := decode(r, &req); err != nil {
		h.handleError(w, err)
		return
	}

	team, err := h.teamService.SetTeamActive(r.Context(), req.TeamName, req.IsActive)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainTeamToHTTP(team))
}

func (h *Handler) SetLeader(w http.ResponseWriter, r *http.Request) {
	var req SetLeaderRequest
	if err := decode(r, &req); err != nil {
		h.handleError(w, err)
		return
	}
	if req.LeaderID == "" {
		h.handleError(w, domain.NewBadRequestError("leader_id is required"))
		return
	}

	team, err := h.teamService.SetLeader(r.Context(), req.TeamName, req.LeaderID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainTeamToHTTP(team))
}
