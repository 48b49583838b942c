package handler

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type TeamRequest struct {
	TeamName  string `json:"team_name"`
	ChannelID string `json:"channel_id"`
	OwnerID   string `json:"owner_id"`
	LeaderID  string `json:"leader_id,omitempty"`
}

type TeamMemberResponse struct {
	Handle  string `json:"handle"`
	Ordinal int    `json:"ordinal"`
}

type TeamResponse struct {
	TeamName    string               `json:"team_name"`
	ChannelID   string               `json:"channel_id"`
	OwnerID     string               `json:"owner_id"`
	LeaderID    string               `json:"leader_id"`
	MemberCount int                  `json:"member_count"`
	IsActive    bool                 `json:"is_active"`
	Members     []TeamMemberResponse `json:"members"`
}

type CreateTeamResponse struct {
	Team TeamResponse `json:"team"`
}

type AddTeamMemberRequest struct {
	TeamName string `json:"team_name"`
	Handle   string `json:"handle"`
}

type SetTeamActiveRequest struct {
	TeamName string `json:"team_name"`
	IsActive bool   `json:"is_active"`
}

type SetLeaderRequest struct {
	TeamName string `json:"team_name"`
	LeaderID string `json:"leader_id"`
}

type MemberRequest struct {
	Email  string `json:"email"`
	Handle string `json:"handle"`
}

type MemberResponse struct {
	Email  string `json:"email"`
	Handle string `json:"handle"`
}

type UpdateStatusRequest struct {
	TeamName string `json:"team_name"`
	Handle   string `json:"handle"`
	Date     string `json:"date"`
	Status   int    `json:"status"`
}

type UpdateStatusResponse struct {
	Changed bool           `json:"changed"`
	Status  StatusResponse `json:"status"`
}

type StatusResponse struct {
	Code int    `json:"code"`
	Name string `json:"name"`
}

type PlanLeaveRequest struct {
	TeamName  string `json:"team_name"`
	Handle    string `json:"handle"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type PlanLeaveResponse struct {
	Dates []string `json:"dates"`
}

type MarkHolidayRequest struct {
	Date string `json:"date"`
}

type SetMemberActiveRequest struct {
	TeamName string `json:"team_name"`
	Handle   string `json:"handle"`
	IsActive bool   `json:"is_active"`
	From     string `json:"from"`
	To       string `json:"to,omitempty"`
}

type UpdatedResponse struct {
	Updated int `json:"updated"`
}

type MemberStatusResponse struct {
	Handle string         `json:"handle"`
	Status StatusResponse `json:"status"`
}

type DayStatusResponse struct {
	TeamName string                 `json:"team_name"`
	Date     string                 `json:"date"`
	Members  []MemberStatusResponse `json:"members"`
}

type SprintResponse struct {
	SprintID  int    `json:"sprint_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type SprintProgressResponse struct {
	Sprint        SprintResponse `json:"sprint"`
	Date          string         `json:"date"`
	CompletedDays int            `json:"completed_days"`
	RemainingDays int            `json:"remaining_days"`
	Holidays      []string       `json:"holidays"`
	Weekends      []string       `json:"weekends"`
}

type ReminderResponse struct {
	Kind      string         `json:"kind"`
	TeamName  string         `json:"team_name"`
	ChannelID string         `json:"channel_id"`
	Handle    string         `json:"handle"`
	Status    StatusResponse `json:"status"`
}

type ReminderDigestResponse struct {
	At          string             `json:"at"`
	Sprint      *SprintResponse    `json:"sprint,omitempty"`
	Day         int                `json:"day"`
	SprintStart bool               `json:"sprint_start"`
	SprintEnd   bool               `json:"sprint_end"`
	Reminders   []ReminderResponse `json:"reminders"`

	Leaves         *SprintLeavesResponse `json:"leaves,omitempty"`
	PreviousLeaves *SprintLeavesResponse `json:"previous_leaves,omitempty"`
	NextLeaves     *SprintLeavesResponse `json:"next_leaves,omitempty"`
}

type MemberLeavesResponse struct {
	Handle    string   `json:"handle"`
	Planned   []string `json:"planned"`
	Unplanned []string `json:"unplanned"`
}

type TeamLeavesResponse struct {
	TeamName  string                 `json:"team_name"`
	ChannelID string                 `json:"channel_id"`
	Members   []MemberLeavesResponse `json:"members"`
}

type SprintLeavesResponse struct {
	Sprint SprintResponse       `json:"sprint"`
	Teams  []TeamLeavesResponse `json:"teams"`
}

// WorkRequest - mode: on, off или once; at используется только для once
type WorkRequest struct {
	Mode string `json:"mode"`
	At   string `json:"at,omitempty"`
}

type WorkResponse struct {
	Enabled bool                    `json:"enabled"`
	Digest  *ReminderDigestResponse `json:"digest,omitempty"`
}

type MarkAwayResponse struct {
	Marked int `json:"marked"`
}

type FailedWriteResponse struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Error    string `json:"error"`
	FailedAt string `json:"failed_at"`
}

type QueueResponse struct {
	Pending int                   `json:"pending"`
	Failed  []FailedWriteResponse `json:"failed"`
}
