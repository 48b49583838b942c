package handler

import (
	"time"

	"github.com/gaganjakhotiya/ross/internal/calendar"
	"github.com/gaganjakhotiya/ross/internal/domain"
)

func domainTeamToHTTP(team *domain.Team) TeamResponse {
	members := make([]TeamMemberResponse, 0, len(team.Members))
	for _, member := range team.Members {
		members = append(members, TeamMemberResponse{
			Handle:  member.Handle,
			Ordinal: member.Ordinal,
		})
	}

	return TeamResponse{
		TeamName:    team.Name,
		ChannelID:   team.ChannelID,
		OwnerID:     team.OwnerID,
		LeaderID:    team.LeaderID,
		MemberCount: team.MemberCount,
		IsActive:    team.IsActive,
		Members:     members,
	}
}

func httpTeamToDomain(req TeamRequest) *domain.Team {
	return &domain.Team{
		Name:      req.TeamName,
		ChannelID: req.ChannelID,
		OwnerID:   req.OwnerID,
		LeaderID:  req.LeaderID,
	}
}

func domainMemberToHTTP(member *domain.Member) MemberResponse {
	return MemberResponse{
		Email:  member.Email,
		Handle: member.Handle,
	}
}

func statusToHTTP(status domain.Status) StatusResponse {
	return StatusResponse{
		Code: int(status),
		Name: status.String(),
	}
}

func dayStatusesToHTTP(team string, date time.Time, statuses []domain.DayStatus) DayStatusResponse {
	members := make([]MemberStatusResponse, 0, len(statuses))
	for _, s := range statuses {
		members = append(members, MemberStatusResponse{
			Handle: s.Handle,
			Status: statusToHTTP(s.Status),
		})
	}
	return DayStatusResponse{
		TeamName: team,
		Date:     calendar.FormatDate(date),
		Members:  members,
	}
}

func datesToHTTP(dates []time.Time) []string {
	result := make([]string, 0, len(dates))
	for _, d := range dates {
		result = append(result, calendar.FormatDate(d))
	}
	return result
}

func domainSprintToHTTP(sprint domain.Sprint) SprintResponse {
	return SprintResponse{
		SprintID:  sprint.ID,
		StartDate: calendar.FormatDate(sprint.Start),
		EndDate:   calendar.FormatDate(sprint.End),
	}
}

func sprintDetailsToHTTP(details *domain.SprintDetails) SprintProgressResponse {
	return SprintProgressResponse{
		Sprint:        domainSprintToHTTP(details.Sprint),
		Date:          calendar.FormatDate(details.Date),
		CompletedDays: details.Progress.CompletedDays,
		RemainingDays: details.Progress.RemainingDays,
		Holidays:      datesToHTTP(details.Holidays),
		Weekends:      datesToHTTP(details.Weekends),
	}
}

func digestToHTTP(digest *domain.ReminderDigest) ReminderDigestResponse {
	reminders := make([]ReminderResponse, 0, len(digest.Reminders))
	for _, r := range digest.Reminders {
		reminders = append(reminders, ReminderResponse{
			Kind:      string(r.Kind),
			TeamName:  r.Team,
			ChannelID: r.Channel,
			Handle:    r.Handle,
			Status:    statusToHTTP(r.Status),
		})
	}

	resp := ReminderDigestResponse{
		At:          digest.At.UTC().Format(time.RFC3339),
		Day:         digest.Day,
		SprintStart: digest.SprintStart,
		SprintEnd:   digest.SprintEnd,
		Reminders:   reminders,
	}
	// в выходные и праздники спринт не определяется
	if digest.Sprint.ID != 0 {
		sprint := domainSprintToHTTP(digest.Sprint)
		resp.Sprint = &sprint
	}
	resp.Leaves = optionalLeavesToHTTP(digest.Leaves)
	resp.PreviousLeaves = optionalLeavesToHTTP(digest.PreviousLeaves)
	resp.NextLeaves = optionalLeavesToHTTP(digest.NextLeaves)
	return resp
}

func optionalLeavesToHTTP(leaves *domain.SprintLeaves) *SprintLeavesResponse {
	if leaves == nil {
		return nil
	}
	resp := sprintLeavesToHTTP(leaves)
	return &resp
}

func sprintLeavesToHTTP(leaves *domain.SprintLeaves) SprintLeavesResponse {
	teams := make([]TeamLeavesResponse, 0, len(leaves.Teams))
	for _, t := range leaves.Teams {
		members := make([]MemberLeavesResponse, 0, len(t.Members))
		for _, m := range t.Members {
			members = append(members, MemberLeavesResponse{
				Handle:    m.Handle,
				Planned:   datesToHTTP(m.Planned),
				Unplanned: datesToHTTP(m.Unplanned),
			})
		}
		teams = append(teams, TeamLeavesResponse{
			TeamName:  t.Team,
			ChannelID: t.Channel,
			Members:   members,
		})
	}
	return SprintLeavesResponse{
		Sprint: domainSprintToHTTP(leaves.Sprint),
		Teams:  teams,
	}
}

func failedWritesToHTTP(failed []*domain.FailedWrite) []FailedWriteResponse {
	result := make([]FailedWriteResponse, 0, len(failed))
	for _, f := range failed {
		result = append(result, FailedWriteResponse{
			ID:       f.ID,
			Label:    f.Label,
			Error:    f.Error,
			FailedAt: f.FailedAt.UTC().Format(time.RFC3339),
		})
	}
	return result
}
