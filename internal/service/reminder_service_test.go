package service

import (
	"context"
	"testing"
	"time"

	"github.com/gaganjakhotiya/ross/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withAttendance готовит команду: alice не отметилась, bob в отпуске, carol отметилась
func withAttendance(t *testing.T, f *fixture) {
	t.Helper()
	ctx := context.Background()
	today := date(time.January, 3)

	f.withTeam(t, "backend", "C1", "alice", "bob", "carol")

	_, err := f.attendance.UpdateStatus(ctx, "backend", "bob", today, domain.StatusPlannedLeave)
	require.NoError(t, err)
	_, err = f.attendance.UpdateStatus(ctx, "backend", "carol", today, domain.StatusCheckedIn)
	require.NoError(t, err)
}

func reminder(kind domain.ReminderKind, handle string, status domain.Status) domain.Reminder {
	return domain.Reminder{Kind: kind, Team: "backend", Channel: "C1", Handle: handle, Status: status}
}

func TestReminderService_Pending(t *testing.T) {
	ctx := context.Background()

	t.Run("час открытия", func(t *testing.T) {
		f := setupServices(t)
		withAttendance(t, f)

		digest, err := f.reminders.Pending(ctx, local(time.January, 3, 9, 15))
		require.NoError(t, err)
		assert.Equal(t, 1, digest.Sprint.ID)
		assert.Equal(t, 3, digest.Day)
		assert.False(t, digest.SprintStart)
		assert.False(t, digest.SprintEnd)
		assert.Equal(t, []domain.Reminder{
			reminder(domain.ReminderCheckIn, "alice", domain.StatusYetToPlan),
			reminder(domain.ReminderOnLeave, "bob", domain.StatusPlannedLeave),
		}, digest.Reminders)
	})

	t.Run("середина дня", func(t *testing.T) {
		f := setupServices(t)
		withAttendance(t, f)

		digest, err := f.reminders.Pending(ctx, local(time.January, 3, 11, 0))
		require.NoError(t, err)
		assert.Equal(t, []domain.Reminder{
			reminder(domain.ReminderCheckIn, "alice", domain.StatusYetToPlan),
			reminder(domain.ReminderAcknowledge, "carol", domain.StatusCheckedIn),
		}, digest.Reminders)
	})

	t.Run("час закрытия", func(t *testing.T) {
		f := setupServices(t)
		withAttendance(t, f)

		digest, err := f.reminders.Pending(ctx, local(time.January, 3, 12, 30))
		require.NoError(t, err)
		assert.Equal(t, []domain.Reminder{
			reminder(domain.ReminderMarkedAway, "alice", domain.StatusYetToPlan),
			reminder(domain.ReminderAcknowledge, "carol", domain.StatusCheckedIn),
		}, digest.Reminders)
	})

	t.Run("вне рабочих часов пусто", func(t *testing.T) {
		f := setupServices(t)
		withAttendance(t, f)

		digest, err := f.reminders.Pending(ctx, local(time.January, 3, 14, 0))
		require.NoError(t, err)
		assert.Equal(t, 3, digest.Day)
		assert.Empty(t, digest.Reminders)
	})

	t.Run("выходной и праздник", func(t *testing.T) {
		f := setupServices(t)
		withAttendance(t, f)
		require.NoError(t, f.attendance.MarkHoliday(ctx, date(time.January, 4)))

		weekend, err := f.reminders.Pending(ctx, local(time.January, 6, 9, 0))
		require.NoError(t, err)
		assert.Empty(t, weekend.Reminders)
		assert.Equal(t, 0, weekend.Day)

		holiday, err := f.reminders.Pending(ctx, local(time.January, 4, 9, 0))
		require.NoError(t, err)
		assert.Empty(t, holiday.Reminders)
		assert.Equal(t, 0, holiday.Day)
	})

	t.Run("первый день спринта", func(t *testing.T) {
		f := setupServices(t)
		f.withTeam(t, "backend", "C1", "alice")

		digest, err := f.reminders.Pending(ctx, local(time.January, 1, 9, 0))
		require.NoError(t, err)
		assert.True(t, digest.SprintStart)
		assert.Equal(t, 1, digest.Day)
		require.NotNil(t, digest.Leaves)
		assert.Equal(t, 1, digest.Leaves.Sprint.ID)
		assert.Nil(t, digest.PreviousLeaves, "у первого спринта нет предыдущего")
	})

	t.Run("первый день спринта: сводка отпусков", func(t *testing.T) {
		f := setupServices(t)
		withLeaves(t, f)

		digest, err := f.reminders.Pending(ctx, local(time.January, 29, 9, 0))
		require.NoError(t, err)
		assert.True(t, digest.SprintStart)
		require.NotNil(t, digest.Leaves)
		require.NotNil(t, digest.PreviousLeaves)
		assert.Equal(t, 3, digest.Leaves.Sprint.ID)
		assert.Equal(t, 2, digest.PreviousLeaves.Sprint.ID)
		assert.Nil(t, digest.NextLeaves)

		// вне часа открытия сводки нет
		digest, err = f.reminders.Pending(ctx, local(time.January, 29, 11, 0))
		require.NoError(t, err)
		assert.Nil(t, digest.Leaves)
		assert.Nil(t, digest.PreviousLeaves)
	})

	t.Run("неактивные команды пропускаются", func(t *testing.T) {
		f := setupServices(t)
		withAttendance(t, f)
		f.withTeam(t, "frontend", "C2", "dave")
		_, err := f.teams.SetTeamActive(ctx, "frontend", false)
		require.NoError(t, err)

		digest, err := f.reminders.Pending(ctx, local(time.January, 3, 9, 15))
		require.NoError(t, err)
		for _, r := range digest.Reminders {
			assert.NotEqual(t, "frontend", r.Team)
		}
		assert.Len(t, digest.Reminders, 2)
	})
}

// withLeaves готовит отпуска: у alice плановый в спринте 3, у bob внеплановый день в спринте 2
func withLeaves(t *testing.T, f *fixture) {
	t.Helper()
	ctx := context.Background()

	f.withTeam(t, "backend", "C1", "alice", "bob")
	setNow(t, local(time.January, 16, 10, 0))

	_, err := f.attendance.PlanLeave(ctx, "backend", "alice", date(time.January, 30), date(time.February, 1))
	require.NoError(t, err)
	_, err = f.attendance.UpdateStatus(ctx, "backend", "bob", date(time.January, 17), domain.StatusUnplannedLeave)
	require.NoError(t, err)
}

func TestReminderService_Leaves(t *testing.T) {
	ctx := context.Background()
	f := setupServices(t)
	withLeaves(t, f)
	f.withTeam(t, "frontend", "C2", "carol")
	_, err := f.teams.SetTeamActive(ctx, "frontend", false)
	require.NoError(t, err)

	at := local(time.January, 29, 9, 0)

	t.Run("текущий спринт", func(t *testing.T) {
		leaves, err := f.reminders.Leaves(ctx, at, 0)
		require.NoError(t, err)
		assert.Equal(t, 3, leaves.Sprint.ID)
		assert.Equal(t, []domain.TeamLeaves{{
			Team:    "backend",
			Channel: "C1",
			Members: []domain.MemberLeaves{
				{
					Handle:    "alice",
					Planned:   []time.Time{date(time.January, 30), date(time.January, 31), date(time.February, 1)},
					Unplanned: []time.Time{},
				},
				{Handle: "bob", Planned: []time.Time{}, Unplanned: []time.Time{}},
			},
		}}, leaves.Teams)
	})

	t.Run("предыдущий спринт", func(t *testing.T) {
		leaves, err := f.reminders.Leaves(ctx, at, -1)
		require.NoError(t, err)
		assert.Equal(t, 2, leaves.Sprint.ID)
		require.Len(t, leaves.Teams, 1)
		assert.Equal(t, domain.MemberLeaves{
			Handle:    "bob",
			Planned:   []time.Time{},
			Unplanned: []time.Time{date(time.January, 17)},
		}, leaves.Teams[0].Members[1])
	})

	t.Run("следующий спринт", func(t *testing.T) {
		leaves, err := f.reminders.Leaves(ctx, local(time.January, 16, 10, 0), 1)
		require.NoError(t, err)
		assert.Equal(t, 3, leaves.Sprint.ID)
		assert.Len(t, leaves.Teams[0].Members[0].Planned, 3)
	})

	t.Run("ошибка: спринта нет в таблице", func(t *testing.T) {
		_, err := f.reminders.Leaves(ctx, local(time.January, 3, 9, 0), -1)
		assertCode(t, err, domain.CodeNotFound)
	})
}

func TestReminderService_MarkAway(t *testing.T) {
	ctx := context.Background()

	t.Run("не отметившиеся получают UnplannedLeave", func(t *testing.T) {
		f := setupServices(t)
		withAttendance(t, f)

		marked, err := f.reminders.MarkAway(ctx, local(time.January, 3, 13, 0))
		require.NoError(t, err)
		assert.Equal(t, 1, marked)

		today := date(time.January, 3)
		assert.Equal(t, domain.StatusUnplannedLeave, statusOf(t, f, "backend", "alice", today))
		assert.Equal(t, domain.StatusPlannedLeave, statusOf(t, f, "backend", "bob", today))
		assert.Equal(t, domain.StatusCheckedIn, statusOf(t, f, "backend", "carol", today))

		marked, err = f.reminders.MarkAway(ctx, local(time.January, 3, 13, 5))
		require.NoError(t, err)
		assert.Equal(t, 0, marked, "повторный запуск ничего не меняет")
	})

	t.Run("выходные и праздники не трогаются", func(t *testing.T) {
		f := setupServices(t)
		withAttendance(t, f)
		require.NoError(t, f.attendance.MarkHoliday(ctx, date(time.January, 4)))

		marked, err := f.reminders.MarkAway(ctx, local(time.January, 6, 13, 0))
		require.NoError(t, err)
		assert.Equal(t, 0, marked)

		marked, err = f.reminders.MarkAway(ctx, local(time.January, 4, 13, 0))
		require.NoError(t, err)
		assert.Equal(t, 0, marked)
	})
}
