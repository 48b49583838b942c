package domain

import "time"

type Sprint struct {
	ID    int
	Start time.Time
	End   time.Time
}

// SprintProgress - количество рабочих дней спринта до и после даты
type SprintProgress struct {
	CompletedDays int
	RemainingDays int
}

// CalendarDay - строка шаблона календаря
type CalendarDay struct {
	Date    time.Time
	Weekend bool
	Holiday bool
}

// DayStatus - статус участника команды на конкретную дату
type DayStatus struct {
	Handle string
	Status Status
}

// FailedWrite - запись о мутации, завершившейся ошибкой
type FailedWrite struct {
	ID       string
	Label    string
	Error    string
	FailedAt time.Time
}

// SprintDetails - спринт с прогрессом на дату и нерабочими днями
type SprintDetails struct {
	Sprint   Sprint
	Date     time.Time
	Progress SprintProgress
	Holidays []time.Time
	Weekends []time.Time
}

type ReminderKind string

const (
	ReminderCheckIn     ReminderKind = "check_in"
	ReminderAcknowledge ReminderKind = "acknowledge"
	ReminderOnLeave     ReminderKind = "on_leave"
	ReminderMarkedAway  ReminderKind = "marked_away"
)

// Reminder - напоминание участнику команды
type Reminder struct {
	Kind    ReminderKind
	Team    string
	Channel string
	Handle  string
	Status  Status
}

// ReminderDigest - напоминания на момент времени вместе с контекстом спринта
type ReminderDigest struct {
	At          time.Time
	Sprint      Sprint
	Day         int
	SprintStart bool
	SprintEnd   bool
	Reminders   []Reminder

	// В час открытия первого дня спринта - отпуска текущего и прошлого спринта,
	// последнего дня - уже запланированные на следующий
	Leaves         *SprintLeaves
	PreviousLeaves *SprintLeaves
	NextLeaves     *SprintLeaves
}

// MemberLeaves - дни отпуска участника в пределах спринта
type MemberLeaves struct {
	Handle    string
	Planned   []time.Time
	Unplanned []time.Time
}

type TeamLeaves struct {
	Team    string
	Channel string
	Members []MemberLeaves
}

// SprintLeaves - сводка отпусков активных команд за спринт
type SprintLeaves struct {
	Sprint Sprint
	Teams  []TeamLeaves
}
