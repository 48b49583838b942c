package domain

import (
	"strconv"
	"strings"
)

// Status - код статуса участника на день, хранится в ячейке как число
type Status int

const (
	StatusYetToPlan Status = iota
	StatusAvailable
	StatusCheckedIn
	StatusAcknowledged
	StatusPlannedLeave
	StatusUnplannedLeave
	StatusHoliday
	StatusInactive
)

var statusNames = map[Status]string{
	StatusYetToPlan:      "Yet to plan",
	StatusAvailable:      "Available",
	StatusCheckedIn:      "Checked in",
	StatusAcknowledged:   "Acknowledged",
	StatusPlannedLeave:   "Planned leave",
	StatusUnplannedLeave: "Unplanned leave",
	StatusHoliday:        "Holiday",
	StatusInactive:       "Inactive",
}

// transitions - авторская таблица допустимых переходов.
// Таблица асимметрична: вперед к "в работе" проще, чем назад.
var transitions = map[Status]map[Status]bool{
	StatusYetToPlan: {
		StatusAvailable:      true,
		StatusCheckedIn:      true,
		StatusPlannedLeave:   true,
		StatusUnplannedLeave: true,
		StatusHoliday:        true,
		StatusInactive:       true,
	},
	StatusAvailable: {
		StatusCheckedIn:      true,
		StatusPlannedLeave:   true,
		StatusUnplannedLeave: true,
		StatusHoliday:        true,
		StatusInactive:       true,
	},
	StatusCheckedIn: {
		StatusAcknowledged:   true,
		StatusUnplannedLeave: true,
		StatusInactive:       true,
	},
	StatusAcknowledged: {
		StatusInactive: true,
	},
	StatusPlannedLeave: {
		StatusAvailable:      true,
		StatusUnplannedLeave: true,
		StatusHoliday:        true,
		StatusInactive:       true,
	},
	StatusUnplannedLeave: {
		StatusAvailable: true,
		StatusInactive:  true,
	},
	StatusHoliday: {
		StatusInactive: true,
	},
	StatusInactive: {
		StatusYetToPlan: true,
		StatusAvailable: true,
	},
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Unknown(" + strconv.Itoa(int(s)) + ")"
}

// Code возвращает значение для записи в ячейку
func (s Status) Code() string {
	return strconv.Itoa(int(s))
}

func (s Status) Valid() bool {
	_, ok := statusNames[s]
	return ok
}

// ParseStatus принимает числовой код из ячейки или название статуса.
// Пустая ячейка означает YetToPlan.
func ParseStatus(value string) (Status, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return StatusYetToPlan, nil
	}
	if code, err := strconv.Atoi(value); err == nil {
		s := Status(code)
		if s.Valid() {
			return s, nil
		}
		return 0, NewBadRequestError("unknown status code " + value)
	}
	for s, name := range statusNames {
		if strings.EqualFold(name, value) {
			return s, nil
		}
	}
	return 0, NewBadRequestError("unknown status " + value)
}

// CanTransition проверяет переход по таблице
func CanTransition(from, to Status) bool {
	return transitions[from][to]
}

// ApplyTransition проверяет переход статуса.
// Возвращает changed=false без ошибки, если статус не меняется.
func ApplyTransition(from, to Status) (bool, error) {
	if from == to {
		return false, nil
	}
	if !CanTransition(from, to) {
		return false, &InvalidTransitionError{From: from, To: to}
	}
	return true, nil
}

// InitialStatus - статус нового дня в календаре команды
func InitialStatus(day CalendarDay) Status {
	if day.Holiday {
		return StatusHoliday
	}
	return StatusYetToPlan
}
