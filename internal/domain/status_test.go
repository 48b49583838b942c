package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allStatuses = []Status{
	StatusYetToPlan,
	StatusAvailable,
	StatusCheckedIn,
	StatusAcknowledged,
	StatusPlannedLeave,
	StatusUnplannedLeave,
	StatusHoliday,
	StatusInactive,
}

func TestApplyTransition(t *testing.T) {
	t.Run("переход в тот же статус - no-op", func(t *testing.T) {
		for _, s := range allStatuses {
			changed, err := ApplyTransition(s, s)
			require.NoError(t, err, s.String())
			assert.False(t, changed, s.String())
		}
	})

	t.Run("разрешенный переход", func(t *testing.T) {
		changed, err := ApplyTransition(StatusYetToPlan, StatusCheckedIn)
		require.NoError(t, err)
		assert.True(t, changed)
	})

	t.Run("Holiday -> PlannedLeave запрещен", func(t *testing.T) {
		assert.False(t, CanTransition(StatusHoliday, StatusPlannedLeave))

		_, err := ApplyTransition(StatusHoliday, StatusPlannedLeave)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidTransition))

		var transitionErr *InvalidTransitionError
		require.True(t, errors.As(err, &transitionErr))
		assert.Equal(t, StatusHoliday, transitionErr.From)
		assert.Equal(t, StatusPlannedLeave, transitionErr.To)
		assert.Contains(t, err.Error(), "Holiday")
		assert.Contains(t, err.Error(), "Planned leave")
	})

	t.Run("PlannedLeave -> CheckedIn только через Available", func(t *testing.T) {
		assert.False(t, CanTransition(StatusPlannedLeave, StatusCheckedIn))
		assert.True(t, CanTransition(StatusPlannedLeave, StatusAvailable))
		assert.True(t, CanTransition(StatusAvailable, StatusCheckedIn))
	})

	t.Run("асимметрия: вперед можно, назад нельзя", func(t *testing.T) {
		assert.True(t, CanTransition(StatusCheckedIn, StatusAcknowledged))
		assert.False(t, CanTransition(StatusAcknowledged, StatusCheckedIn))
		assert.True(t, CanTransition(StatusAvailable, StatusCheckedIn))
		assert.False(t, CanTransition(StatusCheckedIn, StatusAvailable))
	})
}

func TestParseStatus(t *testing.T) {
	t.Run("числовой код", func(t *testing.T) {
		s, err := ParseStatus("4")
		require.NoError(t, err)
		assert.Equal(t, StatusPlannedLeave, s)
	})

	t.Run("пустая ячейка", func(t *testing.T) {
		s, err := ParseStatus("  ")
		require.NoError(t, err)
		assert.Equal(t, StatusYetToPlan, s)
	})

	t.Run("название без учета регистра", func(t *testing.T) {
		s, err := ParseStatus("checked in")
		require.NoError(t, err)
		assert.Equal(t, StatusCheckedIn, s)
	})

	t.Run("ошибка: неизвестный код", func(t *testing.T) {
		_, err := ParseStatus("42")
		require.Error(t, err)
	})

	t.Run("код и название совпадают в обе стороны", func(t *testing.T) {
		for _, s := range allStatuses {
			parsed, err := ParseStatus(s.Code())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)

			parsed, err = ParseStatus(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusHoliday, InitialStatus(CalendarDay{Holiday: true}))
	assert.Equal(t, StatusHoliday, InitialStatus(CalendarDay{Holiday: true, Weekend: true}))
	assert.Equal(t, StatusYetToPlan, InitialStatus(CalendarDay{Weekend: true}))
}
