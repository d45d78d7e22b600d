package scheduling

import (
	"agenda-service/internal/app/models"
	"agenda-service/internal/pkg/constvars"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func utc(hour, minute int) time.Time {
	return time.Date(2024, 6, 1, hour, minute, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	t.Run("back to back windows do not conflict", func(t *testing.T) {
		a := Interval{Start: utc(10, 0), End: utc(10, 15)}
		b := Interval{Start: utc(10, 15), End: utc(10, 30)}

		assert.False(t, Overlaps(a, b))
		assert.False(t, Overlaps(b, a))
	})

	t.Run("one minute intrusion conflicts", func(t *testing.T) {
		a := Interval{Start: utc(10, 0), End: utc(10, 15)}
		b := Interval{Start: utc(10, 14), End: utc(10, 30)}

		assert.True(t, Overlaps(a, b))
		assert.True(t, Overlaps(b, a))
	})

	t.Run("containment conflicts", func(t *testing.T) {
		outer := Interval{Start: utc(9, 0), End: utc(12, 0)}
		inner := Interval{Start: utc(10, 0), End: utc(10, 30)}

		assert.True(t, Overlaps(outer, inner))
		assert.True(t, Overlaps(inner, outer))
	})

	t.Run("disjoint windows do not conflict", func(t *testing.T) {
		a := Interval{Start: utc(8, 0), End: utc(9, 0)}
		b := Interval{Start: utc(11, 0), End: utc(12, 0)}

		assert.False(t, Overlaps(a, b))
	})
}

func TestCheckConflict(t *testing.T) {
	existing := []models.ScheduleEvent{
		{ID: "evt-1", Type: constvars.EventTypeCita, StaffID: "staff-1", BranchID: "branch-1", Start: utc(9, 0), End: utc(9, 30), Status: constvars.EventStatusConfirmed},
		{ID: "evt-2", Type: constvars.EventTypeCita, StaffID: "staff-1", BranchID: "branch-1", Start: utc(10, 0), End: utc(10, 30), Status: constvars.EventStatusPending},
		{ID: "evt-3", Type: constvars.EventTypeCita, StaffID: "staff-2", BranchID: "branch-1", Start: utc(9, 0), End: utc(9, 30), Status: constvars.EventStatusConfirmed},
		{ID: "evt-4", Type: constvars.EventTypeCita, StaffID: "staff-1", BranchID: "branch-2", Start: utc(11, 0), End: utc(11, 30), Status: constvars.EventStatusCompleted},
	}

	t.Run("reports first overlapping confirmed event", func(t *testing.T) {
		conflict := CheckConflict(Interval{Start: utc(9, 15), End: utc(9, 45)}, "staff-1", "branch-1", existing)

		require.NotNil(t, conflict)
		assert.Equal(t, "evt-1", conflict.ConflictingEventID)
	})

	t.Run("pending events hold no slot", func(t *testing.T) {
		conflict := CheckConflict(Interval{Start: utc(10, 0), End: utc(10, 30)}, "staff-1", "branch-1", existing)

		assert.Nil(t, conflict)
	})

	t.Run("other staff members do not conflict", func(t *testing.T) {
		conflict := CheckConflict(Interval{Start: utc(9, 0), End: utc(9, 30)}, "staff-3", "branch-1", existing)

		assert.Nil(t, conflict)
	})

	t.Run("branch filter excludes other branches", func(t *testing.T) {
		conflict := CheckConflict(Interval{Start: utc(11, 0), End: utc(11, 30)}, "staff-1", "branch-1", existing)

		assert.Nil(t, conflict)
	})

	t.Run("empty branch matches across branches", func(t *testing.T) {
		conflict := CheckConflict(Interval{Start: utc(11, 0), End: utc(11, 30)}, "staff-1", "", existing)

		require.NotNil(t, conflict)
		assert.Equal(t, "evt-4", conflict.ConflictingEventID)
	})

	t.Run("shift blocks never conflict with bookings", func(t *testing.T) {
		withShift := append([]models.ScheduleEvent{
			{ID: "turno-1", Type: constvars.EventTypeTurno, StaffID: "staff-1", BranchID: "branch-1", Start: utc(8, 0), End: utc(18, 0), Status: constvars.EventStatusConfirmed},
		}, existing...)
		conflict := CheckConflict(Interval{Start: utc(12, 0), End: utc(12, 30)}, "staff-1", "branch-1", withShift)

		assert.Nil(t, conflict)
	})

	t.Run("back to back booking is allowed", func(t *testing.T) {
		conflict := CheckConflict(Interval{Start: utc(9, 30), End: utc(10, 0)}, "staff-1", "branch-1", existing)

		assert.Nil(t, conflict)
	})
}

func TestCoveredByShift(t *testing.T) {
	shifts := []models.ScheduleEvent{
		{ID: "turno-1", Type: constvars.EventTypeTurno, StaffID: "staff-1", Start: utc(9, 0), End: utc(12, 0), Status: constvars.EventStatusConfirmed},
		{ID: "evt-9", Type: constvars.EventTypeCita, StaffID: "staff-1", Start: utc(13, 0), End: utc(18, 0), Status: constvars.EventStatusConfirmed},
	}

	t.Run("window inside shift", func(t *testing.T) {
		assert.True(t, CoveredByShift(Interval{Start: utc(9, 0), End: utc(9, 30)}, shifts))
	})

	t.Run("window straddling shift edge", func(t *testing.T) {
		assert.False(t, CoveredByShift(Interval{Start: utc(11, 45), End: utc(12, 15)}, shifts))
	})

	t.Run("appointments are not shifts", func(t *testing.T) {
		assert.False(t, CoveredByShift(Interval{Start: utc(14, 0), End: utc(14, 30)}, shifts))
	})
}
