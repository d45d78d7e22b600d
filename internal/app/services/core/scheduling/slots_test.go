package scheduling

import (
	"agenda-service/internal/app/models"
	"agenda-service/internal/pkg/constvars"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	slotTestDate = CalendarDate{Year: 2024, Month: 6, Day: 1}
	farPast      = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
)

func shift(start, end time.Time) models.ScheduleEvent {
	return models.ScheduleEvent{
		ID:      "turno-1",
		Type:    constvars.EventTypeTurno,
		StaffID: "staff-1",
		Start:   start,
		End:     end,
		Status:  constvars.EventStatusConfirmed,
	}
}

func TestGenerateSlots(t *testing.T) {
	t.Run("morning shift with no bookings", func(t *testing.T) {
		shifts := []models.ScheduleEvent{shift(utc(9, 0), utc(10, 0))}

		slots, err := GenerateSlots(shifts, nil, slotTestDate, 30, farPast, SlotOptions{})

		require.NoError(t, err)
		require.Len(t, slots, 2)
		assert.Equal(t, Slot{Start: utc(9, 0), End: utc(9, 30), Available: true}, slots[0])
		assert.Equal(t, Slot{Start: utc(9, 30), End: utc(10, 0), Available: true}, slots[1])
	})

	t.Run("confirmed booking blocks its slot only", func(t *testing.T) {
		shifts := []models.ScheduleEvent{shift(utc(9, 0), utc(10, 0))}
		booked := []models.ScheduleEvent{
			{ID: "cita-1", Type: constvars.EventTypeCita, StaffID: "staff-1", Start: utc(9, 30), End: utc(10, 0), Status: constvars.EventStatusConfirmed},
		}

		slots, err := GenerateSlots(shifts, booked, slotTestDate, 30, farPast, SlotOptions{})

		require.NoError(t, err)
		require.Len(t, slots, 2)
		assert.True(t, slots[0].Available)
		assert.False(t, slots[1].Available)
	})

	t.Run("cancelled booking does not block", func(t *testing.T) {
		shifts := []models.ScheduleEvent{shift(utc(9, 0), utc(10, 0))}
		booked := []models.ScheduleEvent{
			{ID: "cita-1", Type: constvars.EventTypeCita, StaffID: "staff-1", Start: utc(9, 30), End: utc(10, 0), Status: constvars.EventStatusCancelled},
		}

		slots, err := GenerateSlots(shifts, booked, slotTestDate, 30, farPast, SlotOptions{})

		require.NoError(t, err)
		assert.True(t, slots[1].Available)
	})

	t.Run("past slots are unavailable unless overridden", func(t *testing.T) {
		shifts := []models.ScheduleEvent{shift(utc(9, 0), utc(10, 0))}
		now := utc(9, 20)

		slots, err := GenerateSlots(shifts, nil, slotTestDate, 30, now, SlotOptions{})
		require.NoError(t, err)
		assert.False(t, slots[0].Available)
		assert.True(t, slots[1].Available)

		slots, err = GenerateSlots(shifts, nil, slotTestDate, 30, now, SlotOptions{AllowPast: true})
		require.NoError(t, err)
		assert.True(t, slots[0].Available)
	})

	t.Run("fifteen minute packing", func(t *testing.T) {
		shifts := []models.ScheduleEvent{shift(utc(9, 0), utc(10, 0))}

		slots, err := GenerateSlots(shifts, nil, slotTestDate, 15, farPast, SlotOptions{})

		require.NoError(t, err)
		require.Len(t, slots, 4)
		assert.Equal(t, utc(9, 45), slots[3].Start)
	})

	t.Run("shift remainder shorter than a slot is dropped", func(t *testing.T) {
		shifts := []models.ScheduleEvent{shift(utc(9, 0), utc(9, 50))}

		slots, err := GenerateSlots(shifts, nil, slotTestDate, 30, farPast, SlotOptions{})

		require.NoError(t, err)
		require.Len(t, slots, 1)
		assert.Equal(t, utc(9, 30), slots[0].End)
	})

	t.Run("shift spanning midnight is clamped to the day", func(t *testing.T) {
		shifts := []models.ScheduleEvent{shift(
			time.Date(2024, 5, 31, 23, 0, 0, 0, time.UTC),
			time.Date(2024, 6, 1, 1, 0, 0, 0, time.UTC),
		)}

		slots, err := GenerateSlots(shifts, nil, slotTestDate, 30, farPast, SlotOptions{})

		require.NoError(t, err)
		require.Len(t, slots, 2)
		assert.Equal(t, utc(0, 0), slots[0].Start)
		assert.Equal(t, utc(1, 0), slots[1].End)
	})

	t.Run("overlapping shifts emit each window once", func(t *testing.T) {
		shifts := []models.ScheduleEvent{
			shift(utc(9, 0), utc(10, 0)),
			shift(utc(9, 30), utc(10, 30)),
		}

		slots, err := GenerateSlots(shifts, nil, slotTestDate, 30, farPast, SlotOptions{})

		require.NoError(t, err)
		require.Len(t, slots, 3)
		assert.Equal(t, utc(9, 0), slots[0].Start)
		assert.Equal(t, utc(9, 30), slots[1].Start)
		assert.Equal(t, utc(10, 0), slots[2].Start)
	})

	t.Run("identical shifts collapse to one set of slots", func(t *testing.T) {
		shifts := []models.ScheduleEvent{
			shift(utc(9, 0), utc(10, 0)),
			shift(utc(9, 0), utc(10, 0)),
		}
		booked := []models.ScheduleEvent{
			{ID: "cita-1", Type: constvars.EventTypeCita, StaffID: "staff-1", Start: utc(9, 30), End: utc(10, 0), Status: constvars.EventStatusConfirmed},
		}

		slots, err := GenerateSlots(shifts, booked, slotTestDate, 30, farPast, SlotOptions{})

		require.NoError(t, err)
		require.Len(t, slots, 2)
		assert.True(t, slots[0].Available)
		assert.False(t, slots[1].Available)
	})

	t.Run("no shifts means empty sequence not error", func(t *testing.T) {
		slots, err := GenerateSlots(nil, nil, slotTestDate, 30, farPast, SlotOptions{})

		require.NoError(t, err)
		assert.NotNil(t, slots)
		assert.Empty(t, slots)
	})

	t.Run("appointment events are not treated as shifts", func(t *testing.T) {
		events := []models.ScheduleEvent{
			{ID: "cita-1", Type: constvars.EventTypeCita, StaffID: "staff-1", Start: utc(9, 0), End: utc(10, 0), Status: constvars.EventStatusConfirmed},
		}

		slots, err := GenerateSlots(events, nil, slotTestDate, 30, farPast, SlotOptions{})

		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("invalid slot size", func(t *testing.T) {
		_, err := GenerateSlots(nil, nil, slotTestDate, 20, farPast, SlotOptions{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "slot size")
	})

	t.Run("deterministic output", func(t *testing.T) {
		shifts := []models.ScheduleEvent{
			shift(utc(14, 0), utc(16, 0)),
			shift(utc(9, 0), utc(11, 0)),
		}
		booked := []models.ScheduleEvent{
			{ID: "cita-1", Type: constvars.EventTypeCita, StaffID: "staff-1", Start: utc(10, 0), End: utc(10, 30), Status: constvars.EventStatusConfirmed},
		}

		first, err := GenerateSlots(shifts, booked, slotTestDate, 30, farPast, SlotOptions{})
		require.NoError(t, err)
		second, err := GenerateSlots(shifts, booked, slotTestDate, 30, farPast, SlotOptions{})
		require.NoError(t, err)

		assert.Equal(t, first, second)
		for i := 1; i < len(first); i++ {
			assert.False(t, first[i].Start.Before(first[i-1].Start), "slots must stay chronological")
		}
	})

	t.Run("generator and conflict checker agree", func(t *testing.T) {
		shifts := []models.ScheduleEvent{shift(utc(9, 0), utc(12, 0))}
		booked := []models.ScheduleEvent{
			{ID: "cita-1", Type: constvars.EventTypeCita, StaffID: "staff-1", BranchID: "branch-1", Start: utc(9, 30), End: utc(10, 0), Status: constvars.EventStatusConfirmed},
			{ID: "cita-2", Type: constvars.EventTypeCita, StaffID: "staff-1", BranchID: "branch-1", Start: utc(11, 0), End: utc(11, 45), Status: constvars.EventStatusConfirmed},
		}

		slots, err := GenerateSlots(shifts, booked, slotTestDate, 30, farPast, SlotOptions{})
		require.NoError(t, err)

		for _, slot := range slots {
			conflict := CheckConflict(Interval{Start: slot.Start, End: slot.End}, "staff-1", "branch-1", booked)
			if slot.Available {
				assert.Nil(t, conflict, "available slot %v must pass the conflict check", slot.Start)
			} else {
				assert.NotNil(t, conflict, "unavailable slot %v must fail the conflict check", slot.Start)
			}
		}
	})
}
