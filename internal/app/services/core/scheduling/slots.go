package scheduling

import (
	"agenda-service/internal/app/models"
	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/exceptions"
	"fmt"
	"sort"
	"time"
)

// ValidSlotSize reports whether the generator accepts the slot length.
func ValidSlotSize(minutes int) bool {
	return minutes == constvars.SlotSizeShortInMinutes || minutes == constvars.SlotSizeDefaultInMinutes
}

// GenerateSlots subdivides every shift block intersecting the given UTC day
// into fixed-size candidate slots and marks each one available or not. A slot
// is unavailable when it overlaps a CONFIRMED or COMPLETED booking or when it
// starts before now (unless opts.AllowPast). Overlapping shifts are legal, so
// candidates sharing the same [start, end) window collapse into one slot. The
// result is chronological and fully determined by its inputs; zero
// intersecting shifts yield an empty, non-nil slice.
func GenerateSlots(shifts, booked []models.ScheduleEvent, date CalendarDate, slotSizeMinutes int, now time.Time, opts SlotOptions) ([]Slot, error) {
	if !date.Valid() {
		return nil, exceptions.ErrInvalidDate(fmt.Errorf("no such day %s", date))
	}
	if !ValidSlotSize(slotSizeMinutes) {
		return nil, exceptions.ErrInvalidSlotSize(fmt.Errorf("slot size %d", slotSizeMinutes))
	}

	dayStart := time.Date(date.Year, time.Month(date.Month), date.Day, 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)
	day := Interval{Start: dayStart, End: dayEnd}
	step := time.Duration(slotSizeMinutes) * time.Minute

	slots := make([]Slot, 0)
	for _, shift := range shifts {
		if !shift.IsShift() {
			continue
		}
		if !Overlaps(day, Interval{Start: shift.Start, End: shift.End}) {
			continue
		}

		cursor := shift.Start
		if cursor.Before(dayStart) {
			cursor = dayStart
		}
		limit := shift.End
		if limit.After(dayEnd) {
			limit = dayEnd
		}

		for !cursor.Add(step).After(limit) {
			candidate := Interval{Start: cursor, End: cursor.Add(step)}
			slots = append(slots, Slot{
				Start:     candidate.Start,
				End:       candidate.End,
				Available: slotAvailable(candidate, booked, now, opts),
			})
			cursor = cursor.Add(step)
		}
	}

	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].Start.Before(slots[j].Start)
	})

	deduped := slots[:0]
	for _, slot := range slots {
		if n := len(deduped); n > 0 && deduped[n-1].Start.Equal(slot.Start) && deduped[n-1].End.Equal(slot.End) {
			continue
		}
		deduped = append(deduped, slot)
	}
	return deduped, nil
}

func slotAvailable(candidate Interval, booked []models.ScheduleEvent, now time.Time, opts SlotOptions) bool {
	if !opts.AllowPast && candidate.Start.Before(now) {
		return false
	}
	for _, event := range booked {
		if !event.IsActive() {
			continue
		}
		if Overlaps(candidate, Interval{Start: event.Start, End: event.End}) {
			return false
		}
	}
	return true
}
