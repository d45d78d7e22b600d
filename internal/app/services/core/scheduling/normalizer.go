package scheduling

import (
	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/exceptions"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// parseClock12 parses a 12-hour wall time such as "09:30am" or "02:00pm".
// The am/pm suffix is case-insensitive. A string that does not match the
// hh:mmam/pm shape is a format error; a matching string with an impossible
// hour or minute is a date error, mirroring how the rest of the engine
// separates the two kinds.
func parseClock12(s string) (clock, error) {
	raw := strings.ToLower(strings.TrimSpace(s))
	if len(raw) < 6 {
		return clock{}, fmt.Errorf("time string '%s' too short", s)
	}
	suffix := raw[len(raw)-2:]
	if suffix != "am" && suffix != "pm" {
		return clock{}, fmt.Errorf("time string '%s' missing am/pm suffix", s)
	}
	parts := strings.Split(raw[:len(raw)-2], ":")
	if len(parts) != 2 {
		return clock{}, fmt.Errorf("time string '%s' is not hh:mm", s)
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return clock{}, fmt.Errorf("time string '%s' has non-numeric components", s)
	}
	if h < 1 || h > 12 || m < 0 || m > 59 {
		return clock{}, &outOfRangeClockError{hour: h, minute: m}
	}
	if suffix == "pm" && h != 12 {
		h += 12
	}
	if suffix == "am" && h == 12 {
		h = 0
	}
	return clock{H: h, M: m}, nil
}

type outOfRangeClockError struct {
	hour   int
	minute int
}

func (e *outOfRangeClockError) Error() string {
	return fmt.Sprintf("clock components out of range (%02d:%02d)", e.hour, e.minute)
}

// NormalizeTimeWindow converts a clinician-selected local date and 12-hour
// time into a canonical UTC [start, end) window of durationMinutes length.
// zoneOffsetMinutes is the local-to-UTC delta (Lima is -300); it is always a
// parameter so the engine never bakes in a regional offset.
func NormalizeTimeWindow(localDate CalendarDate, localTime string, zoneOffsetMinutes, durationMinutes int) (TimeWindow, error) {
	if !localDate.Valid() {
		return TimeWindow{}, exceptions.ErrInvalidDate(fmt.Errorf("no such day %s", localDate))
	}
	c, err := parseClock12(localTime)
	if err != nil {
		var rangeErr *outOfRangeClockError
		if errors.As(err, &rangeErr) {
			return TimeWindow{}, exceptions.ErrInvalidDate(err)
		}
		return TimeWindow{}, exceptions.ErrInvalidTimeFormat(err)
	}
	if durationMinutes <= 0 {
		return TimeWindow{}, exceptions.ErrInvalidSlotSize(fmt.Errorf("duration %d", durationMinutes))
	}

	zone := time.FixedZone("local", zoneOffsetMinutes*60)
	start := time.Date(localDate.Year, time.Month(localDate.Month), localDate.Day, c.H, c.M, 0, 0, zone).UTC()
	return TimeWindow{
		StartUTC: start,
		EndUTC:   start.Add(time.Duration(durationMinutes) * time.Minute),
	}, nil
}

// ToLocalDisplay renders a UTC instant back into the local calendar date and
// canonical zero-padded 12-hour time for the given offset. It inverts
// NormalizeTimeWindow up to canonicalization: parsing is lenient about the
// hour padding, so "9:30am" normalizes fine but displays back as "09:30am".
func ToLocalDisplay(instant time.Time, zoneOffsetMinutes int) (CalendarDate, string) {
	zone := time.FixedZone("local", zoneOffsetMinutes*60)
	local := instant.In(zone)
	date := CalendarDate{Year: local.Year(), Month: int(local.Month()), Day: local.Day()}
	return date, local.Format(constvars.LocalClockLayout)
}
