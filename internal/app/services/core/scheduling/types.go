package scheduling

import (
	"fmt"
	"time"
)

// clock holds a local wall time (hour and minute).
type clock struct {
	H int
	M int
}

// CalendarDate is a zone-less calendar day as picked in the dashboard.
type CalendarDate struct {
	Year  int
	Month int
	Day   int
}

// Valid reports whether the components form a real calendar day.
func (d CalendarDate) Valid() bool {
	if d.Year < 1 || d.Month < 1 || d.Month > 12 || d.Day < 1 {
		return false
	}
	t := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
	return t.Year() == d.Year && int(t.Month()) == d.Month && t.Day() == d.Day
}

func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Interval is a half-open [Start, End) window of UTC instants.
type Interval struct {
	Start time.Time
	End   time.Time
}

// TimeWindow is the normalized UTC appointment window produced from a local
// date/time selection.
type TimeWindow struct {
	StartUTC time.Time
	EndUTC   time.Time
}

// Interval returns the window as a half-open interval.
func (w TimeWindow) Interval() Interval {
	return Interval{Start: w.StartUTC, End: w.EndUTC}
}

// Slot is one fixed-size candidate appointment window derived from a shift.
type Slot struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Available bool      `json:"available"`
}

// SlotOptions tweaks slot generation. AllowPast keeps slots that already
// started; only back-office flows set it.
type SlotOptions struct {
	AllowPast bool
}
