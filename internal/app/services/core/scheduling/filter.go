package scheduling

import (
	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/exceptions"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// PartialFilter is the raw, possibly-sentinel-laden filter state coming from
// a calendar or slot query. Dates use the yyyy-MM-dd wire layout. Year and
// Month select the padded month-view fetch instead of an explicit range; the
// two modes are exclusive.
type PartialFilter struct {
	Type      string
	Status    string
	StaffID   string
	BranchID  string
	StartDate string
	EndDate   string
	Year      string
	Month     string
}

// MonthSelector parses the Year/Month pair. ok is false when neither is set;
// a half-set pair or an out-of-range month is an error.
func (p PartialFilter) MonthSelector() (year int, month time.Month, ok bool, err error) {
	if p.Year == "" && p.Month == "" {
		return 0, 0, false, nil
	}
	if p.Year == "" || p.Month == "" {
		return 0, 0, false, exceptions.ErrInvalidFilterCriteria(fmt.Errorf("year and month must be given together"))
	}
	if p.StartDate != "" || p.EndDate != "" {
		return 0, 0, false, exceptions.ErrInvalidFilterCriteria(fmt.Errorf("month selector excludes an explicit date range"))
	}
	y, yearErr := strconv.Atoi(p.Year)
	m, monthErr := strconv.Atoi(p.Month)
	if yearErr != nil || monthErr != nil {
		return 0, 0, false, exceptions.ErrInvalidFilterCriteria(fmt.Errorf("year '%s' month '%s' must be numeric", p.Year, p.Month))
	}
	if m < 1 || m > 12 {
		return 0, 0, false, exceptions.ErrInvalidFilterCriteria(fmt.Errorf("month %d out of range", m))
	}
	return y, time.Month(m), true, nil
}

// FilterCriteria is the normalized query every calendar view and slot
// computation shares. Empty strings mean "no filter".
type FilterCriteria struct {
	Type      string
	Status    string
	StaffID   string
	BranchID  string
	StartDate time.Time
	EndDate   time.Time
}

// QueryKey identifies the logical query for stale-response suppression:
// callers issuing concurrent fetches must only render the last completed
// result per key and discard responses for superseded keys.
func (c FilterCriteria) QueryKey() string {
	return strings.Join([]string{
		c.StaffID,
		c.BranchID,
		c.StartDate.Format(constvars.DateOnlyLayout),
		c.EndDate.Format(constvars.DateOnlyLayout),
	}, "|")
}

// BuildFilterCriteria normalizes a raw filter: the event type defaults to
// CITA, the dashboard's "todos" (and empty) sentinels collapse to no filter,
// and the date bounds must be ordered. Dates are interpreted as UTC days.
func BuildFilterCriteria(raw PartialFilter) (FilterCriteria, error) {
	criteria := FilterCriteria{
		Type:     normalizeSentinel(raw.Type),
		Status:   normalizeSentinel(raw.Status),
		StaffID:  normalizeSentinel(raw.StaffID),
		BranchID: normalizeSentinel(raw.BranchID),
	}
	if criteria.Type == "" {
		criteria.Type = constvars.EventTypeCita
	}

	if raw.StartDate != "" {
		start, err := time.ParseInLocation(constvars.DateOnlyLayout, raw.StartDate, time.UTC)
		if err != nil {
			return FilterCriteria{}, exceptions.ErrCannotParseDate(err)
		}
		criteria.StartDate = start
	}
	if raw.EndDate != "" {
		end, err := time.ParseInLocation(constvars.DateOnlyLayout, raw.EndDate, time.UTC)
		if err != nil {
			return FilterCriteria{}, exceptions.ErrCannotParseDate(err)
		}
		criteria.EndDate = end
	}
	if !criteria.StartDate.IsZero() && !criteria.EndDate.IsZero() && criteria.StartDate.After(criteria.EndDate) {
		return FilterCriteria{}, exceptions.ErrInvalidFilterCriteria(fmt.Errorf("%s > %s", raw.StartDate, raw.EndDate))
	}
	return criteria, nil
}

func normalizeSentinel(value string) string {
	trimmed := strings.TrimSpace(value)
	if strings.EqualFold(trimmed, constvars.FilterSentinelAll) {
		return ""
	}
	return trimmed
}

// PadMonthRange returns the effective fetch range for a visible month:
// [monthStart - 7d, monthEnd + 7d], so slot computation for calendar-grid
// edge days always has full shift context from the adjacent months.
func PadMonthRange(year int, month time.Month) (time.Time, time.Time) {
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)
	padding := constvars.CalendarPaddingInDays
	return monthStart.AddDate(0, 0, -padding), monthEnd.AddDate(0, 0, padding)
}

// ForMonth builds padded criteria for rendering one calendar month.
func ForMonth(raw PartialFilter, year int, month time.Month) (FilterCriteria, error) {
	criteria, err := BuildFilterCriteria(raw)
	if err != nil {
		return FilterCriteria{}, err
	}
	criteria.StartDate, criteria.EndDate = PadMonthRange(year, month)
	return criteria, nil
}
