package scheduling

import (
	"agenda-service/internal/app/models"
	"fmt"
)

// Overlaps applies the half-open interval rule: [a.Start, a.End) and
// [b.Start, b.End) conflict only when each starts before the other ends.
// Back-to-back windows sharing a boundary instant do not overlap; the
// dashboards pack 15-minute slots edge to edge and rely on this.
func Overlaps(a, b Interval) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// ConflictError identifies the first existing event a candidate window
// collides with.
type ConflictError struct {
	ConflictingEventID string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("window overlaps event %s", e.ConflictingEventID)
}

// CheckConflict scans existing events for the same staff member (and branch,
// when branchID is non-empty) and reports the first CONFIRMED or COMPLETED
// appointment overlapping the candidate window. A nil return means no
// conflict was visible at fetch time; it is an optimistic pre-check only and
// the remote API must re-validate at write time, since another booking can
// land between this check and the create call.
func CheckConflict(candidate Interval, staffID, branchID string, existing []models.ScheduleEvent) *ConflictError {
	for _, event := range existing {
		if !event.IsAppointment() {
			continue
		}
		if event.StaffID != staffID {
			continue
		}
		if branchID != "" && event.BranchID != branchID {
			continue
		}
		if !event.IsActive() {
			continue
		}
		if Overlaps(candidate, Interval{Start: event.Start, End: event.End}) {
			return &ConflictError{ConflictingEventID: event.ID}
		}
	}
	return nil
}

// CoveredByShift reports whether the candidate window falls entirely inside
// one of the staff member's TURNO blocks. Whether bookings must satisfy this
// is a caller-supplied policy, not a built-in rule.
func CoveredByShift(candidate Interval, shifts []models.ScheduleEvent) bool {
	for _, shift := range shifts {
		if !shift.IsShift() {
			continue
		}
		if !shift.Start.After(candidate.Start) && !shift.End.Before(candidate.End) {
			return true
		}
	}
	return false
}
