package appointments

import (
	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/exceptions"
)

// allowedTransitions is the appointment lifecycle. COMPLETED, CANCELLED and
// NO_SHOW are terminal. RESCHEDULED only moves back to PENDING, which happens
// when the replacement window is created.
var allowedTransitions = map[string][]string{
	constvars.EventStatusPending:     {constvars.EventStatusConfirmed, constvars.EventStatusCancelled},
	constvars.EventStatusConfirmed:   {constvars.EventStatusCompleted, constvars.EventStatusCancelled, constvars.EventStatusNoShow, constvars.EventStatusRescheduled},
	constvars.EventStatusRescheduled: {constvars.EventStatusPending},
}

// IsTerminalStatus reports whether no further transitions leave the status.
func IsTerminalStatus(status string) bool {
	switch status {
	case constvars.EventStatusCompleted, constvars.EventStatusCancelled, constvars.EventStatusNoShow:
		return true
	}
	return false
}

// Transition validates a status change. Re-asserting the current status is a
// no-op, not an error, so retried requests settle idempotently; changed
// reports whether the remote API needs to be told anything.
func Transition(from, to string) (changed bool, err error) {
	if from == to {
		return false, nil
	}
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true, nil
		}
	}
	return false, exceptions.ErrInvalidStatusTransition(from, to)
}
