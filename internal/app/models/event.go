package models

import (
	"agenda-service/internal/pkg/constvars"
	"time"
)

// ScheduleEvent is a row from the remote scheduling API: either a staff
// shift block (TURNO) or a booked appointment (CITA). The engine never
// persists these itself; they are fetched fresh per query.
type ScheduleEvent struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	StaffID   string    `json:"staffId"`
	BranchID  string    `json:"branchId"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Status    string    `json:"status"`
	Title     string    `json:"title,omitempty"`
	Color     string    `json:"color,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	PatientID string    `json:"patientId,omitempty"`
	ServiceID string    `json:"serviceId,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// IsShift reports whether the event is a staff availability block.
func (e ScheduleEvent) IsShift() bool {
	return e.Type == constvars.EventTypeTurno
}

// IsAppointment reports whether the event is a patient appointment.
func (e ScheduleEvent) IsAppointment() bool {
	return e.Type == constvars.EventTypeCita
}

// IsActive reports whether the event blocks other bookings. PENDING holds no
// slot; only CONFIRMED and COMPLETED appointments occupy staff time.
func (e ScheduleEvent) IsActive() bool {
	return e.Status == constvars.EventStatusConfirmed || e.Status == constvars.EventStatusCompleted
}

// IsTerminal reports whether the status machine allows no further moves.
func (e ScheduleEvent) IsTerminal() bool {
	switch e.Status {
	case constvars.EventStatusCompleted, constvars.EventStatusCancelled, constvars.EventStatusNoShow:
		return true
	}
	return false
}
