package responses

import "time"

// Event mirrors a ScheduleEvent on the wire, with the start rendered back into
// the caller's local clock alongside the canonical UTC instants.
type Event struct {
	ID             string    `json:"id"`
	Type           string    `json:"type"`
	StaffID        string    `json:"staffId"`
	BranchID       string    `json:"branchId,omitempty"`
	Start          time.Time `json:"start"`
	End            time.Time `json:"end"`
	Status         string    `json:"status"`
	Title          string    `json:"title,omitempty"`
	Color          string    `json:"color,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	PatientID      string    `json:"patientId,omitempty"`
	ServiceID      string    `json:"serviceId,omitempty"`
	LocalDate      string    `json:"localDate,omitempty"`
	LocalStartTime string    `json:"localStartTime,omitempty"`
}

// EventList carries one calendar query result plus the query key the caller
// uses to discard stale concurrent responses.
type EventList struct {
	QueryKey string  `json:"queryKey"`
	Events   []Event `json:"events"`
}
