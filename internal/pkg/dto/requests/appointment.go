package requests

// CreateAppointment books a CITA for a patient. Date and time arrive in the
// clinician's local wall clock together with the zone offset; the engine
// normalizes them to a UTC window before anything else happens.
type CreateAppointment struct {
	StaffID           string `json:"staffId" validate:"required"`
	BranchID          string `json:"branchId"`
	PatientID         string `json:"patientId" validate:"required"`
	ServiceID         string `json:"serviceId"`
	LocalDate         string `json:"localDate" validate:"required,datetime=2006-01-02"`
	LocalTime         string `json:"localTime" validate:"required"`
	ZoneOffsetMinutes int    `json:"zoneOffsetMinutes"`
	DurationMinutes   int    `json:"durationMinutes" validate:"required,gt=0"`
	Title             string `json:"title"`
	Color             string `json:"color"`
	Notes             string `json:"notes"`
	Actor             string `json:"actor"`
	// SkipConflictCheck bypasses the optimistic pre-check. Every use is
	// published to the audit queue.
	SkipConflictCheck bool `json:"skipConflictCheck"`
	// RequireWithinShift rejects windows not fully covered by a TURNO block.
	RequireWithinShift bool `json:"requireWithinShift"`
}

// CreateShift registers a TURNO block for a staff member. Shifts are created
// CONFIRMED and never move through the appointment lifecycle.
type CreateShift struct {
	StaffID           string `json:"staffId" validate:"required"`
	BranchID          string `json:"branchId"`
	LocalDate         string `json:"localDate" validate:"required,datetime=2006-01-02"`
	LocalTime         string `json:"localTime" validate:"required"`
	ZoneOffsetMinutes int    `json:"zoneOffsetMinutes"`
	DurationMinutes   int    `json:"durationMinutes" validate:"required,gt=0"`
	Title             string `json:"title"`
	Color             string `json:"color"`
}

type UpdateAppointmentStatus struct {
	Status string `json:"status" validate:"required,oneof=PENDING CONFIRMED COMPLETED CANCELLED NO_SHOW RESCHEDULED"`
	Actor  string `json:"actor"`
}

// RescheduleAppointment moves an existing appointment to a new local window.
type RescheduleAppointment struct {
	LocalDate         string `json:"localDate" validate:"required,datetime=2006-01-02"`
	LocalTime         string `json:"localTime" validate:"required"`
	ZoneOffsetMinutes int    `json:"zoneOffsetMinutes"`
	DurationMinutes   int    `json:"durationMinutes" validate:"required,gt=0"`
	Title             string `json:"title"`
	Color             string `json:"color"`
	Actor             string `json:"actor"`
	SkipConflictCheck bool   `json:"skipConflictCheck"`
}
