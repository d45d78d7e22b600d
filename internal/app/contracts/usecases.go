package contracts

import (
	"agenda-service/internal/app/services/core/scheduling"
	"agenda-service/internal/pkg/dto/requests"
	"agenda-service/internal/pkg/dto/responses"
	"context"
)

// GetAvailabilityInput names one slot query: one staff member, one local day.
type GetAvailabilityInput struct {
	StaffID           string
	BranchID          string
	Date              string
	SlotSizeMinutes   int
	ZoneOffsetMinutes int
	AllowPast         bool
}

type AvailabilityUsecaseIface interface {
	GetAvailability(ctx context.Context, input GetAvailabilityInput) (*responses.Availability, error)
	ListEvents(ctx context.Context, raw scheduling.PartialFilter, zoneOffsetMinutes int) (*responses.EventList, error)
}

type AppointmentUsecaseIface interface {
	CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*responses.Event, error)
	CreateShift(ctx context.Context, request *requests.CreateShift) (*responses.Event, error)
	UpdateStatus(ctx context.Context, eventID string, request *requests.UpdateAppointmentStatus) (*responses.Event, error)
	Reschedule(ctx context.Context, eventID string, request *requests.RescheduleAppointment) (*responses.Event, error)
}
