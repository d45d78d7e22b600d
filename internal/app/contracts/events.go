package contracts

import (
	"agenda-service/internal/app/models"
	"agenda-service/internal/app/services/core/scheduling"
	"context"
	"time"
)

// EventAPIClient talks to the remote scheduling API that owns all event
// persistence. Every timestamp crossing this boundary is ISO-8601 UTC.
type EventAPIClient interface {
	// FindAll fetches events matching the criteria in one round trip.
	// Malformed records are dropped with a warning, never failing the batch;
	// an empty result is an empty slice, not an error.
	FindAll(ctx context.Context, criteria scheduling.FilterCriteria) ([]models.ScheduleEvent, error)
	// FindForMonth fetches events for a visible calendar month using the
	// padded range from scheduling.PadMonthRange.
	FindForMonth(ctx context.Context, criteria scheduling.FilterCriteria, year int, month time.Month) ([]models.ScheduleEvent, error)
	FindByID(ctx context.Context, eventID string) (*models.ScheduleEvent, error)
	Create(ctx context.Context, event models.ScheduleEvent) (*models.ScheduleEvent, error)
	UpdateStatus(ctx context.Context, eventID, status string) (*models.ScheduleEvent, error)
	Reschedule(ctx context.Context, eventID string, start, end time.Time, title, color string) (*models.ScheduleEvent, error)
	DeleteBatch(ctx context.Context, eventIDs []string) error
}
