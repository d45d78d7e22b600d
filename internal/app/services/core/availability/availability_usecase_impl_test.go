package availability

import (
	"agenda-service/internal/app/contracts"
	"agenda-service/internal/app/models"
	"agenda-service/internal/app/services/core/scheduling"
	"agenda-service/internal/pkg/constvars"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubEventClient struct {
	events      []models.ScheduleEvent
	gotCriteria scheduling.FilterCriteria
	monthCalls  int
}

func (s *stubEventClient) FindAll(ctx context.Context, criteria scheduling.FilterCriteria) ([]models.ScheduleEvent, error) {
	s.gotCriteria = criteria
	return s.events, nil
}

func (s *stubEventClient) FindForMonth(ctx context.Context, criteria scheduling.FilterCriteria, year int, month time.Month) ([]models.ScheduleEvent, error) {
	s.monthCalls++
	criteria.StartDate, criteria.EndDate = scheduling.PadMonthRange(year, month)
	return s.FindAll(ctx, criteria)
}

func (s *stubEventClient) FindByID(ctx context.Context, eventID string) (*models.ScheduleEvent, error) {
	return nil, assert.AnError
}

func (s *stubEventClient) Create(ctx context.Context, event models.ScheduleEvent) (*models.ScheduleEvent, error) {
	return &event, nil
}

func (s *stubEventClient) UpdateStatus(ctx context.Context, eventID, status string) (*models.ScheduleEvent, error) {
	return nil, assert.AnError
}

func (s *stubEventClient) Reschedule(ctx context.Context, eventID string, start, end time.Time, title, color string) (*models.ScheduleEvent, error) {
	return nil, assert.AnError
}

func (s *stubEventClient) DeleteBatch(ctx context.Context, eventIDs []string) error {
	return nil
}

func newStubUsecase(client *stubEventClient, now time.Time) *availabilityUsecase {
	return &availabilityUsecase{
		EventClient: client,
		Log:         zap.NewNop(),
		now:         func() time.Time { return now },
	}
}

func june1(hour, minute int) time.Time {
	return time.Date(2024, 6, 1, hour, minute, 0, 0, time.UTC)
}

func TestGetAvailabilitySplitsShiftsAndBookings(t *testing.T) {
	client := &stubEventClient{
		events: []models.ScheduleEvent{
			{ID: "turno-1", Type: constvars.EventTypeTurno, StaffID: "staff-1", Start: june1(9, 0), End: june1(10, 0), Status: constvars.EventStatusConfirmed},
			{ID: "cita-1", Type: constvars.EventTypeCita, StaffID: "staff-1", Start: june1(9, 30), End: june1(10, 0), Status: constvars.EventStatusConfirmed},
		},
	}
	uc := newStubUsecase(client, june1(0, 0))

	result, err := uc.GetAvailability(context.Background(), contracts.GetAvailabilityInput{
		StaffID: "staff-1",
		Date:    "2024-06-01",
	})
	require.NoError(t, err)

	require.Len(t, result.Slots, 2)
	assert.True(t, result.Slots[0].Available, "09:00 slot is free")
	assert.False(t, result.Slots[1].Available, "09:30 slot is booked")
	assert.Equal(t, constvars.SlotSizeDefaultInMinutes, result.SlotSizeMinutes)
	assert.Equal(t, "2024-06-01", result.Date)
}

func TestGetAvailabilityFetchesWithDayMargin(t *testing.T) {
	client := &stubEventClient{}
	uc := newStubUsecase(client, june1(0, 0))

	_, err := uc.GetAvailability(context.Background(), contracts.GetAvailabilityInput{
		StaffID: "staff-1",
		Date:    "2024-06-01",
	})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC), client.gotCriteria.StartDate)
	assert.Equal(t, time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC), client.gotCriteria.EndDate)
	assert.Empty(t, client.gotCriteria.Type, "both shifts and bookings come back in one fetch")
}

func TestGetAvailabilityEmptyDay(t *testing.T) {
	uc := newStubUsecase(&stubEventClient{}, june1(0, 0))

	result, err := uc.GetAvailability(context.Background(), contracts.GetAvailabilityInput{
		StaffID: "staff-1",
		Date:    "2024-06-01",
	})
	require.NoError(t, err)
	require.NotNil(t, result.Slots, "no shifts must yield an empty list, not an error")
	assert.Empty(t, result.Slots)
}

func TestGetAvailabilityValidation(t *testing.T) {
	uc := newStubUsecase(&stubEventClient{}, june1(0, 0))

	_, err := uc.GetAvailability(context.Background(), contracts.GetAvailabilityInput{Date: "2024-06-01"})
	require.Error(t, err, "staff id is required")

	_, err = uc.GetAvailability(context.Background(), contracts.GetAvailabilityInput{StaffID: "staff-1", Date: "junk"})
	require.Error(t, err)

	_, err = uc.GetAvailability(context.Background(), contracts.GetAvailabilityInput{StaffID: "staff-1", Date: "2024-06-01", SlotSizeMinutes: 20})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "15 or 30")
}

func TestListEventsNormalizesSentinels(t *testing.T) {
	client := &stubEventClient{
		events: []models.ScheduleEvent{
			{ID: "cita-1", Type: constvars.EventTypeCita, StaffID: "staff-1", Start: june1(19, 0), End: june1(19, 30), Status: constvars.EventStatusConfirmed},
		},
	}
	uc := newStubUsecase(client, june1(0, 0))

	result, err := uc.ListEvents(context.Background(), scheduling.PartialFilter{
		StaffID:  "todos",
		BranchID: "Todos",
	}, constvars.TIME_DIFFERENCE_LIMA_IN_MINUTES)
	require.NoError(t, err)

	assert.Empty(t, client.gotCriteria.StaffID, "sentinel collapses to no filter")
	assert.Empty(t, client.gotCriteria.BranchID)
	assert.Equal(t, constvars.EventTypeCita, client.gotCriteria.Type, "type defaults to CITA")

	require.Len(t, result.Events, 1)
	assert.Equal(t, "2024-06-01", result.Events[0].LocalDate)
	assert.Equal(t, "02:00pm", result.Events[0].LocalStartTime, "19:00 UTC renders as Lima afternoon")
	assert.Equal(t, client.gotCriteria.QueryKey(), result.QueryKey)
}

func TestListEventsMonthViewPadsRange(t *testing.T) {
	client := &stubEventClient{
		events: []models.ScheduleEvent{
			{ID: "cita-1", Type: constvars.EventTypeCita, StaffID: "staff-1", Start: june1(19, 0), End: june1(19, 30), Status: constvars.EventStatusConfirmed},
		},
	}
	uc := newStubUsecase(client, june1(0, 0))

	result, err := uc.ListEvents(context.Background(), scheduling.PartialFilter{
		StaffID: "staff-1",
		Year:    "2024",
		Month:   "6",
	}, 0)
	require.NoError(t, err)

	assert.Equal(t, 1, client.monthCalls, "month selector must route through the month fetch")
	assert.Equal(t, time.Date(2024, 5, 25, 0, 0, 0, 0, time.UTC), client.gotCriteria.StartDate)
	assert.Equal(t, time.Date(2024, 7, 7, 0, 0, 0, 0, time.UTC), client.gotCriteria.EndDate)
	require.Len(t, result.Events, 1)
	assert.NotEmpty(t, result.QueryKey)
}

func TestListEventsMonthSelectorValidation(t *testing.T) {
	uc := newStubUsecase(&stubEventClient{}, june1(0, 0))

	_, err := uc.ListEvents(context.Background(), scheduling.PartialFilter{Year: "2024"}, 0)
	require.Error(t, err, "month without year half-pair")

	_, err = uc.ListEvents(context.Background(), scheduling.PartialFilter{Year: "2024", Month: "13"}, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")

	_, err = uc.ListEvents(context.Background(), scheduling.PartialFilter{Year: "2024", Month: "6", StartDate: "2024-06-01"}, 0)
	require.Error(t, err, "month selector excludes an explicit range")
}

func TestListEventsRejectsReversedRange(t *testing.T) {
	uc := newStubUsecase(&stubEventClient{}, june1(0, 0))

	_, err := uc.ListEvents(context.Background(), scheduling.PartialFilter{
		StartDate: "2024-06-30",
		EndDate:   "2024-06-01",
	}, 0)
	require.Error(t, err)
}
