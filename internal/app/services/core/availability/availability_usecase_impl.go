package availability

import (
	"agenda-service/internal/app/contracts"
	"agenda-service/internal/app/models"
	"agenda-service/internal/app/services/core/scheduling"
	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/dto/responses"
	"agenda-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	availabilityUsecaseInstance contracts.AvailabilityUsecaseIface
	onceAvailabilityUsecase     sync.Once
)

type availabilityUsecase struct {
	EventClient contracts.EventAPIClient
	Log         *zap.Logger
	now         func() time.Time
}

func NewAvailabilityUsecase(eventClient contracts.EventAPIClient, logger *zap.Logger) contracts.AvailabilityUsecaseIface {
	onceAvailabilityUsecase.Do(func() {
		availabilityUsecaseInstance = &availabilityUsecase{
			EventClient: eventClient,
			Log:         logger,
			now:         time.Now,
		}
	})
	return availabilityUsecaseInstance
}

// GetAvailability computes the bookable slot list for one staff member on one
// UTC day. Shifts and bookings come back in a single fetch over the day plus
// a day of margin on each side, so windows clipped by midnight still count.
func (uc *availabilityUsecase) GetAvailability(ctx context.Context, input contracts.GetAvailabilityInput) (*responses.Availability, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if input.StaffID == "" {
		return nil, exceptions.ErrInvalidFilterCriteria(fmt.Errorf("staff id is required"))
	}
	parsed, err := time.Parse(constvars.DateOnlyLayout, input.Date)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}
	date := scheduling.CalendarDate{Year: parsed.Year(), Month: int(parsed.Month()), Day: parsed.Day()}

	slotSize := input.SlotSizeMinutes
	if slotSize == 0 {
		slotSize = constvars.SlotSizeDefaultInMinutes
	}
	if !scheduling.ValidSlotSize(slotSize) {
		return nil, exceptions.ErrInvalidSlotSize(fmt.Errorf("slot size %d", slotSize))
	}

	criteria := scheduling.FilterCriteria{
		StaffID:   input.StaffID,
		BranchID:  input.BranchID,
		StartDate: parsed.AddDate(0, 0, -1),
		EndDate:   parsed.AddDate(0, 0, 1),
	}
	events, err := uc.EventClient.FindAll(ctx, criteria)
	if err != nil {
		return nil, err
	}

	shifts, booked := splitShiftsAndBookings(events)
	slots, err := scheduling.GenerateSlots(shifts, booked, date, slotSize, uc.now().UTC(), scheduling.SlotOptions{AllowPast: input.AllowPast})
	if err != nil {
		return nil, err
	}

	uc.Log.Info("availabilityUsecase.GetAvailability computed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStaffIDKey, input.StaffID),
		zap.String(constvars.LoggingDateKey, input.Date),
		zap.Int(constvars.LoggingSlotSizeKey, slotSize),
		zap.Int(constvars.LoggingSlotCountKey, len(slots)),
	)

	return &responses.Availability{
		StaffID:         input.StaffID,
		BranchID:        input.BranchID,
		Date:            date.String(),
		SlotSizeMinutes: slotSize,
		QueryKey:        criteria.QueryKey(),
		Slots:           slots,
	}, nil
}

// ListEvents serves one calendar query. The raw filter still carries the
// dashboard sentinels; normalization happens here, once, for every view. A
// year/month pair switches to the padded month-view fetch so calendar-grid
// edge days keep full shift context.
func (uc *availabilityUsecase) ListEvents(ctx context.Context, raw scheduling.PartialFilter, zoneOffsetMinutes int) (*responses.EventList, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	year, month, monthMode, err := raw.MonthSelector()
	if err != nil {
		return nil, err
	}

	var criteria scheduling.FilterCriteria
	var events []models.ScheduleEvent
	if monthMode {
		criteria, err = scheduling.ForMonth(raw, year, month)
		if err != nil {
			return nil, err
		}
		events, err = uc.EventClient.FindForMonth(ctx, criteria, year, month)
	} else {
		criteria, err = scheduling.BuildFilterCriteria(raw)
		if err != nil {
			return nil, err
		}
		events, err = uc.EventClient.FindAll(ctx, criteria)
	}
	if err != nil {
		return nil, err
	}

	list := make([]responses.Event, 0, len(events))
	for i := range events {
		list = append(list, *toEventResponse(&events[i], zoneOffsetMinutes))
	}

	uc.Log.Info("availabilityUsecase.ListEvents fetched",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryKey, criteria.QueryKey()),
		zap.Int(constvars.LoggingEventCountKey, len(list)),
	)

	return &responses.EventList{
		QueryKey: criteria.QueryKey(),
		Events:   list,
	}, nil
}

func splitShiftsAndBookings(events []models.ScheduleEvent) (shifts, booked []models.ScheduleEvent) {
	for _, event := range events {
		if event.IsShift() {
			shifts = append(shifts, event)
			continue
		}
		booked = append(booked, event)
	}
	return shifts, booked
}

func toEventResponse(event *models.ScheduleEvent, zoneOffsetMinutes int) *responses.Event {
	resp := &responses.Event{
		ID:        event.ID,
		Type:      event.Type,
		StaffID:   event.StaffID,
		BranchID:  event.BranchID,
		Start:     event.Start,
		End:       event.End,
		Status:    event.Status,
		Title:     event.Title,
		Color:     event.Color,
		Notes:     event.Notes,
		PatientID: event.PatientID,
		ServiceID: event.ServiceID,
	}
	if zoneOffsetMinutes != 0 {
		date, localTime := scheduling.ToLocalDisplay(event.Start, zoneOffsetMinutes)
		resp.LocalDate = date.String()
		resp.LocalStartTime = localTime
	}
	return resp
}
