package appointments

import (
	"agenda-service/internal/app/contracts"
	"agenda-service/internal/app/models"
	"agenda-service/internal/app/services/core/scheduling"
	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/dto/requests"
	"agenda-service/internal/pkg/dto/responses"
	"agenda-service/internal/pkg/exceptions"
	"agenda-service/internal/pkg/utils"
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	appointmentUsecaseInstance contracts.AppointmentUsecaseIface
	onceAppointmentUsecase     sync.Once
)

type appointmentUsecase struct {
	EventClient contracts.EventAPIClient
	Locker      contracts.LockerService
	AuditQueue  contracts.AuditQueueService
	LockTTL     time.Duration
	Log         *zap.Logger
}

func NewAppointmentUsecase(
	eventClient contracts.EventAPIClient,
	locker contracts.LockerService,
	auditQueue contracts.AuditQueueService,
	lockTTL time.Duration,
	logger *zap.Logger,
) contracts.AppointmentUsecaseIface {
	onceAppointmentUsecase.Do(func() {
		appointmentUsecaseInstance = &appointmentUsecase{
			EventClient: eventClient,
			Locker:      locker,
			AuditQueue:  auditQueue,
			LockTTL:     lockTTL,
			Log:         logger,
		}
	})
	return appointmentUsecaseInstance
}

// CreateAppointment books a CITA. The conflict check here is optimistic: it
// sees the events fetched in this request only, and the remote API remains
// the authority at write time.
func (uc *appointmentUsecase) CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*responses.Event, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	window, err := uc.normalizeWindow(request.LocalDate, request.LocalTime, request.ZoneOffsetMinutes, request.DurationMinutes)
	if err != nil {
		return nil, err
	}

	existing, err := uc.fetchSurroundingEvents(ctx, request.StaffID, request.BranchID, window)
	if err != nil {
		return nil, err
	}

	if request.SkipConflictCheck {
		uc.publishAudit(ctx, contracts.AuditMessage{
			Action:   constvars.AuditActionConflictCheckBypassed,
			StaffID:  request.StaffID,
			BranchID: request.BranchID,
			Actor:    request.Actor,
			Detail:   fmt.Sprintf("window %s to %s", window.StartUTC.Format(time.RFC3339), window.EndUTC.Format(time.RFC3339)),
		})
	} else if conflict := scheduling.CheckConflict(window.Interval(), request.StaffID, request.BranchID, existing); conflict != nil {
		uc.Log.Info("appointmentUsecase.CreateAppointment conflict detected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventIDKey, conflict.ConflictingEventID),
		)
		return nil, exceptions.ErrScheduleConflict(conflict.ConflictingEventID)
	}

	if request.RequireWithinShift && !scheduling.CoveredByShift(window.Interval(), existing) {
		return nil, exceptions.ErrOutsideShift(fmt.Errorf("staff %s at %s", request.StaffID, window.StartUTC.Format(time.RFC3339)))
	}

	lockKey := fmt.Sprintf(constvars.BookingLockKeyFormat, request.StaffID, window.StartUTC.Unix())
	acquired, lockValue, err := uc.Locker.TryLock(ctx, lockKey, uc.LockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrBookingLockNotAcquired(fmt.Errorf("key %s", lockKey))
	}
	defer uc.unlock(ctx, lockKey, lockValue)

	created, err := uc.EventClient.Create(ctx, models.ScheduleEvent{
		Type:      constvars.EventTypeCita,
		StaffID:   request.StaffID,
		BranchID:  request.BranchID,
		PatientID: request.PatientID,
		ServiceID: request.ServiceID,
		Start:     window.StartUTC,
		End:       window.EndUTC,
		Status:    constvars.EventStatusPending,
		Title:     request.Title,
		Color:     request.Color,
		Notes:     request.Notes,
	})
	if err != nil {
		return nil, err
	}

	uc.Log.Info("appointmentUsecase.CreateAppointment booked",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventIDKey, created.ID),
		zap.String(constvars.LoggingStaffIDKey, created.StaffID),
	)
	return toEventResponse(created, request.ZoneOffsetMinutes), nil
}

// CreateShift registers a TURNO block. Shifts are created CONFIRMED and skip
// the conflict pre-check: overlapping shifts are legal (two rooms, one
// clinician covering both).
func (uc *appointmentUsecase) CreateShift(ctx context.Context, request *requests.CreateShift) (*responses.Event, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	window, err := uc.normalizeWindow(request.LocalDate, request.LocalTime, request.ZoneOffsetMinutes, request.DurationMinutes)
	if err != nil {
		return nil, err
	}

	created, err := uc.EventClient.Create(ctx, models.ScheduleEvent{
		Type:     constvars.EventTypeTurno,
		StaffID:  request.StaffID,
		BranchID: request.BranchID,
		Start:    window.StartUTC,
		End:      window.EndUTC,
		Status:   constvars.EventStatusConfirmed,
		Title:    request.Title,
		Color:    request.Color,
	})
	if err != nil {
		return nil, err
	}

	uc.Log.Info("appointmentUsecase.CreateShift registered",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventIDKey, created.ID),
		zap.String(constvars.LoggingStaffIDKey, created.StaffID),
	)
	return toEventResponse(created, request.ZoneOffsetMinutes), nil
}

// UpdateStatus settles an appointment into a new lifecycle status.
// Re-asserting the current status succeeds without touching the remote API.
func (uc *appointmentUsecase) UpdateStatus(ctx context.Context, eventID string, request *requests.UpdateAppointmentStatus) (*responses.Event, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	current, err := uc.EventClient.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	changed, err := Transition(current.Status, request.Status)
	if err != nil {
		return nil, err
	}
	if !changed {
		uc.Log.Info("appointmentUsecase.UpdateStatus idempotent no-op",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventIDKey, eventID),
			zap.String(constvars.LoggingStatusKey, current.Status),
		)
		return toEventResponse(current, 0), nil
	}

	updated, err := uc.EventClient.UpdateStatus(ctx, eventID, request.Status)
	if err != nil {
		return nil, err
	}

	uc.publishAudit(ctx, contracts.AuditMessage{
		Action:   constvars.AuditActionStatusTransition,
		EventID:  eventID,
		StaffID:  updated.StaffID,
		BranchID: updated.BranchID,
		Actor:    request.Actor,
		Detail:   fmt.Sprintf("%s -> %s", current.Status, request.Status),
	})

	uc.Log.Info("appointmentUsecase.UpdateStatus settled",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventIDKey, eventID),
		zap.String(constvars.LoggingFromStatusKey, current.Status),
		zap.String(constvars.LoggingToStatusKey, request.Status),
	)
	return toEventResponse(updated, 0), nil
}

// Reschedule moves a CONFIRMED appointment to a new window. The original
// passes through RESCHEDULED, the window moves upstream, and the event
// re-enters the lifecycle as PENDING awaiting re-confirmation.
func (uc *appointmentUsecase) Reschedule(ctx context.Context, eventID string, request *requests.RescheduleAppointment) (*responses.Event, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	window, err := uc.normalizeWindow(request.LocalDate, request.LocalTime, request.ZoneOffsetMinutes, request.DurationMinutes)
	if err != nil {
		return nil, err
	}

	current, err := uc.EventClient.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if _, err := Transition(current.Status, constvars.EventStatusRescheduled); err != nil {
		return nil, err
	}

	existing, err := uc.fetchSurroundingEvents(ctx, current.StaffID, current.BranchID, window)
	if err != nil {
		return nil, err
	}

	if request.SkipConflictCheck {
		uc.publishAudit(ctx, contracts.AuditMessage{
			Action:   constvars.AuditActionConflictCheckBypassed,
			EventID:  eventID,
			StaffID:  current.StaffID,
			BranchID: current.BranchID,
			Actor:    request.Actor,
			Detail:   fmt.Sprintf("reschedule to %s", window.StartUTC.Format(time.RFC3339)),
		})
	} else if conflict := scheduling.CheckConflict(window.Interval(), current.StaffID, current.BranchID, withoutEvent(existing, eventID)); conflict != nil {
		return nil, exceptions.ErrScheduleConflict(conflict.ConflictingEventID)
	}

	lockKey := fmt.Sprintf(constvars.BookingLockKeyFormat, current.StaffID, window.StartUTC.Unix())
	acquired, lockValue, err := uc.Locker.TryLock(ctx, lockKey, uc.LockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrBookingLockNotAcquired(fmt.Errorf("key %s", lockKey))
	}
	defer uc.unlock(ctx, lockKey, lockValue)

	if _, err := uc.EventClient.UpdateStatus(ctx, eventID, constvars.EventStatusRescheduled); err != nil {
		return nil, err
	}
	if _, err := uc.EventClient.Reschedule(ctx, eventID, window.StartUTC, window.EndUTC, request.Title, request.Color); err != nil {
		return nil, err
	}
	updated, err := uc.EventClient.UpdateStatus(ctx, eventID, constvars.EventStatusPending)
	if err != nil {
		return nil, err
	}

	uc.publishAudit(ctx, contracts.AuditMessage{
		Action:   constvars.AuditActionStatusTransition,
		EventID:  eventID,
		StaffID:  updated.StaffID,
		BranchID: updated.BranchID,
		Actor:    request.Actor,
		Detail:   fmt.Sprintf("%s -> RESCHEDULED -> PENDING at %s", current.Status, window.StartUTC.Format(time.RFC3339)),
	})

	uc.Log.Info("appointmentUsecase.Reschedule moved",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventIDKey, eventID),
		zap.String(constvars.LoggingStartDateKey, window.StartUTC.Format(time.RFC3339)),
	)
	return toEventResponse(updated, request.ZoneOffsetMinutes), nil
}

func (uc *appointmentUsecase) normalizeWindow(localDate, localTime string, zoneOffsetMinutes, durationMinutes int) (scheduling.TimeWindow, error) {
	parsed, err := time.Parse(constvars.DateOnlyLayout, localDate)
	if err != nil {
		return scheduling.TimeWindow{}, exceptions.ErrCannotParseDate(err)
	}
	date := scheduling.CalendarDate{Year: parsed.Year(), Month: int(parsed.Month()), Day: parsed.Day()}
	return scheduling.NormalizeTimeWindow(date, localTime, zoneOffsetMinutes, durationMinutes)
}

// fetchSurroundingEvents pulls every event for the staff member on the UTC
// days touched by the window, shifts and appointments alike, in one call.
func (uc *appointmentUsecase) fetchSurroundingEvents(ctx context.Context, staffID, branchID string, window scheduling.TimeWindow) ([]models.ScheduleEvent, error) {
	return uc.EventClient.FindAll(ctx, scheduling.FilterCriteria{
		StaffID:   staffID,
		BranchID:  branchID,
		StartDate: window.StartUTC.Truncate(24 * time.Hour),
		EndDate:   window.EndUTC.Truncate(24 * time.Hour).Add(24 * time.Hour),
	})
}

func (uc *appointmentUsecase) unlock(ctx context.Context, key, value string) {
	if err := uc.Locker.Unlock(ctx, key, value); err != nil {
		uc.Log.Warn("appointmentUsecase failed to release booking lock",
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
	}
}

// publishAudit never fails the scheduling operation; a broken broker is an
// operational problem, not the caller's.
func (uc *appointmentUsecase) publishAudit(ctx context.Context, message contracts.AuditMessage) {
	if err := uc.AuditQueue.Publish(ctx, message); err != nil {
		uc.Log.Error("appointmentUsecase failed to publish audit message",
			zap.String(constvars.LoggingAuditActionKey, message.Action),
			zap.Error(err),
		)
	}
}

func withoutEvent(events []models.ScheduleEvent, eventID string) []models.ScheduleEvent {
	filtered := make([]models.ScheduleEvent, 0, len(events))
	for _, event := range events {
		if event.ID == eventID {
			continue
		}
		filtered = append(filtered, event)
	}
	return filtered
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
