package controllers

import (
	"agenda-service/internal/app/contracts"
	"agenda-service/internal/app/services/core/scheduling"
	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/exceptions"
	"agenda-service/internal/pkg/utils"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

type AvailabilityController struct {
	Usecase contracts.AvailabilityUsecaseIface
	Log     *zap.Logger
}

func NewAvailabilityController(usecase contracts.AvailabilityUsecaseIface, log *zap.Logger) *AvailabilityController {
	return &AvailabilityController{
		Usecase: usecase,
		Log:     log,
	}
}

// GetAvailability serves the bookable slot list for one staff member and day.
// slot_size defaults to 30 minutes; allow_past is a back-office switch.
func (c *AvailabilityController) GetAvailability(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	slotSize := 0
	if raw := query.Get(constvars.URLQueryParamSlotSize); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			utils.BuildErrorResponse(c.Log, w, exceptions.ErrInvalidSlotSize(err))
			return
		}
		slotSize = parsed
	}

	result, err := c.Usecase.GetAvailability(r.Context(), contracts.GetAvailabilityInput{
		StaffID:         query.Get(constvars.URLQueryParamStaffID),
		BranchID:        query.Get(constvars.URLQueryParamBranchID),
		Date:            query.Get(constvars.URLQueryParamDate),
		SlotSizeMinutes: slotSize,
		AllowPast:       query.Get(constvars.URLQueryParamAllowPast) == "true",
	})
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, "OK", result)
}

// ListEvents serves calendar queries. Filters may carry the dashboard's
// "todos" sentinel; a year/month pair requests the padded month view instead
// of an explicit date range. zone_offset_minutes only affects the local
// display fields, never the stored instants.
func (c *AvailabilityController) ListEvents(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	zoneOffsetMinutes := 0
	if raw := query.Get(constvars.URLQueryParamZoneOffset); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			utils.BuildErrorResponse(c.Log, w, exceptions.ErrInvalidFilterCriteria(err))
			return
		}
		zoneOffsetMinutes = parsed
	}

	result, err := c.Usecase.ListEvents(r.Context(), scheduling.PartialFilter{
		Type:      query.Get(constvars.URLQueryParamType),
		Status:    query.Get(constvars.URLQueryParamStatus),
		StaffID:   query.Get(constvars.URLQueryParamStaffID),
		BranchID:  query.Get(constvars.URLQueryParamBranchID),
		StartDate: query.Get(constvars.URLQueryParamStartDate),
		EndDate:   query.Get(constvars.URLQueryParamEndDate),
		Year:      query.Get(constvars.URLQueryYear),
		Month:     query.Get(constvars.URLQueryMonth),
	}, zoneOffsetMinutes)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, "OK", result)
}
