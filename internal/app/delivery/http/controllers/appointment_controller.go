package controllers

import (
	"agenda-service/internal/app/contracts"
	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/dto/requests"
	"agenda-service/internal/pkg/exceptions"
	"agenda-service/internal/pkg/utils"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AppointmentController struct {
	Usecase contracts.AppointmentUsecaseIface
	Log     *zap.Logger
}

func NewAppointmentController(usecase contracts.AppointmentUsecaseIface, log *zap.Logger) *AppointmentController {
	return &AppointmentController{
		Usecase: usecase,
		Log:     log,
	}
}

func (c *AppointmentController) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var request requests.CreateAppointment
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	created, err := c.Usecase.CreateAppointment(r.Context(), &request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, "Created", created)
}

func (c *AppointmentController) CreateShift(w http.ResponseWriter, r *http.Request) {
	var request requests.CreateShift
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	created, err := c.Usecase.CreateShift(r.Context(), &request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, "Created", created)
}

func (c *AppointmentController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, constvars.URLParamEventID)
	if eventID == "" {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamIDValidation(fmt.Errorf("empty id"), constvars.URLParamEventID))
		return
	}

	var request requests.UpdateAppointmentStatus
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	updated, err := c.Usecase.UpdateStatus(r.Context(), eventID, &request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, "OK", updated)
}

func (c *AppointmentController) Reschedule(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, constvars.URLParamEventID)
	if eventID == "" {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamIDValidation(fmt.Errorf("empty id"), constvars.URLParamEventID))
		return
	}

	var request requests.RescheduleAppointment
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	updated, err := c.Usecase.Reschedule(r.Context(), eventID, &request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, "OK", updated)
}
