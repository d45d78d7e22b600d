package routers

import (
	"agenda-service/internal/app/delivery/http/controllers"
	"agenda-service/internal/pkg/constvars"
	"fmt"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, c *controllers.AppointmentController) {
	router.Post("/appointments", c.CreateAppointment)
	router.Post("/shifts", c.CreateShift)
	router.Patch(fmt.Sprintf("/appointments/{%s}/status", constvars.URLParamEventID), c.UpdateStatus)
	router.Patch(fmt.Sprintf("/appointments/{%s}/reschedule", constvars.URLParamEventID), c.Reschedule)
}
