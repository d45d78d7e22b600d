package routers

import (
	"agenda-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachAvailabilityRoutes(router chi.Router, c *controllers.AvailabilityController) {
	router.Get("/availability", c.GetAvailability)
	router.Get("/events", c.ListEvents)
}
