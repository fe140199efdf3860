package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"academic-events/internal/controllers"
	"academic-events/internal/services"
)

func SetupRoutesEvent(router fiber.Router, svc *services.EventService, timeout time.Duration) {
	events := router.Group("/eventos")

	events.Post("/", controllers.CreateEventHandler(svc, timeout))
	events.Get("/", controllers.ListEventsHandler(svc, timeout))
	events.Get("/:id", controllers.GetEventHandler(svc, timeout))
	events.Put("/:id", controllers.UpdateEventHandler(svc, timeout))
	events.Delete("/:id", controllers.DeleteEventHandler(svc, timeout))
}
