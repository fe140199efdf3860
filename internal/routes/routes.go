package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"academic-events/internal/services"
)

// SetupRoutes mounts every resource under /api/v1.
func SetupRoutes(app *fiber.App, svc services.Services, timeout time.Duration) {
	api := app.Group("/api/v1")

	SetupRoutesEvent(api, svc.Events, timeout)
	SetupRoutesEvaluation(api, svc.Evaluations, timeout)
	SetupRoutesUser(api, svc.Users, timeout)
	SetupRoutesFacility(api, svc.Facilities, timeout)
	SetupRoutesOrganization(api, svc.Organizations, timeout)
	SetupRoutesFaculty(api, svc.Faculties, timeout)
}
