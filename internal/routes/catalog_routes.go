package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"academic-events/internal/controllers"
	"academic-events/internal/services"
)

func SetupRoutesFacility(router fiber.Router, svc *services.FacilityService, timeout time.Duration) {
	facilities := router.Group("/instalaciones")

	facilities.Post("/", controllers.CreateFacilityHandler(svc, timeout))
	facilities.Get("/", controllers.ListFacilitiesHandler(svc, timeout))
	facilities.Get("/:id", controllers.GetFacilityHandler(svc, timeout))
	facilities.Put("/:id", controllers.UpdateFacilityHandler(svc, timeout))
	facilities.Delete("/:id", controllers.DeleteFacilityHandler(svc, timeout))
}

func SetupRoutesOrganization(router fiber.Router, svc *services.OrganizationService, timeout time.Duration) {
	orgs := router.Group("/organizaciones")

	orgs.Post("/", controllers.CreateOrganizationHandler(svc, timeout))
	orgs.Get("/", controllers.ListOrganizationsHandler(svc, timeout))
	orgs.Get("/:id", controllers.GetOrganizationHandler(svc, timeout))
	orgs.Put("/:id", controllers.UpdateOrganizationHandler(svc, timeout))
	orgs.Delete("/:id", controllers.DeleteOrganizationHandler(svc, timeout))
}

func SetupRoutesFaculty(router fiber.Router, svc *services.FacultyService, timeout time.Duration) {
	faculties := router.Group("/facultades")

	faculties.Post("/", controllers.CreateFacultyHandler(svc, timeout))
	faculties.Get("/", controllers.ListFacultiesHandler(svc, timeout))
	faculties.Get("/:id", controllers.GetFacultyHandler(svc, timeout))
	faculties.Put("/:id", controllers.UpdateFacultyHandler(svc, timeout))
	faculties.Delete("/:id", controllers.DeleteFacultyHandler(svc, timeout))
}
