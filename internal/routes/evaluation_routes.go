package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"academic-events/internal/controllers"
	"academic-events/internal/services"
)

func SetupRoutesEvaluation(router fiber.Router, svc *services.EvaluationService, timeout time.Duration) {
	evals := router.Group("/evaluaciones")

	evals.Post("/", controllers.CreateEvaluationHandler(svc, timeout))
	evals.Get("/", controllers.ListEvaluationsHandler(svc, timeout))
	evals.Get("/:id", controllers.GetEvaluationHandler(svc, timeout))
	evals.Put("/:id", controllers.UpdateEvaluationHandler(svc, timeout))
	evals.Delete("/:id", controllers.DeleteEvaluationHandler(svc, timeout))
}
