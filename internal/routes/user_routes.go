package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"academic-events/internal/controllers"
	"academic-events/internal/services"
)

func SetupRoutesUser(router fiber.Router, svc *services.UserService, timeout time.Duration) {
	users := router.Group("/usuarios")

	users.Post("/", controllers.CreateUserHandler(svc, timeout))
	users.Get("/", controllers.ListUsersHandler(svc, timeout))
	users.Get("/:id", controllers.GetUserHandler(svc, timeout))
	users.Put("/:id", controllers.UpdateUserHandler(svc, timeout))
	users.Delete("/:id", controllers.DeleteUserHandler(svc, timeout))
}
