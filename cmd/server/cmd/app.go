package cmd

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	_ "academic-events/docs"

	"academic-events/config"
	"academic-events/internal/controllers"
	"academic-events/internal/metrics"
	"academic-events/internal/middleware"
	"academic-events/internal/routes"
	"academic-events/internal/services"
)

func newApp(cfg config.Config, svc services.Services, logger zerolog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ErrorHandler: controllers.ErrorHandler,
	})

	app.Use(middleware.Metrics())
	app.Use(middleware.RequestLogger(logger))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Origins(),
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	app.Get("/", func(c *fiber.Ctx) error { return c.Redirect("/docs/index.html") })

	// Swagger API document
	app.Get("/docs/*", swagger.HandlerDefault)

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	routes.SetupRoutes(app, svc, cfg.RequestTimeout)
	return app
}
