package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewApp builds the fiber application with every route registered.
func NewApp(handler SchedulerHandler, registry *prometheus.Registry) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(recover.New())
	app.Use(logger.New())
	SetupRoutes(app, handler, registry)
	return app
}

func SetupRoutes(app *fiber.App, handler SchedulerHandler, registry *prometheus.Registry) {
	app.Get("/health", handler.Health)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	api := app.Group("/api")
	v1 := api.Group("/v1")
	{
		v1.Get("/algorithms", handler.Algorithms)
		v1.Post("/hrrn", handler.HighestResponseRatioNext)
		v1.Post("/mlfq", handler.MultilevelFeedbackQueue)
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/all", handler.AllAlgorithms)
	}
}
