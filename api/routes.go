package api

import "github.com/gofiber/fiber/v2"

func SetupRoutes(app *fiber.App, handler SchedulerHandler) {
	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/srt", handler.ShortestRemainingTime)
		v1.Post("/all", handler.AllAlgorithms)
	}
}
