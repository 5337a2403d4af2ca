package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gofiber/fiber/v2"

	"github.com/Tsn168/Operating-System-CPU-scheduling/api"
	"github.com/Tsn168/Operating-System-CPU-scheduling/config"
	"github.com/Tsn168/Operating-System-CPU-scheduling/internal/logger"
)

func main() {
	schedulerConfig := config.GetSchedulerConfig()
	log := logger.BuildLogger(schedulerConfig.LogLevel)
	slog.SetDefault(log)

	app := fiber.New()
	api.SetupRoutes(app, api.NewSchedulerHandlerImpl(schedulerConfig, log))

	log.Info("starting scheduler api", slog.Int("port", schedulerConfig.Port))
	if err := app.Listen(fmt.Sprintf(":%d", schedulerConfig.Port)); err != nil {
		log.Error("scheduler api stopped", logger.ErrAttr(err))
		os.Exit(1)
	}
}
