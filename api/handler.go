package api

import (
	"bytes"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/Tsn168/Operating-System-CPU-scheduling/config"
	"github.com/Tsn168/Operating-System-CPU-scheduling/internal/logger"
	"github.com/Tsn168/Operating-System-CPU-scheduling/internal/report"
	"github.com/Tsn168/Operating-System-CPU-scheduling/internal/requests"
	"github.com/Tsn168/Operating-System-CPU-scheduling/internal/responses"
	"github.com/Tsn168/Operating-System-CPU-scheduling/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	ShortestRemainingTime(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
}
type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
	log    *slog.Logger
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, log *slog.Logger) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config, log: log}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.AlgorithmFCFS)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.AlgorithmRR)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.AlgorithmSJF)
}

func (s *SchedulerHandlerImpl) ShortestRemainingTime(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.AlgorithmSRT)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return s.invalidFormat(ctx, err)
	}
	request.MaxTime = s.config.MaxTime
	response, err := schedulers.ScheduleAll(request, s.config.RoundRobinTimeQuantum)
	if err != nil {
		return s.badRequest(ctx, err)
	}
	return s.reply(ctx, response...)
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, algorithm schedulers.Algorithm) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return s.invalidFormat(ctx, err)
	}
	request.MaxTime = s.config.MaxTime
	response, err := schedulers.Schedule(request, algorithm, s.config.RoundRobinTimeQuantum)
	if err != nil {
		return s.badRequest(ctx, err)
	}
	s.log.Info("schedule served",
		slog.String("algorithm", algorithm.String()),
		slog.Int("jobs", len(request.Jobs)),
	)
	return s.reply(ctx, response)
}

// reply writes JSON, or the rendered report when ?format=text. Several
// responses are rendered one after another.
func (s *SchedulerHandlerImpl) reply(ctx *fiber.Ctx, schedules ...responses.ScheduleResponse) error {
	if ctx.Query("format") == "text" {
		var buf bytes.Buffer
		for _, schedule := range schedules {
			report.Render(&buf, schedule)
		}
		ctx.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return ctx.Send(buf.Bytes())
	}
	if len(schedules) == 1 {
		return ctx.JSON(schedules[0])
	}
	return ctx.JSON(schedules)
}

func (s *SchedulerHandlerImpl) invalidFormat(ctx *fiber.Ctx, err error) error {
	s.log.Warn("invalid request format", logger.ErrAttr(err))
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "invalid request format",
	})
}

func (s *SchedulerHandlerImpl) badRequest(ctx *fiber.Ctx, err error) error {
	s.log.Warn("can not process request", logger.ErrAttr(err))
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": err.Error(),
	})
}
