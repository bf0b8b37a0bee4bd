package api

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/history"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
	"github.com/gofiber/fiber/v2"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	ShortestRemainingTime(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	MultilevelFeedbackQueue(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
	store  history.Store
	log    *slog.Logger
}

// NewSchedulerHandlerImpl builds the handler. store may be nil, which turns
// history recording off.
func NewSchedulerHandlerImpl(config *config.SchedulerConfig, store history.Store, log *slog.Logger) *SchedulerHandlerImpl {
	if log == nil {
		log = slog.Default()
	}
	return &SchedulerHandlerImpl{config: config, store: store, log: log}
}

// Register mounts the scheduling routes under router.
func Register(router fiber.Router, h SchedulerHandler) {
	v1 := router.Group("/v1")
	{
		v1.Post("/fcfs", h.FirstComeFirstServe)
		v1.Post("/sjf", h.ShortestJobFirst)
		v1.Post("/srt", h.ShortestRemainingTime)
		v1.Post("/rr", h.RoundRobin)
		v1.Post("/mlfq", h.MultilevelFeedbackQueue)
		v1.Post("/all", h.AllAlgorithms)
		v1.Get("/history", h.History)
	}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.FirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestJobFirst)
}

func (s *SchedulerHandlerImpl) ShortestRemainingTime(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestRemainingTime)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.RoundRobin)
}

func (s *SchedulerHandlerImpl) MultilevelFeedbackQueue(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.MultilevelFeedbackQueue)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, processes, err := s.parse(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	quantum, aging := s.parameters(request)

	results, err := schedulers.CompareAll(processes, quantum, aging)
	if err != nil {
		return s.scheduleError(ctx, err)
	}

	response := responses.CompareResponse{Results: make([]responses.ScheduleResponse, 0, len(results))}
	for _, result := range results {
		r := schedulers.GenerateResponse(result)
		s.record(ctx.UserContext(), r)
		response.Results = append(response.Results, r)
	}
	s.log.Info("compared all algorithms", slog.Int("processes", len(processes)))
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) History(ctx *fiber.Ctx) error {
	if s.store == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "history is disabled"})
	}
	runs, err := s.store.Recent(ctx.UserContext(), ctx.QueryInt("limit", 20))
	if err != nil {
		s.log.Error("read history", slog.Any("error", err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not read history"})
	}
	return ctx.JSON(runs)
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, algorithm schedulers.Algorithm) error {
	request, processes, err := s.parse(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	quantum, aging := s.parameters(request)
	policy := schedulers.Policy{Algorithm: algorithm, TimeQuantum: quantum, AgingInterval: aging}

	result, err := policy.Schedule(processes)
	if err != nil {
		return s.scheduleError(ctx, err)
	}

	response := schedulers.GenerateResponse(result)
	s.record(ctx.UserContext(), response)
	s.log.Info("scheduled processes",
		slog.String("algorithm", algorithm.String()),
		slog.Int("processes", len(processes)),
		slog.Int("total_time", response.TotalTime))
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) parse(ctx *fiber.Ctx) (requests.ScheduleRequest, []core.Process, error) {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return request, nil, errors.New("invalid request format")
	}
	processes, err := request.Processes()
	return request, processes, err
}

// parameters applies the configured defaults to parameters absent from the
// request.
func (s *SchedulerHandlerImpl) parameters(request requests.ScheduleRequest) (quantum, aging int) {
	quantum, aging = s.config.RoundRobinTimeQuantum, s.config.MultilevelFeedbackQueueAgingInterval
	if request.TimeQuantum != nil {
		quantum = *request.TimeQuantum
	}
	if request.AgingInterval != nil {
		aging = *request.AgingInterval
	}
	return quantum, aging
}

func (s *SchedulerHandlerImpl) scheduleError(ctx *fiber.Ctx, err error) error {
	if errors.Is(err, schedulers.ErrInvalidConfig) || errors.Is(err, core.ErrInvalidDescriptor) {
		return badRequest(ctx, err)
	}
	s.log.Error("schedule failed", slog.Any("error", err))
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not process request"})
}

func (s *SchedulerHandlerImpl) record(ctx context.Context, response responses.ScheduleResponse) {
	if s.store == nil {
		return
	}
	if err := s.store.Send(ctx, history.Event{OccurredAt: time.Now(), Response: response}); err != nil {
		s.log.Warn("record history", slog.String("algorithm", response.Algorithm), slog.Any("error", err))
	}
}

func badRequest(ctx *fiber.Ctx, err error) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
}
