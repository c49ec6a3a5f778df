package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/mahmoudkheyrati/cpu-scheduler-simulator/config"
	"github.com/mahmoudkheyrati/cpu-scheduler-simulator/internal/requests"
	"github.com/mahmoudkheyrati/cpu-scheduler-simulator/internal/responses"
	"github.com/mahmoudkheyrati/cpu-scheduler-simulator/internal/schedulers"
	"github.com/mahmoudkheyrati/cpu-scheduler-simulator/internal/service"
)

type SchedulerHandler interface {
	HighestResponseRatioNext(ctx *fiber.Ctx) error
	MultilevelFeedbackQueue(ctx *fiber.Ctx) error
	FirstComeFirstServe(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Algorithms(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config  *config.SchedulerConfig
	service *service.SimulationService
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, service *service.SimulationService) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config, service: service}
}

func (s *SchedulerHandlerImpl) HighestResponseRatioNext(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.HRRN)
}

func (s *SchedulerHandlerImpl) MultilevelFeedbackQueue(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.MLFQ)
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.FCFS)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.RR)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.SJF)
}

// AllAlgorithms runs every policy, or the comma separated ?algorithms= subset,
// over the same jobs. Repeated names run once.
func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, ok := s.parseRequest(ctx)
	if !ok {
		return nil
	}
	algorithms := parseAlgorithms(ctx.Query("algorithms"))
	if len(algorithms) == 0 {
		algorithms = s.service.Algorithms()
	}

	results, err := s.service.Compare(ctx.UserContext(), algorithms, request.Processes())
	if err != nil {
		return s.writeError(ctx, err)
	}
	response := &responses.AllAlgorithmsResponse{Results: make(map[string]*responses.ScheduleResponse, len(results))}
	for _, result := range results {
		response.Results[result.Algorithm] = responses.NewScheduleResponse(result)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) Algorithms(ctx *fiber.Ctx) error {
	return ctx.JSON(&responses.AlgorithmsResponse{
		Algorithms:                               s.service.Algorithms(),
		RoundRobinTimeQuantum:                    s.config.RoundRobinTimeQuantum,
		MultilevelFeedbackQueueLevelsTimeQuantum: s.config.MultilevelFeedbackQueueLevelsTimeQuantum,
	})
}

func (s *SchedulerHandlerImpl) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "ok"})
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, algorithm string) error {
	request, ok := s.parseRequest(ctx)
	if !ok {
		return nil
	}
	result, err := s.service.Simulate(ctx.UserContext(), algorithm, request.Processes())
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(responses.NewScheduleResponse(result))
}

// parseRequest decodes the body and writes a 400 when it cannot. The caller
// stops when ok is false.
func (s *SchedulerHandlerImpl) parseRequest(ctx *fiber.Ctx) (*requests.ScheduleRequests, bool) {
	request := new(requests.ScheduleRequests)
	if err := ctx.BodyParser(request); err != nil {
		_ = ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request format"})
		return nil, false
	}
	return request, true
}

func (s *SchedulerHandlerImpl) writeError(ctx *fiber.Ctx, err error) error {
	if errors.Is(err, schedulers.ErrInvalidInput) || errors.Is(err, schedulers.ErrUnknownScheduler) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	logrus.WithError(err).WithField("path", ctx.Path()).Error("can not process request")
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not process request"})
}

// parseAlgorithms splits a comma separated list, trimming blanks and dropping
// empty and repeated names while keeping first-seen order.
func parseAlgorithms(query string) []string {
	var algorithms []string
	seen := make(map[string]bool)
	for _, name := range strings.Split(query, ",") {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		algorithms = append(algorithms, name)
	}
	return algorithms
}
