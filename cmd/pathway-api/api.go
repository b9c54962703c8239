// Package main provides the pathway API server implementation.
package main

import (
	"log/slog"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"go.opentelemetry.io/otel/trace"

	"github.com/strategize/pathway/pkg/eventbus"
	"github.com/strategize/pathway/pkg/generation"
	"github.com/strategize/pathway/pkg/health"
	"github.com/strategize/pathway/pkg/orchestrator"
	"github.com/strategize/pathway/pkg/persistence"
	"github.com/strategize/pathway/pkg/router"
	"github.com/strategize/pathway/pkg/web"
)

type API struct {
	logger      *slog.Logger
	persistence persistence.Persistence
	eventBus    eventbus.EventBus
	tracer      trace.Tracer
	validate    *validator.Validate
}

func NewAPI(
	logger *slog.Logger,
	persist persistence.Persistence,
	eventBus eventbus.EventBus,
	tracer trace.Tracer,
) *API {
	return &API{
		logger:      logger,
		persistence: persist,
		eventBus:    eventBus,
		tracer:      tracer,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (a *API) App() (*fiber.App, error) {
	pathwayRouter, err := router.NewRouter()
	if err != nil {
		return nil, err
	}

	// The template generator is the deterministic in-process collaborator; a
	// remote text-generation service would slot in here behind the same
	// interface, with its monitor flipping the registry entry.
	generator := generation.NewTemplateGenerator()
	probe := health.NewRegistry()
	probe.Set(generation.ServiceName, true)

	orch := orchestrator.NewOrchestrator(a.logger, pathwayRouter, a.persistence, a.eventBus, generator, probe, a.tracer)

	handlers := web.NewAPIHandlers(pathwayRouter, orch, a.persistence, a.validate)

	app := fiber.New()
	app.Use(cors.New())
	app.Use(logger.New(logger.Config{
		DisableColors: true,
	}))

	app.Get(healthcheck.DefaultLivenessEndpoint, healthcheck.NewHealthChecker())
	app.Get(healthcheck.DefaultReadinessEndpoint, healthcheck.NewHealthChecker())

	app.Get("/", func(c fiber.Ctx) error {
		return c.SendString("Pathway API")
	})

	p := app.Group("/pathways")
	p.Post("/analyze-intent", handlers.AnalyzeIntent)
	p.Get("/", handlers.GetPathways)
	p.Get("/:type", handlers.GetPathway)

	s := app.Group("/sessions")
	s.Post("/", handlers.CreateSession)
	s.Get("/", handlers.ListSessions)
	s.Get("/:id", handlers.GetSession)
	s.Post("/:id/advance", handlers.AdvanceSession)
	s.Post("/:id/pause", handlers.PauseSession)
	s.Post("/:id/resume", handlers.ResumeSession)
	s.Post("/:id/abandon", handlers.AbandonSession)
	s.Post("/:id/analysis/:stage", handlers.RunStage)

	tools := app.Group("/tools")
	tools.Post("/priority-score", handlers.PriorityScore)
	tools.Post("/extract-assumptions", handlers.ExtractAssumptions)

	app.Get("/health", handlers.HealthCheck)

	return app, nil
}

func (a *API) Start(port int) error {
	app, err := a.App()
	if err != nil {
		return err
	}

	return app.Listen(":" + strconv.Itoa(port))
}
