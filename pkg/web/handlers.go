// Package web provides HTTP handlers and REST API endpoints for the pathway
// engine: intent analysis, the pathway catalog, session lifecycle, analysis
// stages and the auxiliary scoring and assumption tools.
package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"

	"github.com/strategize/pathway/pkg/assumptions"
	"github.com/strategize/pathway/pkg/models"
	"github.com/strategize/pathway/pkg/orchestrator"
	"github.com/strategize/pathway/pkg/persistence"
	"github.com/strategize/pathway/pkg/priority"
	"github.com/strategize/pathway/pkg/router"
)

type APIHandlers struct {
	router       *router.Router
	orchestrator *orchestrator.Orchestrator
	persistence  persistence.Persistence
	validator    *validator.Validate
}

func NewAPIHandlers(
	pathwayRouter *router.Router,
	sessionOrchestrator *orchestrator.Orchestrator,
	persist persistence.Persistence,
	validate *validator.Validate,
) *APIHandlers {
	return &APIHandlers{
		router:       pathwayRouter,
		orchestrator: sessionOrchestrator,
		persistence:  persist,
		validator:    validate,
	}
}

func (h *APIHandlers) AnalyzeIntent(c fiber.Ctx) error {
	var req AnalyzeIntentRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	return c.JSON(h.router.AnalyzeIntent(req.Input))
}

func (h *APIHandlers) GetPathways(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"pathways": h.router.GetAllPathways(),
	})
}

func (h *APIHandlers) GetPathway(c fiber.Ctx) error {
	pathwayType := models.PathwayType(c.Params("type"))

	template := h.router.GetPathway(pathwayType)
	if template == nil {
		return notFound(c, "Pathway not found")
	}

	return c.JSON(template)
}

func (h *APIHandlers) CreateSession(c fiber.Ctx) error {
	var req CreateSessionRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	session, err := h.orchestrator.CreateSession(c.Context(), orchestrator.CreateSessionRequest{
		UserID:         req.UserID,
		WorkspaceID:    req.WorkspaceID,
		Pathway:        req.Pathway,
		InitialContext: req.InitialContext,
	})
	if err != nil {
		return handleOrchestratorError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(session)
}

func (h *APIHandlers) ListSessions(c fiber.Ctx) error {
	userID := c.Query("user_id")
	if userID == "" {
		return badRequest(c, "user_id query parameter is required")
	}

	opts := persistence.ListSessionsOptions{
		UserID:      userID,
		WorkspaceID: c.Query("workspace_id"),
	}

	if statusStr := c.Query("status"); statusStr != "" {
		status := models.SessionStatus(statusStr)
		opts.Status = &status
	}

	sessions, err := h.orchestrator.ListSessions(c.Context(), opts)
	if err != nil {
		return handleOrchestratorError(c, err)
	}

	return c.JSON(fiber.Map{"sessions": sessions})
}

func (h *APIHandlers) GetSession(c fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "Session ID is required")
	}

	session, err := h.orchestrator.GetSession(c.Context(), id)
	if err != nil {
		return handleOrchestratorError(c, err)
	}

	if session == nil {
		return notFound(c, "Session not found")
	}

	return c.JSON(session)
}

func (h *APIHandlers) AdvanceSession(c fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "Session ID is required")
	}

	var req AdvanceSessionRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	result, err := h.orchestrator.AdvanceSession(c.Context(), id, req.Inputs)
	if err != nil {
		return handleOrchestratorError(c, err)
	}

	if !result.Valid {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(result)
	}

	return c.JSON(result)
}

func (h *APIHandlers) PauseSession(c fiber.Ctx) error {
	return h.toggleSession(c, h.orchestrator.PauseSession)
}

func (h *APIHandlers) ResumeSession(c fiber.Ctx) error {
	return h.toggleSession(c, h.orchestrator.ResumeSession)
}

func (h *APIHandlers) AbandonSession(c fiber.Ctx) error {
	return h.toggleSession(c, h.orchestrator.AbandonSession)
}

func (h *APIHandlers) toggleSession(c fiber.Ctx, op func(ctx context.Context, sessionID string) (*models.Session, error)) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "Session ID is required")
	}

	session, err := op(c.Context(), id)
	if err != nil {
		return handleOrchestratorError(c, err)
	}

	return c.JSON(session)
}

func (h *APIHandlers) RunStage(c fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "Session ID is required")
	}

	stage := models.StageType(c.Params("stage"))

	result, err := h.orchestrator.RunStage(c.Context(), id, stage)
	if err != nil {
		return handleOrchestratorError(c, err)
	}

	if !result.Success {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(result)
	}

	return c.JSON(result)
}

func (h *APIHandlers) PriorityScore(c fiber.Ctx) error {
	var req PriorityScoreRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	scoring, err := priority.Calculate(req.Impact, req.Effort)
	if err != nil {
		if errors.Is(err, priority.ErrScoreOutOfRange) {
			return badRequest(c, err.Error())
		}

		return internalError(c, err)
	}

	if req.SessionID != "" {
		scoring.SessionID = req.SessionID

		if err := h.persistence.ScoringRepository().Save(c.Context(), scoring); err != nil {
			return handleOrchestratorError(c, err)
		}
	}

	return c.JSON(fiber.Map{
		"scoring":        scoring,
		"recommendation": priority.Recommendation(scoring.Quadrant),
		"risk_factors":   priority.RiskFactors(scoring.Quadrant),
		"next_steps":     priority.NextSteps(scoring.Quadrant),
	})
}

func (h *APIHandlers) ExtractAssumptions(c fiber.Ctx) error {
	var req ExtractAssumptionsRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	extracted := assumptions.Extract(req.Messages)

	if req.Format == "markdown" {
		c.Set(fiber.HeaderContentType, "text/markdown; charset=utf-8")

		return c.SendString(assumptions.FormatMarkdown(extracted))
	}

	return c.JSON(fiber.Map{
		"assumptions": extracted,
		"categorized": assumptions.Categorize(extracted),
	})
}

func (h *APIHandlers) HealthCheck(c fiber.Ctx) error {
	status := "healthy"
	message := "Pathway API is healthy"
	httpStatus := http.StatusOK

	var repository string

	if err := h.persistence.HealthCheck(c.Context()); err != nil {
		status = "unhealthy"
		message = "Pathway API is unhealthy"
		httpStatus = http.StatusInternalServerError
		repository = err.Error()
	} else {
		repository = "ok"
	}

	return c.Status(httpStatus).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"checkers": fiber.Map{
			"repository": repository,
		},
		"timestamp": time.Now().UTC(),
	})
}
