package web_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/strategize/pathway/pkg/health"
	"github.com/strategize/pathway/pkg/models"
	"github.com/strategize/pathway/pkg/orchestrator"
	"github.com/strategize/pathway/pkg/persistence"
	"github.com/strategize/pathway/pkg/persistence/file"
	"github.com/strategize/pathway/pkg/router"
	"github.com/strategize/pathway/pkg/web"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticGenerator struct{}

func (staticGenerator) Generate(_ context.Context, _ string, _ map[string]any) (string, error) {
	return "generated narrative", nil
}

func setupTestApp(t *testing.T) (*fiber.App, persistence.Persistence) {
	t.Helper()

	persist := file.NewPersistence(t.TempDir())

	pathwayRouter, err := router.NewRouter()
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	orch := orchestrator.NewOrchestrator(logger, pathwayRouter, persist, nil, staticGenerator{}, health.Static(true), nil)

	handlers := web.NewAPIHandlers(pathwayRouter, orch, persist, validator.New(validator.WithRequiredStructEnabled()))

	app := fiber.New()

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

	return app, persist
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload any) (*http.Response, []byte) {
	t.Helper()

	var body []byte

	if str, ok := payload.(string); ok {
		body = []byte(str)
	} else if payload != nil {
		var err error

		body, err = json.Marshal(payload)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, raw
}

func createSession(t *testing.T, app *fiber.App) *models.Session {
	t.Helper()

	resp, body := doJSON(t, app, http.MethodPost, "/sessions/", web.CreateSessionRequest{
		UserID:      "user-1",
		WorkspaceID: "ws-1",
		Pathway:     models.PathwayBusinessModelProblem,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var session models.Session
	require.NoError(t, json.Unmarshal(body, &session))

	return &session
}

func TestAnalyzeIntent(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/pathways/analyze-intent", web.AnalyzeIntentRequest{
		Input: "I'm struggling with monetization and revenue streams",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var analysis models.IntentAnalysis
	require.NoError(t, json.Unmarshal(body, &analysis))
	assert.Equal(t, models.PathwayBusinessModelProblem, analysis.Primary)
	assert.Greater(t, analysis.Confidence, 0.5)
	assert.NotEmpty(t, analysis.Alternatives)
}

func TestAnalyzeIntent_BadRequests(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/pathways/analyze-intent", web.AnalyzeIntentRequest{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/pathways/analyze-intent", "not-json")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetPathways(t *testing.T) {
	app, _ := setupTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/pathways/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var payload struct {
		Pathways []*models.PathwayTemplate `json:"pathways"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Len(t, payload.Pathways, 6)
}

func TestGetPathway(t *testing.T) {
	app, _ := setupTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/pathways/business_model_problem", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/pathways/nonsense", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateSession_Errors(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/sessions/", web.CreateSessionRequest{
		UserID:  "user-1",
		Pathway: models.PathwayNewIdea,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/sessions/", web.CreateSessionRequest{
		UserID:      "user-1",
		WorkspaceID: "ws-1",
		Pathway:     models.PathwayType("nonsense"),
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListSessions_InvalidStatus(t *testing.T) {
	app, _ := setupTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/sessions/?user_id=user-1&status=bogus", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetSession(t *testing.T) {
	app, _ := setupTestApp(t)
	session := createSession(t, app)

	req := httptest.NewRequest(http.MethodGet, "/sessions/"+session.ID, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/sessions/unknown-id", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAdvanceSession(t *testing.T) {
	app, _ := setupTestApp(t)
	session := createSession(t, app)

	resp, body := doJSON(t, app, http.MethodPost, "/sessions/"+session.ID+"/advance", web.AdvanceSessionRequest{
		Inputs: map[string]any{"problem_description": "too short"},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var invalid orchestrator.AdvanceResult
	require.NoError(t, json.Unmarshal(body, &invalid))
	assert.False(t, invalid.Valid)
	assert.NotEmpty(t, invalid.Failures)

	resp, body = doJSON(t, app, http.MethodPost, "/sessions/"+session.ID+"/advance", web.AdvanceSessionRequest{
		Inputs: map[string]any{
			"problem_description": "Our subscription revenue has flatlined and churn keeps climbing",
			"target_market":       "mid-market B2B teams",
		},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var valid orchestrator.AdvanceResult
	require.NoError(t, json.Unmarshal(body, &valid))
	assert.True(t, valid.Valid)
	assert.Equal(t, "revenue-exploration", valid.NextPhaseID)
	assert.Greater(t, valid.UpdatedProgress, 0)
}

func TestPauseResumeConflicts(t *testing.T) {
	app, _ := setupTestApp(t)
	session := createSession(t, app)

	resp, _ := doJSON(t, app, http.MethodPost, "/sessions/"+session.ID+"/pause", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/sessions/"+session.ID+"/pause", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/sessions/"+session.ID+"/resume", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/sessions/"+session.ID+"/abandon", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/sessions/"+session.ID+"/resume", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestRunStage_PrerequisiteFailure(t *testing.T) {
	app, _ := setupTestApp(t)
	session := createSession(t, app)

	resp, body := doJSON(t, app, http.MethodPost, "/sessions/"+session.ID+"/analysis/monetization_strategy", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, string(body), "prerequisites not met")
}

func TestPriorityScore(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/tools/priority-score", web.PriorityScoreRequest{
		Impact: 8,
		Effort: 2,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var payload struct {
		Scoring        models.PriorityScoring `json:"scoring"`
		Recommendation string                 `json:"recommendation"`
		NextSteps      []string               `json:"next_steps"`
	}
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.InDelta(t, 4.0, payload.Scoring.CalculatedPriority, 0.0001)
	assert.Equal(t, models.QuadrantQuickWins, payload.Scoring.Quadrant)
	assert.NotEmpty(t, payload.Recommendation)
	assert.NotEmpty(t, payload.NextSteps)
}

func TestPriorityScore_OutOfRange(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/tools/priority-score", web.PriorityScoreRequest{
		Impact: 0,
		Effort: 11,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPriorityScore_PersistsForSession(t *testing.T) {
	app, persist := setupTestApp(t)
	session := createSession(t, app)

	resp, _ := doJSON(t, app, http.MethodPost, "/tools/priority-score", web.PriorityScoreRequest{
		Impact:    6,
		Effort:    3,
		SessionID: session.ID,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	scorings, err := persist.ScoringRepository().ListBySession(t.Context(), session.ID)
	require.NoError(t, err)
	require.Len(t, scorings, 1)
	assert.Equal(t, session.ID, scorings[0].SessionID)
}

func TestExtractAssumptions(t *testing.T) {
	app, _ := setupTestApp(t)

	messages := []models.Message{
		{Role: models.RoleUser, Content: "We're assuming that enterprise buyers need SSO before they purchase."},
		{Role: models.RoleAssistant, Content: "Is that really true? Have you validated it with buyers?"},
	}

	resp, body := doJSON(t, app, http.MethodPost, "/tools/extract-assumptions", web.ExtractAssumptionsRequest{
		Messages: messages,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var payload struct {
		Assumptions []models.Assumption `json:"assumptions"`
	}
	require.NoError(t, json.Unmarshal(body, &payload))
	require.Len(t, payload.Assumptions, 1)
	assert.True(t, payload.Assumptions[0].Challenged)

	resp, raw := doJSON(t, app, http.MethodPost, "/tools/extract-assumptions", web.ExtractAssumptionsRequest{
		Messages: messages,
		Format:   "markdown",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), "# Assumptions")
}

func TestExtractAssumptions_EmptyMessages(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/tools/extract-assumptions", web.ExtractAssumptionsRequest{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHealthCheck(t *testing.T) {
	app, _ := setupTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
