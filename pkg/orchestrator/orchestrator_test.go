package orchestrator

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/strategize/pathway/pkg/generation"
	"github.com/strategize/pathway/pkg/health"
	"github.com/strategize/pathway/pkg/models"
	"github.com/strategize/pathway/pkg/persistence"
	"github.com/strategize/pathway/pkg/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memorySessionRepo struct {
	sessions map[string]*models.Session
}

func (r *memorySessionRepo) GetByID(_ context.Context, id string) (*models.Session, error) {
	session, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}

	return session, nil
}

func (r *memorySessionRepo) Save(_ context.Context, session *models.Session) error {
	r.sessions[session.ID] = session

	return nil
}

func (r *memorySessionRepo) List(_ context.Context, opts persistence.ListSessionsOptions) ([]*models.Session, error) {
	sessions := make([]*models.Session, 0)

	for _, session := range r.sessions {
		if opts.UserID != "" && session.UserID != opts.UserID {
			continue
		}

		sessions = append(sessions, session)
	}

	return sessions, nil
}

func (r *memorySessionRepo) Delete(_ context.Context, id string) error {
	delete(r.sessions, id)

	return nil
}

type memoryPersistence struct {
	sessionRepo *memorySessionRepo
}

func newMemoryPersistence() *memoryPersistence {
	return &memoryPersistence{sessionRepo: &memorySessionRepo{sessions: make(map[string]*models.Session)}}
}

func (p *memoryPersistence) SessionRepository() persistence.SessionRepository { return p.sessionRepo }
func (p *memoryPersistence) ScoringRepository() persistence.ScoringRepository { return nil }
func (p *memoryPersistence) HealthCheck(_ context.Context) error              { return nil }
func (p *memoryPersistence) Close(_ context.Context) error                    { return nil }

type stubGenerator struct {
	text string
	err  error
}

func (g *stubGenerator) Generate(_ context.Context, _ string, _ map[string]any) (string, error) {
	if g.err != nil {
		return "", g.err
	}

	return g.text, nil
}

func newTestOrchestrator(t *testing.T, generator generation.Generator, probe health.Probe) *Orchestrator {
	t.Helper()

	pathwayRouter, err := router.NewRouter()
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewOrchestrator(logger, pathwayRouter, newMemoryPersistence(), nil, generator, probe, nil)
}

func createBusinessModelSession(t *testing.T, o *Orchestrator) *models.Session {
	t.Helper()

	session, err := o.CreateSession(t.Context(), CreateSessionRequest{
		UserID:      "user-1",
		WorkspaceID: "ws-1",
		Pathway:     models.PathwayBusinessModelProblem,
	})
	require.NoError(t, err)

	return session
}

func TestCreateSession(t *testing.T) {
	o := newTestOrchestrator(t, &stubGenerator{text: "text"}, health.Static(true))

	session := createBusinessModelSession(t, o)

	assert.NotEmpty(t, session.ID)
	assert.Equal(t, models.SessionStatusActive, session.Status)
	assert.Equal(t, "problem-framing", session.CurrentPhaseID)
	assert.Equal(t, 0, session.CompletionPercentage)
	assert.Contains(t, session.PhaseData, "problem-framing")

	loaded, err := o.GetSession(t.Context(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, loaded.ID)
}

func TestCreateSession_ValidationError(t *testing.T) {
	o := newTestOrchestrator(t, &stubGenerator{text: "text"}, health.Static(true))

	_, err := o.CreateSession(t.Context(), CreateSessionRequest{
		WorkspaceID: "ws-1",
		Pathway:     models.PathwayNewIdea,
	})
	assert.True(t, IsValidationError(err))
}

func TestCreateSession_UnknownPathway(t *testing.T) {
	o := newTestOrchestrator(t, &stubGenerator{text: "text"}, health.Static(true))

	_, err := o.CreateSession(t.Context(), CreateSessionRequest{
		UserID:      "user-1",
		WorkspaceID: "ws-1",
		Pathway:     models.PathwayType("nonsense"),
	})
	assert.True(t, IsNotFoundError(err))
}

func TestGetSession_Unknown(t *testing.T) {
	o := newTestOrchestrator(t, &stubGenerator{text: "text"}, health.Static(true))

	session, err := o.GetSession(t.Context(), "missing")
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestAdvanceSession_UnknownSession(t *testing.T) {
	o := newTestOrchestrator(t, &stubGenerator{text: "text"}, health.Static(true))

	_, err := o.AdvanceSession(t.Context(), "missing", nil)
	assert.True(t, IsNotFoundError(err))
}

func TestAdvanceSession_ValidationFailure(t *testing.T) {
	o := newTestOrchestrator(t, &stubGenerator{text: "text"}, health.Static(true))
	session := createBusinessModelSession(t, o)

	result, err := o.AdvanceSession(t.Context(), session.ID, map[string]any{
		"problem_description": "too short",
	})
	require.NoError(t, err)

	assert.False(t, result.Valid)
	assert.NotEmpty(t, result.Failures)
	assert.Equal(t, "problem-framing", result.Session.CurrentPhaseID)
	assert.Equal(t, 0, result.Session.CompletionPercentage)
	assert.Equal(t, models.ValidationInvalid, result.Session.PhaseData["problem-framing"].ValidationStatus)
}

var lifecycleInputs = map[string]map[string]any{
	"problem-framing": {
		"problem_description": "Our subscription revenue has flatlined and churn keeps climbing",
		"target_market":       "mid-market B2B teams",
	},
	"revenue-exploration":    {"revenue_notes": "subscription still looks strongest"},
	"customer-segmentation":  {"segment_priorities": "mid-market operators first"},
	"monetization-strategy":  {"strategy_feedback": "tiered pricing makes sense"},
	"implementation-roadmap": {"commitment": "start validation interviews next week"},
}

func TestAdvanceSession_FullLifecycle(t *testing.T) {
	o := newTestOrchestrator(t, &stubGenerator{text: "generated narrative"}, health.Static(true))
	session := createBusinessModelSession(t, o)

	phases := []string{
		"problem-framing",
		"revenue-exploration",
		"customer-segmentation",
		"monetization-strategy",
		"implementation-roadmap",
	}

	progress := 0

	for i, phaseID := range phases {
		require.Equal(t, phaseID, mustGet(t, o, session.ID).CurrentPhaseID)

		result, err := o.AdvanceSession(t.Context(), session.ID, lifecycleInputs[phaseID])
		require.NoError(t, err)
		require.True(t, result.Valid, "phase %s failed: %v", phaseID, result.Failures)

		if result.StageResult != nil {
			require.True(t, result.StageResult.Success, "stage on %s failed: %s", phaseID, result.StageResult.Error)
		}

		assert.Greater(t, result.UpdatedProgress, progress)
		progress = result.UpdatedProgress

		if i == len(phases)-1 {
			assert.True(t, result.Completed)
		} else {
			assert.NotEmpty(t, result.NextPhaseID)
		}
	}

	final := mustGet(t, o, session.ID)
	assert.Equal(t, models.SessionStatusCompleted, final.Status)
	assert.Equal(t, 100, final.CompletionPercentage)
	assert.True(t, final.AnalysisResults.Sealed())
	assert.NotNil(t, final.CompletedAt)

	_, err := o.AdvanceSession(t.Context(), session.ID, nil)
	assert.True(t, IsStateError(err))
}

func TestAdvanceSession_FallbackWhenGeneratorDown(t *testing.T) {
	o := newTestOrchestrator(t, &stubGenerator{text: "never used"}, health.Static(false))
	session := createBusinessModelSession(t, o)

	result, err := o.AdvanceSession(t.Context(), session.ID, lifecycleInputs["problem-framing"])
	require.NoError(t, err)
	require.True(t, result.Valid)

	result, err = o.AdvanceSession(t.Context(), session.ID, lifecycleInputs["revenue-exploration"])
	require.NoError(t, err)
	require.True(t, result.Valid)
	require.NotNil(t, result.StageResult)
	assert.True(t, result.StageResult.Success)

	revenue := mustGet(t, o, session.ID).AnalysisResults.Revenue
	require.NotNil(t, revenue)
	assert.Contains(t, revenue.Summary, "revenue model outlook")
}

func TestAdvanceSession_StageFailureKeepsPhase(t *testing.T) {
	o := newTestOrchestrator(t, &stubGenerator{err: errors.New("collaborator exploded")}, health.Static(true))
	session := createBusinessModelSession(t, o)

	result, err := o.AdvanceSession(t.Context(), session.ID, lifecycleInputs["problem-framing"])
	require.NoError(t, err)
	require.True(t, result.Valid)

	result, err = o.AdvanceSession(t.Context(), session.ID, lifecycleInputs["revenue-exploration"])
	require.NoError(t, err)

	require.NotNil(t, result.StageResult)
	assert.False(t, result.StageResult.Success)
	assert.Empty(t, result.NextPhaseID)
	assert.Equal(t, "revenue-exploration", mustGet(t, o, session.ID).CurrentPhaseID)
	assert.False(t, mustGet(t, o, session.ID).AnalysisResults.Has(models.StageRevenueAnalysis))
}

func TestAdvanceSession_AfterOnDemandStageRun(t *testing.T) {
	o := newTestOrchestrator(t, &stubGenerator{text: "generated narrative"}, health.Static(true))
	session := createBusinessModelSession(t, o)

	result, err := o.AdvanceSession(t.Context(), session.ID, lifecycleInputs["problem-framing"])
	require.NoError(t, err)
	require.True(t, result.Valid)

	stageResult, err := o.RunStage(t.Context(), session.ID, models.StageRevenueAnalysis)
	require.NoError(t, err)
	require.True(t, stageResult.Success)
	require.True(t, mustGet(t, o, session.ID).AnalysisResults.Has(models.StageRevenueAnalysis))

	result, err = o.AdvanceSession(t.Context(), session.ID, lifecycleInputs["revenue-exploration"])
	require.NoError(t, err)
	require.True(t, result.Valid, "advance after on-demand stage run failed: %v", result.Failures)

	assert.Nil(t, result.StageResult)
	assert.Equal(t, "customer-segmentation", result.NextPhaseID)
	assert.Equal(t, "customer-segmentation", mustGet(t, o, session.ID).CurrentPhaseID)
}

func TestRunStage_PrerequisiteFailure(t *testing.T) {
	o := newTestOrchestrator(t, &stubGenerator{text: "text"}, health.Static(true))
	session := createBusinessModelSession(t, o)

	result, err := o.RunStage(t.Context(), session.ID, models.StageMonetizationStrategy)
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "prerequisites not met")
	assert.False(t, mustGet(t, o, session.ID).AnalysisResults.Has(models.StageMonetizationStrategy))
}

func TestPauseResumeAbandon(t *testing.T) {
	o := newTestOrchestrator(t, &stubGenerator{text: "text"}, health.Static(true))
	session := createBusinessModelSession(t, o)

	paused, err := o.PauseSession(t.Context(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SessionStatusPaused, paused.Status)

	_, err = o.PauseSession(t.Context(), session.ID)
	assert.True(t, IsStateError(err))

	_, err = o.AdvanceSession(t.Context(), session.ID, nil)
	assert.True(t, IsStateError(err))

	resumed, err := o.ResumeSession(t.Context(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SessionStatusActive, resumed.Status)

	_, err = o.ResumeSession(t.Context(), session.ID)
	assert.True(t, IsStateError(err))

	abandoned, err := o.AbandonSession(t.Context(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SessionStatusAbandoned, abandoned.Status)

	_, err = o.ResumeSession(t.Context(), session.ID)
	assert.True(t, IsStateError(err))

	_, err = o.AbandonSession(t.Context(), session.ID)
	assert.True(t, IsStateError(err))
}

func mustGet(t *testing.T, o *Orchestrator, sessionID string) *models.Session {
	t.Helper()

	session, err := o.GetSession(t.Context(), sessionID)
	require.NoError(t, err)
	require.NotNil(t, session)

	return session
}
