// Package orchestrator owns the session state machine: it creates sessions
// from pathway templates, advances them phase by phase under validation,
// dispatches bound analysis stages and publishes lifecycle events. It is the
// only writer of session records.
package orchestrator

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/strategize/pathway/pkg/analysis"
	"github.com/strategize/pathway/pkg/eventbus"
	"github.com/strategize/pathway/pkg/events"
	"github.com/strategize/pathway/pkg/generation"
	"github.com/strategize/pathway/pkg/health"
	"github.com/strategize/pathway/pkg/models"
	"github.com/strategize/pathway/pkg/persistence"
	"github.com/strategize/pathway/pkg/router"
)

// Orchestrator coordinates sessions over the pathway catalog. Concurrent
// advances against the same session id must be serialized by the caller or
// the persistence layer; the orchestrator itself assumes a single writer per
// session.
type Orchestrator struct {
	logger      *slog.Logger
	router      *router.Router
	persistence persistence.Persistence
	eventBus    eventbus.EventBus
	pipeline    *analysis.Pipeline
	validator   *validator.Validate
}

// NewOrchestrator wires the session state machine. The generator is guarded
// by the probe: when the text-generation collaborator is down, analysis
// stages fall back to deterministic template content instead of calling out.
func NewOrchestrator(
	logger *slog.Logger,
	pathwayRouter *router.Router,
	persist persistence.Persistence,
	bus eventbus.EventBus,
	generator generation.Generator,
	probe health.Probe,
	tracer trace.Tracer,
) *Orchestrator {
	guarded := generation.NewGuarded(probe, generator)

	return &Orchestrator{
		logger:      logger.With("module", "orchestrator"),
		router:      pathwayRouter,
		persistence: persist,
		eventBus:    bus,
		pipeline:    analysis.NewPipeline(logger, guarded, tracer),
		validator:   validator.New(),
	}
}

// CreateSessionRequest carries the parameters for starting a pathway session.
type CreateSessionRequest struct {
	UserID         string             `validate:"required"`
	WorkspaceID    string             `validate:"required"`
	Pathway        models.PathwayType `validate:"required"`
	InitialContext map[string]any
}

// CreateSession instantiates a session on the template's first phase.
func (o *Orchestrator) CreateSession(ctx context.Context, req CreateSessionRequest) (*models.Session, error) {
	if err := o.validator.Struct(req); err != nil {
		return nil, newError(CodeValidation, "CreateSession", "invalid request", err)
	}

	template := o.router.GetPathway(req.Pathway)
	if template == nil {
		return nil, newError(CodeNotFound, "CreateSession", "unknown pathway "+string(req.Pathway), nil)
	}

	first := template.FirstPhase()
	now := time.Now().UTC()

	session := &models.Session{
		ID:             uuid.New().String(),
		UserID:         req.UserID,
		WorkspaceID:    req.WorkspaceID,
		TemplateID:     template.ID,
		Pathway:        req.Pathway,
		CurrentPhaseID: first.ID,
		PhaseData: map[string]*models.PhaseData{
			first.ID: models.NewPhaseData(first.ID),
		},
		AnalysisResults:      &models.AnalysisResults{},
		CompletionPercentage: 0,
		Status:               models.SessionStatusActive,
		InitialContext:       req.InitialContext,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := o.persistence.SessionRepository().Save(ctx, session); err != nil {
		return nil, newError(CodeInternal, "CreateSession", "failed to save session", err)
	}

	o.publish(ctx, session.ID, events.SessionCreated{
		BaseEvent:   o.baseEvent(events.SessionCreatedEvent, session.ID),
		UserID:      session.UserID,
		WorkspaceID: session.WorkspaceID,
		Pathway:     session.Pathway,
	})

	o.logger.InfoContext(ctx, "Session created",
		"session_id", session.ID,
		"pathway", session.Pathway,
		"first_phase", first.ID,
	)

	return session, nil
}

// GetSession returns the session or (nil, nil) when the id is unknown.
func (o *Orchestrator) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	session, err := o.persistence.SessionRepository().GetByID(ctx, sessionID)
	if err != nil {
		return nil, newError(CodeInternal, "GetSession", "failed to load session", err)
	}

	return session, nil
}

// ListSessions returns the caller's sessions, optionally filtered.
func (o *Orchestrator) ListSessions(ctx context.Context, opts persistence.ListSessionsOptions) ([]*models.Session, error) {
	sessions, err := o.persistence.SessionRepository().List(ctx, opts)
	if err != nil {
		if persistence.IsInvalidSessionStatus(err) {
			return nil, newError(CodeValidation, "ListSessions", "invalid status filter", err)
		}

		return nil, newError(CodeInternal, "ListSessions", "failed to list sessions", err)
	}

	return sessions, nil
}

// AdvanceResult reports the outcome of one advance attempt. Valid false means
// the current phase's inputs failed validation and nothing moved.
type AdvanceResult struct {
	Session         *models.Session       `json:"session"`
	Valid           bool                  `json:"valid"`
	Failures        []string              `json:"failures,omitempty"`
	NextPhaseID     string                `json:"next_phase_id,omitempty"`
	Completed       bool                  `json:"completed"`
	UpdatedProgress int                   `json:"updated_progress"`
	StageResult     *analysis.StageResult `json:"stage_result,omitempty"`
}

// AdvanceSession validates the current phase's inputs, runs any analysis
// stage bound to the phase, and on success moves the session forward. The
// completion percentage never decreases. A failed bound stage leaves the
// session on its current phase with the failure surfaced in the result.
func (o *Orchestrator) AdvanceSession(ctx context.Context, sessionID string, inputs map[string]any) (*AdvanceResult, error) {
	session, template, err := o.loadMutable(ctx, "AdvanceSession", sessionID)
	if err != nil {
		return nil, err
	}

	if session.Status == models.SessionStatusPaused {
		return nil, newError(CodeState, "AdvanceSession", "session is paused; resume it first", nil)
	}

	phase := template.PhaseByID(session.CurrentPhaseID)
	if phase == nil {
		return nil, newError(CodeInternal, "AdvanceSession", "session references unknown phase "+session.CurrentPhaseID, nil)
	}

	phaseData, ok := session.PhaseData[phase.ID]
	if !ok {
		phaseData = models.NewPhaseData(phase.ID)
		session.PhaseData[phase.ID] = phaseData
	}

	for key, value := range inputs {
		phaseData.Inputs[key] = value
	}

	if failures := validateInputs(phase.ValidationRules, phaseData.Inputs); len(failures) > 0 {
		phaseData.ValidationStatus = models.ValidationInvalid

		if err := o.persistence.SessionRepository().Save(ctx, session); err != nil {
			return nil, newError(CodeInternal, "AdvanceSession", "failed to save session", err)
		}

		o.publish(ctx, session.ID, events.PhaseInvalidated{
			BaseEvent: o.baseEvent(events.PhaseInvalidatedEvent, session.ID),
			PhaseID:   phase.ID,
			Failures:  failures,
		})

		return &AdvanceResult{
			Session:         session,
			Valid:           false,
			Failures:        failures,
			UpdatedProgress: session.CompletionPercentage,
		}, nil
	}

	result := &AdvanceResult{Session: session, Valid: true}

	// A bound stage runs before the phase transition commits. A failed stage
	// keeps the session on the current phase so the advance can be retried.
	// A stage with a recorded result (an earlier on-demand run) counts as
	// satisfied and is not re-run; results are append-only.
	if phase.AnalysisStage != "" && !session.AnalysisResults.Has(phase.AnalysisStage) {
		stageResult := o.runStage(ctx, session, phase.AnalysisStage)
		result.StageResult = &stageResult

		if !stageResult.Success {
			phaseData.ValidationStatus = models.ValidationPending

			if err := o.persistence.SessionRepository().Save(ctx, session); err != nil {
				return nil, newError(CodeInternal, "AdvanceSession", "failed to save session", err)
			}

			result.UpdatedProgress = session.CompletionPercentage

			return result, nil
		}
	}

	now := time.Now().UTC()
	phaseData.ValidationStatus = models.ValidationValid
	phaseData.CompletedAt = &now

	session.CompletionPercentage = completionPercentage(session.CompletedPhases(), len(template.Phases))
	result.UpdatedProgress = session.CompletionPercentage

	next := template.NextPhase(phase)
	if next != nil {
		session.CurrentPhaseID = next.ID

		if _, ok := session.PhaseData[next.ID]; !ok {
			session.PhaseData[next.ID] = models.NewPhaseData(next.ID)
		}

		result.NextPhaseID = next.ID
	} else {
		session.Status = models.SessionStatusCompleted
		session.CompletedAt = &now
		result.Completed = true
	}

	if err := o.persistence.SessionRepository().Save(ctx, session); err != nil {
		return nil, newError(CodeInternal, "AdvanceSession", "failed to save session", err)
	}

	o.publish(ctx, session.ID, events.PhaseCompleted{
		BaseEvent:            o.baseEvent(events.PhaseCompletedEvent, session.ID),
		PhaseID:              phase.ID,
		NextPhaseID:          result.NextPhaseID,
		CompletionPercentage: session.CompletionPercentage,
	})

	if result.Completed {
		o.publish(ctx, session.ID, events.SessionCompleted{
			BaseEvent: o.baseEvent(events.SessionCompletedEvent, session.ID),
			Pathway:   session.Pathway,
			Duration:  now.Sub(session.CreatedAt),
		})
	}

	o.logger.InfoContext(ctx, "Session advanced",
		"session_id", session.ID,
		"phase", phase.ID,
		"next_phase", result.NextPhaseID,
		"progress", session.CompletionPercentage,
	)

	return result, nil
}

// RunStage executes one analysis stage on demand, outside phase advancement.
// Prerequisite violations come back as a failed stage result, not an error.
func (o *Orchestrator) RunStage(ctx context.Context, sessionID string, stage models.StageType) (*analysis.StageResult, error) {
	session, _, err := o.loadMutable(ctx, "RunStage", sessionID)
	if err != nil {
		return nil, err
	}

	stageResult := o.runStage(ctx, session, stage)

	if stageResult.Success {
		if err := o.persistence.SessionRepository().Save(ctx, session); err != nil {
			return nil, newError(CodeInternal, "RunStage", "failed to save session", err)
		}
	}

	return &stageResult, nil
}

// runStage executes the stage against the session and records a successful
// result into the session's analysis aggregate. The caller persists.
func (o *Orchestrator) runStage(ctx context.Context, session *models.Session, stage models.StageType) analysis.StageResult {
	if session.AnalysisResults == nil {
		session.AnalysisResults = &models.AnalysisResults{}
	}

	input := analysis.InputFromSession(session)

	stageResult := o.pipeline.Run(ctx, stage, input)

	if stageResult.Success {
		if err := analysis.Apply(session.AnalysisResults, stageResult); err != nil {
			stageResult = analysis.StageResult{Stage: stage, Success: false, Error: err.Error()}
		}
	}

	if stageResult.Success {
		o.publish(ctx, session.ID, events.StageCompleted{
			BaseEvent:  o.baseEvent(events.StageCompletedEvent, session.ID),
			Stage:      stage,
			Confidence: stageResult.Confidence,
		})
	} else {
		o.publish(ctx, session.ID, events.StageFailed{
			BaseEvent: o.baseEvent(events.StageFailedEvent, session.ID),
			Stage:     stage,
			Error:     stageResult.Error,
		})
	}

	return stageResult
}

// ValidatePhasePrerequisites reports the stages that must succeed before the
// given stage may run for this session.
func (o *Orchestrator) ValidatePhasePrerequisites(session *models.Session, stage models.StageType) []models.StageType {
	return analysis.MissingPrerequisites(stage, session.AnalysisResults)
}

// PauseSession suspends an active session. Phase state is untouched.
func (o *Orchestrator) PauseSession(ctx context.Context, sessionID string) (*models.Session, error) {
	session, _, err := o.loadMutable(ctx, "PauseSession", sessionID)
	if err != nil {
		return nil, err
	}

	if session.Status != models.SessionStatusActive {
		return nil, newError(CodeState, "PauseSession", "only active sessions can be paused", nil)
	}

	session.Status = models.SessionStatusPaused

	if err := o.persistence.SessionRepository().Save(ctx, session); err != nil {
		return nil, newError(CodeInternal, "PauseSession", "failed to save session", err)
	}

	o.publish(ctx, session.ID, events.SessionPaused{BaseEvent: o.baseEvent(events.SessionPausedEvent, session.ID)})

	return session, nil
}

// ResumeSession reactivates a paused session.
func (o *Orchestrator) ResumeSession(ctx context.Context, sessionID string) (*models.Session, error) {
	session, _, err := o.loadMutable(ctx, "ResumeSession", sessionID)
	if err != nil {
		return nil, err
	}

	if session.Status != models.SessionStatusPaused {
		return nil, newError(CodeState, "ResumeSession", "only paused sessions can be resumed", nil)
	}

	session.Status = models.SessionStatusActive

	if err := o.persistence.SessionRepository().Save(ctx, session); err != nil {
		return nil, newError(CodeInternal, "ResumeSession", "failed to save session", err)
	}

	o.publish(ctx, session.ID, events.SessionResumed{BaseEvent: o.baseEvent(events.SessionResumedEvent, session.ID)})

	return session, nil
}

// AbandonSession closes a session permanently at the user's request.
func (o *Orchestrator) AbandonSession(ctx context.Context, sessionID string) (*models.Session, error) {
	session, _, err := o.loadMutable(ctx, "AbandonSession", sessionID)
	if err != nil {
		return nil, err
	}

	session.Status = models.SessionStatusAbandoned

	if err := o.persistence.SessionRepository().Save(ctx, session); err != nil {
		return nil, newError(CodeInternal, "AbandonSession", "failed to save session", err)
	}

	o.publish(ctx, session.ID, events.SessionAbandoned{
		BaseEvent:   o.baseEvent(events.SessionAbandonedEvent, session.ID),
		LastPhaseID: session.CurrentPhaseID,
	})

	return session, nil
}

// loadMutable fetches a session for mutation, rejecting unknown ids and
// terminal sessions.
func (o *Orchestrator) loadMutable(ctx context.Context, op, sessionID string) (*models.Session, *models.PathwayTemplate, error) {
	session, err := o.persistence.SessionRepository().GetByID(ctx, sessionID)
	if err != nil {
		return nil, nil, newError(CodeInternal, op, "failed to load session", err)
	}

	if session == nil {
		return nil, nil, newError(CodeNotFound, op, "session "+sessionID+" not found", nil)
	}

	if session.IsTerminal() {
		return nil, nil, newError(CodeState, op, "session closed: status is "+string(session.Status), nil)
	}

	template := o.router.GetPathway(session.Pathway)
	if template == nil {
		return nil, nil, newError(CodeInternal, op, "session references unknown pathway "+string(session.Pathway), nil)
	}

	return session, template, nil
}

func (o *Orchestrator) baseEvent(eventType events.EventType, sessionID string) events.BaseEvent {
	id := ""
	if o.eventBus != nil {
		id = o.eventBus.GenerateID()
	}

	return events.BaseEvent{
		ID:        id,
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		SessionID: sessionID,
	}
}

func (o *Orchestrator) publish(ctx context.Context, key string, event eventbus.Event) {
	if o.eventBus == nil {
		return
	}

	if err := o.eventBus.Publish(ctx, key, event); err != nil {
		o.logger.WarnContext(ctx, "Failed to publish event",
			"event_type", event.GetType(),
			"error", err,
		)
	}
}

func completionPercentage(completed, total int) int {
	if total == 0 {
		return 0
	}

	return int(float64(completed)/float64(total)*100 + 0.5)
}
