// Package events defines event types for session lifecycle notifications.
package events

import (
	"time"

	"github.com/strategize/pathway/pkg/models"
)

type EventType string

const Topic = "pathway.events"

const EventMetadataKey = "key"
const EventTypeMetadataKey = "event_type"

const (
	// Session lifecycle events.
	SessionCreatedEvent   EventType = "session.created"
	SessionCompletedEvent EventType = "session.completed"
	SessionPausedEvent    EventType = "session.paused"
	SessionResumedEvent   EventType = "session.resumed"
	SessionAbandonedEvent EventType = "session.abandoned"

	// Phase progression events.
	PhaseCompletedEvent   EventType = "phase.completed"
	PhaseInvalidatedEvent EventType = "phase.invalidated"

	// Analysis pipeline events.
	StageCompletedEvent EventType = "stage.completed"
	StageFailedEvent    EventType = "stage.failed"
)

type BaseEvent struct {
	ID        string         `json:"id"`
	Type      EventType      `json:"type"`
	Timestamp time.Time      `json:"timestamp"`
	SessionID string         `json:"session_id"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

type SessionCreated struct {
	BaseEvent

	UserID      string             `json:"user_id"`
	WorkspaceID string             `json:"workspace_id"`
	Pathway     models.PathwayType `json:"pathway"`
}

func (e SessionCreated) GetType() EventType {
	return SessionCreatedEvent
}

type SessionCompleted struct {
	BaseEvent

	Pathway  models.PathwayType `json:"pathway"`
	Duration time.Duration      `json:"duration"`
}

func (e SessionCompleted) GetType() EventType {
	return SessionCompletedEvent
}

type SessionPaused struct {
	BaseEvent
}

func (e SessionPaused) GetType() EventType {
	return SessionPausedEvent
}

type SessionResumed struct {
	BaseEvent
}

func (e SessionResumed) GetType() EventType {
	return SessionResumedEvent
}

type SessionAbandoned struct {
	BaseEvent

	LastPhaseID string `json:"last_phase_id"`
}

func (e SessionAbandoned) GetType() EventType {
	return SessionAbandonedEvent
}

type PhaseCompleted struct {
	BaseEvent

	PhaseID              string `json:"phase_id"`
	NextPhaseID          string `json:"next_phase_id,omitempty"`
	CompletionPercentage int    `json:"completion_percentage"`
}

func (e PhaseCompleted) GetType() EventType {
	return PhaseCompletedEvent
}

type PhaseInvalidated struct {
	BaseEvent

	PhaseID  string   `json:"phase_id"`
	Failures []string `json:"failures"`
}

func (e PhaseInvalidated) GetType() EventType {
	return PhaseInvalidatedEvent
}

type StageCompleted struct {
	BaseEvent

	Stage      models.StageType `json:"stage"`
	Confidence float64          `json:"confidence"`
}

func (e StageCompleted) GetType() EventType {
	return StageCompletedEvent
}

type StageFailed struct {
	BaseEvent

	Stage models.StageType `json:"stage"`
	Error string           `json:"error"`
}

func (e StageFailed) GetType() EventType {
	return StageFailedEvent
}
