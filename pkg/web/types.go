// Package web provides HTTP request and response types for the pathway API.
package web

import "github.com/strategize/pathway/pkg/models"

// AnalyzeIntentRequest carries free text to classify into a pathway.
type AnalyzeIntentRequest struct {
	Input string `json:"input" validate:"required"`
}

// CreateSessionRequest represents the request body for starting a session.
type CreateSessionRequest struct {
	UserID         string             `json:"user_id"         validate:"required"`
	WorkspaceID    string             `json:"workspace_id"    validate:"required"`
	Pathway        models.PathwayType `json:"pathway"         validate:"required"`
	InitialContext map[string]any     `json:"initial_context,omitempty"`
}

// AdvanceSessionRequest carries the current phase's inputs.
type AdvanceSessionRequest struct {
	Inputs map[string]any `json:"inputs"`
}

// PriorityScoreRequest represents the request body for a priority scoring.
// When a session id is given the scoring is persisted against it.
type PriorityScoreRequest struct {
	Impact    int    `json:"impact" validate:"required"`
	Effort    int    `json:"effort" validate:"required"`
	SessionID string `json:"session_id,omitempty"`
}

// ExtractAssumptionsRequest carries a conversation transcript. Format selects
// the response shape; the default is structured JSON.
type ExtractAssumptionsRequest struct {
	Messages []models.Message `json:"messages" validate:"required,min=1,dive"`
	Format   string           `json:"format,omitempty" validate:"omitempty,oneof=json markdown"`
}
