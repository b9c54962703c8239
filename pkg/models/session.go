package models

import "time"

// SessionStatus represents the lifecycle state of a pathway session.
type SessionStatus string

const (
	SessionStatusActive    SessionStatus = "active"
	SessionStatusPaused    SessionStatus = "paused"
	SessionStatusCompleted SessionStatus = "completed" // Terminal
	SessionStatusAbandoned SessionStatus = "abandoned" // Terminal
)

// ValidationStatus tracks whether a phase's inputs passed its rules.
type ValidationStatus string

const (
	ValidationPending ValidationStatus = "pending"
	ValidationValid   ValidationStatus = "valid"
	ValidationInvalid ValidationStatus = "invalid"
)

// Session is one user's traversal of a pathway template. It is owned by
// exactly one user and workspace and mutated only by the orchestrator.
type Session struct {
	ID                   string                `json:"id"`
	UserID               string                `json:"user_id"      validate:"required"`
	WorkspaceID          string                `json:"workspace_id" validate:"required"`
	TemplateID           string                `json:"template_id"`
	Pathway              PathwayType           `json:"pathway"      validate:"required"`
	CurrentPhaseID       string                `json:"current_phase_id"`
	PhaseData            map[string]*PhaseData `json:"phase_data"`
	AnalysisResults      *AnalysisResults      `json:"analysis_results"`
	CompletionPercentage int                   `json:"completion_percentage"`
	Status               SessionStatus         `json:"status"`
	InitialContext       map[string]any        `json:"initial_context,omitempty"`
	CreatedAt            time.Time             `json:"created_at"`
	UpdatedAt            time.Time             `json:"updated_at"`
	CompletedAt          *time.Time            `json:"completed_at,omitempty"`
}

// PhaseData holds the user's raw inputs and derived material for one phase.
// It is sealed (validation status frozen) once the session advances past it.
type PhaseData struct {
	PhaseID          string           `json:"phase_id"`
	Inputs           map[string]any   `json:"inputs"`
	Insights         []string         `json:"insights"`
	ExtractedData    map[string]any   `json:"extracted_data"`
	CompletedAt      *time.Time       `json:"completed_at,omitempty"`
	ValidationStatus ValidationStatus `json:"validation_status"`
}

// NewPhaseData creates the record for a freshly entered phase.
func NewPhaseData(phaseID string) *PhaseData {
	return &PhaseData{
		PhaseID:          phaseID,
		Inputs:           make(map[string]any),
		Insights:         make([]string, 0),
		ExtractedData:    make(map[string]any),
		ValidationStatus: ValidationPending,
	}
}

// IsTerminal reports whether the session permits no further transitions.
func (s *Session) IsTerminal() bool {
	return s.Status == SessionStatusCompleted || s.Status == SessionStatusAbandoned
}

// CompletedPhases counts phases whose data has been validated and sealed.
func (s *Session) CompletedPhases() int {
	count := 0

	for _, data := range s.PhaseData {
		if data.ValidationStatus == ValidationValid && data.CompletedAt != nil {
			count++
		}
	}

	return count
}
