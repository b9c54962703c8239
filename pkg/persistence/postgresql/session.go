package postgresql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/strategize/pathway/pkg/models"
	"github.com/strategize/pathway/pkg/persistence"
)

// SessionRepository handles session-related database operations.
type SessionRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *sql.DB, logger *slog.Logger) *SessionRepository {
	return &SessionRepository{db: db, logger: logger}
}

const sessionColumns = `
	id
  , user_id
  , workspace_id
  , template_id
  , pathway
  , current_phase_id
  , phase_data
  , analysis_results
  , completion_percentage
  , status
  , initial_context
  , created_at
  , updated_at
  , completed_at
`

// GetByID retrieves a session by its ID. Returns (nil, nil) when absent.
func (r *SessionRepository) GetByID(ctx context.Context, id string) (*models.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE id = $1`

	row := r.db.QueryRowContext(ctx, query, id)

	session, err := scanSession(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, persistence.NewSessionError("GetByID", id, err)
	}

	return session, nil
}

// Save upserts a session.
func (r *SessionRepository) Save(ctx context.Context, session *models.Session) error {
	now := time.Now().UTC()

	if session.CreatedAt.IsZero() {
		session.CreatedAt = now
	}

	session.UpdatedAt = now

	if session.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("failed to generate session ID: %w", err)
		}

		session.ID = id.String()
	}

	phaseDataJSON, err := json.Marshal(session.PhaseData)
	if err != nil {
		return fmt.Errorf("failed to marshal phase data: %w", err)
	}

	analysisJSON, err := json.Marshal(session.AnalysisResults)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis results: %w", err)
	}

	contextJSON, err := json.Marshal(session.InitialContext)
	if err != nil {
		return fmt.Errorf("failed to marshal initial context: %w", err)
	}

	query := `
		INSERT INTO sessions (
			id, user_id, workspace_id, template_id, pathway, current_phase_id,
			phase_data, analysis_results, completion_percentage, status,
			initial_context, created_at, updated_at, completed_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (id) DO UPDATE SET
			current_phase_id = EXCLUDED.current_phase_id,
			phase_data = EXCLUDED.phase_data,
			analysis_results = EXCLUDED.analysis_results,
			completion_percentage = EXCLUDED.completion_percentage,
			status = EXCLUDED.status,
			updated_at = EXCLUDED.updated_at,
			completed_at = EXCLUDED.completed_at
	`

	_, err = r.db.ExecContext(ctx, query,
		session.ID,
		session.UserID,
		session.WorkspaceID,
		session.TemplateID,
		string(session.Pathway),
		session.CurrentPhaseID,
		phaseDataJSON,
		analysisJSON,
		session.CompletionPercentage,
		string(session.Status),
		contextJSON,
		session.CreatedAt,
		session.UpdatedAt,
		session.CompletedAt,
	)
	if err != nil {
		return persistence.NewSessionError("Save", session.ID, err)
	}

	return nil
}

// List returns sessions matching the options, newest first.
func (r *SessionRepository) List(ctx context.Context, opts persistence.ListSessionsOptions) ([]*models.Session, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE user_id = $1`
	args := []any{opts.UserID}

	if opts.WorkspaceID != "" {
		args = append(args, opts.WorkspaceID)
		query += fmt.Sprintf(" AND workspace_id = $%d", len(args))
	}

	if opts.Status != nil {
		args = append(args, string(*opts.Status))
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}

	query += " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}

	defer func() {
		err := rows.Close()
		if err != nil {
			r.logger.ErrorContext(ctx, "failed to close rows", "error", err)
		}
	}()

	sessions := make([]*models.Session, 0)

	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}

		sessions = append(sessions, session)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("error iterating sessions: %w", err)
	}

	return sessions, nil
}

// Delete removes a session.
func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM sessions WHERE id = $1", id)
	if err != nil {
		return persistence.NewSessionError("Delete", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return persistence.NewSessionError("Delete", id, err)
	}

	if affected == 0 {
		return persistence.NewSessionError("Delete", id, persistence.ErrSessionNotFound)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*models.Session, error) {
	var (
		session      models.Session
		pathway      string
		status       string
		phaseData    []byte
		analysisData []byte
		contextData  []byte
	)

	err := row.Scan(
		&session.ID,
		&session.UserID,
		&session.WorkspaceID,
		&session.TemplateID,
		&pathway,
		&session.CurrentPhaseID,
		&phaseData,
		&analysisData,
		&session.CompletionPercentage,
		&status,
		&contextData,
		&session.CreatedAt,
		&session.UpdatedAt,
		&session.CompletedAt,
	)
	if err != nil {
		return nil, err
	}

	session.Pathway = models.PathwayType(pathway)
	session.Status = models.SessionStatus(status)

	if len(phaseData) > 0 {
		err = json.Unmarshal(phaseData, &session.PhaseData)
		if err != nil {
			return nil, fmt.Errorf("failed to unmarshal phase data: %w", err)
		}
	}

	if len(analysisData) > 0 && string(analysisData) != "null" {
		err = json.Unmarshal(analysisData, &session.AnalysisResults)
		if err != nil {
			return nil, fmt.Errorf("failed to unmarshal analysis results: %w", err)
		}
	}

	if len(contextData) > 0 && string(contextData) != "null" {
		err = json.Unmarshal(contextData, &session.InitialContext)
		if err != nil {
			return nil, fmt.Errorf("failed to unmarshal initial context: %w", err)
		}
	}

	return &session, nil
}
