package postgresql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/strategize/pathway/pkg/models"
	"github.com/strategize/pathway/pkg/persistence"
)

// ScoringRepository handles priority scoring database operations. The table
// is append-only; there is deliberately no update path.
type ScoringRepository struct {
	db *sql.DB
}

// NewScoringRepository creates a new scoring repository.
func NewScoringRepository(db *sql.DB) *ScoringRepository {
	return &ScoringRepository{db: db}
}

// Save inserts a new scoring record. Conflicting ids fail with
// ErrScoringImmutable rather than overwriting.
func (r *ScoringRepository) Save(ctx context.Context, scoring *models.PriorityScoring) error {
	query := `
		INSERT INTO priority_scorings (
			id, session_id, impact_score, effort_score, calculated_priority,
			priority_category, quadrant, scored_at
		) VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO NOTHING
	`

	result, err := r.db.ExecContext(ctx, query,
		scoring.ID,
		scoring.SessionID,
		scoring.ImpactScore,
		scoring.EffortScore,
		scoring.CalculatedPriority,
		string(scoring.PriorityCategory),
		string(scoring.Quadrant),
		scoring.ScoredAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert scoring: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check scoring insert: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("scoring %s: %w", scoring.ID, persistence.ErrScoringImmutable)
	}

	return nil
}

// ListBySession returns all scorings recorded against a session, oldest first.
func (r *ScoringRepository) ListBySession(ctx context.Context, sessionID string) ([]*models.PriorityScoring, error) {
	query := `
		SELECT
			id
		  , COALESCE(session_id::text, '')
		  , impact_score
		  , effort_score
		  , calculated_priority
		  , priority_category
		  , quadrant
		  , scored_at
		FROM priority_scorings
		WHERE session_id = $1
		ORDER BY scored_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query scorings: %w", err)
	}

	defer func() {
		_ = rows.Close()
	}()

	scorings := make([]*models.PriorityScoring, 0)

	for rows.Next() {
		var (
			scoring  models.PriorityScoring
			category string
			quadrant string
		)

		err := rows.Scan(
			&scoring.ID,
			&scoring.SessionID,
			&scoring.ImpactScore,
			&scoring.EffortScore,
			&scoring.CalculatedPriority,
			&category,
			&quadrant,
			&scoring.ScoredAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan scoring: %w", err)
		}

		scoring.PriorityCategory = models.PriorityCategory(category)
		scoring.Quadrant = models.Quadrant(quadrant)
		scorings = append(scorings, &scoring)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("error iterating scorings: %w", err)
	}

	return scorings, nil
}
