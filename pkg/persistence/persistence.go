// Package persistence provides the data storage abstraction for sessions and
// priority scorings.
package persistence

import (
	"context"
	"fmt"

	"github.com/strategize/pathway/pkg/models"
)

// ListSessionsOptions filters a session listing. A nil Status matches all.
type ListSessionsOptions struct {
	UserID      string
	WorkspaceID string
	Status      *models.SessionStatus
}

// Validate rejects a status filter that names no known session status.
func (o ListSessionsOptions) Validate() error {
	if o.Status == nil {
		return nil
	}

	switch *o.Status {
	case models.SessionStatusActive, models.SessionStatusPaused,
		models.SessionStatusCompleted, models.SessionStatusAbandoned:
		return nil
	}

	return fmt.Errorf("%w: %q", ErrInvalidSessionStatus, *o.Status)
}

// SessionRepository stores pathway sessions. GetByID returns (nil, nil) for
// unknown ids so callers check rather than catch. Implementations provide
// read-your-writes consistency per session id; cross-session transactions
// are out of scope.
type SessionRepository interface {
	GetByID(ctx context.Context, id string) (*models.Session, error)
	Save(ctx context.Context, session *models.Session) error
	List(ctx context.Context, opts ListSessionsOptions) ([]*models.Session, error)
	Delete(ctx context.Context, id string) error
}

// ScoringRepository stores priority scorings append-only: records are
// immutable once written.
type ScoringRepository interface {
	Save(ctx context.Context, scoring *models.PriorityScoring) error
	ListBySession(ctx context.Context, sessionID string) ([]*models.PriorityScoring, error)
}

type Persistence interface {
	SessionRepository() SessionRepository
	ScoringRepository() ScoringRepository
	HealthCheck(ctx context.Context) error

	Close(ctx context.Context) error
}
