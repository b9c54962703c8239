package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/strategize/pathway/pkg/models"
	"github.com/strategize/pathway/pkg/persistence"
)

// SessionRepository stores sessions as JSON values indexed by user.
type SessionRepository struct {
	client *goredis.Client
}

// GetByID retrieves a session by its ID. Returns (nil, nil) when absent.
func (r *SessionRepository) GetByID(ctx context.Context, id string) (*models.Session, error) {
	data, err := r.client.Get(ctx, sessionKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}

		return nil, persistence.NewSessionError("GetByID", id, err)
	}

	var session models.Session

	err = json.Unmarshal(data, &session)
	if err != nil {
		return nil, persistence.NewSessionError("GetByID", id, fmt.Errorf("failed to decode session: %w", err))
	}

	return &session, nil
}

// Save writes the session and maintains the per-user index set.
func (r *SessionRepository) Save(ctx context.Context, session *models.Session) error {
	session.UpdatedAt = time.Now().UTC()

	data, err := json.Marshal(session)
	if err != nil {
		return persistence.NewSessionError("Save", session.ID, fmt.Errorf("failed to encode session: %w", err))
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, sessionKeyPrefix+session.ID, data, 0)
	pipe.SAdd(ctx, userIndexPrefix+session.UserID, session.ID)

	_, err = pipe.Exec(ctx)
	if err != nil {
		return persistence.NewSessionError("Save", session.ID, err)
	}

	return nil
}

// List returns the user's sessions matching the options, newest first.
func (r *SessionRepository) List(ctx context.Context, opts persistence.ListSessionsOptions) ([]*models.Session, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	ids, err := r.client.SMembers(ctx, userIndexPrefix+opts.UserID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list session ids: %w", err)
	}

	sessions := make([]*models.Session, 0, len(ids))

	for _, id := range ids {
		session, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}

		if session == nil {
			continue
		}

		if opts.WorkspaceID != "" && session.WorkspaceID != opts.WorkspaceID {
			continue
		}

		if opts.Status != nil && session.Status != *opts.Status {
			continue
		}

		sessions = append(sessions, session)
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.After(sessions[j].CreatedAt)
	})

	return sessions, nil
}

// Delete removes a session and its index entry.
func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	session, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if session == nil {
		return persistence.NewSessionError("Delete", id, persistence.ErrSessionNotFound)
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, sessionKeyPrefix+id)
	pipe.SRem(ctx, userIndexPrefix+session.UserID, id)

	_, err = pipe.Exec(ctx)
	if err != nil {
		return persistence.NewSessionError("Delete", id, err)
	}

	return nil
}
