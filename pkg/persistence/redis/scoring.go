package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
	"github.com/strategize/pathway/pkg/models"
)

// ScoringRepository appends scorings to a per-session list. Lists are only
// ever pushed to, which matches the append-only contract.
type ScoringRepository struct {
	client *goredis.Client
}

// Save appends a new scoring record.
func (r *ScoringRepository) Save(ctx context.Context, scoring *models.PriorityScoring) error {
	data, err := json.Marshal(scoring)
	if err != nil {
		return fmt.Errorf("failed to encode scoring: %w", err)
	}

	err = r.client.RPush(ctx, scoringListPrefix+scoring.SessionID, data).Err()
	if err != nil {
		return fmt.Errorf("failed to append scoring: %w", err)
	}

	return nil
}

// ListBySession returns all scorings for a session in insertion order.
func (r *ScoringRepository) ListBySession(ctx context.Context, sessionID string) ([]*models.PriorityScoring, error) {
	items, err := r.client.LRange(ctx, scoringListPrefix+sessionID, 0, -1).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return []*models.PriorityScoring{}, nil
		}

		return nil, fmt.Errorf("failed to read scorings: %w", err)
	}

	scorings := make([]*models.PriorityScoring, 0, len(items))

	for _, item := range items {
		var scoring models.PriorityScoring

		err := json.Unmarshal([]byte(item), &scoring)
		if err != nil {
			return nil, fmt.Errorf("failed to decode scoring: %w", err)
		}

		scorings = append(scorings, &scoring)
	}

	return scorings, nil
}
