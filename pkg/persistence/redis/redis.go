// Package redis provides Redis-backed persistence for sessions and scorings.
// Sessions live as JSON values with secondary index sets per user; scorings
// are appended to per-session lists, which keeps them naturally immutable.
package redis

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
	"github.com/strategize/pathway/pkg/persistence"
)

const (
	sessionKeyPrefix  = "pathway:session:"
	userIndexPrefix   = "pathway:sessions:user:"
	scoringListPrefix = "pathway:scorings:session:"
)

// Persistence implements the persistence layer backed by Redis.
type Persistence struct {
	client      *goredis.Client
	sessionRepo *SessionRepository
	scoringRepo *ScoringRepository
}

// NewPersistence creates a Redis persistence layer from a redis:// URL.
func NewPersistence(ctx context.Context, redisURL string) (*Persistence, error) {
	options, err := goredis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := goredis.NewClient(options)

	err = client.Ping(ctx).Err()
	if err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return &Persistence{
		client:      client,
		sessionRepo: &SessionRepository{client: client},
		scoringRepo: &ScoringRepository{client: client},
	}, nil
}

// Close closes the Redis connection.
func (p *Persistence) Close(_ context.Context) error {
	return p.client.Close()
}

// HealthCheck verifies the Redis connection is healthy.
func (p *Persistence) HealthCheck(ctx context.Context) error {
	err := p.client.Ping(ctx).Err()
	if err != nil {
		return fmt.Errorf("failed to ping redis: %w", err)
	}

	return nil
}

// SessionRepository returns the session repository implementation.
func (p *Persistence) SessionRepository() persistence.SessionRepository {
	return p.sessionRepo
}

// ScoringRepository returns the scoring repository implementation.
func (p *Persistence) ScoringRepository() persistence.ScoringRepository {
	return p.scoringRepo
}
