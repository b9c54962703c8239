// Package cmd provides common initialization functions for command-line
// applications.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/strategize/pathway/pkg/persistence"
	"github.com/strategize/pathway/pkg/persistence/file"
	"github.com/strategize/pathway/pkg/persistence/postgresql"
	"github.com/strategize/pathway/pkg/persistence/redis"
)

// NewPersistence selects the driver by the URL scheme. Anything without a
// recognized scheme is treated as a file path.
func NewPersistence(ctx context.Context, logger *slog.Logger, databaseURL string) persistence.Persistence {
	switch parseProvider(databaseURL) {
	case "postgres", "postgresql":
		p, err := postgresql.NewPersistence(ctx, logger, databaseURL)
		if err != nil {
			panic(fmt.Errorf("failed to create PostgreSQL persistence: %w", err))
		}

		return p
	case "redis":
		p, err := redis.NewPersistence(ctx, databaseURL)
		if err != nil {
			panic(fmt.Errorf("failed to create Redis persistence: %w", err))
		}

		return p
	default:
		return file.NewPersistence(databaseURL)
	}
}

func parseProvider(databaseURL string) string {
	scheme, _, found := strings.Cut(databaseURL, "://")
	if !found {
		return "file"
	}

	return scheme
}
