package file

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/strategize/pathway/pkg/models"
	"github.com/strategize/pathway/pkg/persistence"
)

// ScoringRepository stores priority scorings as one JSON file per record.
// Records are append-only; an existing file is never overwritten.
type ScoringRepository struct {
	root string
}

// NewScoringRepository creates a new scoring repository.
func NewScoringRepository(root string) *ScoringRepository {
	return &ScoringRepository{root: root}
}

func (sc *ScoringRepository) dir() string {
	return filepath.Join(sc.root, "scorings")
}

// Save writes a new scoring record. Overwriting an existing id fails with
// ErrScoringImmutable.
func (sc *ScoringRepository) Save(_ context.Context, scoring *models.PriorityScoring) error {
	err := os.MkdirAll(sc.dir(), 0o755)
	if err != nil {
		return fmt.Errorf("failed to create scorings directory: %w", err)
	}

	path := filepath.Join(sc.dir(), scoring.ID+".json")

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("scoring %s: %w", scoring.ID, persistence.ErrScoringImmutable)
	}

	data, err := json.MarshalIndent(scoring, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode scoring: %w", err)
	}

	err = os.WriteFile(path, data, 0o644)
	if err != nil {
		return fmt.Errorf("failed to write scoring: %w", err)
	}

	return nil
}

// ListBySession returns all scorings recorded against a session, oldest first.
func (sc *ScoringRepository) ListBySession(_ context.Context, sessionID string) ([]*models.PriorityScoring, error) {
	root := os.DirFS(sc.dir())

	jsonFiles, err := fs.Glob(root, "*.json")
	if err != nil {
		return nil, fmt.Errorf("failed to list scoring files: %w", err)
	}

	scorings := make([]*models.PriorityScoring, 0)

	for _, name := range jsonFiles {
		data, err := os.ReadFile(filepath.Join(sc.dir(), name))
		if err != nil {
			return nil, fmt.Errorf("failed to read scoring %s: %w", name, err)
		}

		var scoring models.PriorityScoring

		err = json.Unmarshal(data, &scoring)
		if err != nil {
			return nil, fmt.Errorf("failed to decode scoring %s: %w", name, err)
		}

		if scoring.SessionID != sessionID {
			continue
		}

		scorings = append(scorings, &scoring)
	}

	sort.Slice(scorings, func(i, j int) bool {
		return scorings[i].ScoredAt.Before(scorings[j].ScoredAt)
	})

	return scorings, nil
}
