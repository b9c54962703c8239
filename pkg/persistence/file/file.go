// Package file provides file-based persistence for sessions and scorings,
// suitable for local development and tests.
package file

import (
	"context"
	"os"
	"strings"

	"github.com/strategize/pathway/pkg/persistence"
)

// Persistence implements the persistence.Persistence interface using the file system.
type Persistence struct {
	root        string
	sessionRepo *SessionRepository
	scoringRepo *ScoringRepository
}

// NewPersistence creates a new instance rooted at the given directory.
func NewPersistence(root string) persistence.Persistence {
	cleanRoot := strings.Replace(root, "file://", "", 1)

	return &Persistence{
		root:        cleanRoot,
		sessionRepo: NewSessionRepository(cleanRoot),
		scoringRepo: NewScoringRepository(cleanRoot),
	}
}

// Close performs any necessary cleanup. Nothing to do for files.
func (fp *Persistence) Close(_ context.Context) error {
	return nil
}

// HealthCheck verifies the root directory exists.
func (fp *Persistence) HealthCheck(_ context.Context) error {
	if _, err := os.Stat(fp.root); os.IsNotExist(err) {
		return os.ErrNotExist
	}

	return nil
}

// SessionRepository returns the session repository implementation.
func (fp *Persistence) SessionRepository() persistence.SessionRepository {
	return fp.sessionRepo
}

// ScoringRepository returns the scoring repository implementation.
func (fp *Persistence) ScoringRepository() persistence.ScoringRepository {
	return fp.scoringRepo
}
