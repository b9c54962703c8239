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

// SessionRepository stores each session as one JSON file under root/sessions.
type SessionRepository struct {
	root string
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(root string) *SessionRepository {
	return &SessionRepository{root: root}
}

func (sr *SessionRepository) dir() string {
	return filepath.Join(sr.root, "sessions")
}

func (sr *SessionRepository) path(id string) string {
	return filepath.Join(sr.dir(), id+".json")
}

// GetByID retrieves a session by its ID. Returns (nil, nil) when absent.
func (sr *SessionRepository) GetByID(_ context.Context, id string) (*models.Session, error) {
	data, err := os.ReadFile(sr.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, persistence.NewSessionError("GetByID", id, err)
	}

	var session models.Session

	err = json.Unmarshal(data, &session)
	if err != nil {
		return nil, persistence.NewSessionError("GetByID", id, fmt.Errorf("failed to decode session file: %w", err))
	}

	return &session, nil
}

// Save writes the session to disk, creating the directory on first use.
func (sr *SessionRepository) Save(_ context.Context, session *models.Session) error {
	err := os.MkdirAll(sr.dir(), 0o755)
	if err != nil {
		return persistence.NewSessionError("Save", session.ID, err)
	}

	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return persistence.NewSessionError("Save", session.ID, fmt.Errorf("failed to encode session: %w", err))
	}

	err = os.WriteFile(sr.path(session.ID), data, 0o644)
	if err != nil {
		return persistence.NewSessionError("Save", session.ID, err)
	}

	return nil
}

// List returns sessions matching the options, newest first.
func (sr *SessionRepository) List(ctx context.Context, opts persistence.ListSessionsOptions) ([]*models.Session, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	root := os.DirFS(sr.dir())

	jsonFiles, err := fs.Glob(root, "*.json")
	if err != nil {
		return nil, fmt.Errorf("failed to list session files: %w", err)
	}

	sessions := make([]*models.Session, 0, len(jsonFiles))

	for _, name := range jsonFiles {
		id := name[:len(name)-5] // Trim .json

		session, err := sr.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to load session %s: %w", id, err)
		}

		if session == nil {
			continue
		}

		if opts.UserID != "" && session.UserID != opts.UserID {
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

// Delete removes a session file. Unknown ids are reported via ErrSessionNotFound.
func (sr *SessionRepository) Delete(_ context.Context, id string) error {
	err := os.Remove(sr.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return persistence.NewSessionError("Delete", id, persistence.ErrSessionNotFound)
		}

		return persistence.NewSessionError("Delete", id, err)
	}

	return nil
}
