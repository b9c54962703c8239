// Package generation defines the text-generation collaborator interface used
// by analysis pipeline stages, plus the deterministic template fallback.
package generation

import (
	"context"
	"errors"
)

// ErrUnavailable signals the collaborator cannot serve requests right now.
// Stages treat it as a cue to fall back to template-based content.
var ErrUnavailable = errors.New("text generation collaborator unavailable")

// Generator synthesizes narrative content from a prompt and structured
// context. The call is the engine's only suspension point; timeouts are owned
// by the caller through ctx.
type Generator interface {
	Generate(ctx context.Context, prompt string, context map[string]any) (string, error)
}

// ServiceName identifies the collaborator for health probing.
const ServiceName = "text-generation"
