package generation

import (
	"context"

	"github.com/strategize/pathway/pkg/health"
)

// GuardedGenerator consults a health probe before delegating. When the
// collaborator is reported unavailable it short-circuits with ErrUnavailable
// so callers can take their deterministic fallback path without waiting on a
// doomed call.
type GuardedGenerator struct {
	probe health.Probe
	inner Generator
}

// NewGuarded wraps a generator behind an availability probe.
func NewGuarded(probe health.Probe, inner Generator) *GuardedGenerator {
	return &GuardedGenerator{probe: probe, inner: inner}
}

// Generate implements Generator.
func (g *GuardedGenerator) Generate(ctx context.Context, prompt string, genContext map[string]any) (string, error) {
	if !g.probe.IsAvailable(ServiceName) {
		return "", ErrUnavailable
	}

	return g.inner.Generate(ctx, prompt, genContext)
}
