package analysis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/strategize/pathway/pkg/generation"
	"github.com/strategize/pathway/pkg/models"
	"github.com/strategize/pathway/pkg/otelhelper"
)

// Pipeline runs analysis stages in their fixed order, enforcing that each
// stage's prerequisites succeeded before it may run.
type Pipeline struct {
	logger *slog.Logger
	tracer trace.Tracer
	stages map[models.StageType]Stage
}

// NewPipeline wires the four stages around the given text-generation
// collaborator. A nil tracer disables span emission.
func NewPipeline(logger *slog.Logger, generator generation.Generator, tracer trace.Tracer) *Pipeline {
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("analysis")
	}

	return &Pipeline{
		logger: logger.With("module", "analysis"),
		tracer: tracer,
		stages: map[models.StageType]Stage{
			models.StageRevenueAnalysis:      NewRevenueStage(generator),
			models.StageCustomerSegmentation: NewSegmentationStage(generator),
			models.StageMonetizationStrategy: NewMonetizationStage(generator),
			models.StageRoadmapGeneration:    NewRoadmapStage(),
		},
	}
}

// Run executes one stage. Prerequisite violations and stage errors come back
// as failed results, never as panics or raised errors.
func (p *Pipeline) Run(ctx context.Context, stage models.StageType, input StageInput) StageResult {
	s, ok := p.stages[stage]
	if !ok {
		return failure(stage, fmt.Errorf("%w: %s", ErrUnknownStage, stage))
	}

	if missing := MissingPrerequisites(stage, input.Results); len(missing) > 0 {
		return failure(stage, fmt.Errorf("%w: %v must succeed first", ErrPrerequisiteUnmet, missing))
	}

	ctx, span := otelhelper.StartSpan(ctx, p.tracer, "analysis.run_stage",
		attribute.String(otelhelper.StageKey, string(stage)),
	)
	defer span.End()

	result := s.Run(ctx, input)

	if result.Success {
		p.logger.InfoContext(ctx, "Analysis stage completed",
			"stage", stage,
			"confidence", result.Confidence,
		)
	} else {
		otelhelper.SetError(span, errors.New(result.Error))
		p.logger.ErrorContext(ctx, "Analysis stage failed",
			"stage", stage,
			"error", result.Error,
		)
	}

	return result
}

// InputFromSession assembles stage input from a session's initial context and
// accumulated phase inputs. Phase inputs win over the initial context; phases
// are visited in phase-id order so the assembly is deterministic.
func InputFromSession(session *models.Session) StageInput {
	input := StageInput{Results: session.AnalysisResults}

	input.ProblemDescription = pickString(session.InitialContext, "problem_description", "problem", "idea")
	input.TargetMarket = pickString(session.InitialContext, "target_market", "market", "audience")

	phaseIDs := make([]string, 0, len(session.PhaseData))
	for phaseID := range session.PhaseData {
		phaseIDs = append(phaseIDs, phaseID)
	}

	sort.Strings(phaseIDs)

	for _, phaseID := range phaseIDs {
		if value := pickString(session.PhaseData[phaseID].Inputs, "problem_description", "problem", "idea"); value != "" {
			input.ProblemDescription = value
		}

		if value := pickString(session.PhaseData[phaseID].Inputs, "target_market", "market", "audience"); value != "" {
			input.TargetMarket = value
		}
	}

	return input
}

func pickString(m map[string]any, keys ...string) string {
	for _, key := range keys {
		if value, ok := m[key].(string); ok && value != "" {
			return value
		}
	}

	return ""
}
