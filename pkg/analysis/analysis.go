// Package analysis implements the four-stage business-model analysis
// pipeline: revenue analysis, customer segmentation, monetization strategy
// and roadmap generation. Stages run in a fixed order; each one consumes the
// prior stages' outputs plus raw session context and returns a typed result
// instead of failing the caller.
package analysis

import (
	"context"
	"errors"
	"fmt"

	"github.com/strategize/pathway/pkg/models"
)

var (
	ErrUnknownStage      = errors.New("unknown analysis stage")
	ErrResultsSealed     = errors.New("analysis results are sealed")
	ErrStageAlreadyRun   = errors.New("stage already has a recorded result")
	ErrPrerequisiteUnmet = errors.New("stage prerequisites not met")
)

// StageInput is the raw session context a stage works from, plus the results
// recorded so far. Stages never mutate Results; recording happens via Apply.
type StageInput struct {
	ProblemDescription string
	TargetMarket       string
	Results            *models.AnalysisResults
}

// StageResult is the outcome of one stage run. A failed stage carries an
// error message, never panics, and records nothing.
type StageResult struct {
	Stage      models.StageType `json:"stage"`
	Success    bool             `json:"success"`
	Data       any              `json:"data,omitempty"`
	Error      string           `json:"error,omitempty"`
	Confidence float64          `json:"confidence,omitempty"`
}

// Stage is one step of the pipeline.
type Stage interface {
	Type() models.StageType
	Run(ctx context.Context, input StageInput) StageResult
}

func failure(stage models.StageType, err error) StageResult {
	return StageResult{Stage: stage, Success: false, Error: err.Error()}
}

// MissingPrerequisites returns the earlier stages that have no successful
// result yet. An empty slice means the stage is clear to run.
func MissingPrerequisites(stage models.StageType, results *models.AnalysisResults) []models.StageType {
	missing := make([]models.StageType, 0)

	for _, earlier := range models.StageOrder {
		if earlier == stage {
			break
		}

		if !results.Has(earlier) {
			missing = append(missing, earlier)
		}
	}

	return missing
}

// Apply records a successful stage result into the aggregate. Results are
// append-only: a stage slot is written once, and nothing is written after the
// roadmap stage seals the aggregate.
func Apply(results *models.AnalysisResults, result StageResult) error {
	if !result.Success {
		return fmt.Errorf("cannot record failed stage %s", result.Stage)
	}

	if results.Sealed() {
		return ErrResultsSealed
	}

	if results.Has(result.Stage) {
		return fmt.Errorf("%w: %s", ErrStageAlreadyRun, result.Stage)
	}

	switch data := result.Data.(type) {
	case *models.RevenueAnalysis:
		results.Revenue = data
	case *models.CustomerAnalysis:
		results.Customer = data
	case *models.MonetizationStrategy:
		results.Monetization = data
	case *models.ImplementationRoadmap:
		results.Roadmap = data
	default:
		return fmt.Errorf("%w: unexpected data type for stage %s", ErrUnknownStage, result.Stage)
	}

	return nil
}
