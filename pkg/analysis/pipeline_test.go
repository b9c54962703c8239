package analysis

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/strategize/pathway/pkg/generation"
	"github.com/strategize/pathway/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	text string
	err  error
}

func (g *stubGenerator) Generate(_ context.Context, _ string, _ map[string]any) (string, error) {
	if g.err != nil {
		return "", g.err
	}

	return g.text, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRevenueStage_RanksMatchingModelFirst(t *testing.T) {
	stage := NewRevenueStage(&stubGenerator{text: "summary"})

	result := stage.Run(t.Context(), StageInput{
		ProblemDescription: "We sell recurring SaaS subscription software to B2B teams",
		Results:            &models.AnalysisResults{},
	})

	require.True(t, result.Success)

	data, ok := result.Data.(*models.RevenueAnalysis)
	require.True(t, ok)
	assert.Equal(t, models.RevenueSubscription, data.Streams[0].Type)
	assert.Greater(t, data.Streams[0].FeasibilityScore, streamBaseline)
	assert.Equal(t, "summary", data.Summary)
	assert.InDelta(t, result.Confidence, data.Confidence, 0.0001)
}

func TestRevenueStage_AmbiguousInput(t *testing.T) {
	stage := NewRevenueStage(&stubGenerator{text: "summary"})

	result := stage.Run(t.Context(), StageInput{
		ProblemDescription: "hello",
		Results:            &models.AnalysisResults{},
	})

	require.True(t, result.Success)
	assert.InDelta(t, 0.4, result.Confidence, 0.0001)
}

func TestRevenueStage_FallbackWhenGeneratorUnavailable(t *testing.T) {
	stage := NewRevenueStage(&stubGenerator{err: generation.ErrUnavailable})

	result := stage.Run(t.Context(), StageInput{
		ProblemDescription: "subscription software",
		Results:            &models.AnalysisResults{},
	})

	require.True(t, result.Success)

	data := result.Data.(*models.RevenueAnalysis)
	assert.Contains(t, data.Summary, "revenue model outlook")
	assert.Contains(t, data.Summary, "leading_model=subscription")
}

func TestRevenueStage_GeneratorError(t *testing.T) {
	stage := NewRevenueStage(&stubGenerator{err: errors.New("boom")})

	result := stage.Run(t.Context(), StageInput{
		ProblemDescription: "subscription software",
		Results:            &models.AnalysisResults{},
	})

	assert.False(t, result.Success)
	assert.Equal(t, "boom", result.Error)
}

func TestPipeline_PrerequisiteGating(t *testing.T) {
	pipeline := NewPipeline(testLogger(), &stubGenerator{text: "text"}, nil)

	results := &models.AnalysisResults{}
	result := pipeline.Run(t.Context(), models.StageCustomerSegmentation, StageInput{
		ProblemDescription: "subscription software",
		Results:            results,
	})

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "prerequisites not met")
	assert.False(t, results.Has(models.StageCustomerSegmentation))
}

func TestPipeline_UnknownStage(t *testing.T) {
	pipeline := NewPipeline(testLogger(), &stubGenerator{text: "text"}, nil)

	result := pipeline.Run(t.Context(), models.StageType("nope"), StageInput{
		Results: &models.AnalysisResults{},
	})

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "unknown analysis stage")
}

func TestPipeline_FullRun(t *testing.T) {
	pipeline := NewPipeline(testLogger(), &stubGenerator{text: "generated"}, nil)

	results := &models.AnalysisResults{}
	input := StageInput{
		ProblemDescription: "A two-sided marketplace matching buyers and sellers",
		TargetMarket:       "independent retailers",
	}

	for _, stage := range models.StageOrder {
		input.Results = results

		result := pipeline.Run(t.Context(), stage, input)
		require.True(t, result.Success, "stage %s failed: %s", stage, result.Error)
		require.NoError(t, Apply(results, result))
	}

	assert.True(t, results.Sealed())
	assert.Equal(t, models.RevenueMarketplace, results.Revenue.Streams[0].Type)
	assert.Equal(t, string(models.RevenueMarketplace), results.Monetization.RecommendedModel)
	assert.Equal(t, "independent retailers", results.Customer.Segments[0].Name)
	assert.Len(t, results.Roadmap.Phases, 3)
}

func TestApply_SealedAndDuplicate(t *testing.T) {
	pipeline := NewPipeline(testLogger(), &stubGenerator{text: "generated"}, nil)

	results := &models.AnalysisResults{}
	input := StageInput{ProblemDescription: "subscription software"}

	for _, stage := range models.StageOrder {
		input.Results = results
		result := pipeline.Run(t.Context(), stage, input)
		require.True(t, result.Success)

		if stage == models.StageRevenueAnalysis {
			err := Apply(results, result)
			require.NoError(t, err)
			assert.ErrorIs(t, Apply(results, result), ErrStageAlreadyRun)

			continue
		}

		require.NoError(t, Apply(results, result))
	}

	assert.ErrorIs(t, Apply(results, StageResult{
		Stage:   models.StageRevenueAnalysis,
		Success: true,
		Data:    &models.RevenueAnalysis{},
	}), ErrResultsSealed)
}

func TestMissingPrerequisites(t *testing.T) {
	results := &models.AnalysisResults{Revenue: &models.RevenueAnalysis{}}

	assert.Empty(t, MissingPrerequisites(models.StageRevenueAnalysis, results))
	assert.Empty(t, MissingPrerequisites(models.StageCustomerSegmentation, results))
	assert.Equal(t,
		[]models.StageType{models.StageCustomerSegmentation, models.StageMonetizationStrategy},
		MissingPrerequisites(models.StageRoadmapGeneration, results),
	)
}

func TestInputFromSession(t *testing.T) {
	session := &models.Session{
		InitialContext: map[string]any{
			"problem":       "initial problem",
			"target_market": "initial market",
		},
		PhaseData: map[string]*models.PhaseData{
			"problem-framing": {
				PhaseID: "problem-framing",
				Inputs:  map[string]any{"problem_description": "refined problem"},
			},
		},
		AnalysisResults: &models.AnalysisResults{},
	}

	input := InputFromSession(session)
	assert.Equal(t, "refined problem", input.ProblemDescription)
	assert.Equal(t, "initial market", input.TargetMarket)
	assert.Same(t, session.AnalysisResults, input.Results)
}
