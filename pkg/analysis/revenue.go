package analysis

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/strategize/pathway/pkg/generation"
	"github.com/strategize/pathway/pkg/models"
)

// streamOrder fixes the iteration and tie-break order over the revenue model
// enumeration. Hybrid is derived, not scored directly.
var streamOrder = []models.RevenueStreamType{
	models.RevenueSubscription,
	models.RevenueFreemium,
	models.RevenueMarketplace,
	models.RevenueTransactionFee,
	models.RevenueAdvertising,
	models.RevenueLicensing,
	models.RevenueConsulting,
	models.RevenueOneTime,
}

var revenuePrompt = generation.PromptTemplate{
	Name:  "revenue-summary",
	Text:  "Summarize the revenue model outlook for this business problem: {problem}. Target market: {market}.",
	Slots: []string{"problem", "market"},
}

// RevenueStage ranks candidate revenue models by feasibility against the
// session's problem description and target market.
type RevenueStage struct {
	generator generation.Generator
}

func NewRevenueStage(generator generation.Generator) *RevenueStage {
	return &RevenueStage{generator: generator}
}

func (s *RevenueStage) Type() models.StageType {
	return models.StageRevenueAnalysis
}

func (s *RevenueStage) Run(ctx context.Context, input StageInput) StageResult {
	corpus := strings.ToLower(input.ProblemDescription + " " + input.TargetMarket)

	streams := make([]models.RevenueStream, 0, len(streamOrder)+1)
	strongCandidates := 0

	for _, streamType := range streamOrder {
		feasibility := streamBaseline

		for _, signal := range streamSignals[streamType] {
			if strings.Contains(corpus, signal.phrase) {
				feasibility += signal.boost
			}
		}

		if feasibility > maxFeasibility {
			feasibility = maxFeasibility
		}

		if feasibility >= 0.6 {
			strongCandidates++
		}

		streams = append(streams, models.RevenueStream{
			Type:             streamType,
			FeasibilityScore: feasibility,
			Pros:             streamPros[streamType],
			Cons:             streamCons[streamType],
			Implementation:   streamImplementation[streamType],
		})
	}

	// Two or more strong candidates make a combined model worth considering.
	if strongCandidates >= 2 {
		streams = append(streams, models.RevenueStream{
			Type:             models.RevenueHybrid,
			FeasibilityScore: 0.6,
			Pros:             streamPros[models.RevenueHybrid],
			Cons:             streamCons[models.RevenueHybrid],
			Implementation:   streamImplementation[models.RevenueHybrid],
		})
	}

	sort.SliceStable(streams, func(i, j int) bool {
		return streams[i].FeasibilityScore > streams[j].FeasibilityScore
	})

	confidence := streams[0].FeasibilityScore
	if confidence == streamBaseline {
		// Nothing in the input discriminated between models.
		confidence = 0.4
	}

	summary, err := narrate(ctx, s.generator, revenuePrompt, map[string]string{
		"problem": input.ProblemDescription,
		"market":  input.TargetMarket,
	}, map[string]any{
		"leading_model": string(streams[0].Type),
		"candidates":    len(streams),
	})
	if err != nil {
		return failure(s.Type(), err)
	}

	data := &models.RevenueAnalysis{
		Streams:     streams,
		Summary:     summary,
		Confidence:  confidence,
		GeneratedAt: time.Now().UTC(),
	}

	return StageResult{Stage: s.Type(), Success: true, Data: data, Confidence: confidence}
}
