package analysis

import (
	"context"
	"errors"
	"time"

	"github.com/strategize/pathway/pkg/models"
)

// RoadmapStage assembles the implementation roadmap from the three prior
// stage outputs. Its content is fully deterministic given those outputs.
type RoadmapStage struct{}

func NewRoadmapStage() *RoadmapStage {
	return &RoadmapStage{}
}

func (s *RoadmapStage) Type() models.StageType {
	return models.StageRoadmapGeneration
}

func (s *RoadmapStage) Run(_ context.Context, input StageInput) StageResult {
	revenue := input.Results.Revenue
	customer := input.Results.Customer
	monetization := input.Results.Monetization

	if revenue == nil || customer == nil || monetization == nil {
		return failure(s.Type(), errors.New("roadmap requires all prior stage outputs"))
	}

	if len(customer.Prioritized) == 0 {
		return failure(s.Type(), errors.New("customer analysis has no prioritized segments"))
	}

	firstSegment := customer.Prioritized[0]
	model := monetization.RecommendedModel

	phases := []models.RoadmapPhase{
		{
			Name: "Validate",
			Objectives: []string{
				"Confirm willingness to pay for the " + model + " model with " + firstSegment,
				"Pressure-test the pricing approach: " + monetization.Pricing.Model,
			},
			Deliverables: []string{
				"Ten problem and pricing interviews",
				"A pricing experiment with real purchase intent",
			},
			Dependencies: []string{},
			Resources:    []string{"Founder time", "Interview incentives budget"},
			Duration:     "6 weeks",
		},
		{
			Name: "Build",
			Objectives: []string{
				"Ship the billable version of the offering",
				"Onboard the first paying cohort from " + firstSegment,
			},
			Deliverables: []string{
				"Billing and onboarding in production",
				"First ten paying customers",
			},
			Dependencies: []string{"Validate"},
			Resources:    []string{"Core product team", "Billing integration"},
			Duration:     "3 months",
		},
		{
			Name: "Scale",
			Objectives: []string{
				"Expand beyond the initial segment",
				"Automate the acquisition channels that proved out",
			},
			Deliverables: []string{
				"Repeatable acquisition playbook",
				"Expansion into the next prioritized segment",
			},
			Dependencies: []string{"Build"},
			Resources:    []string{"Growth hire", "Marketing budget"},
			Duration:     "6 months",
		},
	}

	quickWins := []string{
		revenue.Streams[0].Implementation,
		monetization.OptimizationTactics[0],
	}

	longTerm := make([]string, 0, len(monetization.GrowthLevers))
	for _, lever := range monetization.GrowthLevers {
		longTerm = append(longTerm, "Invest in "+lever)
	}

	confidence := revenue.Confidence
	for _, c := range []float64{customer.Confidence, monetization.Confidence} {
		if c < confidence {
			confidence = c
		}
	}

	data := &models.ImplementationRoadmap{
		Phases:              phases,
		QuickWins:           quickWins,
		LongTermInitiatives: longTerm,
		Metrics:             roadmapMetrics,
		Timeline:            "roughly 10 months across validation, build-out and scale",
		Confidence:          confidence,
		GeneratedAt:         time.Now().UTC(),
	}

	return StageResult{Stage: s.Type(), Success: true, Data: data, Confidence: confidence}
}
