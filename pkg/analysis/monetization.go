package analysis

import (
	"context"
	"errors"
	"time"

	"github.com/strategize/pathway/pkg/generation"
	"github.com/strategize/pathway/pkg/models"
)

var positioningPrompt = generation.PromptTemplate{
	Name:  "monetization-positioning",
	Text:  "Write a competitive positioning statement for a {model} offering aimed at {segment}.",
	Slots: []string{"model", "segment"},
}

// MonetizationStage turns the ranked revenue models and segments into one
// recommended model with a pricing strategy.
type MonetizationStage struct {
	generator generation.Generator
}

func NewMonetizationStage(generator generation.Generator) *MonetizationStage {
	return &MonetizationStage{generator: generator}
}

func (s *MonetizationStage) Type() models.StageType {
	return models.StageMonetizationStrategy
}

func (s *MonetizationStage) Run(ctx context.Context, input StageInput) StageResult {
	revenue := input.Results.Revenue
	customer := input.Results.Customer

	if revenue == nil || len(revenue.Streams) == 0 {
		return failure(s.Type(), errors.New("revenue analysis has no ranked streams"))
	}

	if customer == nil || len(customer.Prioritized) == 0 {
		return failure(s.Type(), errors.New("customer analysis has no prioritized segments"))
	}

	recommended := revenue.Streams[0].Type

	pricing, ok := pricingByStream[recommended]
	if !ok {
		pricing = defaultPricing
	}

	positioning, err := narrate(ctx, s.generator, positioningPrompt, map[string]string{
		"model":   string(recommended),
		"segment": customer.Prioritized[0],
	}, map[string]any{
		"pricing_model": pricing.Model,
	})
	if err != nil {
		return failure(s.Type(), err)
	}

	confidence := revenue.Confidence
	if customer.Confidence < confidence {
		confidence = customer.Confidence
	}

	data := &models.MonetizationStrategy{
		RecommendedModel:    string(recommended),
		Pricing:             pricing,
		OptimizationTactics: optimizationTactics,
		Positioning:         positioning,
		GrowthLevers:        growthLevers,
		Risks:               monetizationRisks,
		Confidence:          confidence,
		GeneratedAt:         time.Now().UTC(),
	}

	return StageResult{Stage: s.Type(), Success: true, Data: data, Confidence: confidence}
}
