package analysis

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/strategize/pathway/pkg/generation"
	"github.com/strategize/pathway/pkg/models"
)

var segmentationPrompt = generation.PromptTemplate{
	Name:  "segmentation-rationale",
	Text:  "Explain why these customer segments fit a {model} business addressing: {problem}.",
	Slots: []string{"model", "problem"},
}

// SegmentationStage derives customer segments from the leading revenue model
// and the session's stated target market.
type SegmentationStage struct {
	generator generation.Generator
}

func NewSegmentationStage(generator generation.Generator) *SegmentationStage {
	return &SegmentationStage{generator: generator}
}

func (s *SegmentationStage) Type() models.StageType {
	return models.StageCustomerSegmentation
}

func (s *SegmentationStage) Run(ctx context.Context, input StageInput) StageResult {
	revenue := input.Results.Revenue
	if revenue == nil || len(revenue.Streams) == 0 {
		return failure(s.Type(), errors.New("revenue analysis has no ranked streams"))
	}

	lead := revenue.Streams[0].Type

	archetypes, ok := segmentArchetypes[lead]
	if !ok {
		archetypes = defaultArchetypes
	}

	segments := make([]models.CustomerSegment, 0, len(archetypes)+1)

	if market := strings.TrimSpace(input.TargetMarket); market != "" {
		clv, cac := 4800.0, 900.0
		segments = append(segments, models.CustomerSegment{
			Name:                market,
			SizeTier:            "medium",
			PainPoints:          []string{"The problem driving this session"},
			ValuePropositions:   []string{"Purpose-built for " + market},
			AcquisitionChannels: []string{"Direct outreach within " + market},
			EstimatedCLV:        &clv,
			EstimatedCAC:        &cac,
		})
	}

	for _, archetype := range archetypes {
		clv, cac := archetype.clv, archetype.cac
		segments = append(segments, models.CustomerSegment{
			Name:                archetype.name,
			SizeTier:            archetype.sizeTier,
			PainPoints:          archetype.painPoints,
			ValuePropositions:   archetype.valuePropositions,
			AcquisitionChannels: archetype.acquisitionChannels,
			EstimatedCLV:        &clv,
			EstimatedCAC:        &cac,
		})
	}

	// Pursue the two most accessible segments first.
	prioritized := make([]string, 0, 2)
	for i := 0; i < len(segments) && i < 2; i++ {
		prioritized = append(prioritized, segments[i].Name)
	}

	rationale, err := narrate(ctx, s.generator, segmentationPrompt, map[string]string{
		"model":   string(lead),
		"problem": input.ProblemDescription,
	}, map[string]any{
		"segments":    len(segments),
		"prioritized": strings.Join(prioritized, ", "),
	})
	if err != nil {
		return failure(s.Type(), err)
	}

	confidence := 0.8*revenue.Confidence + 0.1
	if confidence > 0.9 {
		confidence = 0.9
	}

	data := &models.CustomerAnalysis{
		Segments:    segments,
		Prioritized: prioritized,
		Rationale:   rationale,
		Confidence:  confidence,
		GeneratedAt: time.Now().UTC(),
	}

	return StageResult{Stage: s.Type(), Success: true, Data: data, Confidence: confidence}
}
