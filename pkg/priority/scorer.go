// Package priority implements the impact/effort priority scoring calculator.
package priority

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/strategize/pathway/pkg/models"
)

const (
	minScore = 1
	maxScore = 10
)

// ErrScoreOutOfRange is returned when impact or effort falls outside [1,10].
var ErrScoreOutOfRange = fmt.Errorf("score must be between %d and %d", minScore, maxScore)

// Calculate produces a scoring record from an impact and effort rating, both
// on a 1-10 scale. Priority is impact/effort rounded to two decimal places.
func Calculate(impact, effort int) (*models.PriorityScoring, error) {
	if impact < minScore || impact > maxScore {
		return nil, fmt.Errorf("impact %d: %w", impact, ErrScoreOutOfRange)
	}

	if effort < minScore || effort > maxScore {
		return nil, fmt.Errorf("effort %d: %w", effort, ErrScoreOutOfRange)
	}

	priority := math.Round(float64(impact)/float64(effort)*100) / 100

	return &models.PriorityScoring{
		ID:                 uuid.New().String(),
		ImpactScore:        impact,
		EffortScore:        effort,
		CalculatedPriority: priority,
		PriorityCategory:   categorize(priority),
		Quadrant:           quadrant(impact, effort),
		ScoredAt:           time.Now().UTC(),
	}, nil
}

// categorize applies the exact, non-overlapping priority thresholds.
func categorize(priority float64) models.PriorityCategory {
	switch {
	case priority >= 2.0:
		return models.PriorityCritical
	case priority >= 1.5:
		return models.PriorityHigh
	case priority >= 1.0:
		return models.PriorityMedium
	default:
		return models.PriorityLow
	}
}

// quadrant evaluates the ordered decision list; the four clauses are mutually
// exclusive and exhaustive over the full [1,10]x[1,10] grid.
func quadrant(impact, effort int) models.Quadrant {
	switch {
	case impact >= 7 && effort <= 4:
		return models.QuadrantQuickWins
	case impact >= 7 && effort >= 5:
		return models.QuadrantMajorProjects
	case impact <= 6 && effort <= 4:
		return models.QuadrantFillIns
	default:
		return models.QuadrantTimeWasters
	}
}

// Recommendation returns the fixed guidance text for a quadrant.
func Recommendation(q models.Quadrant) string {
	return recommendations[q]
}

// RiskFactors returns the fixed risk list for a quadrant.
func RiskFactors(q models.Quadrant) []string {
	return riskFactors[q]
}

// NextSteps returns the fixed next-step list for a quadrant.
func NextSteps(q models.Quadrant) []string {
	return nextSteps[q]
}
