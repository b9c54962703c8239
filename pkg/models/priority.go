package models

import "time"

// PriorityCategory buckets a calculated priority score.
type PriorityCategory string

const (
	PriorityCritical PriorityCategory = "Critical"
	PriorityHigh     PriorityCategory = "High"
	PriorityMedium   PriorityCategory = "Medium"
	PriorityLow      PriorityCategory = "Low"
)

// Quadrant places an initiative on the impact/effort matrix.
type Quadrant string

const (
	QuadrantQuickWins     Quadrant = "Quick Wins"
	QuadrantMajorProjects Quadrant = "Major Projects"
	QuadrantFillIns       Quadrant = "Fill-ins"
	QuadrantTimeWasters   Quadrant = "Time Wasters"
)

// PriorityScoring is one immutable impact/effort scoring record. A rescore is
// a new record, never an in-place edit.
type PriorityScoring struct {
	ID                 string           `json:"id"`
	SessionID          string           `json:"session_id,omitempty"`
	ImpactScore        int              `json:"impact_score"  validate:"required,min=1,max=10"`
	EffortScore        int              `json:"effort_score"  validate:"required,min=1,max=10"`
	CalculatedPriority float64          `json:"calculated_priority"`
	PriorityCategory   PriorityCategory `json:"priority_category"`
	Quadrant           Quadrant         `json:"quadrant"`
	ScoredAt           time.Time        `json:"scored_at"`
}
