// Package models defines the core domain models for strategic pathway workflows.
package models

import "fmt"

// PathwayType identifies a guided strategic workflow in the catalog.
type PathwayType string

const (
	PathwayNewIdea              PathwayType = "new_idea"
	PathwayBusinessModelProblem PathwayType = "business_model_problem"
	PathwayGrowthStrategy       PathwayType = "growth_strategy"
	PathwayMarketEntry          PathwayType = "market_entry"
	PathwayProductStrategy      PathwayType = "product_strategy"
	PathwayGeneralStrategy      PathwayType = "general_strategy" // Fallback for ambiguous input
)

// PathwayCategory groups templates by the kind of strategic work they guide.
type PathwayCategory string

const (
	CategoryIdeation     PathwayCategory = "ideation"
	CategoryOptimization PathwayCategory = "optimization"
	CategoryGrowth       PathwayCategory = "growth"
	CategoryExploration  PathwayCategory = "exploration"
)

// DifficultyTier rates how demanding a pathway is for the user.
type DifficultyTier string

const (
	DifficultyBeginner     DifficultyTier = "beginner"
	DifficultyIntermediate DifficultyTier = "intermediate"
	DifficultyAdvanced     DifficultyTier = "advanced"
)

// PathwayTemplate is an immutable catalog entry describing one guided workflow.
type PathwayTemplate struct {
	ID                string          `json:"id"                 validate:"required"`
	Type              PathwayType     `json:"type"               validate:"required"`
	Category          PathwayCategory `json:"category"           validate:"required"`
	Name              string          `json:"name"               validate:"required,min=3"`
	Description       string          `json:"description"        validate:"required"`
	Phases            []*PathwayPhase `json:"phases"             validate:"required,min=1"`
	Difficulty        DifficultyTier  `json:"difficulty"`
	EstimatedDuration string          `json:"estimated_duration"`
}

// PathwayPhase is one ordered step within a pathway template.
type PathwayPhase struct {
	ID              string           `json:"id"               validate:"required"`
	Name            string           `json:"name"             validate:"required"`
	Order           int              `json:"order"`
	SystemGuidance  string           `json:"system_guidance"`
	UserGuidance    string           `json:"user_guidance"`
	ExpectedOutputs []string         `json:"expected_outputs"`
	ValidationRules []ValidationRule `json:"validation_rules"`
	AnalysisStage   StageType        `json:"analysis_stage,omitempty"` // Pipeline stage dispatched when this phase completes
}

// ValidationRuleType enumerates the supported phase input checks.
type ValidationRuleType string

const (
	RuleRequired  ValidationRuleType = "required"
	RuleMinLength ValidationRuleType = "minLength"
	RulePattern   ValidationRuleType = "pattern"
	RuleCustom    ValidationRuleType = "custom"
)

// ValidationRule checks one field of a phase's raw inputs. Custom rules carry
// an executable predicate; all other types carry a comparison value.
type ValidationRule struct {
	Type      ValidationRuleType `json:"type"    validate:"required,oneof=required minLength pattern custom"`
	Field     string             `json:"field"   validate:"required"`
	Value     any                `json:"value,omitempty"`
	Message   string             `json:"message" validate:"required"`
	Predicate func(any) bool     `json:"-"`
}

// Validate checks template invariants: phase order values must be unique and
// contiguous starting at 0, and every rule must be well-formed for its type.
func (t *PathwayTemplate) Validate() error {
	seen := make(map[int]bool, len(t.Phases))

	for _, phase := range t.Phases {
		if phase.Order < 0 || phase.Order >= len(t.Phases) {
			return fmt.Errorf("template %s: phase %s order %d out of range", t.ID, phase.ID, phase.Order)
		}

		if seen[phase.Order] {
			return fmt.Errorf("template %s: duplicate phase order %d", t.ID, phase.Order)
		}

		seen[phase.Order] = true

		for _, rule := range phase.ValidationRules {
			if err := rule.Validate(); err != nil {
				return fmt.Errorf("template %s phase %s: %w", t.ID, phase.ID, err)
			}
		}
	}

	return nil
}

// Validate checks the rule carries what its type requires.
func (r ValidationRule) Validate() error {
	switch r.Type {
	case RuleCustom:
		if r.Predicate == nil {
			return fmt.Errorf("custom rule on field %s has no predicate", r.Field)
		}
	case RuleRequired:
		// Presence check needs no comparison value.
	case RuleMinLength, RulePattern:
		if r.Value == nil {
			return fmt.Errorf("%s rule on field %s has no comparison value", r.Type, r.Field)
		}
	default:
		return fmt.Errorf("unknown rule type %q on field %s", r.Type, r.Field)
	}

	return nil
}

// PhaseByID returns the phase with the given id, or nil when absent.
func (t *PathwayTemplate) PhaseByID(id string) *PathwayPhase {
	for _, phase := range t.Phases {
		if phase.ID == id {
			return phase
		}
	}

	return nil
}

// PhaseByOrder returns the phase at the given ordinal position, or nil.
func (t *PathwayTemplate) PhaseByOrder(order int) *PathwayPhase {
	for _, phase := range t.Phases {
		if phase.Order == order {
			return phase
		}
	}

	return nil
}

// FirstPhase returns the phase with order 0.
func (t *PathwayTemplate) FirstPhase() *PathwayPhase {
	return t.PhaseByOrder(0)
}

// NextPhase returns the phase following the given one in template order, or
// nil when the given phase is the last.
func (t *PathwayTemplate) NextPhase(current *PathwayPhase) *PathwayPhase {
	if current == nil {
		return nil
	}

	return t.PhaseByOrder(current.Order + 1)
}
