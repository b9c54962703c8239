// Package router classifies free-text strategic problems into guided
// pathways and owns the static pathway catalog.
package router

import "github.com/strategize/pathway/pkg/models"

// catalog holds the immutable pathway templates. Phase order values are
// unique and contiguous from 0 within each template; NewRouter verifies this
// along with the JSON schema check.
var catalog = map[models.PathwayType]*models.PathwayTemplate{
	models.PathwayBusinessModelProblem: {
		ID:                "tpl-business-model",
		Type:              models.PathwayBusinessModelProblem,
		Category:          models.CategoryOptimization,
		Name:              "Business Model Problem",
		Description:       "Diagnose and redesign how the business captures value, from revenue streams through an implementation roadmap.",
		Difficulty:        models.DifficultyAdvanced,
		EstimatedDuration: "2-3 weeks",
		Phases: []*models.PathwayPhase{
			{
				ID:             "problem-framing",
				Name:           "Problem Framing",
				Order:          0,
				SystemGuidance: "Elicit the monetization problem, current model, and target market before any analysis.",
				UserGuidance:   "Describe the problem with your current business model and who your target market is.",
				ExpectedOutputs: []string{
					"problem_description", "target_market",
				},
				ValidationRules: []models.ValidationRule{
					{Type: models.RuleRequired, Field: "problem_description", Message: "describe the business model problem"},
					{Type: models.RuleMinLength, Field: "problem_description", Value: 20, Message: "problem description needs more detail (at least 20 characters)"},
					{Type: models.RuleRequired, Field: "target_market", Message: "name your target market"},
				},
			},
			{
				ID:              "revenue-exploration",
				Name:            "Revenue Stream Exploration",
				Order:           1,
				SystemGuidance:  "Run the revenue analysis stage and discuss the ranked candidate streams.",
				UserGuidance:    "Review the candidate revenue streams and note which resonate with your situation.",
				ExpectedOutputs: []string{"revenue_notes"},
				ValidationRules: []models.ValidationRule{
					{Type: models.RuleRequired, Field: "revenue_notes", Message: "capture your reaction to the revenue candidates"},
				},
				AnalysisStage: models.StageRevenueAnalysis,
			},
			{
				ID:              "customer-segmentation",
				Name:            "Customer Segmentation",
				Order:           2,
				SystemGuidance:  "Run the segmentation stage against the chosen revenue directions.",
				UserGuidance:    "Confirm which customer segments matter most for the revenue directions you favored.",
				ExpectedOutputs: []string{"segment_priorities"},
				ValidationRules: []models.ValidationRule{
					{Type: models.RuleRequired, Field: "segment_priorities", Message: "pick at least one segment to prioritize"},
				},
				AnalysisStage: models.StageCustomerSegmentation,
			},
			{
				ID:              "monetization-strategy",
				Name:            "Monetization Strategy",
				Order:           3,
				SystemGuidance:  "Run the monetization stage and pressure-test the recommended model with the user.",
				UserGuidance:    "Evaluate the recommended business model and pricing strategy against your constraints.",
				ExpectedOutputs: []string{"strategy_feedback"},
				ValidationRules: []models.ValidationRule{
					{Type: models.RuleRequired, Field: "strategy_feedback", Message: "record your assessment of the recommended strategy"},
				},
				AnalysisStage: models.StageMonetizationStrategy,
			},
			{
				ID:              "implementation-roadmap",
				Name:            "Implementation Roadmap",
				Order:           4,
				SystemGuidance:  "Run the roadmap stage and close the pathway with agreed next steps.",
				UserGuidance:    "Review the roadmap, quick wins, and success metrics; commit to the first phase.",
				ExpectedOutputs: []string{"commitment"},
				ValidationRules: []models.ValidationRule{
					{Type: models.RuleRequired, Field: "commitment", Message: "commit to a first step before closing the pathway"},
				},
				AnalysisStage: models.StageRoadmapGeneration,
			},
		},
	},
	models.PathwayNewIdea: {
		ID:                "tpl-new-idea",
		Type:              models.PathwayNewIdea,
		Category:          models.CategoryIdeation,
		Name:              "New Idea",
		Description:       "Shape a raw idea into a testable concept with a clear problem, audience, and differentiation.",
		Difficulty:        models.DifficultyBeginner,
		EstimatedDuration: "1 week",
		Phases: []*models.PathwayPhase{
			{
				ID:              "idea-capture",
				Name:            "Idea Capture",
				Order:           0,
				SystemGuidance:  "Get the idea stated plainly: what it is, who it serves, why now.",
				UserGuidance:    "Describe your idea in a few sentences: what it does and who it is for.",
				ExpectedOutputs: []string{"idea_description"},
				ValidationRules: []models.ValidationRule{
					{Type: models.RuleRequired, Field: "idea_description", Message: "describe the idea"},
					{Type: models.RuleMinLength, Field: "idea_description", Value: 30, Message: "the idea needs more detail (at least 30 characters)"},
				},
			},
			{
				ID:              "problem-validation",
				Name:            "Problem Validation",
				Order:           1,
				SystemGuidance:  "Probe whether the problem is real, frequent, and painful for a nameable audience.",
				UserGuidance:    "What evidence do you have that this problem is worth solving?",
				ExpectedOutputs: []string{"evidence"},
				ValidationRules: []models.ValidationRule{
					{Type: models.RuleRequired, Field: "evidence", Message: "list the evidence for the problem"},
				},
			},
			{
				ID:              "differentiation",
				Name:            "Differentiation",
				Order:           2,
				SystemGuidance:  "Map alternatives and articulate why this idea wins for the chosen audience.",
				UserGuidance:    "How do people solve this today, and why would they switch?",
				ExpectedOutputs: []string{"alternatives", "edge"},
				ValidationRules: []models.ValidationRule{
					{Type: models.RuleRequired, Field: "edge", Message: "state your edge over the alternatives"},
				},
			},
			{
				ID:              "next-experiment",
				Name:            "Next Experiment",
				Order:           3,
				SystemGuidance:  "Close with one cheap experiment that tests the riskiest assumption.",
				UserGuidance:    "Pick the one experiment you will run next and what it must show.",
				ExpectedOutputs: []string{"experiment"},
				ValidationRules: []models.ValidationRule{
					{Type: models.RuleRequired, Field: "experiment", Message: "commit to a next experiment"},
				},
			},
		},
	},
	models.PathwayGrowthStrategy: {
		ID:                "tpl-growth",
		Type:              models.PathwayGrowthStrategy,
		Category:          models.CategoryGrowth,
		Name:              "Growth Strategy",
		Description:       "Find and remove the binding constraint on growth, then design the channel plan around it.",
		Difficulty:        models.DifficultyIntermediate,
		EstimatedDuration: "1-2 weeks",
		Phases: []*models.PathwayPhase{
			{
				ID:              "growth-diagnosis",
				Name:            "Growth Diagnosis",
				Order:           0,
				SystemGuidance:  "Locate where growth stalls: acquisition, activation, retention, or referral.",
				UserGuidance:    "Where does growth feel stuck today, and what do the numbers say?",
				ExpectedOutputs: []string{"bottleneck"},
				ValidationRules: []models.ValidationRule{
					{Type: models.RuleRequired, Field: "bottleneck", Message: "identify where growth stalls"},
				},
			},
			{
				ID:              "channel-review",
				Name:            "Channel Review",
				Order:           1,
				SystemGuidance:  "Inventory current channels with cost and conversion; find the outlier.",
				UserGuidance:    "List your acquisition channels and roughly what each costs and converts.",
				ExpectedOutputs: []string{"channels"},
				ValidationRules: []models.ValidationRule{
					{Type: models.RuleRequired, Field: "channels", Message: "list your current channels"},
				},
			},
			{
				ID:              "growth-plan",
				Name:            "Growth Plan",
				Order:           2,
				SystemGuidance:  "Concentrate effort on the constraint; define the experiment cadence.",
				UserGuidance:    "Agree the focus area and the first three experiments.",
				ExpectedOutputs: []string{"plan"},
				ValidationRules: []models.ValidationRule{
					{Type: models.RuleRequired, Field: "plan", Message: "set the growth plan"},
				},
			},
		},
	},
	models.PathwayMarketEntry: {
		ID:                "tpl-market-entry",
		Type:              models.PathwayMarketEntry,
		Category:          models.CategoryExploration,
		Name:              "Market Entry",
		Description:       "Assess a new market, size the opportunity, and pick an entry wedge.",
		Difficulty:        models.DifficultyIntermediate,
		EstimatedDuration: "1-2 weeks",
		Phases: []*models.PathwayPhase{
			{
				ID:              "market-definition",
				Name:            "Market Definition",
				Order:           0,
				SystemGuidance:  "Pin down which market, which buyer, and what triggers a purchase.",
				UserGuidance:    "Which market are you entering, and who writes the check?",
				ExpectedOutputs: []string{"market", "buyer"},
				ValidationRules: []models.ValidationRule{
					{Type: models.RuleRequired, Field: "market", Message: "name the market"},
					{Type: models.RuleRequired, Field: "buyer", Message: "name the buyer"},
				},
			},
			{
				ID:              "competitive-landscape",
				Name:            "Competitive Landscape",
				Order:           1,
				SystemGuidance:  "Map incumbents and substitutes; find the underserved slice.",
				UserGuidance:    "Who already serves this market, and where do they fall short?",
				ExpectedOutputs: []string{"competitors", "gap"},
				ValidationRules: []models.ValidationRule{
					{Type: models.RuleRequired, Field: "gap", Message: "identify the gap you will exploit"},
				},
			},
			{
				ID:              "entry-wedge",
				Name:            "Entry Wedge",
				Order:           2,
				SystemGuidance:  "Choose the narrow wedge: first segment, first offer, first channel.",
				UserGuidance:    "Pick the narrowest credible first move into this market.",
				ExpectedOutputs: []string{"wedge"},
				ValidationRules: []models.ValidationRule{
					{Type: models.RuleRequired, Field: "wedge", Message: "choose your entry wedge"},
				},
			},
		},
	},
	models.PathwayProductStrategy: {
		ID:                "tpl-product",
		Type:              models.PathwayProductStrategy,
		Category:          models.CategoryOptimization,
		Name:              "Product Strategy",
		Description:       "Align the product roadmap with the strategic bets that actually move the business.",
		Difficulty:        models.DifficultyIntermediate,
		EstimatedDuration: "1-2 weeks",
		Phases: []*models.PathwayPhase{
			{
				ID:              "product-position",
				Name:            "Product Position",
				Order:           0,
				SystemGuidance:  "Establish what the product is best at and for whom.",
				UserGuidance:    "What is your product unambiguously the best at, and for which user?",
				ExpectedOutputs: []string{"position"},
				ValidationRules: []models.ValidationRule{
					{Type: models.RuleRequired, Field: "position", Message: "state the product position"},
				},
			},
			{
				ID:              "bet-selection",
				Name:            "Bet Selection",
				Order:           1,
				SystemGuidance:  "Surface the candidate bets and force-rank them by strategic leverage.",
				UserGuidance:    "List the big product bets under consideration and rank them.",
				ExpectedOutputs: []string{"bets"},
				ValidationRules: []models.ValidationRule{
					{Type: models.RuleRequired, Field: "bets", Message: "list the candidate bets"},
				},
			},
			{
				ID:              "roadmap-alignment",
				Name:            "Roadmap Alignment",
				Order:           2,
				SystemGuidance:  "Translate the chosen bets into roadmap sequencing and kill criteria.",
				UserGuidance:    "Sequence the chosen bets and define what would make you stop each one.",
				ExpectedOutputs: []string{"sequence"},
				ValidationRules: []models.ValidationRule{
					{Type: models.RuleRequired, Field: "sequence", Message: "sequence the chosen bets"},
				},
			},
		},
	},
	models.PathwayGeneralStrategy: {
		ID:                "tpl-general",
		Type:              models.PathwayGeneralStrategy,
		Category:          models.CategoryExploration,
		Name:              "General Strategy",
		Description:       "Open-ended strategic coaching when the problem does not yet fit a sharper pathway.",
		Difficulty:        models.DifficultyBeginner,
		EstimatedDuration: "flexible",
		Phases: []*models.PathwayPhase{
			{
				ID:              "situation",
				Name:            "Situation",
				Order:           0,
				SystemGuidance:  "Draw out the situation until a sharper pathway suggests itself.",
				UserGuidance:    "Tell me more about your situation and what outcome you are after.",
				ExpectedOutputs: []string{"situation"},
				ValidationRules: []models.ValidationRule{
					{Type: models.RuleRequired, Field: "situation", Message: "describe your situation"},
				},
			},
			{
				ID:              "options",
				Name:            "Options",
				Order:           1,
				SystemGuidance:  "Lay out the realistic options with their tradeoffs.",
				UserGuidance:    "What options are on the table, including doing nothing?",
				ExpectedOutputs: []string{"options"},
				ValidationRules: []models.ValidationRule{
					{Type: models.RuleRequired, Field: "options", Message: "list your options"},
				},
			},
			{
				ID:              "decision",
				Name:            "Decision",
				Order:           2,
				SystemGuidance:  "Push toward a decision with an explicit rationale and review date.",
				UserGuidance:    "Which option do you choose, and when will you review the call?",
				ExpectedOutputs: []string{"decision"},
				ValidationRules: []models.ValidationRule{
					{Type: models.RuleRequired, Field: "decision", Message: "make the call"},
				},
			},
		},
	},
}

// defaultPathway is the degradation target for ambiguous input.
const defaultPathway = models.PathwayGeneralStrategy
