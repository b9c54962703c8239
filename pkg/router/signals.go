package router

import "github.com/strategize/pathway/pkg/models"

// signal is one weighted phrase match for intent classification. The weights
// are tunable configuration, not load-bearing business logic; tests assert
// ordering and clamping properties rather than exact scores.
type signal struct {
	phrase string
	weight float64
}

// signalTable maps each pathway to its keyword and phrase signals. Matching
// is case-insensitive substring matching; longer phrases carry more weight.
var signalTable = map[models.PathwayType][]signal{
	models.PathwayBusinessModelProblem: {
		{phrase: "business model", weight: 4},
		{phrase: "revenue stream", weight: 4},
		{phrase: "monetization", weight: 3},
		{phrase: "monetize", weight: 3},
		{phrase: "pricing", weight: 2},
		{phrase: "revenue", weight: 2},
		{phrase: "profitability", weight: 2},
		{phrase: "not making money", weight: 3},
	},
	models.PathwayNewIdea: {
		{phrase: "new idea", weight: 4},
		{phrase: "startup idea", weight: 4},
		{phrase: "have an idea", weight: 3},
		{phrase: "validate", weight: 2},
		{phrase: "concept", weight: 2},
		{phrase: "idea", weight: 1},
	},
	models.PathwayGrowthStrategy: {
		{phrase: "growth", weight: 3},
		{phrase: "scaling", weight: 3},
		{phrase: "acquisition channel", weight: 4},
		{phrase: "user acquisition", weight: 4},
		{phrase: "retention", weight: 2},
		{phrase: "churn", weight: 2},
		{phrase: "plateau", weight: 2},
	},
	models.PathwayMarketEntry: {
		{phrase: "market entry", weight: 4},
		{phrase: "new market", weight: 4},
		{phrase: "expand into", weight: 3},
		{phrase: "enter the", weight: 2},
		{phrase: "competitor", weight: 2},
		{phrase: "competition", weight: 2},
	},
	models.PathwayProductStrategy: {
		{phrase: "product strategy", weight: 4},
		{phrase: "roadmap", weight: 3},
		{phrase: "feature", weight: 2},
		{phrase: "product direction", weight: 4},
		{phrase: "prioritize", weight: 2},
		{phrase: "product", weight: 1},
	},
	models.PathwayGeneralStrategy: {
		{phrase: "strategy", weight: 1},
		{phrase: "strategic", weight: 1},
		{phrase: "advice", weight: 1},
	},
}

// specificityRank breaks score ties: more specific pathways outrank generic
// ones. Lower rank wins.
var specificityRank = map[models.PathwayType]int{
	models.PathwayBusinessModelProblem: 0,
	models.PathwayMarketEntry:          1,
	models.PathwayProductStrategy:      2,
	models.PathwayGrowthStrategy:       3,
	models.PathwayNewIdea:              4,
	models.PathwayGeneralStrategy:      5,
}
