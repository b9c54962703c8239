package assumptions

import (
	"regexp"

	"github.com/strategize/pathway/pkg/models"
)

// Pattern tables are deliberately data, not code, so they can be tuned and
// tested independently of the extraction algorithm.

// minAssumptionLength filters out clauses too short to be real assumptions.
const minAssumptionLength = 12

// triggerPatterns detect explicit or implicit assumption statements. Each
// pattern's first capture group is the clause up to the next sentence boundary.
var triggerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bassuming that\s+([^.!?\n]+)`),
	regexp.MustCompile(`(?i)\bthis assumes\s+(?:that\s+)?([^.!?\n]+)`),
	regexp.MustCompile(`(?i)\bbased on the assumption that\s+([^.!?\n]+)`),
	regexp.MustCompile(`(?i)\bif we assume\s+(?:that\s+)?([^.!?\n]+)`),
	regexp.MustCompile(`(?i)\bwe(?:'re| are) assuming\s+(?:that\s+)?([^.!?\n]+)`),
	regexp.MustCompile(`(?i)\bmy assumption is\s+(?:that\s+)?([^.!?\n]+)`),
	regexp.MustCompile(`(?i)\bi(?:'m| am) assuming\s+(?:that\s+)?([^.!?\n]+)`),
	regexp.MustCompile(`(?i)\bit(?:'s| is) safe to assume\s+(?:that\s+)?([^.!?\n]+)`),
}

// challengePatterns detect a later message pushing back on an assumption. The
// capture group, when present, is taken as the challenge reason.
var challengePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bchallenge (?:this|that|your) assumption\b[:,]?\s*([^.!?\n]*)`),
	regexp.MustCompile(`(?i)\bis that really true\b[?,]?\s*([^.!?\n]*)`),
	regexp.MustCompile(`(?i)\bhave you validated\b\s*([^.!?\n]*)`),
	regexp.MustCompile(`(?i)\bwhat evidence\b\s*([^.!?\n]*)`),
	regexp.MustCompile(`(?i)\bhow do you know\b\s*([^.!?\n]*)`),
	regexp.MustCompile(`(?i)\bthat assumption may not hold\b[:,]?\s*([^.!?\n]*)`),
}

// categoryKeywords drive categorization. Categories are checked in the order
// listed in categoryOrder; the first set with a hit wins.
var categoryKeywords = map[models.AssumptionCategory][]string{
	models.AssumptionUser: {
		"user", "customer", "people", "persona", "audience", "adoption", "behavior",
	},
	models.AssumptionMarket: {
		"market", "competitor", "competition", "demand", "industry", "segment", "trend",
	},
	models.AssumptionTechnical: {
		"technical", "technology", "platform", "infrastructure", "integration",
		"scale", "api", "build", "performance",
	},
	models.AssumptionBusiness: {
		"revenue", "cost", "price", "pricing", "margin", "profit", "business",
		"monetization", "funding",
	},
}

var categoryOrder = []models.AssumptionCategory{
	models.AssumptionUser,
	models.AssumptionMarket,
	models.AssumptionTechnical,
	models.AssumptionBusiness,
}

// defaultCategory is applied when no keyword set matches. Business is the
// most generic bucket for strategic conversations.
const defaultCategory = models.AssumptionBusiness
