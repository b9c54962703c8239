package router

import (
	"fmt"
	"sort"
	"strings"

	"github.com/strategize/pathway/pkg/models"
)

// Confidence is clamped to a practical band: the engine always has an
// actionable recommendation, and free text never yields certainty.
const (
	minConfidence = 0.35
	maxConfidence = 0.95

	// smoothing dampens the score-to-confidence curve so a handful of
	// strong signals saturates toward the cap without reaching it.
	smoothing = 4.0

	// maxAlternatives bounds the alternatives list.
	maxAlternatives = 3
)

// Router classifies user input against the pathway catalog.
type Router struct {
	catalog map[models.PathwayType]*models.PathwayTemplate
}

// NewRouter builds a router over the static catalog, verifying every
// template against the catalog schema and its ordering invariants.
func NewRouter() (*Router, error) {
	for pathwayType, template := range catalog {
		if err := template.Validate(); err != nil {
			return nil, fmt.Errorf("invalid catalog entry %s: %w", pathwayType, err)
		}

		if err := validateTemplateSchema(template); err != nil {
			return nil, fmt.Errorf("catalog entry %s failed schema validation: %w", pathwayType, err)
		}
	}

	return &Router{catalog: catalog}, nil
}

type scoredPathway struct {
	pathway models.PathwayType
	score   float64
	matched []string
}

// AnalyzeIntent classifies free text into a pathway with confidence and
// alternatives. It never fails for valid string input: empty or ambiguous
// text degrades to the default pathway with an explicit reasoning string.
func (r *Router) AnalyzeIntent(userInput string) *models.IntentAnalysis {
	lowered := strings.ToLower(userInput)

	scored := make([]scoredPathway, 0, len(signalTable))

	for pathwayType, signals := range signalTable {
		entry := scoredPathway{pathway: pathwayType}

		for _, sig := range signals {
			if strings.Contains(lowered, sig.phrase) {
				entry.score += sig.weight
				entry.matched = append(entry.matched, sig.phrase)
			}
		}

		scored = append(scored, entry)
	}

	// Descending by score; specificity breaks ties.
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}

		return specificityRank[scored[i].pathway] < specificityRank[scored[j].pathway]
	})

	best := scored[0]
	if best.score == 0 {
		return r.ambiguousResult(scored)
	}

	alternatives := make([]models.PathwayMatch, 0, maxAlternatives)

	for _, candidate := range scored[1:] {
		if len(alternatives) == maxAlternatives {
			break
		}

		// Always keep at least one alternative, even when nothing else scored.
		if candidate.score == 0 && len(alternatives) > 0 {
			break
		}

		alternatives = append(alternatives, models.PathwayMatch{
			Pathway:    candidate.pathway,
			Confidence: confidence(candidate.score),
			Reasoning:  reasoning(candidate),
		})
	}

	return &models.IntentAnalysis{
		Primary:      best.pathway,
		Confidence:   confidence(best.score),
		Reasoning:    reasoning(best),
		Alternatives: alternatives,
	}
}

// ambiguousResult degrades to the lowest-confidence default pathway.
func (r *Router) ambiguousResult(scored []scoredPathway) *models.IntentAnalysis {
	alternatives := make([]models.PathwayMatch, 0, 1)

	for _, candidate := range scored {
		if candidate.pathway == defaultPathway {
			continue
		}

		alternatives = append(alternatives, models.PathwayMatch{
			Pathway:    candidate.pathway,
			Confidence: minConfidence,
			Reasoning:  "no matching signals; offered as an alternative starting point",
		})

		break
	}

	return &models.IntentAnalysis{
		Primary:      defaultPathway,
		Confidence:   minConfidence,
		Reasoning:    "ambiguous input: no pathway signals matched, defaulting to general strategy guidance",
		Alternatives: alternatives,
	}
}

// confidence normalizes a raw signal score into the clamped band. The curve
// is monotonic in score and saturates below maxConfidence.
func confidence(score float64) float64 {
	if score <= 0 {
		return minConfidence
	}

	c := minConfidence + (maxConfidence-minConfidence)*(score/(score+smoothing))
	if c > maxConfidence {
		c = maxConfidence
	}

	return c
}

func reasoning(entry scoredPathway) string {
	if len(entry.matched) == 0 {
		return "no direct signals matched"
	}

	return "matched signals: " + strings.Join(entry.matched, ", ")
}

// GetPathway looks up a template by type. Returns nil when unknown.
func (r *Router) GetPathway(pathwayType models.PathwayType) *models.PathwayTemplate {
	return r.catalog[pathwayType]
}

// GetAllPathways returns the full catalog ordered by specificity.
func (r *Router) GetAllPathways() []*models.PathwayTemplate {
	templates := make([]*models.PathwayTemplate, 0, len(r.catalog))
	for _, template := range r.catalog {
		templates = append(templates, template)
	}

	sort.Slice(templates, func(i, j int) bool {
		return specificityRank[templates[i].Type] < specificityRank[templates[j].Type]
	})

	return templates
}
