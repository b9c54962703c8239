package router

import (
	"testing"

	"github.com/strategize/pathway/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *Router {
	t.Helper()

	r, err := NewRouter()
	require.NoError(t, err)

	return r
}

func TestAnalyzeIntentClearMatch(t *testing.T) {
	r := newTestRouter(t)

	result := r.AnalyzeIntent("I'm struggling with monetization and revenue streams")

	assert.Equal(t, models.PathwayBusinessModelProblem, result.Primary)
	assert.Greater(t, result.Confidence, 0.5)
	assert.LessOrEqual(t, result.Confidence, 0.95)
	assert.Contains(t, result.Reasoning, "monetization")
	assert.NotEmpty(t, result.Alternatives)
}

func TestAnalyzeIntentAmbiguous(t *testing.T) {
	r := newTestRouter(t)

	result := r.AnalyzeIntent("I need help")

	assert.Equal(t, models.PathwayGeneralStrategy, result.Primary)
	assert.Greater(t, result.Confidence, 0.3)
	assert.Less(t, result.Confidence, 1.0)
	assert.Contains(t, result.Reasoning, "ambiguous")
	assert.NotEmpty(t, result.Alternatives)
}

func TestAnalyzeIntentEmptyInput(t *testing.T) {
	r := newTestRouter(t)

	result := r.AnalyzeIntent("")

	assert.Equal(t, models.PathwayGeneralStrategy, result.Primary)
	assert.Greater(t, result.Confidence, 0.3)
	assert.NotEmpty(t, result.Alternatives)
}

func TestAnalyzeIntentAlternativesSorted(t *testing.T) {
	r := newTestRouter(t)

	result := r.AnalyzeIntent("We have a new idea for a product but our growth and retention numbers worry me")

	require.NotEmpty(t, result.Alternatives)

	previous := result.Confidence
	for _, alternative := range result.Alternatives {
		assert.LessOrEqual(t, alternative.Confidence, previous)
		previous = alternative.Confidence
	}
}

func TestAnalyzeIntentConfidenceBounds(t *testing.T) {
	r := newTestRouter(t)

	inputs := []string{
		"",
		"help",
		"business model business model revenue stream monetization pricing revenue profitability",
		"idea idea idea idea",
	}

	for _, input := range inputs {
		result := r.AnalyzeIntent(input)
		assert.GreaterOrEqual(t, result.Confidence, 0.3, "input %q", input)
		assert.LessOrEqual(t, result.Confidence, 0.95, "input %q", input)
	}
}

func TestGetPathway(t *testing.T) {
	r := newTestRouter(t)

	template := r.GetPathway(models.PathwayNewIdea)
	require.NotNil(t, template)
	assert.Equal(t, models.PathwayNewIdea, template.Type)

	assert.Nil(t, r.GetPathway(models.PathwayType("nonexistent")))
}

func TestGetAllPathways(t *testing.T) {
	r := newTestRouter(t)

	templates := r.GetAllPathways()
	assert.Len(t, templates, len(catalog))

	// Specificity ordering puts business model first, general strategy last.
	assert.Equal(t, models.PathwayBusinessModelProblem, templates[0].Type)
	assert.Equal(t, models.PathwayGeneralStrategy, templates[len(templates)-1].Type)
}
