package generation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptTemplateRender(t *testing.T) {
	tmpl := PromptTemplate{
		Name:  "revenue",
		Text:  "Analyze revenue options for {problem} targeting {market}.",
		Slots: []string{"problem", "market"},
	}

	rendered, err := tmpl.Render(map[string]string{
		"problem": "a stalled SaaS product",
		"market":  "mid-market agencies",
	})
	require.NoError(t, err)
	assert.Equal(t, "Analyze revenue options for a stalled SaaS product targeting mid-market agencies.", rendered)
}

func TestPromptTemplateRenderMissingValue(t *testing.T) {
	tmpl := PromptTemplate{
		Name:  "revenue",
		Text:  "Analyze {problem}.",
		Slots: []string{"problem"},
	}

	_, err := tmpl.Render(map[string]string{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing value")
}

func TestPromptTemplateRenderUndeclaredSlot(t *testing.T) {
	tmpl := PromptTemplate{
		Name:  "revenue",
		Text:  "Analyze {problem} for {surprise}.",
		Slots: []string{"problem"},
	}

	_, err := tmpl.Render(map[string]string{"problem": "x", "surprise": "y"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "undeclared slot")
}

func TestTemplateGeneratorDeterministic(t *testing.T) {
	g := NewTemplateGenerator()

	first, err := g.Generate(context.Background(), "Summary of options.", map[string]any{
		"market":  "smb",
		"problem": "churn",
	})
	require.NoError(t, err)

	second, err := g.Generate(context.Background(), "Summary of options.", map[string]any{
		"problem": "churn",
		"market":  "smb",
	})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "problem=churn")
}
