package analysis

import (
	"context"
	"errors"

	"github.com/strategize/pathway/pkg/generation"
)

// narrate renders the stage's prompt template and asks the text-generation
// collaborator for narrative content. When the collaborator is unavailable
// the deterministic template fallback takes over; any other error is the
// stage's failure to report.
func narrate(ctx context.Context, primary generation.Generator, tmpl generation.PromptTemplate, values map[string]string, genContext map[string]any) (string, error) {
	prompt, err := tmpl.Render(values)
	if err != nil {
		return "", err
	}

	text, err := primary.Generate(ctx, prompt, genContext)
	if err != nil {
		if errors.Is(err, generation.ErrUnavailable) {
			return generation.NewTemplateGenerator().Generate(ctx, prompt, genContext)
		}

		return "", err
	}

	return text, nil
}
