package generation

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// PromptTemplate is a template over a fixed schema of named slots. Slots are
// declared up front; rendering rejects references to undeclared slots and
// missing values rather than silently substituting.
type PromptTemplate struct {
	Name  string
	Text  string
	Slots []string
}

var slotPattern = regexp.MustCompile(`\{([a-z_]+)\}`)

// Render fills the template's slots from the given values.
func (t PromptTemplate) Render(values map[string]string) (string, error) {
	declared := make(map[string]bool, len(t.Slots))
	for _, slot := range t.Slots {
		declared[slot] = true
	}

	var renderErr error

	rendered := slotPattern.ReplaceAllStringFunc(t.Text, func(ref string) string {
		slot := strings.Trim(ref, "{}")

		if !declared[slot] {
			renderErr = fmt.Errorf("template %s references undeclared slot %q", t.Name, slot)

			return ref
		}

		value, ok := values[slot]
		if !ok {
			renderErr = fmt.Errorf("template %s missing value for slot %q", t.Name, slot)

			return ref
		}

		return value
	})

	if renderErr != nil {
		return "", renderErr
	}

	return rendered, nil
}

// TemplateGenerator is the deterministic fallback Generator. It renders the
// prompt context into fixed narrative skeletons instead of calling out.
type TemplateGenerator struct{}

// NewTemplateGenerator creates the fallback generator.
func NewTemplateGenerator() *TemplateGenerator {
	return &TemplateGenerator{}
}

// Generate produces deterministic text from the structured context. It never
// fails, which is the point of the fallback path.
func (g *TemplateGenerator) Generate(_ context.Context, prompt string, genContext map[string]any) (string, error) {
	var b strings.Builder

	b.WriteString(prompt)

	if len(genContext) > 0 {
		b.WriteString(" Based on: ")

		parts := make([]string, 0, len(genContext))
		for key, value := range genContext {
			parts = append(parts, fmt.Sprintf("%s=%v", key, value))
		}

		// Deterministic output needs a stable order.
		sort.Strings(parts)
		b.WriteString(strings.Join(parts, ", "))
		b.WriteString(".")
	}

	return b.String(), nil
}
