package assumptions

import (
	"fmt"
	"strings"

	"github.com/strategize/pathway/pkg/models"
)

var sectionTitles = map[models.AssumptionCategory]string{
	models.AssumptionUser:      "User Assumptions",
	models.AssumptionMarket:    "Market Assumptions",
	models.AssumptionTechnical: "Technical Assumptions",
	models.AssumptionBusiness:  "Business Assumptions",
}

// FormatMarkdown renders assumptions as a structured document with one
// section per non-empty category plus a challenged section. Returns the empty
// string when there are no assumptions.
func FormatMarkdown(list []models.Assumption) string {
	if len(list) == 0 {
		return ""
	}

	grouped := Categorize(list)

	var b strings.Builder

	b.WriteString("# Assumptions\n")

	for _, category := range categoryOrder {
		section := grouped[string(category)]
		if len(section) == 0 {
			continue
		}

		fmt.Fprintf(&b, "\n## %s\n\n", sectionTitles[category])

		for _, assumption := range section {
			marker := ""
			if assumption.Challenged {
				marker = " [challenged]"
			}

			fmt.Fprintf(&b, "- %s (%s)%s\n", assumption.Text, assumption.Source, marker)
		}
	}

	challenged := grouped["challenged"]
	if len(challenged) > 0 {
		b.WriteString("\n## Challenged Assumptions\n\n")

		for _, assumption := range challenged {
			fmt.Fprintf(&b, "- %s: %s\n", assumption.Text, assumption.ChallengeReason)
		}
	}

	return b.String()
}
