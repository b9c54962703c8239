package orchestrator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/strategize/pathway/pkg/models"
)

// validateInputs checks a phase's raw inputs against its rules and collects
// every failure message rather than stopping at the first.
func validateInputs(rules []models.ValidationRule, inputs map[string]any) []string {
	failures := make([]string, 0)

	for _, rule := range rules {
		if !ruleSatisfied(rule, inputs) {
			failures = append(failures, rule.Message)
		}
	}

	return failures
}

func ruleSatisfied(rule models.ValidationRule, inputs map[string]any) bool {
	value, present := inputs[rule.Field]

	switch rule.Type {
	case models.RuleRequired:
		if !present || value == nil {
			return false
		}

		if s, ok := value.(string); ok {
			return strings.TrimSpace(s) != ""
		}

		return true

	case models.RuleMinLength:
		s, ok := value.(string)
		if !ok {
			return false
		}

		return len(strings.TrimSpace(s)) >= minLengthValue(rule.Value)

	case models.RulePattern:
		s, ok := value.(string)
		if !ok {
			return false
		}

		pattern, ok := rule.Value.(string)
		if !ok {
			return false
		}

		matched, err := regexp.MatchString(pattern, s)

		return err == nil && matched

	case models.RuleCustom:
		return rule.Predicate != nil && rule.Predicate(value)

	default:
		return false
	}
}

// minLengthValue tolerates the numeric types a JSON-decoded or hand-built
// rule value can arrive as.
func minLengthValue(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	case string:
		length := 0
		_, err := fmt.Sscanf(n, "%d", &length)
		if err != nil {
			return 0
		}

		return length
	default:
		return 0
	}
}
