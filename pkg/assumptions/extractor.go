// Package assumptions mines conversation transcripts for explicit and
// implicit assumptions and whether they were later challenged.
package assumptions

import (
	"strings"

	"github.com/strategize/pathway/pkg/models"
)

// Extract scans an ordered transcript for assumption statements. Matches are
// deduplicated by normalized text across the whole transcript, so a restated
// assumption contributes a single entry. For each retained assumption, the
// next message from the opposite role is scanned for a challenge.
func Extract(messages []models.Message) []models.Assumption {
	extracted := make([]models.Assumption, 0)
	seen := make(map[string]bool)

	for i, msg := range messages {
		for _, pattern := range triggerPatterns {
			for _, match := range pattern.FindAllStringSubmatch(msg.Content, -1) {
				text := strings.TrimSpace(match[1])
				if len(text) < minAssumptionLength {
					continue
				}

				key := normalize(text)
				if seen[key] {
					continue
				}

				seen[key] = true

				assumption := models.Assumption{
					Text:         text,
					Source:       msg.Role,
					MessageIndex: i,
					Category:     categorize(text),
				}

				if reason, ok := findChallenge(messages, i, msg.Role); ok {
					assumption.Challenged = true
					assumption.ChallengeReason = reason
				}

				extracted = append(extracted, assumption)
			}
		}
	}

	return extracted
}

// findChallenge inspects the message following index i authored by the
// opposite role for a challenge-indicating pattern.
func findChallenge(messages []models.Message, i int, source models.MessageRole) (string, bool) {
	for j := i + 1; j < len(messages); j++ {
		if messages[j].Role == source {
			continue
		}

		for _, pattern := range challengePatterns {
			match := pattern.FindStringSubmatch(messages[j].Content)
			if match == nil {
				continue
			}

			reason := strings.TrimSpace(match[1])
			if reason == "" {
				reason = strings.TrimSpace(match[0])
			}

			return reason, true
		}

		// Only the next opposite-role message counts as a challenge window.
		return "", false
	}

	return "", false
}

// categorize picks the first category whose keyword set matches the text.
func categorize(text string) models.AssumptionCategory {
	lowered := strings.ToLower(text)

	for _, category := range categoryOrder {
		for _, keyword := range categoryKeywords[category] {
			if strings.Contains(lowered, keyword) {
				return category
			}
		}
	}

	return defaultCategory
}

// normalize produces the dedup key: case-insensitive, whitespace-collapsed.
func normalize(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// Categorize groups assumptions by category and additionally exposes a
// "challenged" bucket holding every challenged assumption.
func Categorize(list []models.Assumption) map[string][]models.Assumption {
	grouped := make(map[string][]models.Assumption)

	for _, assumption := range list {
		key := string(assumption.Category)
		grouped[key] = append(grouped[key], assumption)

		if assumption.Challenged {
			grouped["challenged"] = append(grouped["challenged"], assumption)
		}
	}

	return grouped
}
