package article

import "strings"

// The shape contract: minimum word counts per field role. A generated field
// that is absent or shorter than its minimum is replaced by the matching
// fallback value; the record as a whole is never rejected.
const (
	minSnippetWords     = 200
	minDescriptionWords = 200
	minBioWords         = 40
	minFullTextWords    = 300
	minSummaryWords     = 60
)

func wordCount(s string) int {
	return len(strings.Fields(s))
}

// fill returns value when it meets the minimum word count, otherwise fallback.
func fill(value string, minWords int, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || wordCount(trimmed) < minWords {
		return fallback
	}
	return trimmed
}

// fillPresent returns value when non-blank, otherwise fallback.
func fillPresent(value, fallback string) string {
	return fill(value, 1, fallback)
}

// fillList returns values with blank entries removed, or fallback when
// nothing usable remains.
func fillList(values []string, fallback []string) []string {
	cleaned := make([]string, 0, len(values))
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			continue
		}
		cleaned = append(cleaned, trimmed)
	}

	if len(cleaned) == 0 {
		return fallback
	}

	return cleaned
}
