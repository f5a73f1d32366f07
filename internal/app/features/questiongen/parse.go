// internal/app/features/questiongen/parse.go
package questiongen

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseQuestions extracts the question list from raw model output. Models
// often wrap JSON in markdown fences despite instructions; the fences are
// stripped before parsing. Anything that is not a non-empty JSON array of
// strings is an error.
func ParseQuestions(raw string) ([]string, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.ReplaceAll(cleaned, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	var questions []string
	if err := json.Unmarshal([]byte(cleaned), &questions); err != nil {
		return nil, fmt.Errorf("parse generated questions: %w", err)
	}

	out := questions[:0]
	for _, q := range questions {
		if q = strings.TrimSpace(q); q != "" {
			out = append(out, q)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no questions in generated output")
	}
	return out, nil
}
