package vision

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Normalize parses raw provider output into an AnalysisRecord. It strips
// markdown code fences, requires a single JSON object and then fills the
// documented defaults for optional fields so downstream code can assume
// every field is present.
func Normalize(raw string) (*AnalysisRecord, error) {
	text := stripCodeFences(raw)

	if !strings.HasPrefix(text, "{") {
		return nil, &ParseError{Raw: text, Err: fmt.Errorf("response is not a JSON object")}
	}

	var rec AnalysisRecord
	if err := json.Unmarshal([]byte(text), &rec); err != nil {
		return nil, &ParseError{Raw: text, Err: err}
	}

	applyDefaults(&rec)
	return &rec, nil
}

// stripCodeFences removes leading/trailing markdown code blocks that
// providers add despite being told not to.
func stripCodeFences(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

// applyDefaults fills the fixed default-substitution table over optional
// fields. Required fields (itemType, brand, size, color, material,
// condition) pass through unchanged; the normalizer does not invent them.
func applyDefaults(rec *AnalysisRecord) {
	if rec.Department == "" {
		rec.Department = rec.Gender
	}
	if rec.Season == "" {
		rec.Season = "All Seasons"
	}
	if rec.Features == nil {
		rec.Features = []string{}
	}
	if rec.KeyFeatures == nil {
		rec.KeyFeatures = []string{}
	}
	if rec.Measurements == nil {
		rec.Measurements = map[string]string{}
	}
	if rec.Condition.Defects == nil {
		rec.Condition.Defects = []string{}
	}
}
