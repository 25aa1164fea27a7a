package analysis

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// extractJSON strips a markdown code fence and any prose around the outermost
// JSON object.
func extractJSON(text string) string {
	s := strings.TrimSpace(text)
	if i := strings.Index(s, "```"); i >= 0 {
		rest := s[i+3:]
		if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
			rest = rest[nl+1:]
		}
		if end := strings.Index(rest, "```"); end >= 0 {
			rest = rest[:end]
		}
		s = strings.TrimSpace(rest)
	}
	if start := strings.IndexByte(s, '{'); start > 0 {
		s = s[start:]
	}
	if end := strings.LastIndexByte(s, '}'); end >= 0 && end < len(s)-1 {
		s = s[:end+1]
	}
	return s
}

// decodePlan parses model output into a Plan, repairing malformed JSON
// (trailing commas, single quotes, truncation) before giving up.
func decodePlan(text string) (*Plan, error) {
	raw := extractJSON(text)
	if raw == "" {
		return nil, fmt.Errorf("%w: empty response", ErrInvalidPlan)
	}

	var p Plan
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		fixed, repairErr := jsonrepair.JSONRepair(raw)
		if repairErr != nil {
			return nil, fmt.Errorf("decode plan: %w (repair: %v)", err, repairErr)
		}
		p = Plan{}
		if err := json.Unmarshal([]byte(fixed), &p); err != nil {
			return nil, fmt.Errorf("decode repaired plan: %w", err)
		}
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}
