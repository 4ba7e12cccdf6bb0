package audit

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/talent-concierge/fit-scorer/internal/scoring"
)

// NewEntry builds an audit entry from a scoring run. The matched-criteria
// summary and the weights JSON follow the shape of the downloadable log.
func NewEntry(candidate, role string, priority bool, criteria []scoring.Criterion, result *scoring.Result) (*Entry, error) {
	if result == nil {
		return nil, fmt.Errorf("scoring result is required")
	}

	var matched []string
	for pair := result.Criteria.Oldest(); pair != nil; pair = pair.Next() {
		if !pair.Value.Matched {
			continue
		}
		if len(pair.Value.Keywords) > 0 {
			matched = append(matched, fmt.Sprintf("%s (%s)", pair.Key, strings.Join(pair.Value.Keywords, ", ")))
		} else {
			matched = append(matched, pair.Key)
		}
	}

	summary := "None"
	if len(matched) > 0 {
		summary = strings.Join(matched, "; ")
	}

	weights := make(map[string]float64, len(criteria))
	for _, c := range criteria {
		weights[c.Name] = c.Weight
	}

	weightsJSON, err := json.Marshal(weights)
	if err != nil {
		return nil, fmt.Errorf("marshal criteria weights: %w", err)
	}

	return &Entry{
		Candidate:       candidate,
		Priority:        priority,
		Role:            role,
		Score:           result.Total,
		MatchedCriteria: summary,
		Weights:         string(weightsJSON),
	}, nil
}
