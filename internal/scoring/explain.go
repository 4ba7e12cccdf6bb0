package scoring

import (
	"fmt"
	"strings"
)

// Explanation renders the per-criterion breakdown as bullet lines in the
// order criteria were supplied. Consumers rely on this ordering for stable
// display.
func (r *Result) Explanation() string {
	var b strings.Builder

	for pair := r.Criteria.Oldest(); pair != nil; pair = pair.Next() {
		name, cr := pair.Key, pair.Value

		switch {
		case cr.Error != "":
			fmt.Fprintf(&b, "• %s: evaluation failed: %s (+0.000)", name, cr.Error)
		case !cr.Matched:
			fmt.Fprintf(&b, "• %s: no match (+0.000)", name)
		case len(cr.Keywords) > 0:
			fmt.Fprintf(&b, "• %s: matched %s (+%.3f)", name, strings.Join(cr.Keywords, ", "), cr.Contribution)
		default:
			fmt.Fprintf(&b, "• %s: matched (+%.3f)", name, cr.Contribution)
		}

		if pair.Next() != nil {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// TopStrengths returns up to n matched criterion names in input order,
// feeding the concierge call script.
func (r *Result) TopStrengths(n int) []string {
	strengths := make([]string, 0, n)
	for pair := r.Criteria.Oldest(); pair != nil && len(strengths) < n; pair = pair.Next() {
		if pair.Value.Matched {
			strengths = append(strengths, pair.Key)
		}
	}
	return strengths
}

// Percent returns the total score on the 0-100 display scale.
func (r *Result) Percent() float64 {
	return r.Total * 100
}
