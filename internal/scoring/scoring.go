// Package scoring implements the explainable weighted fit scorer. Given a job
// description, a set of recruiter-weighted criteria and extracted resume text,
// it produces a total fit score in [0,1] and a per-criterion breakdown in the
// order the criteria were supplied.
package scoring

import (
	"context"
	"errors"
	"fmt"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ErrInvalidInput marks precondition failures: empty criteria, non-positive
// weights or empty resume text. It is the only error kind Score returns.
var ErrInvalidInput = errors.New("invalid scoring input")

// Criterion is a single named, weighted attribute a recruiter wants to detect
// in a resume. Weight must be positive; weights are normalized across all
// criteria of a run before use, so only their ratio matters.
type Criterion struct {
	Name     string   `mapstructure:"name"`
	Weight   float64  `mapstructure:"weight"`
	Keywords []string `mapstructure:"keywords"`

	// Matcher overrides the default keyword policy for this criterion.
	// When nil, a keyword matcher over Keywords (or the criterion name,
	// when no keywords are configured) is used.
	Matcher Matcher `mapstructure:"-"`
}

// Input is one scoring request, built fresh per recruiter session.
// Criteria order is display order and is preserved in the result.
type Input struct {
	JobDescription string
	ResumeText     string
	Criteria       []Criterion
}

// CriterionResult describes how a single criterion contributed to the total.
type CriterionResult struct {
	Matched      bool
	Strength     float64
	Weight       float64
	Contribution float64
	Keywords     []string
	Error        string
}

// Result is the outcome of one scoring run. Criteria preserves the input
// order; the sum of contributions equals Total within floating-point
// tolerance.
type Result struct {
	Total    float64
	Criteria *orderedmap.OrderedMap[string, CriterionResult]
}

// Score evaluates the input and returns the fit score with its breakdown.
// Matcher failures do not abort the run: the affected criterion contributes
// zero and carries the error in its result.
func Score(ctx context.Context, in Input) (*Result, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	var totalWeight float64
	for _, c := range in.Criteria {
		totalWeight += c.Weight
	}

	result := &Result{
		Criteria: orderedmap.New[string, CriterionResult](),
	}

	for _, c := range in.Criteria {
		weight := c.Weight / totalWeight

		matcher := c.Matcher
		if matcher == nil {
			keywords := c.Keywords
			if len(keywords) == 0 {
				keywords = []string{c.Name}
			}
			matcher = NewKeywordMatcher(keywords...)
		}

		cr := CriterionResult{Weight: weight}

		evidence, err := matcher.Evaluate(ctx, c, in.ResumeText, in.JobDescription)
		if err != nil {
			cr.Error = err.Error()
		} else {
			cr.Strength = clamp01(evidence.Strength)
			cr.Matched = cr.Strength > 0
			cr.Keywords = evidence.Keywords
			cr.Contribution = weight * cr.Strength
		}

		result.Criteria.Set(c.Name, cr)
		result.Total += cr.Contribution
	}

	return result, nil
}

func validate(in Input) error {
	if len(in.Criteria) == 0 {
		return fmt.Errorf("%w: criteria list is empty", ErrInvalidInput)
	}

	seen := make(map[string]struct{}, len(in.Criteria))
	for _, c := range in.Criteria {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return fmt.Errorf("%w: criterion name is empty", ErrInvalidInput)
		}
		if c.Weight <= 0 {
			return fmt.Errorf("%w: criterion %q has non-positive weight %v", ErrInvalidInput, c.Name, c.Weight)
		}
		if _, ok := seen[name]; ok {
			return fmt.Errorf("%w: duplicate criterion name %q", ErrInvalidInput, name)
		}
		seen[name] = struct{}{}
	}

	if strings.TrimSpace(in.ResumeText) == "" {
		return fmt.Errorf("%w: resume text is empty", ErrInvalidInput)
	}

	return nil
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
