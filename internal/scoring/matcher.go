package scoring

import (
	"context"
	"strings"

	"github.com/talent-concierge/fit-scorer/internal/resume"
)

// Evidence is what a matcher found for one criterion. Strength is in [0,1];
// Keywords lists the terms that fired, when the matcher works on terms.
type Evidence struct {
	Strength float64
	Keywords []string
	Reason   string
}

// Matcher detects presence and strength of a criterion in resume text. The
// job description is supplied for context; the default keyword matcher
// ignores it.
type Matcher interface {
	Evaluate(ctx context.Context, c Criterion, resumeText, jobDescription string) (Evidence, error)
}

// KeywordMatcher is the default deterministic policy: strength is 1.0 when
// any of the criterion's keywords occurs in the normalized resume text,
// otherwise 0.0.
type KeywordMatcher struct {
	keywords []string
}

// NewKeywordMatcher creates a matcher over the given keywords. With no
// keywords it falls back to the criterion's own keywords, then its name.
func NewKeywordMatcher(keywords ...string) *KeywordMatcher {
	return &KeywordMatcher{keywords: keywords}
}

func (m *KeywordMatcher) Evaluate(_ context.Context, c Criterion, resumeText, _ string) (Evidence, error) {
	keywords := m.keywords
	if len(keywords) == 0 {
		keywords = c.Keywords
	}
	if len(keywords) == 0 && strings.TrimSpace(c.Name) != "" {
		keywords = []string{c.Name}
	}

	text := resume.Clean(resumeText)

	var matched []string
	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		if strings.Contains(text, strings.ToLower(kw)) {
			matched = append(matched, kw)
		}
	}

	if len(matched) == 0 {
		return Evidence{}, nil
	}

	return Evidence{Strength: 1.0, Keywords: matched}, nil
}
