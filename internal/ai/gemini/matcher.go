package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"

	"github.com/talent-concierge/fit-scorer/internal/logger"
	"github.com/talent-concierge/fit-scorer/internal/scoring"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Matcher asks Gemini for the strength with which a criterion is evidenced in
// resume text. Strengths below the configured minimum are clamped to zero so a
// weak semantic hint never counts as a match.
type Matcher struct {
	generator   contentGenerator
	minStrength float64
	logger      *zap.Logger
	maxLogLen   int
}

//go:embed prompt.md
var promptTemplate string

const defaultMaxLogLength = 200

func NewMatcher(generator contentGenerator, minStrength float64, maxLogLength int, log *zap.Logger) *Matcher {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	if log == nil {
		log = zap.NewNop()
	}

	return &Matcher{
		generator:   generator,
		minStrength: minStrength,
		logger:      log,
		maxLogLen:   maxLogLength,
	}
}

func (m *Matcher) Evaluate(ctx context.Context, c scoring.Criterion, resumeText, jobDescription string) (scoring.Evidence, error) {
	if strings.TrimSpace(resumeText) == "" {
		return scoring.Evidence{}, fmt.Errorf("resume text is required")
	}

	criterionJSON, err := json.Marshal(map[string]any{
		"name":     c.Name,
		"keywords": c.Keywords,
	})
	if err != nil {
		return scoring.Evidence{}, fmt.Errorf("marshal criterion payload: %w", err)
	}

	prompt := buildPrompt(string(criterionJSON), resumeText, jobDescription)

	m.logger.Debug("gemini generate content request",
		zap.String("criterion", c.Name),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", logger.TruncateForLog(prompt, m.maxLogLen)),
	)

	raw, err := m.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return scoring.Evidence{}, err
	}

	m.logger.Debug("gemini generate content response",
		zap.String("criterion", c.Name),
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", logger.TruncateForLog(raw, m.maxLogLen)),
	)

	evidence, err := parseResponse(raw)
	if err != nil {
		return scoring.Evidence{}, err
	}

	if m.minStrength > 0 && evidence.Strength < m.minStrength {
		m.logger.Debug("clamping strength below threshold",
			zap.String("criterion", c.Name),
			zap.Float64("strength", evidence.Strength),
			zap.Float64("threshold", m.minStrength),
		)
		evidence.Strength = 0
		evidence.Keywords = nil
	}

	return evidence, nil
}

func buildPrompt(criterionJSON, resumeText, jobDescription string) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Criterion:\n{{CRITERION_JSON}}\n\nJob description:\n{{JOB_DESCRIPTION}}\n\nResume:\n{{RESUME_TEXT}}\n\nJSON Response:"
	}

	if strings.TrimSpace(jobDescription) == "" {
		jobDescription = "(not provided)"
	}

	prompt := strings.ReplaceAll(template, "{{CRITERION_JSON}}", criterionJSON)
	prompt = strings.ReplaceAll(prompt, "{{JOB_DESCRIPTION}}", jobDescription)
	prompt = strings.ReplaceAll(prompt, "{{RESUME_TEXT}}", resumeText)
	return prompt
}

func parseResponse(raw string) (scoring.Evidence, error) {
	cleaned := extractJSON(raw)

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return scoring.Evidence{}, fmt.Errorf("parse gemini response: %w", err)
	}

	strength := coerceFloat(data["strength"])
	if math.IsNaN(strength) {
		strength = 0
	}

	return scoring.Evidence{
		Strength: strength,
		Keywords: coerceStrings(data["evidence"]),
		Reason:   coerceString(data["reason"]),
	}, nil
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}

func coerceFloat(v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case int:
		return float64(val)
	case string:
		trimmed := strings.TrimSpace(val)
		if trimmed == "" {
			return math.NaN()
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}

func coerceString(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case fmt.Stringer:
		return strings.TrimSpace(val.String())
	default:
		if v == nil {
			return ""
		}
		bytes, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(bytes)
	}
}

func coerceStrings(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}

	result := make([]string, 0, len(items))
	for _, item := range items {
		if s := coerceString(item); s != "" {
			result = append(result, s)
		}
	}

	if len(result) == 0 {
		return nil
	}
	return result
}
