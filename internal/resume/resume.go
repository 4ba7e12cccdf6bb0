// Package resume loads candidate resume text and normalizes it for matching.
package resume

import (
	"fmt"
	"os"
	"strings"
)

// Load reads a plain-text resume file (.txt or .md). Invalid UTF-8 sequences
// are replaced rather than rejected, since exported resumes frequently carry
// stray bytes.
func Load(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", fmt.Errorf("resume file path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading resume file %q: %w", path, err)
	}

	text := strings.ToValidUTF8(string(data), "�")
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("resume file %q is empty", path)
	}

	return text, nil
}

// Clean collapses whitespace runs to single spaces, trims, and lowercases.
// Keyword matching relies on this normalization on both sides.
func Clean(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
