// Package concierge generates the human side of the hiring flow: the call
// script a recruiter reads to a candidate, the call slots offered, and the
// booking confirmation.
package concierge

import (
	"fmt"
	"strings"
)

// fallbackStrength is used when scoring found nothing to highlight; the call
// still needs a warm opener.
const fallbackStrength = "service mindset"

// Script builds the three-paragraph concierge call script from the
// candidate's top scored strengths.
func Script(candidate, role string, strengths []string) string {
	cleaned := make([]string, 0, len(strengths))
	for _, s := range strengths {
		if s = strings.TrimSpace(s); s != "" {
			cleaned = append(cleaned, s)
		}
	}
	if len(cleaned) == 0 {
		cleaned = []string{fallbackStrength}
	}

	opener := fmt.Sprintf(
		"Hello %s, this is the Talent Concierge. Thanks for your interest in the %s role.",
		candidate, role,
	)
	body := fmt.Sprintf(
		"We focus on service excellence and multicultural teamwork. Your background stood out for: %s.",
		strings.Join(cleaned, ", "),
	)
	closing := "I'd love to walk you through the role expectations and answer your questions. " +
		"Would you prefer a quick 15-minute call or a 25-minute deep-dive?"

	return fmt.Sprintf("%s\n\n%s\n\n%s", opener, body, closing)
}
