package concierge

import (
	"fmt"
	"os"
	"strings"
)

// Confirmation describes a booked concierge call.
type Confirmation struct {
	Candidate string
	Role      string
	Slot      string
}

// Render produces the confirmation text handed to the candidate.
func (c Confirmation) Render() string {
	var b strings.Builder

	b.WriteString("Talent Concierge — Call Confirmation\n")
	b.WriteString("====================================\n\n")
	fmt.Fprintf(&b, "Candidate: %s\n", c.Candidate)
	fmt.Fprintf(&b, "Role: %s\n", c.Role)
	fmt.Fprintf(&b, "Scheduled Slot: %s\n\n", c.Slot)
	b.WriteString("Thank you for choosing a concierge call. This brief conversation will outline the role, ")
	b.WriteString("highlight your strengths, and answer any questions you have. ")
	b.WriteString("You will receive the next steps after the call.\n")

	return b.String()
}

// WriteFile writes the rendered confirmation to path.
func (c Confirmation) WriteFile(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("confirmation path is required")
	}

	if err := os.WriteFile(path, []byte(c.Render()), 0o644); err != nil {
		return fmt.Errorf("writing confirmation %q: %w", path, err)
	}

	return nil
}
