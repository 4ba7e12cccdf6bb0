package concierge

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestScript(t *testing.T) {
	t.Parallel()

	script := Script("Aisha Khan", "Guest Experience Supervisor", []string{"Customer Empathy", "Arabic / Multilingual"})

	require.Contains(t, script, "Hello Aisha Khan, this is the Talent Concierge.")
	require.Contains(t, script, "the Guest Experience Supervisor role")
	require.Contains(t, script, "Customer Empathy, Arabic / Multilingual.")
	require.Contains(t, script, "15-minute call or a 25-minute deep-dive")

	paragraphs := strings.Split(script, "\n\n")
	require.Len(t, paragraphs, 3)
}

func TestScriptFallsBackWhenNothingMatched(t *testing.T) {
	t.Parallel()

	script := Script("Armaan Satish", "Guest Experience Supervisor", nil)
	require.Contains(t, script, "service mindset")

	script = Script("Armaan Satish", "Guest Experience Supervisor", []string{"  ", ""})
	require.Contains(t, script, "service mindset")
}

func TestSlots(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.March, 3, 10, 0, 0, 0, time.UTC)

	slots := Slots(now, 3)
	require.Equal(t, []string{
		"Mon 03 Mar, 12:00 PM",
		"Mon 03 Mar, 12:30 PM",
		"Mon 03 Mar, 01:00 PM",
	}, slots)
}

func TestSlotsDefaultsCount(t *testing.T) {
	t.Parallel()

	slots := Slots(time.Now(), 0)
	require.Len(t, slots, DefaultSlotCount)
}

func TestConfirmationRenderAndWrite(t *testing.T) {
	t.Parallel()

	c := Confirmation{
		Candidate: "Aisha Khan",
		Role:      "Guest Experience Supervisor",
		Slot:      "Mon 03 Mar, 12:00 PM",
	}

	text := c.Render()
	require.Contains(t, text, "Candidate: Aisha Khan")
	require.Contains(t, text, "Role: Guest Experience Supervisor")
	require.Contains(t, text, "Scheduled Slot: Mon 03 Mar, 12:00 PM")

	path := filepath.Join(t.TempDir(), "confirmation.txt")
	require.NoError(t, c.WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, text, string(data))

	require.Error(t, Confirmation{}.WriteFile("  "))
}
