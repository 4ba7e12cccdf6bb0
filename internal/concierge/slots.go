package concierge

import "time"

const (
	// slotLeadTime keeps the first offered slot comfortably in the future.
	slotLeadTime = 2 * time.Hour
	slotSpacing  = 30 * time.Minute
	slotFormat   = "Mon 02 Jan, 03:04 PM"

	DefaultSlotCount = 5
)

// Slots returns n call slots spaced half an hour apart, starting two hours
// after now, formatted for display.
func Slots(now time.Time, n int) []string {
	if n <= 0 {
		n = DefaultSlotCount
	}

	base := now.Add(slotLeadTime)
	slots := make([]string, 0, n)
	for i := 0; i < n; i++ {
		slots = append(slots, base.Add(time.Duration(i)*slotSpacing).Format(slotFormat))
	}

	return slots
}
