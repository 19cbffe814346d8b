package slots

import (
	"strings"

	"github.com/harbourkitchen/roster-manager/backend/internal/domain"
)

// FormatSlotForDisplay renders a slot as "HH:MM - HH:MM" per segment, joined
// by " / " for split shifts. A missing start or end shows as "--". A segment
// ending at closing shows the closing time when known, otherwise the literal
// "closing".
func FormatSlotForDisplay(slot domain.Slot, closingTime string) string {
	segments := NormalizeSlot(slot).Segments
	parts := make([]string, 0, len(segments))

	for _, seg := range segments {
		start := "--"
		if seg.Start != nil {
			start = HHMM(*seg.Start)
		}

		end := "--"
		switch {
		case seg.EndIsClosing:
			if closingTime != "" {
				end = HHMM(closingTime)
			} else {
				end = "closing"
			}
		case seg.End != nil:
			end = HHMM(*seg.End)
		}

		parts = append(parts, start+" - "+end)
	}

	return strings.Join(parts, " / ")
}
