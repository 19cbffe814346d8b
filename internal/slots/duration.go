package slots

import "github.com/harbourkitchen/roster-manager/backend/internal/domain"

const minutesPerDay = 24 * 60

// SegmentDurationMinutes computes the elapsed minutes for one segment.
// A segment without a start contributes zero. When end_is_closing is set the
// closing time is used as the effective end; an unknown closing time means the
// segment contributes zero rather than guessing. A negative difference is
// treated as a shift crossing midnight and wrapped by 24 hours.
func SegmentDurationMinutes(seg domain.SlotSegment, closingTime string, parse TimeParser) int {
	if parse == nil {
		panic("slots: nil time parser")
	}

	if seg.Start == nil {
		return 0
	}
	start, ok := parse(*seg.Start)
	if !ok {
		return 0
	}

	var end int
	if seg.EndIsClosing {
		if closingTime == "" {
			return 0
		}
		if end, ok = parse(closingTime); !ok {
			return 0
		}
	} else {
		if seg.End == nil {
			return 0
		}
		if end, ok = parse(*seg.End); !ok {
			return 0
		}
	}

	diff := end - start
	if diff < 0 {
		diff += minutesPerDay
	}
	return diff
}

// SlotDurationMinutes sums the durations of all segments in a slot, each
// independently subject to closing resolution and midnight wraparound.
func SlotDurationMinutes(slot domain.Slot, closingTime string, parse TimeParser) int {
	total := 0
	for _, seg := range NormalizeSlot(slot).Segments {
		total += SegmentDurationMinutes(seg, closingTime, parse)
	}
	return total
}
