// Package slots holds the slot/segment model algorithms shared by the roster
// handlers, the dashboard report and the exports: normalization of stored slot
// data, duration computation, display formatting and the reconciliation of
// roster entries back onto requirement slots.
//
// Every function here is a pure function over its inputs. Stored slot data is
// messy (legacy flat slots without a segments list, sparse arrays, missing
// fields), so normalization is total and never fails: malformed input degrades
// to safe defaults instead of erroring. The only programmer errors are a
// negative required count and a nil time parser, which panic.
package slots

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/harbourkitchen/roster-manager/backend/internal/domain"
)

// TimeParser converts a wall-clock time string to minutes since midnight.
// It reports false for input it cannot parse.
type TimeParser func(s string) (int, bool)

// ParseTimeToMinutes parses HH:MM or HH:MM:SS, using only the hour and minute
// components. It is the canonical TimeParser for the rest of the backend.
func ParseTimeToMinutes(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return 0, false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	return hour*60 + minute, true
}

// HHMM truncates a time string to its HH:MM prefix.
func HHMM(s string) string {
	if len(s) > 5 {
		return s[:5]
	}
	return s
}

// NormalizeSegments canonicalizes a raw segment list: a nil or empty list
// becomes one default empty segment, and empty-string fields become nil. The
// result is always non-empty. A literal end alongside end_is_closing is kept
// as entered; clearing it is the edit boundary's job, not the normalizer's.
func NormalizeSegments(raw []domain.SlotSegment) []domain.SlotSegment {
	if len(raw) == 0 {
		return []domain.SlotSegment{{}}
	}
	segments := make([]domain.SlotSegment, len(raw))
	for i, seg := range raw {
		segments[i] = domain.SlotSegment{
			Start:        normalizeTime(seg.Start),
			End:          normalizeTime(seg.End),
			EndIsClosing: seg.EndIsClosing,
		}
	}
	return segments
}

func normalizeTime(t *string) *string {
	if t == nil || *t == "" {
		return nil
	}
	return t
}

// NormalizeSlot is the single normalization entry point: every component that
// touches a slot must go through it before reading segment data. Legacy flat
// slots (top-level times, no segments list) are wrapped into a one-segment
// slot, and the first segment's fields are mirrored at the top level for flat
// consumers.
func NormalizeSlot(raw domain.Slot) domain.Slot {
	segs := raw.Segments
	if len(segs) == 0 && (raw.Start != nil || raw.End != nil || raw.EndIsClosing) {
		segs = []domain.SlotSegment{{
			Start:        raw.Start,
			End:          raw.End,
			EndIsClosing: raw.EndIsClosing,
		}}
	}
	segs = NormalizeSegments(segs)

	first := segs[0]
	return domain.Slot{
		Start:        first.Start,
		End:          first.End,
		EndIsClosing: first.EndIsClosing,
		Segments:     segs,
	}
}

// BuildSlotArray expands a day's raw slot data into exactly
// max(len(raw), requiredCount) normalized slots. Missing tail slots are
// synthesized with one default empty segment. A required count of zero with no
// raw data yields an empty array. The function is idempotent: feeding its
// output back through with the same count returns an equivalent array.
//
// A negative requiredCount is a caller contract violation and panics.
func BuildSlotArray(raw []domain.Slot, requiredCount int) []domain.Slot {
	if requiredCount < 0 {
		panic(fmt.Sprintf("slots: negative required count %d", requiredCount))
	}

	total := max(len(raw), requiredCount)
	if total == 0 {
		return []domain.Slot{}
	}

	out := make([]domain.Slot, total)
	for i := range out {
		if i < len(raw) {
			out[i] = NormalizeSlot(raw[i])
		} else {
			out[i] = NormalizeSlot(domain.Slot{})
		}
	}
	return out
}

// SortRosterEntries orders entries by (date, role, start time, id). The
// matcher relies on this deterministic ordering for reproducible results;
// entries carry no slot reference, so this tie-break is what keeps repeated
// reconciliations of the same data identical.
func SortRosterEntries(entries []*domain.RosterEntry) {
	slices.SortStableFunc(entries, func(a, b *domain.RosterEntry) int {
		if c := strings.Compare(a.ShiftDate, b.ShiftDate); c != 0 {
			return c
		}
		if c := strings.Compare(a.Role, b.Role); c != 0 {
			return c
		}
		if c := strings.Compare(a.ShiftStart, b.ShiftStart); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}
