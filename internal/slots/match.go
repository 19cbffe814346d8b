package slots

import "github.com/harbourkitchen/roster-manager/backend/internal/domain"

type poolEntry struct {
	entry    *domain.RosterEntry
	startKey string
	used     bool
}

// MatchRosterEntriesToSlots reconciles a day's roster entries for one role
// against the canonical slot array for that (day, role), returning one result
// row per slot with one entry (or nil) per segment.
//
// Roster entries carry only literal times, so the association is rebuilt
// greedily, slot by slot and segment by segment: a segment first claims an
// unused entry whose HH:MM start exactly matches its own, and failing that
// falls back to the first remaining unused entry regardless of its start time.
// The fallback keeps legacy rows whose times were edited after creation from
// dropping off the roster view, at the cost of possible mis-attribution when
// the data is noisy. Segments are left nil once the pool is exhausted, and
// excess entries are silently dropped.
//
// This is a single left-to-right greedy pass, not an optimal bipartite
// matching. Determinism depends on the slot order of the input and on entries
// being pre-sorted per SortRosterEntries.
func MatchRosterEntriesToSlots(slotArr []domain.Slot, entries []*domain.RosterEntry) [][]*domain.RosterEntry {
	pool := make([]poolEntry, 0, len(entries))
	for _, entry := range entries {
		if entry == nil {
			continue
		}
		pool = append(pool, poolEntry{entry: entry, startKey: HHMM(entry.ShiftStart)})
	}

	out := make([][]*domain.RosterEntry, len(slotArr))
	for i, slot := range slotArr {
		out[i] = make([]*domain.RosterEntry, len(slot.Segments))
		for j, seg := range slot.Segments {
			match := -1
			if seg.Start != nil && *seg.Start != "" {
				key := HHMM(*seg.Start)
				for k := range pool {
					if !pool[k].used && pool[k].startKey == key {
						match = k
						break
					}
				}
			}
			if match == -1 {
				for k := range pool {
					if !pool[k].used {
						match = k
						break
					}
				}
			}
			if match == -1 {
				continue
			}
			pool[match].used = true
			out[i][j] = pool[match].entry
		}
	}
	return out
}
