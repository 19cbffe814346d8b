package slots

import (
	"testing"

	"github.com/harbourkitchen/roster-manager/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chefEntry(id int64, start string) *domain.RosterEntry {
	return &domain.RosterEntry{
		ID:         id,
		EmployeeID: id * 10,
		ShiftDate:  "2025-03-03",
		ShiftStart: start,
		ShiftEnd:   "17:00:00",
		Role:       domain.RoleChef,
	}
}

func TestMatchPrefersExactStart(t *testing.T) {
	slotArr := BuildSlotArray([]domain.Slot{
		{Start: strptr("09:00")},
		{Start: strptr("13:00")},
	}, 2)
	// Entries arrive in the opposite order of the slots.
	entries := []*domain.RosterEntry{
		chefEntry(1, "13:00:00"),
		chefEntry(2, "09:00:00"),
	}

	matched := MatchRosterEntriesToSlots(slotArr, entries)

	require.Len(t, matched, 2)
	require.NotNil(t, matched[0][0])
	assert.EqualValues(t, 2, matched[0][0].ID)
	require.NotNil(t, matched[1][0])
	assert.EqualValues(t, 1, matched[1][0].ID)
}

func TestMatchFallsBackToFirstUnused(t *testing.T) {
	// Start times do not line up at all; legacy data gets bound anyway.
	slotArr := BuildSlotArray([]domain.Slot{{Start: strptr("10:00")}}, 1)
	entries := []*domain.RosterEntry{chefEntry(1, "09:30:00")}

	matched := MatchRosterEntriesToSlots(slotArr, entries)

	require.NotNil(t, matched[0][0])
	assert.EqualValues(t, 1, matched[0][0].ID)
}

func TestMatchPoolExhaustion(t *testing.T) {
	slotArr := BuildSlotArray(nil, 3)
	entries := []*domain.RosterEntry{chefEntry(1, "09:00:00")}

	matched := MatchRosterEntriesToSlots(slotArr, entries)

	require.Len(t, matched, 3)
	require.NotNil(t, matched[0][0])
	assert.EqualValues(t, 1, matched[0][0].ID)
	assert.Nil(t, matched[1][0])
	assert.Nil(t, matched[2][0])
}

func TestMatchEmptyPool(t *testing.T) {
	slotArr := BuildSlotArray([]domain.Slot{{Start: strptr("09:00")}}, 2)

	matched := MatchRosterEntriesToSlots(slotArr, nil)

	for _, segs := range matched {
		for _, entry := range segs {
			assert.Nil(t, entry)
		}
	}
}

func TestMatchExcessEntriesDropped(t *testing.T) {
	slotArr := BuildSlotArray([]domain.Slot{{Start: strptr("09:00")}}, 1)
	entries := []*domain.RosterEntry{
		chefEntry(1, "09:00:00"),
		chefEntry(2, "12:00:00"),
		chefEntry(3, "15:00:00"),
	}

	matched := MatchRosterEntriesToSlots(slotArr, entries)

	require.Len(t, matched, 1)
	require.Len(t, matched[0], 1)
	assert.EqualValues(t, 1, matched[0][0].ID)
}

func TestMatchSplitShiftSegments(t *testing.T) {
	slotArr := BuildSlotArray([]domain.Slot{
		{Segments: []domain.SlotSegment{
			{Start: strptr("09:00"), End: strptr("13:00")},
			{Start: strptr("17:00"), EndIsClosing: true},
		}},
	}, 1)
	entries := []*domain.RosterEntry{
		chefEntry(1, "17:00:00"),
		chefEntry(2, "09:00:00"),
	}

	matched := MatchRosterEntriesToSlots(slotArr, entries)

	require.Len(t, matched[0], 2)
	assert.EqualValues(t, 2, matched[0][0].ID)
	assert.EqualValues(t, 1, matched[0][1].ID)
}

func TestMatchSegmentWithoutStartUsesFallback(t *testing.T) {
	slotArr := BuildSlotArray(nil, 1) // single default segment, no start
	entries := []*domain.RosterEntry{chefEntry(1, "09:00:00")}

	matched := MatchRosterEntriesToSlots(slotArr, entries)

	require.NotNil(t, matched[0][0])
	assert.EqualValues(t, 1, matched[0][0].ID)
}

func TestMatchDeterministicAfterSort(t *testing.T) {
	slotArr := BuildSlotArray([]domain.Slot{
		{Start: strptr("09:00")},
		{Start: strptr("09:00")},
	}, 2)

	// Same start time: the lower id must win the first slot every time.
	entries := []*domain.RosterEntry{
		chefEntry(7, "09:00:00"),
		chefEntry(3, "09:00:00"),
	}
	SortRosterEntries(entries)

	matched := MatchRosterEntriesToSlots(slotArr, entries)

	assert.EqualValues(t, 3, matched[0][0].ID)
	assert.EqualValues(t, 7, matched[1][0].ID)
}
