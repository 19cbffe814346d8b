package slots

import (
	"testing"

	"github.com/harbourkitchen/roster-manager/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func TestParseTimeToMinutes(t *testing.T) {
	tests := []struct {
		input   string
		minutes int
		ok      bool
	}{
		{"09:00", 540, true},
		{"09:30:00", 570, true},
		{"00:00", 0, true},
		{"23:59", 1439, true},
		{"", 0, false},
		{"9", 0, false},
		{"ab:cd", 0, false},
	}

	for _, tt := range tests {
		minutes, ok := ParseTimeToMinutes(tt.input)
		assert.Equal(t, tt.ok, ok, "input %q", tt.input)
		assert.Equal(t, tt.minutes, minutes, "input %q", tt.input)
	}
}

func TestNormalizeSegmentsDefaults(t *testing.T) {
	for _, raw := range [][]domain.SlotSegment{nil, {}} {
		segments := NormalizeSegments(raw)
		require.Len(t, segments, 1)
		assert.Nil(t, segments[0].Start)
		assert.Nil(t, segments[0].End)
		assert.False(t, segments[0].EndIsClosing)
	}
}

func TestNormalizeSegmentsClearsEmptyStrings(t *testing.T) {
	segments := NormalizeSegments([]domain.SlotSegment{
		{Start: strptr(""), End: strptr("17:00"), EndIsClosing: false},
	})

	require.Len(t, segments, 1)
	assert.Nil(t, segments[0].Start)
	require.NotNil(t, segments[0].End)
	assert.Equal(t, "17:00", *segments[0].End)
}

func TestNormalizeSlotTotality(t *testing.T) {
	// The normalizer must absorb every degenerate shape without panicking.
	inputs := []domain.Slot{
		{},
		{Start: strptr("09:00")},
		{Segments: []domain.SlotSegment{}},
		{Segments: []domain.SlotSegment{{Start: strptr("09:00"), End: strptr("17:00")}}},
	}

	for _, raw := range inputs {
		slot := NormalizeSlot(raw)
		require.NotEmpty(t, slot.Segments)
	}
}

func TestNormalizeSlotWrapsLegacyFlatSlot(t *testing.T) {
	slot := NormalizeSlot(domain.Slot{
		Start:        strptr("09:00"),
		End:          strptr("17:00"),
		EndIsClosing: false,
	})

	require.Len(t, slot.Segments, 1)
	require.NotNil(t, slot.Segments[0].Start)
	assert.Equal(t, "09:00", *slot.Segments[0].Start)
	require.NotNil(t, slot.Segments[0].End)
	assert.Equal(t, "17:00", *slot.Segments[0].End)
}

func TestNormalizeSlotMirrorsFirstSegment(t *testing.T) {
	slot := NormalizeSlot(domain.Slot{
		Segments: []domain.SlotSegment{
			{Start: strptr("09:00"), End: strptr("13:00")},
			{Start: strptr("17:00"), EndIsClosing: true},
		},
	})

	require.NotNil(t, slot.Start)
	assert.Equal(t, "09:00", *slot.Start)
	require.NotNil(t, slot.End)
	assert.Equal(t, "13:00", *slot.End)
	assert.False(t, slot.EndIsClosing)
	assert.Len(t, slot.Segments, 2)
}

func TestNormalizeSlotKeepsLiteralEndWithClosingFlag(t *testing.T) {
	// Clearing the literal end when end_is_closing is set happens at the edit
	// boundary, not here, to avoid data loss on read.
	slot := NormalizeSlot(domain.Slot{
		Segments: []domain.SlotSegment{
			{Start: strptr("09:00"), End: strptr("17:00"), EndIsClosing: true},
		},
	})

	require.NotNil(t, slot.Segments[0].End)
	assert.Equal(t, "17:00", *slot.Segments[0].End)
	assert.True(t, slot.Segments[0].EndIsClosing)
}

func TestBuildSlotArrayPadsToRequiredCount(t *testing.T) {
	raw := []domain.Slot{{Start: strptr("08:00"), End: strptr("12:00")}}

	arr := BuildSlotArray(raw, 3)

	require.Len(t, arr, 3)
	require.NotNil(t, arr[0].Segments[0].Start)
	assert.Equal(t, "08:00", *arr[0].Segments[0].Start)
	for _, slot := range arr[1:] {
		require.Len(t, slot.Segments, 1)
		assert.Nil(t, slot.Segments[0].Start)
		assert.Nil(t, slot.Segments[0].End)
		assert.False(t, slot.Segments[0].EndIsClosing)
	}
}

func TestBuildSlotArrayKeepsExcessSlots(t *testing.T) {
	raw := []domain.Slot{
		{Start: strptr("08:00")},
		{Start: strptr("12:00")},
	}

	arr := BuildSlotArray(raw, 1)

	require.Len(t, arr, 2)
}

func TestBuildSlotArrayEmpty(t *testing.T) {
	assert.Empty(t, BuildSlotArray(nil, 0))
	assert.Empty(t, BuildSlotArray([]domain.Slot{}, 0))
}

func TestBuildSlotArrayIdempotent(t *testing.T) {
	raw := []domain.Slot{
		{Start: strptr("08:00"), End: strptr("12:00")},
		{Segments: []domain.SlotSegment{
			{Start: strptr("09:00"), End: strptr("13:00")},
			{Start: strptr("17:00"), EndIsClosing: true},
		}},
	}

	once := BuildSlotArray(raw, 4)
	twice := BuildSlotArray(once, 4)

	assert.Equal(t, once, twice)
}

func TestBuildSlotArrayNegativeCountPanics(t *testing.T) {
	assert.Panics(t, func() {
		BuildSlotArray(nil, -1)
	})
}

func TestSortRosterEntries(t *testing.T) {
	entries := []*domain.RosterEntry{
		{ID: 4, ShiftDate: "2025-03-03", Role: domain.RoleChef, ShiftStart: "13:00:00"},
		{ID: 3, ShiftDate: "2025-03-03", Role: domain.RoleChef, ShiftStart: "09:00:00"},
		{ID: 2, ShiftDate: "2025-03-03", Role: domain.RoleChef, ShiftStart: "09:00:00"},
		{ID: 1, ShiftDate: "2025-03-04", Role: domain.RoleChef, ShiftStart: "08:00:00"},
		{ID: 5, ShiftDate: "2025-03-03", Role: domain.RoleKitchenHand, ShiftStart: "08:00:00"},
	}

	SortRosterEntries(entries)

	ids := make([]int64, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []int64{2, 3, 4, 5, 1}, ids)
}
