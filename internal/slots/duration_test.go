package slots

import (
	"testing"

	"github.com/harbourkitchen/roster-manager/backend/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSegmentDurationMinutes(t *testing.T) {
	tests := []struct {
		name    string
		seg     domain.SlotSegment
		closing string
		want    int
	}{
		{
			name: "plain shift",
			seg:  domain.SlotSegment{Start: strptr("09:00"), End: strptr("17:00")},
			want: 480,
		},
		{
			name: "crosses midnight",
			seg:  domain.SlotSegment{Start: strptr("22:00"), End: strptr("02:00")},
			want: 240,
		},
		{
			name:    "end at closing",
			seg:     domain.SlotSegment{Start: strptr("09:00"), EndIsClosing: true},
			closing: "17:00",
			want:    480,
		},
		{
			name: "end at closing but closing unknown",
			seg:  domain.SlotSegment{Start: strptr("09:00"), EndIsClosing: true},
			want: 0,
		},
		{
			name:    "closing flag ignores literal end",
			seg:     domain.SlotSegment{Start: strptr("09:00"), End: strptr("12:00"), EndIsClosing: true},
			closing: "22:00",
			want:    780,
		},
		{
			name: "no start",
			seg:  domain.SlotSegment{End: strptr("17:00")},
			want: 0,
		},
		{
			name: "no end",
			seg:  domain.SlotSegment{Start: strptr("09:00")},
			want: 0,
		},
		{
			name: "unparseable start",
			seg:  domain.SlotSegment{Start: strptr("soon"), End: strptr("17:00")},
			want: 0,
		},
		{
			name: "seconds are ignored",
			seg:  domain.SlotSegment{Start: strptr("09:00:30"), End: strptr("17:00:45")},
			want: 480,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SegmentDurationMinutes(tt.seg, tt.closing, ParseTimeToMinutes)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSegmentDurationNilParserPanics(t *testing.T) {
	assert.Panics(t, func() {
		SegmentDurationMinutes(domain.SlotSegment{Start: strptr("09:00")}, "", nil)
	})
}

func TestSlotDurationMinutesSumsSegments(t *testing.T) {
	slot := domain.Slot{
		Segments: []domain.SlotSegment{
			{Start: strptr("09:00"), End: strptr("13:00")},
			{Start: strptr("17:00"), EndIsClosing: true},
		},
	}

	// 4h morning + 5h evening until the 22:00 close.
	assert.Equal(t, 540, SlotDurationMinutes(slot, "22:00", ParseTimeToMinutes))

	// Unknown closing time drops only the closing segment.
	assert.Equal(t, 240, SlotDurationMinutes(slot, "", ParseTimeToMinutes))
}

func TestSlotDurationMinutesLegacyFlatSlot(t *testing.T) {
	slot := domain.Slot{Start: strptr("10:00"), End: strptr("14:30")}

	assert.Equal(t, 270, SlotDurationMinutes(slot, "", ParseTimeToMinutes))
}

func TestSlotDurationMinutesEmptySlot(t *testing.T) {
	assert.Equal(t, 0, SlotDurationMinutes(domain.Slot{}, "22:00", ParseTimeToMinutes))
}

func TestFormatSlotForDisplay(t *testing.T) {
	tests := []struct {
		name    string
		slot    domain.Slot
		closing string
		want    string
	}{
		{
			name: "split shift with closing",
			slot: domain.Slot{
				Segments: []domain.SlotSegment{
					{Start: strptr("09:00"), End: strptr("13:00")},
					{Start: strptr("14:00"), EndIsClosing: true},
				},
			},
			closing: "22:00",
			want:    "09:00 - 13:00 / 14:00 - 22:00",
		},
		{
			name: "closing time unknown",
			slot: domain.Slot{
				Segments: []domain.SlotSegment{{Start: strptr("14:00"), EndIsClosing: true}},
			},
			want: "14:00 - closing",
		},
		{
			name: "seconds truncated",
			slot: domain.Slot{Start: strptr("09:00:00"), End: strptr("17:30:00")},
			want: "09:00 - 17:30",
		},
		{
			name: "empty slot",
			slot: domain.Slot{},
			want: "-- - --",
		},
		{
			name: "end only",
			slot: domain.Slot{End: strptr("17:00")},
			want: "-- - 17:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatSlotForDisplay(tt.slot, tt.closing))
		})
	}
}
