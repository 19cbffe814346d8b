package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harbourkitchen/roster-manager/backend/internal/domain"
)

func strp(s string) *string { return &s }

func TestValidateTimeOfDay(t *testing.T) {
	assert.NoError(t, ValidateTimeOfDay("09:00"))
	assert.NoError(t, ValidateTimeOfDay("23:59:59"))
	assert.Error(t, ValidateTimeOfDay("24:00"))
	assert.Error(t, ValidateTimeOfDay("9am"))
	assert.Error(t, ValidateTimeOfDay(""))
}

func TestValidateWeekday(t *testing.T) {
	assert.NoError(t, ValidateWeekday("Monday"))
	assert.Error(t, ValidateWeekday("monday"))
	assert.Error(t, ValidateWeekday("Funday"))
}

func TestValidateSlotsAllowsMissingFields(t *testing.T) {
	slotArr := []domain.Slot{
		{Segments: []domain.SlotSegment{{}}},
		{Start: strp("09:00"), Segments: []domain.SlotSegment{{Start: strp("09:00")}}},
	}
	assert.NoError(t, ValidateSlots(slotArr))
}

func TestValidateSlotsRejectsBadTimes(t *testing.T) {
	slotArr := []domain.Slot{
		{Segments: []domain.SlotSegment{{Start: strp("nine")}}},
	}
	assert.Error(t, ValidateSlots(slotArr))
}

func TestClearClosingEnds(t *testing.T) {
	slotArr := []domain.Slot{
		{
			Start:        strp("14:00"),
			End:          strp("21:00"),
			EndIsClosing: true,
			Segments: []domain.SlotSegment{
				{Start: strp("14:00"), End: strp("21:00"), EndIsClosing: true},
				{Start: strp("09:00"), End: strp("13:00")},
			},
		},
	}

	ClearClosingEnds(slotArr)

	assert.Nil(t, slotArr[0].End)
	assert.Nil(t, slotArr[0].Segments[0].End)
	require.NotNil(t, slotArr[0].Segments[1].End)
	assert.Equal(t, "13:00", *slotArr[0].Segments[1].End)
}

func TestIsWeekend(t *testing.T) {
	weekend, err := IsWeekend("2026-08-29")
	require.NoError(t, err)
	assert.True(t, weekend)

	weekend, err = IsWeekend("2026-08-31")
	require.NoError(t, err)
	assert.False(t, weekend)

	_, err = IsWeekend("31/08/2026")
	assert.Error(t, err)
}
