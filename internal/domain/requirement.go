package domain

// SlotSegment is one contiguous block of time within a slot. A segment with no
// start is inert: it contributes zero duration and matches no assignment. When
// EndIsClosing is set the effective end is the business closing time for the
// slot's weekday and any literal End is ignored.
type SlotSegment struct {
	Start        *string `json:"start"`
	End          *string `json:"end"`
	EndIsClosing bool    `json:"end_is_closing"`
}

// Slot is one staffing position for a role on a given weekday: an ordered,
// non-empty list of segments (split shifts use more than one). The top-level
// start/end fields mirror the first segment for legacy flat consumers; slots
// read from storage may carry only the flat fields and no segments at all.
type Slot struct {
	Start        *string       `json:"start"`
	End          *string       `json:"end"`
	EndIsClosing bool          `json:"end_is_closing"`
	Segments     []SlotSegment `json:"segments"`
}

// DayRequirement is the per-weekday staffing requirement: how many chefs and
// kitchen hands are needed and the per-person slot timing for each.
type DayRequirement struct {
	ID                   int64  `json:"id"`
	DayOfWeek            string `json:"day_of_week"`
	RequiredChefs        int32  `json:"required_chefs"`
	RequiredKitchenHands int32  `json:"required_kitchen_hands"`
	ChefSlots            []Slot `json:"chef_slots"`
	KitchenSlots         []Slot `json:"kitchen_slots"`
	Notes                string `json:"notes"`
	Version              int32  `json:"-"`
}
