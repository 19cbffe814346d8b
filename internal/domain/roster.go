package domain

import "time"

const (
	RoleChef        = "Chef"
	RoleKitchenHand = "Kitchen Hand"
)

// RosterEntry is a concrete scheduled shift. Entries carry no reference to the
// requirement slot or segment that produced them; that association is rebuilt
// by the matcher in internal/slots.
type RosterEntry struct {
	ID         int64     `json:"id"`
	EmployeeID int64     `json:"employee_id"`
	ShiftDate  string    `json:"shift_date"`  // YYYY-MM-DD
	ShiftStart string    `json:"shift_start"` // HH:MM or HH:MM:SS
	ShiftEnd   string    `json:"shift_end"`
	Role       string    `json:"role"`
	IsWeekend  bool      `json:"is_weekend"`
	CreatedAt  time.Time `json:"created_at"`
	Version    int32     `json:"-"`
}
