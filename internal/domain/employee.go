package domain

import "time"

// Weekdays in roster order. Rosters run Monday to Sunday.
var Weekdays = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

type Employee struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Availability []string  `json:"availability"` // weekday names the employee can work
	CreatedAt    time.Time `json:"created_at"`
	Version      int32     `json:"-"`
}
