package domain

type BusinessHours struct {
	ID          int64   `json:"id"`
	DayOfWeek   string  `json:"day_of_week"`
	ClosingTime *string `json:"closing_time"` // HH:MM or HH:MM:SS, nil when not set
	Version     int32   `json:"-"`
}

// ClosingTimes maps a weekday name to the closing time for that day. An absent
// or empty entry means the closing time is unknown.
type ClosingTimes map[string]string

func NewClosingTimes(rows []*BusinessHours) ClosingTimes {
	ct := make(ClosingTimes, len(rows))
	for _, row := range rows {
		if row.ClosingTime != nil {
			ct[row.DayOfWeek] = *row.ClosingTime
		}
	}
	return ct
}

// ForDay returns the closing time for the weekday, or "" when unknown.
func (ct ClosingTimes) ForDay(day string) string {
	return ct[day]
}
