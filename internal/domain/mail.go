package domain

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type RosterWeekMailShift struct {
	DayName string `json:"day_name"`
	Date    string `json:"date"`
	Role    string `json:"role"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

type RosterWeekMailData struct {
	EmployeeName string                `json:"employee_name"`
	WeekStart    string                `json:"week_start"`
	Shifts       []RosterWeekMailShift `json:"shifts"`
}
