package handler

type contextKey string

const (
	EmployeeCtx       contextKey = "employee"
	RosterEntryCtx    contextKey = "rosterEntry"
	DayRequirementCtx contextKey = "dayRequirement"
)
