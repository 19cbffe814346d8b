package utils

import (
	"fmt"
	"math/rand"

	"github.com/harbourkitchen/roster-manager/backend/internal/domain"
)

var firstNames = []string{
	"Alex", "Sam", "Jordan", "Casey", "Morgan", "Riley", "Jamie", "Taylor",
	"Quinn", "Avery", "Harper", "Rowan", "Charlie", "Frankie", "Billie", "Ash",
}
var lastNames = []string{
	"Nguyen", "Smith", "Patel", "Jones", "Brown", "Wilson", "Taylor", "Chen",
	"Singh", "Walker", "Harris", "Martin", "Thompson", "White", "Lee", "King",
}

var employeeRoles = []string{"Head Chef", "Chef", "Kitchen Hand"}

func GenerateRandomEmployeeName() string {
	return firstNames[rand.Intn(len(firstNames))] + " " + lastNames[rand.Intn(len(lastNames))]
}

func GenerateRandomEmployeeRole() string {
	return employeeRoles[rand.Intn(len(employeeRoles))]
}

// GenerateRandomAvailability picks a random non-empty subset of weekdays using
// a Fisher-Yates shuffle.
func GenerateRandomAvailability() []string {
	days := append([]string{}, domain.Weekdays...)

	for i := len(days) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		days[i], days[j] = days[j], days[i]
	}

	n := rand.Intn(len(days)) + 1
	return days[:n]
}

func GenerateRandomEmployee() *domain.Employee {
	name := GenerateRandomEmployeeName()
	return &domain.Employee{
		Name:         name,
		Role:         GenerateRandomEmployeeRole(),
		Email:        fmt.Sprintf("%s%d@example.com", firstNames[rand.Intn(len(firstNames))], rand.Intn(1000)),
		Phone:        fmt.Sprintf("04%08d", rand.Intn(100000000)),
		Availability: GenerateRandomAvailability(),
	}
}

func strptr(s string) *string { return &s }

// GenerateRandomDayRequirement builds a requirement with a mix of plain,
// until-closing and split-shift slots, the shapes the roster sees in practice.
func GenerateRandomDayRequirement(day string) *domain.DayRequirement {
	chefCount := rand.Intn(3) + 1
	kitchenCount := rand.Intn(2) + 1

	chefSlots := make([]domain.Slot, chefCount)
	for i := range chefSlots {
		switch rand.Intn(3) {
		case 0:
			chefSlots[i] = domain.Slot{Segments: []domain.SlotSegment{
				{Start: strptr("09:00:00"), End: strptr("17:00:00")},
			}}
		case 1:
			chefSlots[i] = domain.Slot{Segments: []domain.SlotSegment{
				{Start: strptr("14:00:00"), EndIsClosing: true},
			}}
		default:
			chefSlots[i] = domain.Slot{Segments: []domain.SlotSegment{
				{Start: strptr("09:00:00"), End: strptr("13:00:00")},
				{Start: strptr("17:00:00"), EndIsClosing: true},
			}}
		}
	}

	kitchenSlots := make([]domain.Slot, kitchenCount)
	for i := range kitchenSlots {
		kitchenSlots[i] = domain.Slot{Segments: []domain.SlotSegment{
			{Start: strptr("10:00:00"), End: strptr("15:00:00")},
		}}
	}

	return &domain.DayRequirement{
		DayOfWeek:            day,
		RequiredChefs:        int32(chefCount),
		RequiredKitchenHands: int32(kitchenCount),
		ChefSlots:            chefSlots,
		KitchenSlots:         kitchenSlots,
	}
}
