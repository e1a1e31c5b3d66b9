package floors

import "github.com/mukeshvesalapu/MediShield-DR/internal/domain/models"

// defaultFloors seeds the demo hospital when the store starts empty.
func defaultFloors() []models.Floor {
	return []models.Floor{
		{FloorNumber: 6, WardName: "Pediatric Ward", TotalPeople: 18, Ventilator: 3, Wheelchair: 5, CanWalk: 10, Priority: models.PriorityHigh, SafeExit: "East Staircase", BlockedExit: "West Staircase"},
		{FloorNumber: 5, WardName: "Maternity Ward", TotalPeople: 15, Ventilator: 0, Wheelchair: 2, CanWalk: 13, Priority: models.PriorityMedium, SafeExit: "West Staircase", BlockedExit: "South Exit"},
		{FloorNumber: 4, WardName: "Surgery Ward", TotalPeople: 12, Ventilator: 0, Wheelchair: 7, CanWalk: 5, Priority: models.PriorityMedium, SafeExit: "North Staircase", BlockedExit: "None"},
		{FloorNumber: 3, WardName: "General Ward", TotalPeople: 35, Ventilator: 0, Wheelchair: 5, CanWalk: 30, Priority: models.PriorityLow, SafeExit: "Any Staircase", BlockedExit: "None"},
		{FloorNumber: 2, WardName: "ICU", TotalPeople: 8, Ventilator: 8, Wheelchair: 0, CanWalk: 0, Priority: models.PriorityHigh, SafeExit: "West Staircase", BlockedExit: "East Staircase"},
		{FloorNumber: 1, WardName: "Emergency Ward", TotalPeople: 20, Ventilator: 2, Wheelchair: 8, CanWalk: 10, Priority: models.PriorityHigh, SafeExit: "Main Exit", BlockedExit: "None"},
	}
}
