// Package triage derives rescue priorities and aggregate occupancy counts
// from floor records. All functions are pure; the package holds no state.
package triage

import (
	"github.com/mukeshvesalapu/MediShield-DR/internal/domain/models"
)

// Totals aggregates occupancy across floors. CriticalCount sums ventilator
// and wheelchair patients, counted only on floors that have at least one.
type Totals struct {
	TotalPeople     int
	TotalVentilator int
	TotalWheelchair int
	TotalAmbulatory int
	CriticalCount   int
}

// Aggregate folds the given floors into occupancy totals.
func Aggregate(floors []models.Floor) Totals {
	var t Totals
	for _, f := range floors {
		t.TotalPeople += f.TotalPeople
		t.TotalVentilator += f.Ventilator
		t.TotalWheelchair += f.Wheelchair
		t.TotalAmbulatory += f.CanWalk
		if f.Ventilator > 0 || f.Wheelchair > 0 {
			t.CriticalCount += f.Ventilator + f.Wheelchair
		}
	}
	return t
}

// RescueOrder lists the HIGH priority floors in input order. Each assignment
// needs one team per two non-ambulatory patients, with at least one team.
func RescueOrder(floors []models.Floor) []models.RescueAssignment {
	order := make([]models.RescueAssignment, 0)
	for _, f := range floors {
		if f.Priority != models.PriorityHigh {
			continue
		}
		teams := (f.Ventilator + f.Wheelchair + 1) / 2
		if teams < 1 {
			teams = 1
		}
		order = append(order, models.RescueAssignment{
			Floor:       f.FloorNumber,
			Ward:        f.WardName,
			Reason:      "Critical patients located here",
			Action:      "Deploy emergency transport",
			TeamsNeeded: teams,
		})
	}
	return order
}
