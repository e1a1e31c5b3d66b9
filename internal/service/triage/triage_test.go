package triage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mukeshvesalapu/MediShield-DR/internal/domain/models"
)

func sampleFloors() []models.Floor {
	return []models.Floor{
		{FloorNumber: 3, WardName: "Pediatric Ward", TotalPeople: 18, Ventilator: 3, Wheelchair: 5, CanWalk: 10, Priority: models.PriorityHigh},
		{FloorNumber: 2, WardName: "General Ward", TotalPeople: 30, Ventilator: 0, Wheelchair: 0, CanWalk: 30, Priority: models.PriorityLow},
		{FloorNumber: 1, WardName: "ICU", TotalPeople: 8, Ventilator: 8, Wheelchair: 0, CanWalk: 0, Priority: models.PriorityHigh},
	}
}

func TestAggregate(t *testing.T) {
	totals := Aggregate(sampleFloors())

	assert.Equal(t, 56, totals.TotalPeople)
	assert.Equal(t, 11, totals.TotalVentilator)
	assert.Equal(t, 5, totals.TotalWheelchair)
	assert.Equal(t, 40, totals.TotalAmbulatory)
	// 3+5 from the pediatric ward, 8+0 from the ICU; the general ward has
	// no ventilator or wheelchair patients and contributes nothing.
	assert.Equal(t, 16, totals.CriticalCount)
}

func TestAggregate_Empty(t *testing.T) {
	assert.Zero(t, Aggregate(nil))
}

func TestRescueOrder_HighPriorityOnly(t *testing.T) {
	order := RescueOrder(sampleFloors())

	require.Len(t, order, 2)
	assert.Equal(t, 3, order[0].Floor)
	assert.Equal(t, "Pediatric Ward", order[0].Ward)
	assert.Equal(t, 4, order[0].TeamsNeeded)
	assert.Equal(t, 1, order[1].Floor)
	assert.Equal(t, 4, order[1].TeamsNeeded)

	for _, a := range order {
		assert.NotEmpty(t, a.Reason)
		assert.NotEmpty(t, a.Action)
	}
}

func TestRescueOrder_KeepsInputOrdering(t *testing.T) {
	floors := []models.Floor{
		{FloorNumber: 5, Ventilator: 1, Priority: models.PriorityHigh},
		{FloorNumber: 9, Ventilator: 2, Priority: models.PriorityHigh},
	}

	order := RescueOrder(floors)
	require.Len(t, order, 2)
	assert.Equal(t, 5, order[0].Floor)
	assert.Equal(t, 9, order[1].Floor)
}

func TestRescueOrder_MinimumOneTeam(t *testing.T) {
	floors := []models.Floor{
		{FloorNumber: 2, Ventilator: 1, Wheelchair: 0, Priority: models.PriorityHigh},
	}

	order := RescueOrder(floors)
	require.Len(t, order, 1)
	assert.Equal(t, 1, order[0].TeamsNeeded)
}
