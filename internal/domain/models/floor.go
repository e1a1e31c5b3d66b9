package models

import "time"

// Priority classifies how urgently a floor must be evacuated.
type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

// DerivePriority applies the evacuation triage rule: any ventilator patient
// makes a floor HIGH, otherwise any wheelchair patient makes it MEDIUM.
func DerivePriority(ventilator, wheelchair int) Priority {
	switch {
	case ventilator > 0:
		return PriorityHigh
	case wheelchair > 0:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// Floor represents one hospital ward and its occupancy record.
// TotalPeople and Priority are derived and recomputed on every update.
type Floor struct {
	FloorNumber int       `bson:"floorNumber" json:"floorNumber"`
	WardName    string    `bson:"wardName" json:"wardName"`
	TotalPeople int       `bson:"totalPeople" json:"totalPeople"`
	Ventilator  int       `bson:"ventilator" json:"ventilator"`
	Wheelchair  int       `bson:"wheelchair" json:"wheelchair"`
	CanWalk     int       `bson:"canWalk" json:"canWalk"`
	Priority    Priority  `bson:"priority" json:"priority"`
	SafeExit    string    `bson:"safeExit" json:"safeExit"`
	BlockedExit string    `bson:"blockedExit" json:"blockedExit"`
	LastUpdated time.Time `bson:"lastUpdated" json:"lastUpdated"`
}

// FloorUpdate carries a partial update to a floor. Nil fields keep the
// existing value; occupancy fields feed the derived-field recomputation.
type FloorUpdate struct {
	WardName    *string `json:"wardName"`
	Ventilator  *int    `json:"ventilator"`
	Wheelchair  *int    `json:"wheelchair"`
	CanWalk     *int    `json:"canWalk"`
	SafeExit    *string `json:"safeExit"`
	BlockedExit *string `json:"blockedExit"`
}

// RescueAssignment is one entry of a rescue order, covering a single floor.
type RescueAssignment struct {
	Floor       int    `json:"floor"`
	Ward        string `json:"ward"`
	Reason      string `json:"reason"`
	Action      string `json:"action"`
	TeamsNeeded int    `json:"teamsNeeded"`
}
