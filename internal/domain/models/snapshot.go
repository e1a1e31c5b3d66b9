package models

import "time"

// ResourceInventory lists the emergency equipment tracked with each capture.
type ResourceInventory struct {
	OxygenCylinders int `bson:"oxygenCylinders" json:"oxygenCylinders"`
	Stretchers      int `bson:"stretchers" json:"stretchers"`
	Wheelchairs     int `bson:"wheelchairs" json:"wheelchairs"`
	Flashlights     int `bson:"flashlights" json:"flashlights"`
	FirstAidKits    int `bson:"firstAidKits" json:"firstAidKits"`
}

// HospitalState is the full facility view captured into a snapshot: every
// floor record plus aggregate counts and the resource inventory.
type HospitalState struct {
	Hospital      string            `bson:"hospital" json:"hospital"`
	Timestamp     time.Time         `bson:"timestamp" json:"timestamp"`
	Floors        []Floor           `bson:"floors" json:"floors"`
	TotalPatients int               `bson:"totalPatients" json:"totalPatients"`
	CriticalCount int               `bson:"criticalCount" json:"criticalCount"`
	Resources     ResourceInventory `bson:"resources" json:"resources"`
}

// Snapshot is an immutable point-in-time backup of the hospital state.
// Once written it is never mutated; history is append-only.
type Snapshot struct {
	SnapshotID   string        `bson:"snapshotId" json:"snapshotId"`
	Timestamp    time.Time     `bson:"timestamp" json:"timestamp"`
	TriggeredBy  string        `bson:"triggeredBy" json:"triggeredBy"`
	HospitalData HospitalState `bson:"hospitalData" json:"hospitalData"`
	Size         float64       `bson:"size" json:"size"`
	Status       string        `bson:"status" json:"status"`
}

// RestoreResult reports what the most recent snapshot would restore. The
// restore path is reporting-only: live floor records are not overwritten.
type RestoreResult struct {
	SnapshotID string        `json:"restoredFrom"`
	RestoredAt time.Time     `json:"restoredAt"`
	RTO        string        `json:"rto"`
	Data       HospitalState `json:"data"`
}
