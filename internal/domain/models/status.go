package models

import "time"

// SystemStatus is the aggregate health view served by the status endpoint.
// RPO and RTO are configured targets, not measured values.
type SystemStatus struct {
	System           string    `json:"system"`
	Status           string    `json:"status"`
	TotalBackups     int64     `json:"totalBackups"`
	LastBackup       string    `json:"lastBackup"`
	RPO              string    `json:"rpo"`
	RTO              string    `json:"rto"`
	TotalPeople      int       `json:"totalPeople"`
	CriticalPatients int       `json:"criticalPatients"`
	Uptime           float64   `json:"uptime"`
	Timestamp        time.Time `json:"timestamp"`
}
