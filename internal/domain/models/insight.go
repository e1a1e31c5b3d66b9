package models

// ResourcesNeeded estimates the equipment required for an evacuation.
type ResourcesNeeded struct {
	OxygenUnits int `json:"oxygenUnits"`
	Stretchers  int `json:"stretchers"`
	RescueTeams int `json:"rescueTeams"`
}

// InsightReport is the risk analysis served by the AI endpoint. It is either
// decoded from the language model's reply or computed locally; every field is
// always populated regardless of which path produced it.
type InsightReport struct {
	HealthScore       int                `json:"healthScore"`
	SystemHealth      string             `json:"systemHealth"`
	RiskLevel         string             `json:"riskLevel"`
	Summary           string             `json:"summary"`
	RescueOrder       []RescueAssignment `json:"rescueOrder"`
	Recommendations   []string           `json:"recommendations"`
	DisasterReadiness string             `json:"disasterReadiness"`
	RecoveryPriority  string             `json:"recoveryPriority"`
	EstimatedRTO      string             `json:"estimatedRTO"`
	AIInsight         string             `json:"aiInsight"`
	ResourcesNeeded   ResourcesNeeded    `json:"resourcesNeeded"`
}
