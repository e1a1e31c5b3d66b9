package insight

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mukeshvesalapu/MediShield-DR/internal/domain/models"
)

type fakeLister struct {
	floors []models.Floor
	err    error
}

func (l *fakeLister) ListAll(ctx context.Context) ([]models.Floor, error) {
	return l.floors, l.err
}

type fakeSnapshotRepo struct {
	count int64
}

func (r *fakeSnapshotRepo) Insert(ctx context.Context, snapshot models.Snapshot) error { return nil }

func (r *fakeSnapshotRepo) FindRecent(ctx context.Context, limit int64) ([]models.Snapshot, error) {
	return nil, nil
}

func (r *fakeSnapshotRepo) FindLatest(ctx context.Context) (*models.Snapshot, error) {
	return nil, models.ErrNoSnapshotAvailable
}

func (r *fakeSnapshotRepo) Count(ctx context.Context) (int64, error) { return r.count, nil }

type fakeGenerator struct {
	text string
	err  error
}

func (g *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return g.text, g.err
}

func criticalFloors() []models.Floor {
	return []models.Floor{
		{FloorNumber: 2, WardName: "ICU", Ventilator: 8, TotalPeople: 8, Priority: models.PriorityHigh},
		{FloorNumber: 1, WardName: "General Ward", Wheelchair: 3, CanWalk: 20, TotalPeople: 23, Priority: models.PriorityMedium},
	}
}

func assertComplete(t *testing.T, report *models.InsightReport) {
	t.Helper()
	assert.NotEmpty(t, report.SystemHealth)
	assert.NotEmpty(t, report.RiskLevel)
	assert.NotEmpty(t, report.Summary)
	assert.NotEmpty(t, report.Recommendations)
	assert.NotEmpty(t, report.DisasterReadiness)
	assert.NotEmpty(t, report.RecoveryPriority)
	assert.NotEmpty(t, report.EstimatedRTO)
	assert.NotEmpty(t, report.AIInsight)
	assert.NotNil(t, report.RescueOrder)
}

func TestAnalyze_FallbackWhenGeneratorFails(t *testing.T) {
	svc := NewService(&fakeLister{floors: criticalFloors()}, &fakeSnapshotRepo{}, &fakeGenerator{err: errors.New("timeout")}, nil)

	report, err := svc.Analyze(context.Background())
	require.NoError(t, err)
	assertComplete(t, report)

	// 8 ventilators exceeds the alarm threshold of 5
	assert.Equal(t, "Critical", report.SystemHealth)
	assert.Equal(t, "High", report.RiskLevel)
	assert.Equal(t, 45, report.HealthScore)
	assert.Equal(t, 24, report.ResourcesNeeded.OxygenUnits)
	assert.Equal(t, 11, report.ResourcesNeeded.Stretchers)
	// criticalCount 11 -> ceil(11/4) = 3 teams
	assert.Equal(t, 3, report.ResourcesNeeded.RescueTeams)

	require.Len(t, report.RescueOrder, 1)
	assert.Equal(t, 2, report.RescueOrder[0].Floor)
	assert.Equal(t, 4, report.RescueOrder[0].TeamsNeeded)
}

func TestAnalyze_FallbackHealthyFacility(t *testing.T) {
	floors := []models.Floor{
		{FloorNumber: 1, WardName: "General Ward", CanWalk: 30, TotalPeople: 30, Priority: models.PriorityLow},
	}
	svc := NewService(&fakeLister{floors: floors}, &fakeSnapshotRepo{}, nil, nil)

	report, err := svc.Analyze(context.Background())
	require.NoError(t, err)
	assertComplete(t, report)

	assert.Equal(t, "Good", report.SystemHealth)
	assert.Equal(t, "Low", report.RiskLevel)
	assert.Equal(t, 85, report.HealthScore)
	assert.Empty(t, report.RescueOrder)
	// rescue teams never drop below the two-team floor
	assert.Equal(t, 2, report.ResourcesNeeded.RescueTeams)
}

func TestAnalyze_UsesGeneratorReport(t *testing.T) {
	reply := `Here is the assessment you asked for:
{
  "healthScore": 72,
  "systemHealth": "Warning",
  "riskLevel": "Medium",
  "summary": "Load is elevated but manageable.",
  "rescueOrder": [],
  "recommendations": ["Check generators"],
  "disasterReadiness": "75%",
  "recoveryPriority": "Patient Records",
  "estimatedRTO": "< 5 sec",
  "aiInsight": "Generated by model.",
  "resourcesNeeded": {"oxygenUnits": 6, "stretchers": 4, "rescueTeams": 2}
}`
	svc := NewService(&fakeLister{floors: criticalFloors()}, &fakeSnapshotRepo{count: 4}, &fakeGenerator{text: reply}, nil)

	report, err := svc.Analyze(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 72, report.HealthScore)
	assert.Equal(t, "Warning", report.SystemHealth)
	assert.Equal(t, "Generated by model.", report.AIInsight)
	assert.Equal(t, 6, report.ResourcesNeeded.OxygenUnits)
}

func TestAnalyze_FallbackOnMalformedReply(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"no json at all", "I cannot help with that."},
		{"truncated object", `{"healthScore": 72, "systemHealth":`},
		{"unknown fields", `{"totallyDifferent": true}`},
		{"missing enums", `{"healthScore": 50, "summary": "x"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&fakeLister{floors: criticalFloors()}, &fakeSnapshotRepo{}, &fakeGenerator{text: tt.text}, nil)

			report, err := svc.Analyze(context.Background())
			require.NoError(t, err)
			assertComplete(t, report)
			assert.Equal(t, "Critical", report.SystemHealth)
		})
	}
}

func TestAnalyze_StoreFailureSurfaces(t *testing.T) {
	svc := NewService(&fakeLister{err: errors.New("mongo down")}, &fakeSnapshotRepo{}, nil, nil)

	_, err := svc.Analyze(context.Background())
	assert.Error(t, err)
}
