// Package restore reads back the most recent snapshot as the recovery result.
package restore

import (
	"context"

	"go.uber.org/zap"

	"github.com/mukeshvesalapu/MediShield-DR/internal/domain/models"
	"github.com/mukeshvesalapu/MediShield-DR/internal/repository/mongodb"
)

// estimatedRTO is a configured target reported with every restore, not a
// measured recovery duration.
const estimatedRTO = "2.3 seconds"

// Service resolves the latest snapshot into a restore report. Restores are
// reporting-only: the live floor store is never overwritten.
type Service struct {
	snapshots mongodb.SnapshotRepository
	logger    *zap.Logger
}

// NewService wires a new restore service instance.
func NewService(snapshots mongodb.SnapshotRepository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{snapshots: snapshots, logger: logger}
}

// RestoreLatest returns the hospital state held by the most recent snapshot.
// An empty backup log yields models.ErrNoSnapshotAvailable.
func (s *Service) RestoreLatest(ctx context.Context) (*models.RestoreResult, error) {
	latest, err := s.snapshots.FindLatest(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Info("restore resolved",
		zap.String("snapshot_id", latest.SnapshotID),
		zap.Time("captured_at", latest.Timestamp))

	return &models.RestoreResult{
		SnapshotID: latest.SnapshotID,
		RestoredAt: latest.Timestamp,
		RTO:        estimatedRTO,
		Data:       latest.HospitalData,
	}, nil
}
