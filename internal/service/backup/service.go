// Package backup implements point-in-time capture of the hospital state.
package backup

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mukeshvesalapu/MediShield-DR/internal/domain/models"
	"github.com/mukeshvesalapu/MediShield-DR/internal/repository/mongodb"
)

// SchedulerIdentity marks snapshots produced by the interval scheduler
// rather than an authenticated operator.
const SchedulerIdentity = "SYSTEM_SCHEDULER"

const defaultListLimit = 15

// StateProvider supplies the facility view captured into each snapshot.
type StateProvider interface {
	CurrentState(ctx context.Context) (models.HospitalState, error)
}

// Notifier delivers operator alerts. Failures must never propagate into the
// capture outcome; they are logged and dropped.
type Notifier interface {
	Alert(ctx context.Context, subject, message string) error
}

// Service creates and lists backup snapshots. Manual triggers and the
// scheduler both funnel through Capture so failure handling is identical.
type Service struct {
	snapshots mongodb.SnapshotRepository
	state     StateProvider
	notifier  Notifier
	logger    *zap.Logger
}

// NewService wires a new backup service instance.
func NewService(snapshots mongodb.SnapshotRepository, state StateProvider, notifier Notifier, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{snapshots: snapshots, state: state, notifier: notifier, logger: logger}
}

// Capture reads the current hospital state and appends it to the backup log.
// On persistence failure it reports models.ErrCaptureFailed and attempts a
// critical alert; the alert itself is best-effort.
func (s *Service) Capture(ctx context.Context, triggeredBy string) (*models.Snapshot, error) {
	state, err := s.state.CurrentState(ctx)
	if err != nil {
		s.logger.Error("capture failed reading hospital state", zap.Error(err))
		s.alert(ctx, "CRITICAL: Backup Failed",
			fmt.Sprintf("The disaster recovery snapshot process encountered a failure: %v", err))
		return nil, fmt.Errorf("%w: read hospital state: %v", models.ErrCaptureFailed, err)
	}

	snapshot := models.Snapshot{
		SnapshotID:   newSnapshotID(),
		Timestamp:    time.Now(),
		TriggeredBy:  triggeredBy,
		HospitalData: state,
		Size:         estimateSizeTB(),
		Status:       "success",
	}

	if err := s.snapshots.Insert(ctx, snapshot); err != nil {
		s.logger.Error("capture failed persisting snapshot",
			zap.String("snapshot_id", snapshot.SnapshotID),
			zap.Error(err))
		s.alert(ctx, "CRITICAL: Backup Failed",
			fmt.Sprintf("The disaster recovery snapshot process encountered a failure: %v", err))
		return nil, fmt.Errorf("%w: persist snapshot: %v", models.ErrCaptureFailed, err)
	}

	s.logger.Info("backup captured",
		zap.String("snapshot_id", snapshot.SnapshotID),
		zap.String("triggered_by", triggeredBy))

	s.alert(ctx, fmt.Sprintf("Backup Successful - %s", snapshot.SnapshotID),
		fmt.Sprintf("A new disaster recovery snapshot [%s] of %s was successfully stored.",
			snapshot.SnapshotID, state.Hospital))

	return &snapshot, nil
}

// List returns the most recent snapshots, newest first. A non-positive
// limit falls back to the default history window.
func (s *Service) List(ctx context.Context, limit int64) ([]models.Snapshot, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.snapshots.FindRecent(ctx, limit)
}

func (s *Service) alert(ctx context.Context, subject, message string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Alert(ctx, subject, message); err != nil {
		s.logger.Warn("alert delivery failed", zap.String("subject", subject), zap.Error(err))
	}
}

// newSnapshotID keeps ids ordered by creation time while staying unique for
// captures landing on the same millisecond.
func newSnapshotID() string {
	return fmt.Sprintf("SNAP-%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

// estimateSizeTB is informational only, mimicking a 0.8-1.5 TB archive.
func estimateSizeTB() float64 {
	size := 0.8 + rand.Float64()*0.7
	return math.Round(size*10) / 10
}
