package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/mukeshvesalapu/MediShield-DR/internal/service/backup"
)

const captureTimeout = time.Minute

// Scheduler drives the automatic backup captures on a fixed interval. It
// invokes the same capture entry point as the manual endpoint, so behavior
// and failure handling are identical regardless of trigger source.
type Scheduler struct {
	cron      *cron.Cron
	backupSvc *backup.Service
	interval  time.Duration
	logger    *zap.Logger
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(interval time.Duration, backupSvc *backup.Service, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scheduler{
		cron:      cron.New(),
		backupSvc: backupSvc,
		interval:  interval,
		logger:    logger,
	}
}

// Start schedules the periodic capture and begins running it.
func (s *Scheduler) Start() {
	s.logger.Info("starting backup scheduler", zap.Duration("interval", s.interval))

	spec := fmt.Sprintf("@every %s", s.interval)
	_, err := s.cron.AddFunc(spec, s.runBackup)
	if err != nil {
		s.logger.Error("failed to schedule automatic backup", zap.Error(err))
		return
	}

	s.cron.Start()
}

// Stop cancels future invocations without interrupting an in-flight capture.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping backup scheduler")
	<-s.cron.Stop().Done()
}

func (s *Scheduler) runBackup() {
	s.logger.Info("triggering automatic backup")
	ctx, cancel := context.WithTimeout(context.Background(), captureTimeout)
	defer cancel()

	snapshot, err := s.backupSvc.Capture(ctx, backup.SchedulerIdentity)
	if err != nil {
		s.logger.Error("automatic backup failed", zap.Error(err))
		return
	}

	s.logger.Info("automatic backup stored", zap.String("snapshot_id", snapshot.SnapshotID))
}
