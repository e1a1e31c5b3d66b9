package floors

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/mukeshvesalapu/MediShield-DR/internal/domain/models"
	"github.com/mukeshvesalapu/MediShield-DR/internal/repository/mongodb"
	"github.com/mukeshvesalapu/MediShield-DR/internal/service/triage"
)

const hospitalName = "City General Hospital"

// Service owns the facility floor records. All mutations funnel through it
// so updates to a given floor are applied without torn read-modify-writes.
type Service struct {
	repo   mongodb.FloorRepository
	logger *zap.Logger

	// serializes partial updates and the cold-start seed check; the
	// repository itself has no atomic merge or insert-if-empty
	mu sync.Mutex
}

// NewService wires a new floor service instance.
func NewService(repo mongodb.FloorRepository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, logger: logger}
}

// SeedIfEmpty inserts the default ward records when the store holds none.
// Safe to call on every read; an already-seeded store is a no-op. The check
// and the insert run under the service mutex so concurrent cold-start reads
// cannot both observe an empty store and double-seed.
func (s *Service) SeedIfEmpty(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	count, err := s.repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count floors: %w", err)
	}
	if count > 0 {
		return nil
	}

	s.logger.Info("floor store empty, seeding initial ward data")
	seeds := defaultFloors()
	now := time.Now()
	for i := range seeds {
		seeds[i].LastUpdated = now
	}
	if err := s.repo.InsertMany(ctx, seeds); err != nil {
		return fmt.Errorf("seed floors: %w", err)
	}
	return nil
}

// ListAll returns every floor ordered by floor number descending, seeding
// the store first when empty.
func (s *Service) ListAll(ctx context.Context) ([]models.Floor, error) {
	if err := s.SeedIfEmpty(ctx); err != nil {
		return nil, err
	}
	return s.repo.FindAll(ctx)
}

// ApplyPartialUpdate merges the supplied fields into the stored record,
// recomputes totalPeople and priority from the merged occupancy counts,
// stamps lastUpdated and persists the result.
func (s *Service) ApplyPartialUpdate(ctx context.Context, floorNumber int, update models.FloorUpdate) (*models.Floor, error) {
	if err := validateUpdate(update); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	floor, err := s.repo.FindByNumber(ctx, floorNumber)
	if err != nil {
		return nil, err
	}

	if update.WardName != nil {
		floor.WardName = *update.WardName
	}
	if update.Ventilator != nil {
		floor.Ventilator = *update.Ventilator
	}
	if update.Wheelchair != nil {
		floor.Wheelchair = *update.Wheelchair
	}
	if update.CanWalk != nil {
		floor.CanWalk = *update.CanWalk
	}
	if update.SafeExit != nil {
		floor.SafeExit = *update.SafeExit
	}
	if update.BlockedExit != nil {
		floor.BlockedExit = *update.BlockedExit
	}

	// Derived fields always follow the merged counts, so updating a single
	// occupancy field still yields a consistent record.
	floor.TotalPeople = floor.Ventilator + floor.Wheelchair + floor.CanWalk
	floor.Priority = models.DerivePriority(floor.Ventilator, floor.Wheelchair)
	floor.LastUpdated = time.Now()

	if err := s.repo.Replace(ctx, *floor); err != nil {
		return nil, err
	}

	s.logger.Info("floor updated",
		zap.Int("floor", floor.FloorNumber),
		zap.String("priority", string(floor.Priority)))

	return floor, nil
}

// CurrentState assembles the full hospital view used for backup captures.
func (s *Service) CurrentState(ctx context.Context) (models.HospitalState, error) {
	floorList, err := s.ListAll(ctx)
	if err != nil {
		return models.HospitalState{}, err
	}

	totals := triage.Aggregate(floorList)

	return models.HospitalState{
		Hospital:      hospitalName,
		Timestamp:     time.Now(),
		Floors:        floorList,
		TotalPatients: totals.TotalPeople,
		CriticalCount: totals.TotalVentilator,
		Resources: models.ResourceInventory{
			OxygenCylinders: 12,
			Stretchers:      8,
			Wheelchairs:     15,
			Flashlights:     20,
			FirstAidKits:    10,
		},
	}, nil
}

func validateUpdate(update models.FloorUpdate) error {
	if update.Ventilator != nil && *update.Ventilator < 0 {
		return fmt.Errorf("%w: ventilator count must not be negative", models.ErrValidation)
	}
	if update.Wheelchair != nil && *update.Wheelchair < 0 {
		return fmt.Errorf("%w: wheelchair count must not be negative", models.ErrValidation)
	}
	if update.CanWalk != nil && *update.CanWalk < 0 {
		return fmt.Errorf("%w: canWalk count must not be negative", models.ErrValidation)
	}
	return nil
}
