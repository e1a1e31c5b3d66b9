package backup

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mukeshvesalapu/MediShield-DR/internal/domain/models"
)

type fakeSnapshotRepo struct {
	snapshots []models.Snapshot
	insertErr error
}

func (r *fakeSnapshotRepo) Insert(ctx context.Context, snapshot models.Snapshot) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.snapshots = append(r.snapshots, snapshot)
	return nil
}

func (r *fakeSnapshotRepo) FindRecent(ctx context.Context, limit int64) ([]models.Snapshot, error) {
	out := make([]models.Snapshot, len(r.snapshots))
	copy(out, r.snapshots)
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeSnapshotRepo) FindLatest(ctx context.Context) (*models.Snapshot, error) {
	recent, err := r.FindRecent(ctx, 1)
	if err != nil {
		return nil, err
	}
	if len(recent) == 0 {
		return nil, models.ErrNoSnapshotAvailable
	}
	return &recent[0], nil
}

func (r *fakeSnapshotRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.snapshots)), nil
}

type fakeStateProvider struct {
	state models.HospitalState
	err   error
}

func (p *fakeStateProvider) CurrentState(ctx context.Context) (models.HospitalState, error) {
	return p.state, p.err
}

type fakeNotifier struct {
	subjects []string
	err      error
}

func (n *fakeNotifier) Alert(ctx context.Context, subject, message string) error {
	n.subjects = append(n.subjects, subject)
	return n.err
}

func demoState() models.HospitalState {
	return models.HospitalState{
		Hospital:      "City General Hospital",
		TotalPatients: 108,
		CriticalCount: 13,
		Floors: []models.Floor{
			{FloorNumber: 2, WardName: "ICU", Ventilator: 8, TotalPeople: 8, Priority: models.PriorityHigh},
		},
	}
}

func TestCapture_StoresSnapshot(t *testing.T) {
	repo := &fakeSnapshotRepo{}
	notifier := &fakeNotifier{}
	svc := NewService(repo, &fakeStateProvider{state: demoState()}, notifier, nil)

	snapshot, err := svc.Capture(context.Background(), "admin")
	require.NoError(t, err)

	assert.Equal(t, "admin", snapshot.TriggeredBy)
	assert.Equal(t, "success", snapshot.Status)
	assert.NotEmpty(t, snapshot.SnapshotID)
	assert.False(t, snapshot.Timestamp.IsZero())
	assert.GreaterOrEqual(t, snapshot.Size, 0.8)
	assert.LessOrEqual(t, snapshot.Size, 1.5)
	assert.Equal(t, demoState().TotalPatients, snapshot.HospitalData.TotalPatients)

	require.Len(t, repo.snapshots, 1)
	require.Len(t, notifier.subjects, 1)
	assert.Contains(t, notifier.subjects[0], "Backup Successful")
}

func TestCapture_DistinctIDsWithinSameInstant(t *testing.T) {
	repo := &fakeSnapshotRepo{}
	svc := NewService(repo, &fakeStateProvider{state: demoState()}, nil, nil)

	first, err := svc.Capture(context.Background(), SchedulerIdentity)
	require.NoError(t, err)
	second, err := svc.Capture(context.Background(), SchedulerIdentity)
	require.NoError(t, err)

	assert.NotEqual(t, first.SnapshotID, second.SnapshotID)
}

func TestCapture_PersistenceFailure(t *testing.T) {
	repo := &fakeSnapshotRepo{insertErr: errors.New("disk full")}
	notifier := &fakeNotifier{}
	svc := NewService(repo, &fakeStateProvider{state: demoState()}, notifier, nil)

	_, err := svc.Capture(context.Background(), "admin")
	assert.ErrorIs(t, err, models.ErrCaptureFailed)

	require.Len(t, notifier.subjects, 1)
	assert.Contains(t, notifier.subjects[0], "Backup Failed")
}

func TestCapture_StateReadFailure(t *testing.T) {
	repo := &fakeSnapshotRepo{}
	svc := NewService(repo, &fakeStateProvider{err: errors.New("store offline")}, &fakeNotifier{}, nil)

	_, err := svc.Capture(context.Background(), "admin")
	assert.ErrorIs(t, err, models.ErrCaptureFailed)
	assert.Empty(t, repo.snapshots)
}

func TestCapture_NotifierFailureDoesNotChangeOutcome(t *testing.T) {
	repo := &fakeSnapshotRepo{}
	notifier := &fakeNotifier{err: errors.New("smtp refused")}
	svc := NewService(repo, &fakeStateProvider{state: demoState()}, notifier, nil)

	snapshot, err := svc.Capture(context.Background(), "admin")
	require.NoError(t, err)
	assert.NotNil(t, snapshot)

	repo.insertErr = errors.New("disk full")
	_, err = svc.Capture(context.Background(), "admin")
	assert.ErrorIs(t, err, models.ErrCaptureFailed)
}

func TestCapture_NilNotifier(t *testing.T) {
	repo := &fakeSnapshotRepo{insertErr: errors.New("disk full")}
	svc := NewService(repo, &fakeStateProvider{state: demoState()}, nil, nil)

	_, err := svc.Capture(context.Background(), "admin")
	assert.ErrorIs(t, err, models.ErrCaptureFailed)
}

func TestList_RespectsLimit(t *testing.T) {
	repo := &fakeSnapshotRepo{}
	svc := NewService(repo, &fakeStateProvider{state: demoState()}, nil, nil)

	for i := 0; i < 20; i++ {
		_, err := svc.Capture(context.Background(), SchedulerIdentity)
		require.NoError(t, err)
	}

	snapshots, err := svc.List(context.Background(), 15)
	require.NoError(t, err)
	assert.Len(t, snapshots, 15)

	// newest first
	for i := 1; i < len(snapshots); i++ {
		assert.False(t, snapshots[i].Timestamp.After(snapshots[i-1].Timestamp))
	}
}

func TestList_DefaultLimit(t *testing.T) {
	repo := &fakeSnapshotRepo{}
	svc := NewService(repo, &fakeStateProvider{state: demoState()}, nil, nil)

	for i := 0; i < 16; i++ {
		_, err := svc.Capture(context.Background(), SchedulerIdentity)
		require.NoError(t, err)
	}

	snapshots, err := svc.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, snapshots, 15)
}
