package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mukeshvesalapu/MediShield-DR/internal/domain/models"
)

// SnapshotRepository defines the interface for the append-only backup log.
type SnapshotRepository interface {
	Insert(ctx context.Context, snapshot models.Snapshot) error
	FindRecent(ctx context.Context, limit int64) ([]models.Snapshot, error)
	FindLatest(ctx context.Context) (*models.Snapshot, error)
	Count(ctx context.Context) (int64, error)
}

// MongoSnapshotRepository implements SnapshotRepository on the backups collection.
type MongoSnapshotRepository struct {
	coll *mongo.Collection
}

// NewSnapshotRepository creates a snapshot repository bound to the shared client.
func NewSnapshotRepository(client *Client) *MongoSnapshotRepository {
	return &MongoSnapshotRepository{coll: client.db.Collection("backups")}
}

// Insert appends a snapshot to the backup log. Snapshots are never updated.
func (r *MongoSnapshotRepository) Insert(ctx context.Context, snapshot models.Snapshot) error {
	if _, err := r.coll.InsertOne(ctx, snapshot); err != nil {
		return fmt.Errorf("failed to insert snapshot: %w", err)
	}
	return nil
}

// FindRecent returns up to limit snapshots ordered most recent first.
func (r *MongoSnapshotRepository) FindRecent(ctx context.Context, limit int64) ([]models.Snapshot, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)
	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find snapshots: %w", err)
	}

	var snapshots []models.Snapshot
	if err := cursor.All(ctx, &snapshots); err != nil {
		return nil, fmt.Errorf("failed to decode snapshots: %w", err)
	}
	return snapshots, nil
}

// FindLatest returns the most recent snapshot by capture timestamp.
func (r *MongoSnapshotRepository) FindLatest(ctx context.Context) (*models.Snapshot, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "timestamp", Value: -1}})

	var snapshot models.Snapshot
	err := r.coll.FindOne(ctx, bson.D{}, opts).Decode(&snapshot)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNoSnapshotAvailable
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find latest snapshot: %w", err)
	}
	return &snapshot, nil
}

// Count reports the total number of snapshots retained.
func (r *MongoSnapshotRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("failed to count snapshots: %w", err)
	}
	return count, nil
}
