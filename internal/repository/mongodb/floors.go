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

// FloorRepository defines the interface for floor record storage.
type FloorRepository interface {
	FindAll(ctx context.Context) ([]models.Floor, error)
	FindByNumber(ctx context.Context, floorNumber int) (*models.Floor, error)
	InsertMany(ctx context.Context, floors []models.Floor) error
	Replace(ctx context.Context, floor models.Floor) error
	Count(ctx context.Context) (int64, error)
}

// MongoFloorRepository implements FloorRepository on the floors collection.
type MongoFloorRepository struct {
	coll *mongo.Collection
}

// NewFloorRepository creates a floor repository bound to the shared client.
func NewFloorRepository(client *Client) *MongoFloorRepository {
	return &MongoFloorRepository{coll: client.db.Collection("floors")}
}

// FindAll returns every floor record ordered by floor number descending.
func (r *MongoFloorRepository) FindAll(ctx context.Context) ([]models.Floor, error) {
	opts := options.Find().SetSort(bson.D{{Key: "floorNumber", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find floors: %w", err)
	}

	var floors []models.Floor
	if err := cursor.All(ctx, &floors); err != nil {
		return nil, fmt.Errorf("failed to decode floors: %w", err)
	}
	return floors, nil
}

// FindByNumber looks up a single floor record by its floor number.
func (r *MongoFloorRepository) FindByNumber(ctx context.Context, floorNumber int) (*models.Floor, error) {
	var floor models.Floor
	err := r.coll.FindOne(ctx, bson.D{{Key: "floorNumber", Value: floorNumber}}).Decode(&floor)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrFloorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find floor %d: %w", floorNumber, err)
	}
	return &floor, nil
}

// InsertMany writes the given floor records in one batch.
func (r *MongoFloorRepository) InsertMany(ctx context.Context, floors []models.Floor) error {
	docs := make([]interface{}, 0, len(floors))
	for _, f := range floors {
		docs = append(docs, f)
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert floors: %w", err)
	}
	return nil
}

// Replace overwrites the stored record matching the floor's number.
func (r *MongoFloorRepository) Replace(ctx context.Context, floor models.Floor) error {
	filter := bson.D{{Key: "floorNumber", Value: floor.FloorNumber}}
	result, err := r.coll.ReplaceOne(ctx, filter, floor)
	if err != nil {
		return fmt.Errorf("failed to replace floor %d: %w", floor.FloorNumber, err)
	}
	if result.MatchedCount == 0 {
		return models.ErrFloorNotFound
	}
	return nil
}

// Count reports how many floor records exist.
func (r *MongoFloorRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("failed to count floors: %w", err)
	}
	return count, nil
}
