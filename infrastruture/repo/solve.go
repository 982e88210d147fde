package repo

import (
	"context"
	"errors"
	"time"

	dmn "github.com/beka-birhanu/labyrinth/domain"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrRecordNotFound = errors.New("solve record not found")
)

// SolveRepo handles the persistence of solve records.
type SolveRepo struct {
	collection *mongo.Collection
}

// NewSolveRepo creates a new SolveRepo with the given MongoDB client, database name, and collection name.
func NewSolveRepo(client *mongo.Client, dbName, collectionName string) *SolveRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &SolveRepo{
		collection: collection,
	}
}

// Save inserts or updates a solve record.
func (r *SolveRepo) Save(ctx context.Context, record *dmn.SolveRecord) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	filter := bson.M{"_id": record.ID}
	update := bson.M{
		"$set": bson.M{
			"digest":     record.Digest,
			"width":      record.Width,
			"height":     record.Height,
			"turns":      record.Turns,
			"found":      record.Found,
			"nodes":      record.Nodes,
			"cached":     record.Cached,
			"durationMs": record.DurationMS,
			"createdAt":  record.CreatedAt,
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := r.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return errors.New("unexpected error: " + err.Error())
	}
	return nil
}

// ByID retrieves a solve record by its ID.
// Returns ErrRecordNotFound if there is no such record.
func (r *SolveRepo) ByID(ctx context.Context, id uuid.UUID) (*dmn.SolveRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	filter := bson.M{"_id": id}
	var record dmn.SolveRecord
	if err := r.collection.FindOne(ctx, filter).Decode(&record); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrRecordNotFound
		}
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return &record, nil
}
