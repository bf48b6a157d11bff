package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PackedStateDocument represents the checked-off state of one generated
// item, keyed by the persisted bag__category__name form.
type PackedStateDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Key       string             `bson:"key" json:"key"`
	Packed    bool               `bson:"packed" json:"packed"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// PackedStateRepository provides methods for packed-state operations.
type PackedStateRepository struct {
	collection *mongo.Collection
}

// NewPackedStateRepository creates a new packed-state repository.
func NewPackedStateRepository(db *MongoDB) *PackedStateRepository {
	return &PackedStateRepository{
		collection: db.PackedState,
	}
}

// GetAll returns the full packed-state map.
func (r *PackedStateRepository) GetAll(ctx context.Context) (map[string]bool, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []PackedStateDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	state := make(map[string]bool, len(docs))
	for _, doc := range docs {
		state[doc.Key] = doc.Packed
	}
	return state, nil
}

// Set upserts the packed flag for one item key.
func (r *PackedStateRepository) Set(ctx context.Context, key string, packed bool) (*PackedStateDocument, error) {
	update := bson.M{
		"$set": bson.M{
			"packed":     packed,
			"updated_at": time.Now(),
		},
	}

	var doc PackedStateDocument
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"key": key},
		update,
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// Clear removes all packed state, e.g. when starting to pack a new trip.
func (r *PackedStateRepository) Clear(ctx context.Context) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{})
	return err
}
