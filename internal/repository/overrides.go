// Package repository provides data access for persisted packing state.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/packlist-service/internal/domain/model"
)

// OverrideDocument represents one persisted bag override: a single identity
// key (category, name) forced into a specific bag. The flattened key field
// (category__name) is the stable storage key existing state depends on.
type OverrideDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Key       string             `bson:"key" json:"key"`
	Category  string             `bson:"category" json:"category"`
	Name      string             `bson:"name" json:"name"`
	Bag       model.Bag          `bson:"bag" json:"bag"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// OverridesRepository provides methods for bag-override operations.
type OverridesRepository struct {
	collection *mongo.Collection
}

// NewOverridesRepository creates a new overrides repository.
func NewOverridesRepository(db *MongoDB) *OverridesRepository {
	return &OverridesRepository{
		collection: db.Overrides,
	}
}

// GetAll returns the full override map keyed by item identity.
func (r *OverridesRepository) GetAll(ctx context.Context) (map[model.ItemKey]model.Bag, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []OverrideDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	overrides := make(map[model.ItemKey]model.Bag, len(docs))
	for _, doc := range docs {
		overrides[model.ItemKey{Category: doc.Category, Name: doc.Name}] = doc.Bag
	}
	return overrides, nil
}

// List returns all override documents, newest first.
func (r *OverridesRepository) List(ctx context.Context) ([]OverrideDocument, error) {
	opts := options.Find().SetSort(bson.M{"updated_at": -1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []OverrideDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// Set upserts the override for one identity key.
func (r *OverridesRepository) Set(ctx context.Context, key model.ItemKey, bag model.Bag) (*OverrideDocument, error) {
	update := bson.M{
		"$set": bson.M{
			"category":   key.Category,
			"name":       key.Name,
			"bag":        bag,
			"updated_at": time.Now(),
		},
	}

	var doc OverrideDocument
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"key": key.StorageKey()},
		update,
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// Delete removes the override for one identity key. Deleting a key without
// an override is not an error.
func (r *OverridesRepository) Delete(ctx context.Context, key model.ItemKey) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"key": key.StorageKey()})
	return err
}
