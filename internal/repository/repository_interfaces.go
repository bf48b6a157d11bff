// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"github.com/guttosm/packlist-service/internal/domain/model"
)

// OverridesRepositoryInterface defines the interface for bag-override
// repository operations.
type OverridesRepositoryInterface interface {
	GetAll(ctx context.Context) (map[model.ItemKey]model.Bag, error)
	List(ctx context.Context) ([]OverrideDocument, error)
	Set(ctx context.Context, key model.ItemKey, bag model.Bag) (*OverrideDocument, error)
	Delete(ctx context.Context, key model.ItemKey) error
}

// PackedStateRepositoryInterface defines the interface for packed-state
// repository operations.
type PackedStateRepositoryInterface interface {
	GetAll(ctx context.Context) (map[string]bool, error)
	Set(ctx context.Context, key string, packed bool) (*PackedStateDocument, error)
	Clear(ctx context.Context) error
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}
