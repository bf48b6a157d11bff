// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"
	"errors"

	"github.com/guttosm/packlist-service/internal/circuitbreaker"
	"github.com/guttosm/packlist-service/internal/domain/model"
)

// OverridesRepositoryWithCircuitBreaker wraps OverridesRepository with
// circuit breaker protection.
type OverridesRepositoryWithCircuitBreaker struct {
	repo           *OverridesRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewOverridesRepositoryWithCircuitBreaker creates a new repository wrapper
// with circuit breaker.
func NewOverridesRepositoryWithCircuitBreaker(repo *OverridesRepository, cb *circuitbreaker.CircuitBreaker) *OverridesRepositoryWithCircuitBreaker {
	return &OverridesRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// GetAll returns the override map with circuit breaker protection.
// An open circuit yields an empty map: the UI falls back to the engine's
// default bag assignments instead of failing the generation.
func (r *OverridesRepositoryWithCircuitBreaker) GetAll(ctx context.Context) (map[model.ItemKey]model.Bag, error) {
	var result map[model.ItemKey]model.Bag
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetAll(ctx)
		return cbErr
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return map[model.ItemKey]model.Bag{}, nil
	}
	return result, err
}

// List returns all override documents with circuit breaker protection.
func (r *OverridesRepositoryWithCircuitBreaker) List(ctx context.Context) ([]OverrideDocument, error) {
	var result []OverrideDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx)
		return cbErr
	})
	return result, err
}

// Set upserts an override with circuit breaker protection.
func (r *OverridesRepositoryWithCircuitBreaker) Set(ctx context.Context, key model.ItemKey, bag model.Bag) (*OverrideDocument, error) {
	var result *OverrideDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Set(ctx, key, bag)
		return cbErr
	})
	return result, err
}

// Delete removes an override with circuit breaker protection.
func (r *OverridesRepositoryWithCircuitBreaker) Delete(ctx context.Context, key model.ItemKey) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Delete(ctx, key)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *OverridesRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// PackedStateRepositoryWithCircuitBreaker wraps PackedStateRepository with
// circuit breaker protection.
type PackedStateRepositoryWithCircuitBreaker struct {
	repo           *PackedStateRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewPackedStateRepositoryWithCircuitBreaker creates a new repository wrapper
// with circuit breaker.
func NewPackedStateRepositoryWithCircuitBreaker(repo *PackedStateRepository, cb *circuitbreaker.CircuitBreaker) *PackedStateRepositoryWithCircuitBreaker {
	return &PackedStateRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// GetAll returns the packed-state map with circuit breaker protection.
// An open circuit yields an empty map, surfacing every item as unpacked.
func (r *PackedStateRepositoryWithCircuitBreaker) GetAll(ctx context.Context) (map[string]bool, error) {
	var result map[string]bool
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetAll(ctx)
		return cbErr
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return map[string]bool{}, nil
	}
	return result, err
}

// Set upserts a packed flag with circuit breaker protection.
func (r *PackedStateRepositoryWithCircuitBreaker) Set(ctx context.Context, key string, packed bool) (*PackedStateDocument, error) {
	var result *PackedStateDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Set(ctx, key, packed)
		return cbErr
	})
	return result, err
}

// Clear removes all packed state with circuit breaker protection.
func (r *PackedStateRepositoryWithCircuitBreaker) Clear(ctx context.Context) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Clear(ctx)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *PackedStateRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps LogsRepository with circuit breaker
// protection. Log writes are best-effort; an open circuit drops them.
type LogsRepositoryWithCircuitBreaker struct {
	repo           *LogsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new logs repository wrapper
// with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo *LogsRepository, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create inserts a log entry with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// CreateMany inserts log entries in bulk with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// Query queries log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	var result []*LogEntryDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count counts log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
