package service

import (
	"context"
	"errors"

	"github.com/guttosm/packlist-service/internal/domain/model"
	"github.com/guttosm/packlist-service/internal/repository"
)

// ErrRepositoryNotConfigured is returned when a persistence-backed service
// is used without a repository, i.e. when MongoDB is disabled.
var ErrRepositoryNotConfigured = errors.New("repository not configured")

// OverridesService provides bag-override operations. The override map
// persists across regenerations and is re-applied to every generated list.
type OverridesService interface {
	// GetAll returns the full override map keyed by item identity.
	GetAll(ctx context.Context) (map[model.ItemKey]model.Bag, error)
	// List returns all stored override documents.
	List(ctx context.Context) ([]repository.OverrideDocument, error)
	// Set forces the given identity key into the given bag.
	Set(ctx context.Context, key model.ItemKey, bag model.Bag) (*repository.OverrideDocument, error)
	// Delete removes the override for the given identity key.
	Delete(ctx context.Context, key model.ItemKey) error
}

// OverridesServiceImpl implements OverridesService.
type OverridesServiceImpl struct {
	overridesRepo repository.OverridesRepositoryInterface
}

// NewOverridesService creates a new overrides service.
func NewOverridesService(overridesRepo repository.OverridesRepositoryInterface) OverridesService {
	return &OverridesServiceImpl{
		overridesRepo: overridesRepo,
	}
}

func (s *OverridesServiceImpl) GetAll(ctx context.Context) (map[model.ItemKey]model.Bag, error) {
	if s.overridesRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.overridesRepo.GetAll(ctx)
}

func (s *OverridesServiceImpl) List(ctx context.Context) ([]repository.OverrideDocument, error) {
	if s.overridesRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.overridesRepo.List(ctx)
}

func (s *OverridesServiceImpl) Set(ctx context.Context, key model.ItemKey, bag model.Bag) (*repository.OverrideDocument, error) {
	if s.overridesRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.overridesRepo.Set(ctx, key, bag)
}

func (s *OverridesServiceImpl) Delete(ctx context.Context, key model.ItemKey) error {
	if s.overridesRepo == nil {
		return ErrRepositoryNotConfigured
	}
	return s.overridesRepo.Delete(ctx, key)
}
