package service

import (
	"context"

	"github.com/guttosm/packlist-service/internal/repository"
)

// PackedStateService provides packed/checked-state operations. One entry per
// generated item, keyed by the persisted bag__category__name form.
type PackedStateService interface {
	// GetAll returns the full packed-state map.
	GetAll(ctx context.Context) (map[string]bool, error)
	// Set stores the packed flag for one item key.
	Set(ctx context.Context, key string, packed bool) (*repository.PackedStateDocument, error)
	// Clear removes all packed state.
	Clear(ctx context.Context) error
}

// PackedStateServiceImpl implements PackedStateService.
type PackedStateServiceImpl struct {
	packedRepo repository.PackedStateRepositoryInterface
}

// NewPackedStateService creates a new packed-state service.
func NewPackedStateService(packedRepo repository.PackedStateRepositoryInterface) PackedStateService {
	return &PackedStateServiceImpl{
		packedRepo: packedRepo,
	}
}

func (s *PackedStateServiceImpl) GetAll(ctx context.Context) (map[string]bool, error) {
	if s.packedRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.packedRepo.GetAll(ctx)
}

func (s *PackedStateServiceImpl) Set(ctx context.Context, key string, packed bool) (*repository.PackedStateDocument, error) {
	if s.packedRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.packedRepo.Set(ctx, key, packed)
}

func (s *PackedStateServiceImpl) Clear(ctx context.Context) error {
	if s.packedRepo == nil {
		return ErrRepositoryNotConfigured
	}
	return s.packedRepo.Clear(ctx)
}
