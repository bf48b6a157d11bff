// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/packlist-service/internal/domain/model"
	"github.com/guttosm/packlist-service/internal/repository"
)

type MockOverridesService struct {
	mock.Mock
}

func (m *MockOverridesService) GetAll(ctx context.Context) (map[model.ItemKey]model.Bag, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[model.ItemKey]model.Bag), args.Error(1)
}

func (m *MockOverridesService) List(ctx context.Context) ([]repository.OverrideDocument, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.OverrideDocument), args.Error(1)
}

func (m *MockOverridesService) Set(ctx context.Context, key model.ItemKey, bag model.Bag) (*repository.OverrideDocument, error) {
	args := m.Called(ctx, key, bag)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.OverrideDocument), args.Error(1)
}

func (m *MockOverridesService) Delete(ctx context.Context, key model.ItemKey) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

type MockPackedStateService struct {
	mock.Mock
}

func (m *MockPackedStateService) GetAll(ctx context.Context) (map[string]bool, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}

func (m *MockPackedStateService) Set(ctx context.Context, key string, packed bool) (*repository.PackedStateDocument, error) {
	args := m.Called(ctx, key, packed)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PackedStateDocument), args.Error(1)
}

func (m *MockPackedStateService) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
