// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/packlist-service/internal/domain/model"
	"github.com/guttosm/packlist-service/internal/repository"
)

type MockOverridesRepositoryInterface struct {
	mock.Mock
}

func (m *MockOverridesRepositoryInterface) GetAll(ctx context.Context) (map[model.ItemKey]model.Bag, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[model.ItemKey]model.Bag), args.Error(1)
}

func (m *MockOverridesRepositoryInterface) List(ctx context.Context) ([]repository.OverrideDocument, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.OverrideDocument), args.Error(1)
}

func (m *MockOverridesRepositoryInterface) Set(ctx context.Context, key model.ItemKey, bag model.Bag) (*repository.OverrideDocument, error) {
	args := m.Called(ctx, key, bag)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.OverrideDocument), args.Error(1)
}

func (m *MockOverridesRepositoryInterface) Delete(ctx context.Context, key model.ItemKey) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
