// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/packlist-service/internal/repository"
)

type MockPackedStateRepositoryInterface struct {
	mock.Mock
}

func (m *MockPackedStateRepositoryInterface) GetAll(ctx context.Context) (map[string]bool, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}

func (m *MockPackedStateRepositoryInterface) Set(ctx context.Context, key string, packed bool) (*repository.PackedStateDocument, error) {
	args := m.Called(ctx, key, packed)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PackedStateDocument), args.Error(1)
}

func (m *MockPackedStateRepositoryInterface) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
