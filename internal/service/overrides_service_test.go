//go:build !integration

package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/packlist-service/internal/domain/model"
	"github.com/guttosm/packlist-service/internal/mocks"
	"github.com/guttosm/packlist-service/internal/repository"
	"github.com/guttosm/packlist-service/internal/service"
)

func TestOverridesService_GetAll(t *testing.T) {
	repo := new(mocks.MockOverridesRepositoryInterface)
	svc := service.NewOverridesService(repo)

	key := model.ItemKey{Category: model.CategoryClothes, Name: "Hat"}
	expected := map[model.ItemKey]model.Bag{key: model.BagCarryOn}
	repo.On("GetAll", mock.Anything).Return(expected, nil).Once()

	got, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, expected, got)
	repo.AssertExpectations(t)
}

func TestOverridesService_Set(t *testing.T) {
	repo := new(mocks.MockOverridesRepositoryInterface)
	svc := service.NewOverridesService(repo)

	key := model.ItemKey{Category: model.CategoryClothes, Name: "Hat"}
	doc := &repository.OverrideDocument{Key: key.StorageKey(), Category: key.Category, Name: key.Name, Bag: model.BagCarryOn}
	repo.On("Set", mock.Anything, key, model.BagCarryOn).Return(doc, nil).Once()

	got, err := svc.Set(context.Background(), key, model.BagCarryOn)
	require.NoError(t, err)
	assert.Equal(t, doc, got)
	repo.AssertExpectations(t)
}

func TestOverridesService_Delete(t *testing.T) {
	repo := new(mocks.MockOverridesRepositoryInterface)
	svc := service.NewOverridesService(repo)

	key := model.ItemKey{Category: model.CategoryClothes, Name: "Hat"}
	repo.On("Delete", mock.Anything, key).Return(nil).Once()

	assert.NoError(t, svc.Delete(context.Background(), key))
	repo.AssertExpectations(t)
}

func TestOverridesService_RepositoryError(t *testing.T) {
	repo := new(mocks.MockOverridesRepositoryInterface)
	svc := service.NewOverridesService(repo)

	repoErr := errors.New("connection lost")
	repo.On("GetAll", mock.Anything).Return(nil, repoErr).Once()

	_, err := svc.GetAll(context.Background())
	assert.ErrorIs(t, err, repoErr)
	repo.AssertExpectations(t)
}

func TestOverridesService_NilRepository(t *testing.T) {
	svc := service.NewOverridesService(nil)
	ctx := context.Background()
	key := model.ItemKey{Category: model.CategoryClothes, Name: "Hat"}

	_, err := svc.GetAll(ctx)
	assert.ErrorIs(t, err, service.ErrRepositoryNotConfigured)

	_, err = svc.List(ctx)
	assert.ErrorIs(t, err, service.ErrRepositoryNotConfigured)

	_, err = svc.Set(ctx, key, model.BagCarryOn)
	assert.ErrorIs(t, err, service.ErrRepositoryNotConfigured)

	assert.ErrorIs(t, svc.Delete(ctx, key), service.ErrRepositoryNotConfigured)
}
