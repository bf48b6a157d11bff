// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/packlist-service/internal/domain/model"
	"github.com/guttosm/packlist-service/internal/weather"
)

type MockWeatherResolver struct {
	mock.Mock
}

func (m *MockWeatherResolver) Resolve(ctx context.Context, segment model.TripSegment) (*weather.Resolved, error) {
	args := m.Called(ctx, segment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*weather.Resolved), args.Error(1)
}
