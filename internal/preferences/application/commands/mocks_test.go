package commands

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/felixgeelhaar/serendip/internal/preferences/domain"
)

type mockPreferenceRepo struct {
	mock.Mock
}

func (m *mockPreferenceRepo) FindByUserID(ctx context.Context, userID string) (*domain.PreferenceModel, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PreferenceModel), args.Error(1)
}

func (m *mockPreferenceRepo) Save(ctx context.Context, model *domain.PreferenceModel) error {
	args := m.Called(ctx, model)
	return args.Error(0)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, routingKey string, payload []byte) error {
	args := m.Called(ctx, routingKey, payload)
	return args.Error(0)
}

func (m *mockPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}
