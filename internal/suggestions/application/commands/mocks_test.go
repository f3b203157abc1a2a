package commands

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	historyDomain "github.com/felixgeelhaar/serendip/internal/history/domain"
	preferencesDomain "github.com/felixgeelhaar/serendip/internal/preferences/domain"
	suggestionsDomain "github.com/felixgeelhaar/serendip/internal/suggestions/domain"
)

type mockPreferenceRepo struct {
	mock.Mock
}

func (m *mockPreferenceRepo) FindByUserID(ctx context.Context, userID string) (*preferencesDomain.PreferenceModel, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*preferencesDomain.PreferenceModel), args.Error(1)
}

func (m *mockPreferenceRepo) Save(ctx context.Context, model *preferencesDomain.PreferenceModel) error {
	args := m.Called(ctx, model)
	return args.Error(0)
}

type mockHistoryRepo struct {
	mock.Mock
}

func (m *mockHistoryRepo) Save(ctx context.Context, entry *historyDomain.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *mockHistoryRepo) ListRecent(ctx context.Context, userID string, limit int) ([]*historyDomain.Entry, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*historyDomain.Entry), args.Error(1)
}

func (m *mockHistoryRepo) ListByMonth(ctx context.Context, userID string, year int, month time.Month) ([]*historyDomain.Entry, error) {
	args := m.Called(ctx, userID, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*historyDomain.Entry), args.Error(1)
}

func (m *mockHistoryRepo) CountByCategory(ctx context.Context, userID string, since time.Time) (map[suggestionsDomain.Category]int, error) {
	args := m.Called(ctx, userID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[suggestionsDomain.Category]int), args.Error(1)
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
