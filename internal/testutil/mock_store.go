//go:build !production

package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/palemoky/mimica-master/internal/game/deck"
)

// MockContentStore is a testify mock of store.ContentStore.
type MockContentStore struct {
	mock.Mock
}

func (m *MockContentStore) ListCategories(ctx context.Context) ([]deck.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]deck.Category), args.Error(1)
}

func (m *MockContentStore) CreateCategory(ctx context.Context, name string) (deck.Category, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(deck.Category), args.Error(1)
}

func (m *MockContentStore) DeleteCategory(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContentStore) AddCard(ctx context.Context, categoryID, text string) (deck.CardItem, error) {
	args := m.Called(ctx, categoryID, text)
	return args.Get(0).(deck.CardItem), args.Error(1)
}

func (m *MockContentStore) DeleteCard(ctx context.Context, categoryID, cardID string) error {
	args := m.Called(ctx, categoryID, cardID)
	return args.Error(0)
}
