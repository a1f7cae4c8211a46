// Package store provides the category/card content backends. The game
// engine only ever reads; the admin screens write.
package store

import (
	"context"

	"github.com/palemoky/mimica-master/internal/game/deck"
)

// ContentStore is the single source of truth for category content.
type ContentStore interface {
	// ListCategories returns all categories with their cards.
	ListCategories(ctx context.Context) ([]deck.Category, error)

	// CreateCategory adds an empty category and returns it.
	CreateCategory(ctx context.Context, name string) (deck.Category, error)

	// DeleteCategory removes a category and all its cards.
	DeleteCategory(ctx context.Context, id string) error

	// AddCard appends a card to a category and returns it.
	AddCard(ctx context.Context, categoryID, text string) (deck.CardItem, error)

	// DeleteCard removes one card from a category.
	DeleteCard(ctx context.Context, categoryID, cardID string) error
}
