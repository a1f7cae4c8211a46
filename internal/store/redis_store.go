package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/palemoky/mimica-master/internal/game/deck"
)

// Redis keys
const (
	categoryKeyPrefix = "mimica:category:"
	categoryIndexKey  = "mimica:categories"
)

// RedisStore keeps each category as a JSON value plus an index set of
// ids, so several devices can share one deck collection.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(ctx context.Context, addr, password string, db int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return &RedisStore{client: client}, nil
}

// NewRedisStoreWithClient wraps an existing client. Used by tests.
func NewRedisStoreWithClient(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Close releases the underlying connection.
func (rs *RedisStore) Close() error {
	return rs.client.Close()
}

// ListCategories loads every category in the index. A category id whose
// value has expired or been deleted out-of-band is skipped.
func (rs *RedisStore) ListCategories(ctx context.Context) ([]deck.Category, error) {
	ids, err := rs.client.SMembers(ctx, categoryIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	categories := make([]deck.Category, 0, len(ids))
	for _, id := range ids {
		data, err := rs.client.Get(ctx, categoryKeyPrefix+id).Bytes()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("load category %s: %w", id, err)
		}

		var cat deck.Category
		if err := json.Unmarshal(data, &cat); err != nil {
			return nil, fmt.Errorf("decode category %s: %w", id, err)
		}
		categories = append(categories, cat)
	}

	return categories, nil
}

// CreateCategory stores an empty category and indexes it.
func (rs *RedisStore) CreateCategory(ctx context.Context, name string) (deck.Category, error) {
	cat := deck.Category{ID: uuid.NewString(), Name: name}

	if err := rs.saveCategory(ctx, cat); err != nil {
		return deck.Category{}, err
	}
	if err := rs.client.SAdd(ctx, categoryIndexKey, cat.ID).Err(); err != nil {
		return deck.Category{}, fmt.Errorf("index category: %w", err)
	}
	return cat, nil
}

// DeleteCategory removes a category and its index entry.
func (rs *RedisStore) DeleteCategory(ctx context.Context, id string) error {
	if err := rs.client.Del(ctx, categoryKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if err := rs.client.SRem(ctx, categoryIndexKey, id).Err(); err != nil {
		return fmt.Errorf("unindex category: %w", err)
	}
	return nil
}

// AddCard appends a card to a stored category.
func (rs *RedisStore) AddCard(ctx context.Context, categoryID, text string) (deck.CardItem, error) {
	cat, err := rs.loadCategory(ctx, categoryID)
	if err != nil {
		return deck.CardItem{}, err
	}

	card := deck.CardItem{ID: uuid.NewString(), Text: text}
	cat.Cards = append(cat.Cards, card)

	if err := rs.saveCategory(ctx, cat); err != nil {
		return deck.CardItem{}, err
	}
	return card, nil
}

// DeleteCard removes one card from a stored category.
func (rs *RedisStore) DeleteCard(ctx context.Context, categoryID, cardID string) error {
	cat, err := rs.loadCategory(ctx, categoryID)
	if err != nil {
		return err
	}

	kept := cat.Cards[:0]
	for _, c := range cat.Cards {
		if c.ID != cardID {
			kept = append(kept, c)
		}
	}
	cat.Cards = kept

	return rs.saveCategory(ctx, cat)
}

func (rs *RedisStore) loadCategory(ctx context.Context, id string) (deck.Category, error) {
	data, err := rs.client.Get(ctx, categoryKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return deck.Category{}, fmt.Errorf("category %s not found", id)
	}
	if err != nil {
		return deck.Category{}, fmt.Errorf("load category %s: %w", id, err)
	}

	var cat deck.Category
	if err := json.Unmarshal(data, &cat); err != nil {
		return deck.Category{}, fmt.Errorf("decode category %s: %w", id, err)
	}
	return cat, nil
}

func (rs *RedisStore) saveCategory(ctx context.Context, cat deck.Category) error {
	data, err := json.Marshal(cat)
	if err != nil {
		return fmt.Errorf("encode category %s: %w", cat.ID, err)
	}
	if err := rs.client.Set(ctx, categoryKeyPrefix+cat.ID, data, 0).Err(); err != nil {
		return fmt.Errorf("save category %s: %w", cat.ID, err)
	}
	return nil
}
