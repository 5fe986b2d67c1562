package store

import (
	"context"
	"fmt"
	"strconv"

	"belleza/internal/errors"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps each cart in a hash keyed by user id, field per
// product id, value the quantity.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func cartKey(userID int) string {
	return fmt.Sprintf("cart:%d", userID)
}

func (s *RedisStore) Get(ctx context.Context, userID int) (map[int]int, error) {
	fields, err := s.client.HGetAll(ctx, cartKey(userID)).Result()
	if err != nil {
		return nil, errors.NewStorageError("reading cart", err)
	}

	items := make(map[int]int, len(fields))
	for field, value := range fields {
		productID, err := strconv.Atoi(field)
		if err != nil {
			return nil, errors.NewStorageError("decoding cart entry", err)
		}
		quantity, err := strconv.Atoi(value)
		if err != nil {
			return nil, errors.NewStorageError("decoding cart entry", err)
		}
		items[productID] = quantity
	}

	return items, nil
}

func (s *RedisStore) Increment(ctx context.Context, userID, productID, delta int) error {
	if err := s.client.HIncrBy(ctx, cartKey(userID), strconv.Itoa(productID), int64(delta)).Err(); err != nil {
		return errors.NewStorageError("incrementing cart entry", err)
	}
	return nil
}

func (s *RedisStore) SetQuantity(ctx context.Context, userID, productID, quantity int) error {
	if err := s.client.HSet(ctx, cartKey(userID), strconv.Itoa(productID), quantity).Err(); err != nil {
		return errors.NewStorageError("writing cart entry", err)
	}
	return nil
}

func (s *RedisStore) Remove(ctx context.Context, userID, productID int) error {
	if err := s.client.HDel(ctx, cartKey(userID), strconv.Itoa(productID)).Err(); err != nil {
		return errors.NewStorageError("removing cart entry", err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context, userID int) error {
	if err := s.client.Del(ctx, cartKey(userID)).Err(); err != nil {
		return errors.NewStorageError("clearing cart", err)
	}
	return nil
}
