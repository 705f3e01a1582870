// Copyright (c) 2026 BookLog. All rights reserved.

package book

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/booklogapp/booklog-server/internal/platform/constants"
)

// RedisCacheRepository implements CacheRepository using Redis.
//
// The leaderboard is stored as a single JSON blob under a fixed key with a
// TTL; catalog writes invalidate it eagerly so a stale board never outlives
// a metadata change by more than one request.
type RedisCacheRepository struct {
	client *redis.Client
}

// NewRedisCacheRepository creates a new Redis-backed CacheRepository.
func NewRedisCacheRepository(client *redis.Client) *RedisCacheRepository {
	return &RedisCacheRepository{client: client}
}

/*
GetPopular returns the cached popularity leaderboard.

Description: Cache misses (absent or expired key) return (nil, nil) so the
caller falls through to the database without error handling ceremony.

Parameters:
  - context: context.Context

Returns:
  - []*Book: Cached leaderboard, or nil on a miss
  - error: Connectivity or decode errors
*/
func (repository *RedisCacheRepository) GetPopular(context context.Context) ([]*Book, error) {
	payload, err := repository.client.Get(context, constants.RedisKeyPopularBooks).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis_popular_books_get_failed: %w", err)
	}

	var books []*Book
	if err := json.Unmarshal(payload, &books); err != nil {
		return nil, fmt.Errorf("redis_popular_books_decode_failed: %w", err)
	}

	return books, nil
}

/*
SetPopular stores the popularity leaderboard with a TTL.

Parameters:
  - context: context.Context
  - books: []*Book
  - timeToLive: time.Duration

Returns:
  - error: Encode or connectivity errors
*/
func (repository *RedisCacheRepository) SetPopular(context context.Context, books []*Book, timeToLive time.Duration) error {
	payload, err := json.Marshal(books)
	if err != nil {
		return fmt.Errorf("redis_popular_books_encode_failed: %w", err)
	}

	if err := repository.client.Set(context, constants.RedisKeyPopularBooks, payload, timeToLive).Err(); err != nil {
		return fmt.Errorf("redis_popular_books_set_failed: %w", err)
	}

	return nil
}

// InvalidatePopular drops the cached leaderboard.
func (repository *RedisCacheRepository) InvalidatePopular(context context.Context) error {
	if err := repository.client.Del(context, constants.RedisKeyPopularBooks).Err(); err != nil {
		return fmt.Errorf("redis_popular_books_invalidate_failed: %w", err)
	}
	return nil
}
