package tracker

import (
	"context"
	"fmt"

	"chopnow/internal/config"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
)

// AddedItems records which food ids a user has added to their cart, as a
// plain set of ids per user. The mobile client keeps this set in on-device
// storage; the server keeps it per user in Redis so it survives reinstalls.
// All writes are best-effort from the caller's point of view: cart mutations
// must not fail because this set could not be updated.
type AddedItems interface {
	// Add records a food id in the user's added set.
	Add(ctx context.Context, uid, foodID string) error

	// Remove drops a food id from the user's added set.
	Remove(ctx context.Context, uid, foodID string) error

	// Contains reports whether a food id is in the user's added set.
	Contains(ctx context.Context, uid, foodID string) (bool, error)

	// List returns all food ids in the user's added set.
	List(ctx context.Context, uid string) ([]string, error)
}

// redisAddedItems implements AddedItems on a Redis set per user.
type redisAddedItems struct {
	client *redis.Client
	logger zerolog.Logger
}

// NewClient creates a Redis client from configuration and verifies
// connectivity.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}

// NewAddedItems creates a Redis-backed added-items tracker.
func NewAddedItems(client *redis.Client, logger zerolog.Logger) AddedItems {
	return &redisAddedItems{
		client: client,
		logger: logger.With().Str("component", "added-items").Logger(),
	}
}

func key(uid string) string {
	return fmt.Sprintf("added_items:%s", uid)
}

// Add records a food id in the user's added set.
func (t *redisAddedItems) Add(ctx context.Context, uid, foodID string) error {
	if err := t.client.SAdd(ctx, key(uid), foodID).Err(); err != nil {
		t.logger.Warn().Err(err).Str("uid", uid).Str("food_id", foodID).Msg("failed to record added item")
		return fmt.Errorf("failed to record added item: %w", err)
	}
	return nil
}

// Remove drops a food id from the user's added set.
func (t *redisAddedItems) Remove(ctx context.Context, uid, foodID string) error {
	if err := t.client.SRem(ctx, key(uid), foodID).Err(); err != nil {
		t.logger.Warn().Err(err).Str("uid", uid).Str("food_id", foodID).Msg("failed to remove added item")
		return fmt.Errorf("failed to remove added item: %w", err)
	}
	return nil
}

// Contains reports whether a food id is in the user's added set.
func (t *redisAddedItems) Contains(ctx context.Context, uid, foodID string) (bool, error) {
	added, err := t.client.SIsMember(ctx, key(uid), foodID).Result()
	if err != nil {
		t.logger.Warn().Err(err).Str("uid", uid).Str("food_id", foodID).Msg("failed to check added item")
		return false, fmt.Errorf("failed to check added item: %w", err)
	}
	return added, nil
}

// List returns all food ids in the user's added set.
func (t *redisAddedItems) List(ctx context.Context, uid string) ([]string, error) {
	ids, err := t.client.SMembers(ctx, key(uid)).Result()
	if err != nil {
		t.logger.Warn().Err(err).Str("uid", uid).Msg("failed to list added items")
		return nil, fmt.Errorf("failed to list added items: %w", err)
	}
	return ids, nil
}
