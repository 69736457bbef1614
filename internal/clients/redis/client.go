package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rekarton-ge/client-crm/internal/config"
	"github.com/rekarton-ge/client-crm/internal/observability"

	"github.com/redis/go-redis/v9"
)

// Z is a sorted set member with its score.
type Z = redis.Z

// Client wraps the Redis client with observability. A nil *Client is a
// disabled client: every command returns an error and IsEnabled is false.
type Client struct {
	client *redis.Client
	logger *observability.Logger
}

// NewClient connects to Redis. An empty address disables Redis and
// returns a nil client.
func NewClient(cfg config.RedisConfig, logger *observability.Logger) (*Client, error) {
	if cfg.Addr == "" {
		logger.Info(context.Background(), "Redis is disabled, skipping client initialization")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "addr", Value: cfg.Addr},
		observability.Field{Key: "db", Value: cfg.DB},
	)
	logger.Info(ctx, "successfully connected to Redis")

	return &Client{
		client: client,
		logger: logger,
	}, nil
}

var errNotInitialized = errors.New("redis client not initialized")

// Close closes the Redis connection
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// Ping checks the connection; used by the health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	if c == nil || c.client == nil {
		return errNotInitialized
	}
	return c.client.Ping(ctx).Err()
}

// SlidingWindow trims every member scored at or below windowStart, counts
// what remains and returns the oldest surviving member, all in one
// transaction.
func (c *Client) SlidingWindow(ctx context.Context, key string, windowStart int64) (int64, []Z, error) {
	if c == nil || c.client == nil {
		return 0, nil, errNotInitialized
	}

	pipe := c.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", windowStart))
	count := pipe.ZCard(ctx, key)
	oldest := pipe.ZRangeWithScores(ctx, key, 0, 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, nil, err
	}
	return count.Val(), oldest.Val(), nil
}

// ZAdd adds a member with score to a sorted set
func (c *Client) ZAdd(ctx context.Context, key string, members ...Z) error {
	if c == nil || c.client == nil {
		return errNotInitialized
	}
	return c.client.ZAdd(ctx, key, members...).Err()
}

// ZCount counts members scored within [min, max]
func (c *Client) ZCount(ctx context.Context, key, min, max string) (int64, error) {
	if c == nil || c.client == nil {
		return 0, errNotInitialized
	}
	return c.client.ZCount(ctx, key, min, max).Result()
}

// Expire sets an expiration on a key
func (c *Client) Expire(ctx context.Context, key string, expiration time.Duration) error {
	if c == nil || c.client == nil {
		return errNotInitialized
	}
	return c.client.Expire(ctx, key, expiration).Err()
}

// IsEnabled returns whether Redis is enabled
func (c *Client) IsEnabled() bool {
	return c != nil && c.client != nil
}
