package document

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis
	documentKeyPrefix = "document:"
)

// RedisConfig holds configuration for the Redis document store
type RedisConfig struct {
	// Redis client
	RedisClient *redis.Client
}

// redisStore implements the Store interface using Redis string keys
type redisStore struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed document store
func NewRedis(cfg *RedisConfig) (*redisStore, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisStore{
		client: cfg.RedisClient,
	}, nil
}

// Load reads a document from Redis
func (r *redisStore) Load(ctx context.Context, input *LoadInput) error {
	if input == nil || input.Target == nil {
		return errors.New("input and target cannot be nil")
	}
	if err := validateName(input.Name); err != nil {
		return err
	}

	documentJSON, err := r.client.Get(ctx, documentKeyPrefix+input.Name).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrDocumentNotFound
		}
		return fmt.Errorf("failed to get document %s: %w", input.Name, err)
	}

	if err := json.Unmarshal(documentJSON, input.Target); err != nil {
		return fmt.Errorf("failed to unmarshal document %s: %w", input.Name, err)
	}

	return nil
}

// Save replaces a document in Redis. A single SET is atomic.
func (r *redisStore) Save(ctx context.Context, input *SaveInput) error {
	if input == nil || input.Document == nil {
		return errors.New("input and document cannot be nil")
	}
	if err := validateName(input.Name); err != nil {
		return err
	}

	documentJSON, err := json.Marshal(input.Document)
	if err != nil {
		return fmt.Errorf("failed to marshal document %s: %w", input.Name, err)
	}

	// No expiration, the documents are the source of truth
	if err := r.client.Set(ctx, documentKeyPrefix+input.Name, documentJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save document %s: %w", input.Name, err)
	}

	return nil
}
