package markers

import (
	"context"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	dnderr "github.com/KirkDiggler/dying-condition/internal/errors"
	"github.com/KirkDiggler/dying-condition/internal/logging"
)

// redisRegistry stores each character's markers as a Redis set of names
type redisRegistry struct {
	client redis.UniversalClient
	logger *zap.Logger
}

// RedisConfig holds configuration for the Redis registry
type RedisConfig struct {
	Client redis.UniversalClient
	Logger *zap.Logger
}

// NewRedisRegistry creates a new Redis-backed marker registry
func NewRedisRegistry(cfg *RedisConfig) Registry {
	if cfg == nil {
		panic("RedisConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}

	return &redisRegistry{
		client: cfg.Client,
		logger: logging.OrNop(cfg.Logger),
	}
}

func (r *redisRegistry) key(characterID string) string {
	return fmt.Sprintf("character:%s:markers", characterID)
}

// Add implements Registry.Add
func (r *redisRegistry) Add(ctx context.Context, name, characterID string, opts *Options) error {
	if err := validate(name, characterID); err != nil {
		return err
	}

	added, err := r.client.SAdd(ctx, r.key(characterID), name).Result()
	if err != nil {
		return dnderr.Wrapf(err, "failed to add marker %q", name).
			WithMeta("character_id", characterID)
	}

	if added == 0 && opts != nil && opts.Warn {
		r.logger.Warn("marker already present",
			zap.String("character_id", characterID),
			zap.String("marker", name))
	}
	return nil
}

// Remove implements Registry.Remove
func (r *redisRegistry) Remove(ctx context.Context, name, characterID string, opts *Options) error {
	if err := validate(name, characterID); err != nil {
		return err
	}

	removed, err := r.client.SRem(ctx, r.key(characterID), name).Result()
	if err != nil {
		return dnderr.Wrapf(err, "failed to remove marker %q", name).
			WithMeta("character_id", characterID)
	}

	if removed == 0 && opts != nil && opts.Warn {
		r.logger.Warn("marker not present",
			zap.String("character_id", characterID),
			zap.String("marker", name))
	}
	return nil
}

// Query implements Registry.Query
func (r *redisRegistry) Query(ctx context.Context, characterID string, _ *Options) (*QueryResult, error) {
	if characterID == "" {
		return nil, dnderr.InvalidArgument("character ID is required")
	}

	names, err := r.client.SMembers(ctx, r.key(characterID)).Result()
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to query markers").
			WithMeta("character_id", characterID)
	}

	sort.Strings(names)
	found := make([]*Marker, 0, len(names))
	for _, name := range names {
		found = append(found, &Marker{ID: name, Name: name})
	}

	return shapeResult(found), nil
}
