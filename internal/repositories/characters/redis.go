package characters

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/dying-condition/internal/domain/character"
	dnderr "github.com/KirkDiggler/dying-condition/internal/errors"
	"github.com/KirkDiggler/dying-condition/internal/uuid"
)

const (
	fieldID        = "id"
	fieldName      = "name"
	fieldUpdatedAt = "updated_at"

	// indexKey is the set of all stored character IDs
	indexKey = "characters"

	// listConcurrency bounds the parallel hash reads made by List
	listConcurrency = 8
)

// redisRepo implements the Repository interface using one Redis hash per
// character, keyed by attribute path
type redisRepo struct {
	client        redis.UniversalClient
	uuidGenerator uuid.Generator
	now           func() time.Time
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client        redis.UniversalClient
	UUIDGenerator uuid.Generator
}

// NewRedisRepository creates a new Redis-backed character repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}

	gen := cfg.UUIDGenerator
	if gen == nil {
		gen = uuid.NewGoogleUUIDGenerator()
	}

	return &redisRepo{
		client:        cfg.Client,
		uuidGenerator: gen,
		now:           time.Now,
	}
}

func (r *redisRepo) key(id string) string {
	return fmt.Sprintf("character:%s", id)
}

func (r *redisRepo) timestamp() string {
	return r.now().UTC().Format(time.RFC3339Nano)
}

// Create stores a new character
func (r *redisRepo) Create(ctx context.Context, char *character.Character) error {
	if char == nil {
		return dnderr.InvalidArgument("character cannot be nil")
	}
	if char.ID == "" {
		char.ID = r.uuidGenerator.New()
	}

	key := r.key(char.ID)
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return dnderr.Wrap(err, "failed to check character existence").
			WithMeta("character_id", char.ID)
	}
	if exists > 0 {
		return dnderr.AlreadyExistsf("character with ID '%s' already exists", char.ID).
			WithMeta("character_id", char.ID)
	}

	char.Normalize()
	char.UpdatedAt = r.now()

	values := []any{
		fieldID, char.ID,
		fieldName, char.Name,
		fieldUpdatedAt, char.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	for _, path := range character.AllAttributes {
		value, err := char.Value(path)
		if err != nil {
			return dnderr.Wrapf(err, "failed to encode %s", path)
		}
		values = append(values, string(path), value)
	}

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, key, values...)
	pipe.SAdd(ctx, indexKey, char.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return dnderr.Wrap(err, "failed to save character").
			WithMeta("character_id", char.ID)
	}

	return nil
}

// Get retrieves a character by ID
func (r *redisRepo) Get(ctx context.Context, id string) (*character.Character, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("character ID is required")
	}

	fields, err := r.client.HGetAll(ctx, r.key(id)).Result()
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to get character").
			WithMeta("character_id", id)
	}
	if len(fields) == 0 {
		return nil, dnderr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}

	return decodeCharacter(id, fields)
}

func decodeCharacter(id string, fields map[string]string) (*character.Character, error) {
	char := &character.Character{
		ID:   id,
		Name: fields[fieldName],
	}

	if raw, ok := fields[fieldUpdatedAt]; ok && raw != "" {
		ts, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return nil, dnderr.Wrapf(err, "invalid %s on character", fieldUpdatedAt).
				WithMeta("character_id", id)
		}
		char.UpdatedAt = ts
	}

	for _, path := range character.AllAttributes {
		raw, ok := fields[string(path)]
		if !ok || raw == "" {
			continue
		}
		if err := char.Apply(path, raw); err != nil {
			return nil, dnderr.WrapWithCode(err, dnderr.CodeInternal, "corrupt character data").
				WithMeta("character_id", id).
				WithMeta("attribute", string(path))
		}
	}

	char.Normalize()
	return char, nil
}

// WriteAttribute updates one hash field of an existing character
func (r *redisRepo) WriteAttribute(ctx context.Context, id string, path character.AttributePath, value any) error {
	if id == "" {
		return dnderr.InvalidArgument("character ID is required")
	}

	encoded, err := wireValue(path, value)
	if err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeInvalidArgument, "cannot write "+string(path)).
			WithMeta("character_id", id)
	}

	key := r.key(id)
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return dnderr.Wrap(err, "failed to check character existence").
			WithMeta("character_id", id)
	}
	if exists == 0 {
		return dnderr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}

	if err := r.client.HSet(ctx, key, string(path), encoded, fieldUpdatedAt, r.timestamp()).Err(); err != nil {
		return dnderr.Wrapf(err, "failed to write %s", path).
			WithMeta("character_id", id)
	}

	return nil
}

// Delete removes a character and its index entry
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	if id == "" {
		return dnderr.InvalidArgument("character ID is required")
	}

	deleted, err := r.client.Del(ctx, r.key(id)).Result()
	if err != nil {
		return dnderr.Wrap(err, "failed to delete character").
			WithMeta("character_id", id)
	}
	if deleted == 0 {
		return dnderr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}

	if err := r.client.SRem(ctx, indexKey, id).Err(); err != nil {
		return dnderr.Wrap(err, "failed to remove character from index").
			WithMeta("character_id", id)
	}

	return nil
}

// List loads every indexed character concurrently. IDs left in the index
// without a hash are skipped.
func (r *redisRepo) List(ctx context.Context) ([]*character.Character, error) {
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to list characters")
	}

	var (
		mu     sync.Mutex
		result = make([]*character.Character, 0, len(ids))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(listConcurrency)
	for _, id := range ids {
		id := id
		g.Go(func() error {
			char, err := r.Get(gctx, id)
			if dnderr.IsNotFound(err) {
				return nil
			}
			if err != nil {
				return err
			}
			mu.Lock()
			result = append(result, char)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result, nil
}
