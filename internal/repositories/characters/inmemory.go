package characters

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/KirkDiggler/dying-condition/internal/domain/character"
	dnderr "github.com/KirkDiggler/dying-condition/internal/errors"
	"github.com/KirkDiggler/dying-condition/internal/uuid"
)

// InMemoryRepository is an in-memory implementation of the character repository
// Useful for testing and development
type InMemoryRepository struct {
	mu            sync.RWMutex
	characters    map[string]*character.Character
	uuidGenerator uuid.Generator
	now           func() time.Time
}

// InMemoryConfig holds the optional collaborators of the in-memory repository
type InMemoryConfig struct {
	UUIDGenerator uuid.Generator
	Now           func() time.Time
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository(cfg *InMemoryConfig) Repository {
	if cfg == nil {
		cfg = &InMemoryConfig{}
	}
	gen := cfg.UUIDGenerator
	if gen == nil {
		gen = uuid.NewGoogleUUIDGenerator()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &InMemoryRepository{
		characters:    make(map[string]*character.Character),
		uuidGenerator: gen,
		now:           now,
	}
}

// Create stores a new character
func (r *InMemoryRepository) Create(_ context.Context, char *character.Character) error {
	if char == nil {
		return dnderr.InvalidArgument("character cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if char.ID == "" {
		char.ID = r.uuidGenerator.New()
	}

	if _, exists := r.characters[char.ID]; exists {
		return dnderr.AlreadyExistsf("character with ID '%s' already exists", char.ID).
			WithMeta("character_id", char.ID)
	}

	char.Normalize()
	char.UpdatedAt = r.now()

	// Store a copy to avoid external modifications
	r.characters[char.ID] = char.Clone()
	return nil
}

// Get retrieves a character by ID
func (r *InMemoryRepository) Get(_ context.Context, id string) (*character.Character, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("character ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	char, exists := r.characters[id]
	if !exists {
		return nil, dnderr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}

	return char.Clone(), nil
}

// WriteAttribute updates a single attribute of an existing character
func (r *InMemoryRepository) WriteAttribute(_ context.Context, id string, path character.AttributePath, value any) error {
	if id == "" {
		return dnderr.InvalidArgument("character ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	char, exists := r.characters[id]
	if !exists {
		return dnderr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}

	if err := char.Apply(path, value); err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeInvalidArgument, "cannot write "+string(path)).
			WithMeta("character_id", id)
	}
	char.UpdatedAt = r.now()
	return nil
}

// Delete removes a character
func (r *InMemoryRepository) Delete(_ context.Context, id string) error {
	if id == "" {
		return dnderr.InvalidArgument("character ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.characters[id]; !exists {
		return dnderr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}

	delete(r.characters, id)
	return nil
}

// List returns every character ordered by ID
func (r *InMemoryRepository) List(_ context.Context) ([]*character.Character, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*character.Character, 0, len(r.characters))
	for _, char := range r.characters {
		result = append(result, char.Clone())
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result, nil
}
