package markers

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	dnderr "github.com/KirkDiggler/dying-condition/internal/errors"
	"github.com/KirkDiggler/dying-condition/internal/logging"
	"github.com/KirkDiggler/dying-condition/internal/uuid"
)

// InMemoryRegistry keeps markers per character in memory
// Useful for testing and development
type InMemoryRegistry struct {
	mu            sync.RWMutex
	markers       map[string]map[string]*Marker // characterID -> name -> marker
	uuidGenerator uuid.Generator
	logger        *zap.Logger
	now           func() time.Time
}

// InMemoryConfig holds the optional collaborators of the in-memory registry
type InMemoryConfig struct {
	UUIDGenerator uuid.Generator
	Logger        *zap.Logger
}

// NewInMemoryRegistry creates a new in-memory registry
func NewInMemoryRegistry(cfg *InMemoryConfig) *InMemoryRegistry {
	if cfg == nil {
		cfg = &InMemoryConfig{}
	}
	gen := cfg.UUIDGenerator
	if gen == nil {
		gen = uuid.NewGoogleUUIDGenerator()
	}

	return &InMemoryRegistry{
		markers:       make(map[string]map[string]*Marker),
		uuidGenerator: gen,
		logger:        logging.OrNop(cfg.Logger),
		now:           time.Now,
	}
}

// Add implements Registry.Add
func (r *InMemoryRegistry) Add(_ context.Context, name, characterID string, opts *Options) error {
	if err := validate(name, characterID); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	byName, ok := r.markers[characterID]
	if !ok {
		byName = make(map[string]*Marker)
		r.markers[characterID] = byName
	}

	if _, exists := byName[name]; exists {
		if opts != nil && opts.Warn {
			r.logger.Warn("marker already present",
				zap.String("character_id", characterID),
				zap.String("marker", name))
		}
		return nil
	}

	byName[name] = &Marker{
		ID:        r.uuidGenerator.New(),
		Name:      name,
		AppliedAt: r.now(),
	}

	r.logger.Debug("applied marker",
		zap.String("character_id", characterID),
		zap.String("marker", name))
	return nil
}

// Remove implements Registry.Remove
func (r *InMemoryRegistry) Remove(_ context.Context, name, characterID string, opts *Options) error {
	if err := validate(name, characterID); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	byName := r.markers[characterID]
	if _, exists := byName[name]; !exists {
		if opts != nil && opts.Warn {
			r.logger.Warn("marker not present",
				zap.String("character_id", characterID),
				zap.String("marker", name))
		}
		return nil
	}

	delete(byName, name)
	if len(byName) == 0 {
		delete(r.markers, characterID)
	}

	r.logger.Debug("removed marker",
		zap.String("character_id", characterID),
		zap.String("marker", name))
	return nil
}

// Query implements Registry.Query
func (r *InMemoryRegistry) Query(_ context.Context, characterID string, _ *Options) (*QueryResult, error) {
	if characterID == "" {
		return nil, dnderr.InvalidArgument("character ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	found := make([]*Marker, 0, len(r.markers[characterID]))
	for _, marker := range r.markers[characterID] {
		markerCopy := *marker
		found = append(found, &markerCopy)
	}
	sort.Slice(found, func(i, j int) bool {
		return found[i].Name < found[j].Name
	})

	return shapeResult(found), nil
}

func validate(name, characterID string) error {
	if characterID == "" {
		return dnderr.InvalidArgument("character ID is required")
	}
	if name == "" {
		return dnderr.InvalidArgument("marker name is required")
	}
	return nil
}
