// Package condition keeps a character's condition markers in step with its dying state
package condition

//go:generate mockgen -destination=mock/mock_service.go -package=mockcondition -source=service.go

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/dying-condition/internal/domain/conditions"
	"github.com/KirkDiggler/dying-condition/internal/logging"
	"github.com/KirkDiggler/dying-condition/internal/repositories/markers"
)

// Service adds and removes condition markers through the marker registry
type Service interface {
	// Add applies a marker by name
	Add(ctx context.Context, characterID, name string) error

	// Remove detaches a marker by name
	Remove(ctx context.Context, characterID, name string) error

	// RemoveAllLevelsOf removes every marker whose base name is base ("Dying", "Dying 2", ...)
	RemoveAllLevelsOf(ctx context.Context, characterID, base string) error

	// AddWithLevel replaces all levels of base with a single "<base> <level>" marker.
	// A level of zero or less only removes.
	AddWithLevel(ctx context.Context, characterID, base string, level int) error

	// CurrentMarkers returns the marker names on a character, sorted
	CurrentMarkers(ctx context.Context, characterID string) ([]string, error)

	// AddConditions applies the markers for several kinds concurrently
	AddConditions(ctx context.Context, characterID string, kinds ...conditions.Kind) error

	// RemoveConditions removes the markers for several kinds concurrently.
	// Leveled kinds lose every level.
	RemoveConditions(ctx context.Context, characterID string, kinds ...conditions.Kind) error

	// SyncLevel makes the leveled marker of kind reflect level
	SyncLevel(ctx context.Context, characterID string, kind conditions.Kind, level int) error
}

type service struct {
	registry markers.Registry
	config   conditions.MarkerConfig
	logger   *zap.Logger
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Registry markers.Registry // Required
	Markers  conditions.MarkerConfig
	Logger   *zap.Logger
}

// NewService creates a new condition synchronizer
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil || cfg.Registry == nil {
		panic("marker registry is required")
	}

	return &service{
		registry: cfg.Registry,
		config:   cfg.Markers,
		logger:   logging.OrNop(cfg.Logger).Named("conditions"),
	}
}

// writes reports whether a marker name should reach the registry at all
func (s *service) writes(name string) bool {
	return s.config.UseEnhancedMarkers && name != "" && s.config.IsTracked(name)
}

func (s *service) Add(ctx context.Context, characterID, name string) error {
	if !s.writes(name) {
		return nil
	}

	s.logger.Debug("adding marker",
		zap.String("character_id", characterID),
		zap.String("marker", name))
	return s.registry.Add(ctx, name, characterID, &markers.Options{Warn: true})
}

func (s *service) Remove(ctx context.Context, characterID, name string) error {
	if !s.writes(name) {
		return nil
	}

	s.logger.Debug("removing marker",
		zap.String("character_id", characterID),
		zap.String("marker", name))
	return s.registry.Remove(ctx, name, characterID, &markers.Options{Warn: true})
}

func (s *service) RemoveAllLevelsOf(ctx context.Context, characterID, base string) error {
	if !s.writes(base) {
		return nil
	}

	current, err := s.CurrentMarkers(ctx, characterID)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, name := range current {
		if conditions.BaseName(name) != base {
			continue
		}
		name := name
		g.Go(func() error {
			return s.Remove(gctx, characterID, name)
		})
	}
	return g.Wait()
}

func (s *service) AddWithLevel(ctx context.Context, characterID, base string, level int) error {
	if !s.writes(base) {
		return nil
	}

	if err := s.RemoveAllLevelsOf(ctx, characterID, base); err != nil {
		return err
	}
	if level <= 0 {
		return nil
	}
	return s.Add(ctx, characterID, conditions.LeveledName(base, level))
}

func (s *service) CurrentMarkers(ctx context.Context, characterID string) ([]string, error) {
	result, err := s.registry.Query(ctx, characterID, nil)
	if err != nil {
		return nil, err
	}
	return Names(result), nil
}

// Names flattens the registry's nil / single / list answer into marker names
func Names(result *markers.QueryResult) []string {
	if result == nil {
		return nil
	}
	if result.Condition != nil {
		return []string{result.Condition.Name}
	}

	names := make([]string, 0, len(result.Conditions))
	for _, marker := range result.Conditions {
		if marker != nil {
			names = append(names, marker.Name)
		}
	}
	return names
}

func (s *service) AddConditions(ctx context.Context, characterID string, kinds ...conditions.Kind) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, kind := range kinds {
		name, ok := s.config.NameFor(kind)
		if !ok {
			continue
		}
		g.Go(func() error {
			return s.Add(gctx, characterID, name)
		})
	}
	return g.Wait()
}

func (s *service) RemoveConditions(ctx context.Context, characterID string, kinds ...conditions.Kind) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, kind := range kinds {
		name, ok := s.config.NameFor(kind)
		if !ok {
			continue
		}
		if kind.IsLeveled() {
			g.Go(func() error {
				return s.RemoveAllLevelsOf(gctx, characterID, name)
			})
			continue
		}
		g.Go(func() error {
			return s.Remove(gctx, characterID, name)
		})
	}
	return g.Wait()
}

func (s *service) SyncLevel(ctx context.Context, characterID string, kind conditions.Kind, level int) error {
	name, ok := s.config.NameFor(kind)
	if !ok {
		return nil
	}
	return s.AddWithLevel(ctx, characterID, name, level)
}
