package services

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/KirkDiggler/dying-condition/internal/config"
	"github.com/KirkDiggler/dying-condition/internal/dice"
	"github.com/KirkDiggler/dying-condition/internal/events"
	"github.com/KirkDiggler/dying-condition/internal/logging"
	"github.com/KirkDiggler/dying-condition/internal/metrics"
	"github.com/KirkDiggler/dying-condition/internal/repositories/characters"
	"github.com/KirkDiggler/dying-condition/internal/repositories/markers"
	"github.com/KirkDiggler/dying-condition/internal/services/condition"
	"github.com/KirkDiggler/dying-condition/internal/services/deathsave"
	"github.com/KirkDiggler/dying-condition/internal/services/dying"
)

// Provider holds all service instances
type Provider struct {
	CharacterRepository characters.Repository
	MarkerRegistry      markers.Registry
	ConditionService    condition.Service
	DyingService        dying.Service
	DyingHandler        *dying.Handler
	DeathSaveService    *deathsave.Service
	Bus                 *events.Bus
	Metrics             *metrics.Recorder
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	Config *config.Config // Required

	// RedisClient switches the stores to Redis. Without it everything is in memory.
	RedisClient redis.UniversalClient

	// Optional overrides, mostly for tests
	CharacterRepository characters.Repository
	MarkerRegistry      markers.Registry
	DiceRoller          dice.Roller
	Metrics             *metrics.Recorder
	Logger              *zap.Logger
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	if cfg == nil || cfg.Config == nil {
		panic("config is required")
	}
	logger := logging.OrNop(cfg.Logger)

	charRepo := cfg.CharacterRepository
	if charRepo == nil {
		if cfg.RedisClient != nil {
			charRepo = characters.NewRedis(cfg.RedisClient)
		} else {
			charRepo = characters.NewInMemoryRepository(nil)
		}
	}

	registry := cfg.MarkerRegistry
	if registry == nil {
		if cfg.RedisClient != nil {
			registry = markers.NewRedisRegistry(&markers.RedisConfig{
				Client: cfg.RedisClient,
				Logger: logger,
			})
		} else {
			registry = markers.NewInMemoryRegistry(&markers.InMemoryConfig{Logger: logger})
		}
	}

	roller := cfg.DiceRoller
	if roller == nil {
		roller = dice.NewRandomRoller(dice.WithLogger(logger))
	}

	recorder := cfg.Metrics
	if recorder == nil {
		recorder = metrics.NewRecorder()
	}

	condService := condition.NewService(&condition.ServiceConfig{
		Registry: registry,
		Markers:  cfg.Config.Markers,
		Logger:   logger,
	})

	dyingService := dying.NewService(&dying.ServiceConfig{
		Repository: charRepo,
		Conditions: condService,
		Rules:      dying.Rules{MaxDying: cfg.Config.Rules.MaxDying},
		Metrics:    recorder,
		Logger:     logger,
	})

	handler := dying.NewHandler(&dying.HandlerConfig{
		Service:    dyingService,
		Repository: charRepo,
		Conditions: condService,
		Logger:     logger,
	})

	deathSaves := deathsave.NewService(&deathsave.ServiceConfig{
		Repository:           charRepo,
		Dying:                dyingService,
		Roller:               roller,
		RequireZeroHitPoints: cfg.Config.Rules.RequireZeroHitPoints,
		Metrics:              recorder,
		Logger:               logger,
	})

	bus := events.NewBus(logger)
	bus.Subscribe(events.EventTypeAttributesChanged, events.NewDyingListener(handler))

	return &Provider{
		CharacterRepository: charRepo,
		MarkerRegistry:      registry,
		ConditionService:    condService,
		DyingService:        dyingService,
		DyingHandler:        handler,
		DeathSaveService:    deathSaves,
		Bus:                 bus,
		Metrics:             recorder,
	}
}
