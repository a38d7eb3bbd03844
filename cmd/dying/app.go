package main

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/KirkDiggler/dying-condition/internal/config"
	"github.com/KirkDiggler/dying-condition/internal/logging"
	"github.com/KirkDiggler/dying-condition/internal/services"
)

// application is what every command runs against. Tests fill it in directly,
// main leaves it empty and lets the root command build it from the environment.
type application struct {
	cfg         *config.Config
	logger      *zap.Logger
	redisClient *redis.Client
	provider    *services.Provider
}

func (a *application) ready() bool {
	return a.provider != nil
}

// init loads configuration, connects to Redis when REDIS_URL is set and
// builds the service provider. A Redis that cannot be reached falls back
// to the in-memory stores.
func (a *application) init(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.cfg = cfg

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	a.logger = logger

	providerConfig := &services.ProviderConfig{
		Config: cfg,
		Logger: logger,
	}

	if cfg.Redis.URL != "" {
		logger.Info("connecting to redis", zap.String("url", cfg.Redis.URL))
		if client, err := connectRedis(ctx, cfg.Redis.URL); err != nil {
			logger.Warn("falling back to in-memory stores", zap.Error(err))
		} else {
			a.redisClient = client
			providerConfig.RedisClient = client
			logger.Info("using redis for persistence")
		}
	} else {
		logger.Info("no REDIS_URL found, using in-memory stores")
	}

	a.provider = services.NewProvider(providerConfig)
	return nil
}

func connectRedis(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

func (a *application) close() {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	if a.redisClient == nil {
		return
	}
	if err := a.redisClient.Close(); err != nil && a.logger != nil {
		a.logger.Warn("error closing redis connection", zap.Error(err))
	}
}
