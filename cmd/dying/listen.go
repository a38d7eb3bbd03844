package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/dying-condition/internal/events"
)

func newListenCmd(app *application) *cobra.Command {
	return &cobra.Command{
		Use:   "listen",
		Short: "Handle attribute changes published on the updates channel",
		Long: `Subscribes to the updates channel and runs every attribute change through
the dying rules. Prometheus metrics are served on METRICS_ADDR.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.redisClient == nil {
				return fmt.Errorf("listen needs a reachable REDIS_URL")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			subscriber := events.NewSubscriber(&events.SubscriberConfig{
				Client:  app.redisClient,
				Channel: app.cfg.Redis.Channel,
				Bus:     app.provider.Bus,
				Logger:  app.logger,
			})

			srv := &http.Server{
				Addr:              app.cfg.Metrics.Addr,
				Handler:           app.provider.Metrics.Handler(),
				ReadHeaderTimeout: 5 * time.Second,
			}

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				return subscriber.Run(gctx)
			})
			g.Go(func() error {
				app.logger.Info("serving metrics", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("metrics server: %w", err)
				}
				return nil
			})
			g.Go(func() error {
				<-gctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			})

			app.logger.Info("listening for attribute changes", zap.String("channel", app.cfg.Redis.Channel))
			err := g.Wait()
			app.logger.Info("listener stopped")
			return err
		},
	}
}
