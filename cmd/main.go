// cmd/main.go is the application entry point.
// It wires together all layers and starts the HTTP server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/Shivanand-hulikatti/event-reservation-ledger/internal/blacklist"
	"github.com/Shivanand-hulikatti/event-reservation-ledger/internal/config"
	"github.com/Shivanand-hulikatti/event-reservation-ledger/internal/database"
	"github.com/Shivanand-hulikatti/event-reservation-ledger/internal/handler"
	"github.com/Shivanand-hulikatti/event-reservation-ledger/internal/logger"
	"github.com/Shivanand-hulikatti/event-reservation-ledger/internal/notify"
	"github.com/Shivanand-hulikatti/event-reservation-ledger/internal/repository"
	"github.com/Shivanand-hulikatti/event-reservation-ledger/internal/service"
	"github.com/Shivanand-hulikatti/event-reservation-ledger/internal/snapshot"
)

var (
	Version   = "dev"
	CommitSHA = "none"
)

func main() {
	root := &cobra.Command{
		Use:   "booking",
		Short: "Event reservation ledger with customer and event registries",
	}
	root.AddCommand(newServeCmd(), newVersionCmd())

	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "booking %s (%s)\n", Version, CommitSHA)
		},
	}
}

func newServeCmd() *cobra.Command {
	var restore bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			slog.SetDefault(logger.Setup(os.Stdout, cfg.LogLevel))
			return serve(cmd.Context(), cfg, restore)
		},
	}
	cmd.Flags().BoolVar(&restore, "restore", true, "restore the last snapshot on startup")
	return cmd
}

func serve(ctx context.Context, cfg *config.Config, restore bool) error {
	// ── 1. Collaborators ─────────────────────────────────────────────────
	store, closeStore, err := newSnapshotStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	bl, closeBlacklist := newBlacklist(cfg)
	defer closeBlacklist()

	notifier, closeNotifier := newNotifier(cfg)
	defer closeNotifier()

	// ── 2. Wire up layers ────────────────────────────────────────────────
	ledger := service.NewReservationService(repository.NewReservationRepository(), bl, notifier)
	bookingSvc := service.NewBookingService(
		repository.NewCustomerRepository(),
		repository.NewEventRepository(),
		ledger,
		store,
	)

	if restore {
		if err := bookingSvc.RestoreSnapshot(ctx); err != nil {
			if !service.IsMissingSnapshot(err) {
				return fmt.Errorf("restore snapshot: %w", err)
			}
			slog.Info("no snapshot found, starting empty")
		}
	}

	// ── 3. Start server with graceful shutdown ────────────────────────────
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler.NewRouter(handler.NewBookingHandler(bookingSvc)),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-quit:
	}

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	if err := bookingSvc.SaveSnapshot(shutdownCtx); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	slog.Info("server stopped")
	return nil
}

func newSnapshotStore(ctx context.Context, cfg *config.Config) (snapshot.Store, func(), error) {
	if cfg.DatabaseURL == "" {
		slog.Info("snapshots on disk", slog.String("dir", cfg.SnapshotDir))
		return snapshot.NewFileStore(cfg.SnapshotDir), func() {}, nil
	}

	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("database: %w", err)
	}
	if err := database.EnsureSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, nil, err
	}
	slog.Info("snapshots in postgres")
	return snapshot.NewPostgresStore(pool), pool.Close, nil
}

func newBlacklist(cfg *config.Config) (service.Blacklist, func()) {
	if cfg.RedisAddr == "" {
		return blacklist.NewStatic(cfg.Blacklist...), func() {}
	}
	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	slog.Info("blacklist in redis", slog.String("addr", cfg.RedisAddr), slog.String("key", cfg.BlacklistKey))
	return blacklist.NewRedis(client, cfg.BlacklistKey), func() { _ = client.Close() }
}

// newNotifier falls back to logging emails when RabbitMQ is not configured
// or not reachable.
func newNotifier(cfg *config.Config) (service.Notifier, func()) {
	if cfg.AMQPURL == "" {
		return notify.NewLogNotifier(nil), func() {}
	}
	n, err := notify.NewAMQPNotifier(cfg.AMQPURL, cfg.NotifyQueue, cfg.NotifyTimeout)
	if err != nil {
		slog.Warn("rabbitmq unavailable, logging emails instead", slog.String("error", err.Error()))
		return notify.NewLogNotifier(nil), func() {}
	}
	return n, func() { _ = n.Close() }
}
