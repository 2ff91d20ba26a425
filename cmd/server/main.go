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

	"github.com/redis/go-redis/v9"

	"github.com/iudanet/devsocial/internal/config"
	"github.com/iudanet/devsocial/internal/server/events"
	"github.com/iudanet/devsocial/internal/server/handlers"
	"github.com/iudanet/devsocial/internal/server/jwt"
	"github.com/iudanet/devsocial/internal/server/metrics"
	"github.com/iudanet/devsocial/internal/server/middleware"
	"github.com/iudanet/devsocial/internal/server/router"
	"github.com/iudanet/devsocial/internal/server/service"
	"github.com/iudanet/devsocial/internal/server/storage"
	"github.com/iudanet/devsocial/internal/server/storage/cache"
	"github.com/iudanet/devsocial/internal/server/storage/postgres"
	"github.com/iudanet/devsocial/internal/server/storage/sqlite"
	"github.com/iudanet/devsocial/internal/server/storage/sqlstore"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Show version and exit if requested
	if cfg.ShowVersion {
		printVersion()
		os.Exit(0)
	}

	logger, err := cfg.Log.NewLogger(os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("Server stopped with error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("DevSocial server starting",
		slog.String("version", Version),
		slog.String("storage", cfg.Storage.Driver),
		slog.String("addr", cfg.Server.Addr))

	store, err := openStorage(ctx, cfg.Storage)
	if err != nil {
		return err
	}
	defer store.Close()

	var posts storage.PostStorage = store
	checks := []handlers.HealthCheck{{Name: "database", Pinger: store}}

	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		if err := cache.Ping(ctx, rdb); err != nil {
			// Кэш необязателен: без Redis работаем напрямую с БД
			logger.Warn("Redis unavailable, post cache disabled", slog.Any("error", err))
		} else {
			posts = cache.New(store, rdb, cfg.Redis.TTL, logger)
			checks = append(checks, handlers.HealthCheck{
				Name:     "redis",
				Pinger:   handlers.PingFunc(func(ctx context.Context) error { return cache.Ping(ctx, rdb) }),
				Optional: true,
			})
			logger.Info("Post cache enabled", slog.String("redis", cfg.Redis.Addr))
		}
	}

	var publisher events.Publisher = events.Nop{}
	if cfg.NATS.URL != "" {
		nc, err := events.Connect(cfg.NATS.URL)
		if err != nil {
			logger.Warn("NATS unavailable, domain events disabled", slog.Any("error", err))
		} else {
			defer nc.Close()
			publisher = nc
			checks = append(checks, handlers.HealthCheck{Name: "nats", Pinger: nc, Optional: true})
			logger.Info("Domain events enabled", slog.String("nats", cfg.NATS.URL))
		}
	}

	opts := service.Options{
		Publisher:    publisher,
		PasswordCost: cfg.Auth.BcryptCost,
	}

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
		opts.Metrics = m
	}

	users := service.NewUserService(logger, store, opts)
	postService := service.NewPostService(logger, store, posts, opts)
	tokens := jwt.NewService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	logger.Info("Token service ready", slog.Duration("token_ttl", tokens.TTL()))

	handler := router.New(router.Config{
		Logger:  logger,
		Auth:    handlers.NewAuthHandler(logger, users, tokens),
		Posts:   handlers.NewPostsHandler(logger, postService),
		Health:  handlers.NewHealthHandler(logger, Version, checks...),
		Gate:    middleware.NewAuthGate(logger, tokens),
		Metrics: m,
		Prefix:  cfg.Server.Prefix,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", slog.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	logger.Info("Server stopped")
	return nil
}

func openStorage(ctx context.Context, cfg config.StorageConfig) (*sqlstore.Storage, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return postgres.New(ctx, cfg.PostgresDSN)
	default:
		return sqlite.New(ctx, cfg.SQLitePath)
	}
}

func printVersion() {
	fmt.Printf("DevSocial Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
