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

	"github.com/jackc/pgx/v5/pgxpool"

	"influence-nexus/db/migrations"
	httpadapter "influence-nexus/internal/adapter/http"
	"influence-nexus/internal/adapter/openai"
	"influence-nexus/internal/adapter/postgres"
	"influence-nexus/internal/adapter/supabase"
	"influence-nexus/internal/adapter/usecase"
	"influence-nexus/internal/config"
	"influence-nexus/internal/config/configs"
	"influence-nexus/internal/core/port"
	"influence-nexus/internal/db"
	"influence-nexus/internal/marketing"
)

// main loads configuration, builds the store selected by STORE_DRIVER, the
// identity gateway and the completion client, then serves HTTP until a
// termination signal arrives and shuts the server down gracefully.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	var logger *slog.Logger
	{
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler).With(slog.String("env", cfg.Env))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	sb, err := supabase.New(supabase.Config{
		URL:        cfg.Supabase.URL,
		AnonKey:    cfg.Supabase.AnonKey,
		ServiceKey: cfg.Supabase.ServiceKey,
		JWTSecret:  cfg.Supabase.JWTSecret,
		HTTPClient: &http.Client{Timeout: cfg.Supabase.Timeout},
	})
	if err != nil {
		logger.Error("supabase client error", slog.Any("error", err))
		return
	}

	var store port.CampaignStore
	switch cfg.Store.Driver {
	case configs.StoreDriverSupabase:
		store = supabase.NewRESTStore(sb)
		logger.Info("using supabase table api store")
	default:
		pool, err := openPostgres(ctx, cfg.Psql, logger)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			return
		}
		defer pool.Close()
		store = postgres.NewCampaignStore(pool)
	}

	if cfg.OpenAI.APIKey == "" {
		logger.Warn("OPENAI_API_KEY is not set, script generation is disabled")
	}
	completion := openai.NewClient(openai.Config{
		URL:        cfg.OpenAI.URL,
		HTTPClient: &http.Client{Timeout: cfg.OpenAI.Timeout},
	})

	site, err := marketing.Load()
	if err != nil {
		logger.Error("marketing content error", slog.Any("error", err))
		return
	}

	handler := httpadapter.NewHandler(httpadapter.Services{
		Auth:    usecase.NewAuthUseCase(supabase.NewAuthGateway(sb), store, logger),
		Brand:   usecase.NewBrandUseCase(store, logger),
		Creator: usecase.NewCreatorUseCase(store, logger),
		Events:  usecase.NewEventUseCase(store, logger),
		Scripts: usecase.NewScriptUseCase(completion, usecase.ScriptConfig{
			APIKey: cfg.OpenAI.APIKey,
			Model:  cfg.OpenAI.Model,
		}, logger),
	}, site, logger)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()
	exitCode = 0

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}

// openPostgres runs migrations and the demo seed when configured and returns
// a verified pool.
func openPostgres(ctx context.Context, cfg configs.Postgres, logger *slog.Logger) (*pgxpool.Pool, error) {
	if cfg.RunMigrations {
		from, err := db.Migrate(cfg.Addr.String())
		if err != nil {
			return nil, err
		}
		logger.Info("migrations applied",
			slog.Uint64("from", uint64(from)),
			slog.Uint64("to", uint64(migrations.Version)))
	}

	pool, err := db.NewPostgresPool(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Seed {
		if err = db.Seed(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("seed: %w", err)
		}
		logger.Info("demo data seeded")
	}
	return pool, nil
}
