package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/nutrigym-backend/internal/adapter/postgres/profile"
	"github.com/heartmarshall/nutrigym-backend/internal/adapter/provider/ai"
	"github.com/heartmarshall/nutrigym-backend/internal/adapter/provider/anthropic"
	"github.com/heartmarshall/nutrigym-backend/internal/adapter/provider/gemini"
	"github.com/heartmarshall/nutrigym-backend/internal/adapter/provider/supabase"
	"github.com/heartmarshall/nutrigym-backend/internal/auth"
	"github.com/heartmarshall/nutrigym-backend/internal/config"
	"github.com/heartmarshall/nutrigym-backend/internal/service/gate"
	"github.com/heartmarshall/nutrigym-backend/internal/service/journal"
	"github.com/heartmarshall/nutrigym-backend/internal/service/persist"
	profilesvc "github.com/heartmarshall/nutrigym-backend/internal/service/profile"
	"github.com/heartmarshall/nutrigym-backend/internal/service/staging"
	"github.com/heartmarshall/nutrigym-backend/internal/service/tracker"
	"github.com/heartmarshall/nutrigym-backend/internal/transport/middleware"
	"github.com/heartmarshall/nutrigym-backend/internal/transport/rest"
)

// Run builds every component from cfg, serves the HTTP bridge and blocks
// until ctx is canceled or the server fails.
func Run(ctx context.Context, cfg *config.Config) error {
	logger := NewLogger(cfg.Log)

	logger.InfoContext(ctx, "starting nutrigym",
		slog.String("version", BuildVersion()),
		slog.String("storage", cfg.Storage.Driver),
		slog.String("ai_provider", cfg.AI.Provider),
		slog.String("timezone", cfg.Journal.Location.String()),
	)

	res := &resources{}
	defer res.close()

	if cfg.NeedsDatabase() {
		pool, err := openDatabase(ctx, cfg.Database, logger)
		if err != nil {
			return fmt.Errorf("app.Run: %w", err)
		}
		res.pool = pool
		res.closers = append(res.closers, pool.Close)
	}

	store, err := openStorage(ctx, cfg, res, logger)
	if err != nil {
		return fmt.Errorf("app.Run: %w", err)
	}
	mirror := persist.NewService(logger, store, cfg.Profile.DefaultName)

	// Auth gatekeeper.
	sb := supabase.New(cfg.Auth, auth.NewTokenParser(cfg.Auth.JWTSecret), logger)
	if !cfg.Auth.Configured() {
		logger.WarnContext(ctx, "auth provider not configured; sign in will fail")
	}

	g := gate.NewService(logger, sb, entitlementSource(cfg, sb, res), mirror)
	defer g.Close()

	// AI adapter, built on first use.
	lazy := ai.NewLazy(aiFactory(cfg.AI, logger))
	analyzer := ai.NewClient(logger, lazy, cfg.AI)

	// State cells.
	tr := tracker.New(logger,
		profilesvc.NewService(logger, cfg.Profile.DefaultName),
		journal.NewService(logger, cfg.Journal.Location),
		staging.NewList(journal.NewID),
		analyzer,
		mirror,
	)
	tr.Load(ctx)

	if err := g.Init(ctx); err != nil {
		logger.WarnContext(ctx, "restored session rejected", slog.String("error", err.Error()))
	}

	// HTTP bridge.
	var guards rest.Guards
	guards.Session = middleware.RequireSession(g)
	if cfg.RateLimit.Enabled {
		rl := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		defer rl.Stop()
		guards.AILimit = rl.Limit("ai", cfg.RateLimit.AIPerMinute)
		guards.LoginLimit = rl.Limit("login", cfg.RateLimit.LoginPerMinute)
	}

	mux := rest.NewRouter(rest.Routes{
		Health:  rest.NewHealthHandler(store, g, BuildVersion()),
		Auth:    rest.NewAuthHandler(g, logger),
		Day:     rest.NewDayHandler(tr, logger),
		Profile: rest.NewProfileHandler(tr, logger),
		AI:      rest.NewAIHandler(tr, ai.EncodeImage, cfg.Server.MaxUploadBytes, logger),
		Staging: rest.NewStagingHandler(tr, logger),
	}, guards)

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)(mux)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, cfg.Server, logger)
}

// serve runs srv until ctx is canceled, then shuts it down gracefully.
func serve(ctx context.Context, srv *http.Server, cfg config.ServerConfig, logger *slog.Logger) error {
	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		<-egCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down", slog.Duration("timeout", cfg.ShutdownTimeout))
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	if err := eg.Wait(); err != nil {
		return fmt.Errorf("app.serve: %w", err)
	}
	logger.Info("stopped")
	return nil
}

type entitlementChecker interface {
	Entitled(ctx context.Context, userID uuid.UUID) (bool, error)
}

// entitlementSource picks where the profiles record is read from.
func entitlementSource(cfg *config.Config, sb *supabase.Client, res *resources) entitlementChecker {
	if cfg.Auth.EntitlementSource == config.EntitlementPostgres {
		return profile.New(res.pool)
	}
	return sb
}

func aiFactory(cfg config.AIConfig, logger *slog.Logger) ai.Factory {
	if cfg.Provider == config.ProviderAnthropic {
		return anthropic.Factory(cfg, logger)
	}
	return gemini.Factory(cfg, logger)
}
