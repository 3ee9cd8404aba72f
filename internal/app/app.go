package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/hadith-backend/internal/auth"
	"github.com/heartmarshall/hadith-backend/internal/config"
	"github.com/heartmarshall/hadith-backend/internal/service/indexer"
	"github.com/heartmarshall/hadith-backend/internal/transport/middleware"
	"github.com/heartmarshall/hadith-backend/internal/transport/rest"
)

// Run is the server entry point. It loads configuration, wires the services,
// serves HTTP until ctx is cancelled and then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("search_enabled", cfg.Search.Enabled),
	)

	c, err := NewComponents(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer c.Close()

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      NewHandler(cfg, logger, c),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

// reindexer is declared locally so a disabled indexer stays a nil interface.
type reindexer interface {
	Reindex(ctx context.Context, books ...string) (*indexer.Result, error)
}

// NewHandler builds the HTTP handler with its middleware chain.
func NewHandler(cfg *config.Config, logger *slog.Logger, c *Components) http.Handler {
	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	var idx reindexer
	if c.Indexer != nil {
		idx = c.Indexer
	}

	return rest.NewRouter(rest.Handlers{
		Health: rest.NewHealthHandler(c.Pool, c.Search, BuildVersion()),
		Hadith: rest.NewHadithHandler(c.Cached, c.Query, c.Records, logger),
		Kitab:  rest.NewKitabHandler(c.Catalog, idx, logger),
	},
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwt),
	)
}
