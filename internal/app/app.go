package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/heartmarshall/hangeul-backend/internal/adapter/csvsource"
	"github.com/heartmarshall/hangeul-backend/internal/cache"
	"github.com/heartmarshall/hangeul-backend/internal/config"
	"github.com/heartmarshall/hangeul-backend/internal/service/korean"
	"github.com/heartmarshall/hangeul-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, wires the
// vocabulary cache, service and router, and serves HTTP until ctx is
// cancelled, then shuts the server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log, cfg.App.Env, os.Stdout)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("data_path", cfg.Data.Path),
		slog.Duration("cache_ttl", cfg.Data.CacheTTL()),
	)

	handler, data, err := NewHandler(cfg, logger)
	if err != nil {
		return err
	}

	// Warm the cache so the first request does not pay for the file read.
	if n := len(data.Entries(ctx)); n == 0 {
		logger.Warn("no vocabulary loaded", slog.String("path", cfg.Data.Path))
	}

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}

	srv := &http.Server{
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	logger.Info("http server listening", slog.String("addr", ln.Addr().String()))
	return serve(ctx, srv, ln, cfg.Server.ShutdownTimeout, logger)
}

// NewHandler wires the data source, cache, service and router described by
// cfg. The returned cache is the one the router reads from.
func NewHandler(cfg *config.Config, logger *slog.Logger) (http.Handler, *cache.Cache, error) {
	data := cache.New(logger, csvsource.NewFileSource(cfg.Data.Path), cfg.Data.CacheTTL())
	svc := korean.NewService(logger, data, nil)

	qv, err := rest.NewQueryValidator()
	if err != nil {
		return nil, nil, fmt.Errorf("query validator: %w", err)
	}

	router := rest.NewRouter(rest.RouterDeps{
		Logger:    logger,
		CORS:      cfg.CORS,
		ShowStack: !cfg.App.IsProduction(),
		Korean:    rest.NewKoreanHandler(svc, logger),
		Health:    rest.NewHealthHandler(data, BuildVersion()),
		Query:     qv,
	})

	return router, data, nil
}

func serve(ctx context.Context, srv *http.Server, ln net.Listener, shutdownTimeout time.Duration, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down http server", slog.Duration("timeout", shutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}

	logger.Info("http server stopped")
	return nil
}
