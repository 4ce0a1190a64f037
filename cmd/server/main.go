package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	httpdelivery "github.com/gest-dev/pagseguro-go/internal/delivery/http"
	"github.com/gest-dev/pagseguro-go/internal/infrastructure/config"
	"github.com/gest-dev/pagseguro-go/internal/infrastructure/pagseguro"
	"github.com/gest-dev/pagseguro-go/internal/infrastructure/postgres"
	"github.com/gest-dev/pagseguro-go/internal/infrastructure/qrgenerator"
	"github.com/gest-dev/pagseguro-go/internal/usecase/checkout"
	"github.com/gest-dev/pagseguro-go/internal/usecase/generateqr"
	"github.com/gest-dev/pagseguro-go/internal/usecase/idempotency"
)

const (
	readHeaderTimeout     = 5 * time.Second
	gracefulShutdownDelay = 5 * time.Second

	dbMaxConns        = 10
	dbMinConns        = 2
	dbMaxConnLifetime = 30 * time.Minute
	dbMaxConnIdleTime = 5 * time.Minute
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if cfg.PagSeguro.Token() == "" {
		logger.Warn("PAGSEGURO_TOKEN is empty, requests will be rejected by the provider")
	}

	transport := pagseguro.NewClient(cfg.PagSeguro.Timeout(), logger)
	var chargeUC httpdelivery.Charger = checkout.NewUseCase(transport, cfg.PagSeguro)

	if cfg.DatabaseURL != "" {
		pool, err := initDB(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Error("database init failed", "error", err)
			os.Exit(1)
		}
		defer pool.Close()

		if err := postgres.Migrate(ctx, pool); err != nil {
			logger.Error("database migrate failed", "error", err)
			os.Exit(1)
		}
		chargeUC = idempotency.NewUseCase(postgres.NewUnitOfWork(pool), chargeUC)
	} else {
		logger.Warn("DATABASE_URL is empty, charges are not deduplicated")
	}

	generateQRUC := generateqr.NewUseCase(qrgenerator.NewGenerator())

	handler := httpdelivery.NewHandler(chargeUC, generateQRUC, logger)
	router := httpdelivery.NewRouter(handler)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		logger.Info("HTTP server starting", "addr", cfg.HTTPAddr)
		if serveErr := srv.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			logger.Error("http serve failed", "error", serveErr)
			cancel()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), gracefulShutdownDelay)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)
}

func initDB(ctx context.Context, url string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, err
	}

	cfg.MaxConns = dbMaxConns
	cfg.MinConns = dbMinConns
	cfg.MaxConnLifetime = dbMaxConnLifetime
	cfg.MaxConnIdleTime = dbMaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}
