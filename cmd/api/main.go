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

	"alloy-catalog/internal/backend"
	"alloy-catalog/internal/catalog"
	"alloy-catalog/internal/client"
	"alloy-catalog/internal/config"
	"alloy-catalog/internal/database"
	"alloy-catalog/internal/handler"
	"alloy-catalog/internal/inquiry"
	"alloy-catalog/internal/metrics"
	"alloy-catalog/internal/repository"
	"alloy-catalog/internal/router"
	"alloy-catalog/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger, "alloy-catalog-api")
	logger.Info().Str("backend_mode", cfg.Backend.Mode).Msg("starting alloy catalog API server")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Inquiry storage
	var (
		pool        *pgxpool.Pool
		inquiryRepo repository.InquiryRepository
	)
	if cfg.Database.Enabled {
		pool, err = database.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer pool.Close()

		inquiryRepo = repository.NewInquiryRepository(pool, logger)
		if err := inquiryRepo.EnsureSchema(ctx); err != nil {
			return err
		}
	}

	b, err := newBackend(ctx, cfg, inquiryRepo, logger)
	if err != nil {
		return err
	}

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	catalogService := service.NewCatalogService(b, m, logger)

	handlers := router.Handlers{
		Products: handler.NewProductHandler(catalogService, logger),
		Orders:   handler.NewOrderHandler(catalogService, logger),
		Info:     handler.NewInfoHandler(catalogService, logger),
	}
	if inquiryRepo != nil {
		handlers.Inquiries = handler.NewInquiryHandler(inquiryRepo, logger)
	}

	opts := router.Options{
		APIKey:   cfg.Auth.APIKey,
		Metrics:  m,
		Gatherer: registry,
	}
	if pool != nil {
		opts.Health = func(ctx context.Context) error { return database.Ping(ctx, pool) }
	}

	mux := router.New(handlers, opts, logger)

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Backend.RequestTimeout() + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// newBackend builds the remote client or the static backend with its
// inquiry sinks.
func newBackend(ctx context.Context, cfg *config.Config, repo repository.InquiryRepository, logger zerolog.Logger) (backend.Backend, error) {
	if cfg.Backend.Mode == "remote" {
		if repo != nil || cfg.S3.Enabled || cfg.Inquiry.ArchivePath != "" {
			logger.Warn().Msg("inquiry sinks are ignored in remote mode; orders are sent to the remote API")
		}
		c, err := client.New(client.Config{
			BaseURL: cfg.Backend.BaseURL,
			APIKey:  cfg.Backend.APIKey,
			Timeout: cfg.Backend.RequestTimeout(),
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create catalog client: %w", err)
		}
		return c, nil
	}

	sink, err := newInquirySink(ctx, cfg, repo, logger)
	if err != nil {
		return nil, err
	}

	return backend.NewStatic(catalog.Default(), backend.StaticOptions{
		Contact: cfg.Contact.ContactInfo(),
		Sink:    sink,
	}, logger), nil
}

// newInquirySink records to the database when configured and archives to
// S3 with a local file fallback. It returns nil when nothing is configured.
func newInquirySink(ctx context.Context, cfg *config.Config, repo repository.InquiryRepository, logger zerolog.Logger) (backend.InquirySink, error) {
	var fileSink, s3Sink inquiry.Sink

	if cfg.Inquiry.ArchivePath != "" {
		s, err := inquiry.NewFileSink(cfg.Inquiry.ArchivePath, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize inquiry archive: %w", err)
		}
		fileSink = s
	}

	if cfg.S3.Enabled {
		s, err := inquiry.NewS3Sink(ctx, cfg.S3.Bucket, cfg.S3.Region, cfg.S3.Prefix, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 inquiry sink, falling back to local archive only")
		} else {
			s3Sink = s
		}
	}

	var archive inquiry.Sink
	if s3Sink != nil || fileSink != nil {
		archive = inquiry.NewFallbackSink(s3Sink, fileSink, logger)
	}

	switch {
	case repo != nil:
		return inquiry.NewTeeSink(inquiry.NewRepositorySink(repo, logger), []inquiry.Sink{archive}, logger), nil
	case archive != nil:
		return archive, nil
	default:
		logger.Info().Msg("no inquiry storage configured, orders are accepted without recording")
		return nil, nil
	}
}
