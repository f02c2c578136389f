package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"

	"impactlens/internal/adapters/cache"
	httpadapter "impactlens/internal/adapters/http"
	"impactlens/internal/adapters/objectstore"
	"impactlens/internal/adapters/pdf"
	"impactlens/internal/api"
	"impactlens/internal/app"
	"impactlens/internal/catalog"
	"impactlens/internal/config"
	"impactlens/internal/services/business"
	"impactlens/internal/services/impact"
	"impactlens/internal/services/investor"
	"impactlens/internal/services/reports"
	"impactlens/internal/telemetry"
	"impactlens/internal/workers/reportrunner"
)

func main() {
	cfg, cfgErr := config.Load()
	log, err := app.Logger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()
	if cfgErr != nil {
		log.Warn("configuration", zap.Error(cfgErr))
	}

	if err := run(cfg, log); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}

func run(cfg config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.InitTracing(ctx, cfg.OTLPEndpoint, "impactlens")
	if err != nil {
		return fmt.Errorf("tracing: %w", err)
	}
	defer func() { _ = shutdownTracing(context.Background()) }()
	metrics := telemetry.NewMetrics()

	backend, closeBackend, err := app.OpenBackend(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeBackend()

	reportCache, err := cache.New(ctx, cfg.RedisAddr, cfg.ReportCacheTTL)
	if err != nil {
		log.Warn("report cache", zap.Error(err))
	}
	client, err := app.NewLLM(ctx, cfg.LLM)
	if err != nil {
		return fmt.Errorf("llm client: %w", err)
	}
	renderer := pdf.NewRenderer(pdf.Config{RemoteURL: cfg.ChromeURL, Logger: log})
	defer renderer.Close()

	opts := []reports.Option{
		reports.WithCache(reportCache),
		reports.WithRenderer(renderer),
		reports.WithMetrics(metrics),
	}
	s3cfg := objectstore.Config(cfg.S3)
	if s3cfg.Enabled() {
		objects, err := objectstore.NewS3(ctx, s3cfg)
		if err != nil {
			return fmt.Errorf("object store: %w", err)
		}
		opts = append(opts, reports.WithObjectStore(objects))
		log.Info("archiving PDFs to S3", zap.String("bucket", s3cfg.Bucket))
	}

	cat := catalog.Default()
	reportSvc := reports.New(client, backend, opts...)

	doc, err := api.Load(ctx)
	if err != nil {
		return err
	}
	validator, err := api.NewValidator(doc)
	if err != nil {
		return err
	}

	srv := httpadapter.New(httpadapter.Deps{
		Store:       backend,
		Business:    business.New(backend, cat),
		Investor:    investor.New(backend, cat),
		Impact:      impact.New(backend),
		Reports:     reportSvc,
		Jobs:        backend,
		Processor:   reportSvc,
		Catalog:     cat,
		Validator:   validator,
		Metrics:     metrics,
		Logger:      log,
		ReportRate:  cfg.ReportRateLimit,
		ReportBurst: cfg.ReportRateBurst,
	})

	var workers sync.WaitGroup
	if cfg.ReportWorkers > 0 {
		workers.Add(1)
		go func() {
			defer workers.Done()
			reportrunner.Run(ctx, backend, reportSvc, reportrunner.Options{
				Concurrency: cfg.ReportWorkers,
				Logger:      log.Named("reportrunner"),
				Metrics:     metrics,
			})
		}()
		log.Info("report workers started", zap.Int("workers", cfg.ReportWorkers))
	}

	httpServer := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() { errCh <- httpServer.ListenAndServe() }()
	log.Info("listening", zap.String("addr", cfg.ListenAddr), zap.String("store", cfg.StoreDriver))

	var runErr error
	select {
	case <-ctx.Done():
		log.Info("shutting down")
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			runErr = fmt.Errorf("http server: %w", err)
		}
		stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Warn("http shutdown", zap.Error(err))
	}
	// Workers finish their current job before the store closes.
	workers.Wait()
	return runErr
}
