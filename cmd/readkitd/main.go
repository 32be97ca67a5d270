// Command readkitd serves readkit metrics over HTTP.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrymomot/readkit/internal/api"
	"github.com/dmitrymomot/readkit/internal/config"
	"github.com/dmitrymomot/readkit/internal/httpserver"
	"github.com/dmitrymomot/readkit/internal/ratelimit"
	"github.com/dmitrymomot/readkit/pkg/logger"
	"github.com/dmitrymomot/readkit/pkg/readability"
	"github.com/dmitrymomot/readkit/pkg/sentencizer"
	"github.com/dmitrymomot/readkit/pkg/syllable"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "readkitd:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(
		logger.WithLevel(cfg.LogLevel),
		logger.WithFormat(cfg.LogFormat),
		logger.WithService(cfg.Service),
		logger.WithContextExtractors(api.RequestIDExtractor),
	)
	logger.SetAsDefault(log)

	terms, err := loadTerminators(cfg.TerminatorsFile)
	if err != nil {
		return err
	}

	estOpts := []syllable.Option{
		syllable.WithPatternWorkers(cfg.PatternWorkers),
		syllable.WithBatchConcurrency(cfg.BatchConcurrency),
	}
	if cfg.CacheSize > 0 {
		estOpts = append(estOpts, syllable.WithCache(cfg.CacheSize))
	}
	estimator := syllable.New(estOpts...)

	analyzer := readability.New(
		readability.WithEstimator(estimator),
		readability.WithConcurrency(cfg.BatchConcurrency),
		readability.WithMaxDocuments(cfg.MaxBatch),
	)

	apiOpts := []api.Option{
		api.WithEstimator(estimator),
		api.WithSentencizer(sentencizer.New(sentencizer.WithTerminators(terms))),
		api.WithAnalyzer(analyzer),
		api.WithMaxBodyBytes(cfg.MaxBodyBytes),
		api.WithMaxBatch(cfg.MaxBatch),
		api.WithLogger(log.With(logger.Component("api"))),
		api.WithReadinessCheck(func(context.Context) error {
			if estimator.Estimate("readability") < 1 {
				return errors.New("syllable estimator returned no syllables")
			}
			return nil
		}),
	}
	if cfg.TrustProxy {
		apiOpts = append(apiOpts, api.WithTrustedProxy())
	}
	if cfg.RateLimit.Enabled() {
		limiter, err := ratelimit.New(ratelimit.Config{
			Capacity:       cfg.RateLimit.Capacity(),
			RefillRate:     cfg.RateLimit.Requests,
			RefillInterval: cfg.RateLimit.Interval,
		})
		if err != nil {
			return err
		}
		go limiter.Run(ctx, time.Minute)
		apiOpts = append(apiOpts, api.WithRateLimiter(limiter))
	}
	handler := api.New(apiOpts...).Handler()

	log.InfoContext(ctx, "readkitd starting",
		slog.Int("terminators", terms.Len()),
		slog.Int("cache_size", cfg.CacheSize),
		slog.Int("pattern_workers", cfg.PatternWorkers),
		slog.Bool("rate_limited", cfg.RateLimit.Enabled()),
	)

	srv := httpserver.New(
		httpserver.WithAddr(cfg.HTTP.Addr),
		httpserver.WithReadTimeout(cfg.HTTP.ReadTimeout),
		httpserver.WithReadHeaderTimeout(cfg.HTTP.ReadHeaderTimeout),
		httpserver.WithWriteTimeout(cfg.HTTP.WriteTimeout),
		httpserver.WithIdleTimeout(cfg.HTTP.IdleTimeout),
		httpserver.WithShutdownTimeout(cfg.HTTP.ShutdownTimeout),
		httpserver.WithLogger(log.With(logger.Component("httpserver"))),
	)
	return srv.Run(ctx, handler)
}

// loadTerminators returns the default set, or the set described by path.
func loadTerminators(path string) (*sentencizer.Terminators, error) {
	if path == "" {
		return sentencizer.DefaultTerminators(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open terminators file: %w", err)
	}
	defer f.Close()

	terms, err := sentencizer.LoadTerminators(f)
	if err != nil {
		return nil, fmt.Errorf("load terminators from %s: %w", path, err)
	}
	return terms, nil
}
