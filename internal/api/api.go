package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/readkit/internal/ratelimit"
	"github.com/dmitrymomot/readkit/pkg/logger"
	"github.com/dmitrymomot/readkit/pkg/readability"
	"github.com/dmitrymomot/readkit/pkg/sentencizer"
	"github.com/dmitrymomot/readkit/pkg/syllable"
	"github.com/dmitrymomot/readkit/pkg/tokenizer"
)

const (
	defaultMaxBodyBytes = 1 << 20
	defaultMaxBatch     = 256
)

// ReadinessCheck reports whether a dependency is ready to serve.
type ReadinessCheck func(ctx context.Context) error

// API serves the readkit metrics over JSON.
type API struct {
	estimator   *syllable.Estimator
	sentencizer *sentencizer.Sentencizer
	analyzer    *readability.Analyzer
	tokenize    []tokenizer.Option
	maxBody     int64
	maxBatch    int
	logger      *slog.Logger
	checks      []ReadinessCheck
	limiter     *ratelimit.Limiter
	trustProxy  bool
}

// Option configures an API.
type Option func(*API)

func WithEstimator(e *syllable.Estimator) Option {
	if e == nil {
		panic("WithEstimator: nil estimator")
	}
	return func(a *API) { a.estimator = e }
}

func WithSentencizer(s *sentencizer.Sentencizer) Option {
	if s == nil {
		panic("WithSentencizer: nil sentencizer")
	}
	return func(a *API) { a.sentencizer = s }
}

func WithAnalyzer(an *readability.Analyzer) Option {
	if an == nil {
		panic("WithAnalyzer: nil analyzer")
	}
	return func(a *API) { a.analyzer = an }
}

// WithTokenizerOptions sets the options used for token spans.
func WithTokenizerOptions(opts ...tokenizer.Option) Option {
	return func(a *API) { a.tokenize = append(a.tokenize, opts...) }
}

// WithMaxBodyBytes bounds request bodies. Defaults to 1 MiB.
func WithMaxBodyBytes(n int64) Option {
	if n <= 0 {
		panic("WithMaxBodyBytes: n must be > 0")
	}
	return func(a *API) { a.maxBody = n }
}

// WithMaxBatch bounds the number of words or texts in one request.
func WithMaxBatch(n int) Option {
	if n <= 0 {
		panic("WithMaxBatch: n must be > 0")
	}
	return func(a *API) { a.maxBatch = n }
}

func WithLogger(l *slog.Logger) Option {
	return func(a *API) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithRateLimiter throttles /v1 requests per client IP.
func WithRateLimiter(l *ratelimit.Limiter) Option {
	if l == nil {
		panic("WithRateLimiter: nil limiter")
	}
	return func(a *API) { a.limiter = l }
}

// WithTrustedProxy makes client IPs come from X-Forwarded-For and
// X-Real-IP. Enable only behind a proxy that overwrites them.
func WithTrustedProxy() Option {
	return func(a *API) { a.trustProxy = true }
}

// WithReadinessCheck adds a check run by /health/ready.
func WithReadinessCheck(c ReadinessCheck) Option {
	if c == nil {
		panic("WithReadinessCheck: nil check")
	}
	return func(a *API) { a.checks = append(a.checks, c) }
}

// New returns an API. Components not supplied are built with their defaults.
func New(opts ...Option) *API {
	a := &API{
		maxBody:  defaultMaxBodyBytes,
		maxBatch: defaultMaxBatch,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = logger.Discard()
	}
	if a.estimator == nil {
		a.estimator = syllable.New()
	}
	if a.sentencizer == nil {
		a.sentencizer = sentencizer.New()
	}
	if a.analyzer == nil {
		a.analyzer = readability.New(
			readability.WithEstimator(a.estimator),
			readability.WithMaxDocuments(a.maxBatch),
		)
	}
	return a
}

// Handler returns the routed handler with request IDs, request logging and
// panic recovery installed.
func (a *API) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(requestLogger(a.logger, a.trustProxy))
	r.Use(recoverer(a.logger))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, a.logger, ErrNotFound.WithMessage(r.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, a.logger, ErrMethodNotAllowed.WithMessage(r.Method+" "+r.URL.Path))
	})

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", a.live)
		r.Get("/ready", a.ready)
	})

	r.Route("/v1", func(r chi.Router) {
		if a.limiter != nil {
			r.Use(a.rateLimit)
		}
		r.Post("/syllables", a.syllables)
		r.Post("/words", a.words)
		r.Post("/tokens", a.tokens)
		r.Post("/sentences", a.sentences)
		r.Post("/readability", a.readability)
		r.Post("/analyze", a.analyze)
	})

	return r
}
