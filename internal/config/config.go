package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/readkit/pkg/logger"
)

// Prefix is prepended to every variable name.
const Prefix = "READKIT_"

// Config is the readkitd process configuration.
type Config struct {
	Service   string        `env:"SERVICE" envDefault:"readkitd"`
	LogLevel  slog.Level    `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat logger.Format `env:"LOG_FORMAT" envDefault:"json"`

	HTTP HTTP `envPrefix:"HTTP_"`

	// CacheSize is the syllable memo capacity; 0 disables it.
	CacheSize        int `env:"CACHE_SIZE" envDefault:"4096"`
	PatternWorkers   int `env:"PATTERN_WORKERS" envDefault:"1"`
	BatchConcurrency int `env:"BATCH_CONCURRENCY" envDefault:"8"`

	MaxBodyBytes int64 `env:"MAX_BODY_BYTES" envDefault:"1048576"`
	MaxBatch     int   `env:"MAX_BATCH" envDefault:"256"`

	// TerminatorsFile optionally points to a YAML terminator set.
	TerminatorsFile string `env:"TERMINATORS_FILE"`

	RateLimit RateLimit `envPrefix:"RATE_"`

	// TrustProxy takes client IPs from X-Forwarded-For and X-Real-IP.
	TrustProxy bool `env:"TRUST_PROXY" envDefault:"false"`
}

// RateLimit configures per-client throttling of /v1 requests.
type RateLimit struct {
	// Requests per Interval; 0 disables limiting.
	Requests int           `env:"REQUESTS" envDefault:"0"`
	Burst    int           `env:"BURST" envDefault:"0"`
	Interval time.Duration `env:"INTERVAL" envDefault:"1s"`
}

// Enabled reports whether rate limiting is on.
func (r RateLimit) Enabled() bool { return r.Requests > 0 }

// Capacity is Burst, or Requests when no burst is set.
func (r RateLimit) Capacity() int {
	if r.Burst > 0 {
		return r.Burst
	}
	return r.Requests
}

// HTTP holds listener settings.
type HTTP struct {
	Addr              string        `env:"ADDR" envDefault:":8080"`
	ReadTimeout       time.Duration `env:"READ_TIMEOUT" envDefault:"15s"`
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" envDefault:"5s"`
	WriteTimeout      time.Duration `env:"WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout       time.Duration `env:"IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

var defaultEnvLoaded sync.Once

// Load builds a Config from the process environment.
//
// With no files, a .env in the working directory is loaded into the process
// environment once, if present. Explicit files must exist; their values sit
// below the process environment and are not exported to it.
func Load(files ...string) (Config, error) {
	environ := env.ToMap(os.Environ())

	if len(files) == 0 {
		defaultEnvLoaded.Do(func() {
			// A missing .env is fine.
			_ = godotenv.Load()
		})
		environ = env.ToMap(os.Environ())
	} else {
		fromFiles, err := godotenv.Read(files...)
		if err != nil {
			return Config{}, errors.Join(ErrParsingConfig, err)
		}
		for k, v := range environ {
			fromFiles[k] = v
		}
		environ = fromFiles
	}

	cfg, err := env.ParseAsWithOptions[Config](env.Options{
		Prefix:      Prefix,
		Environment: environ,
	})
	if err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// MustLoad is like Load but panics on error.
func MustLoad(files ...string) Config {
	cfg, err := Load(files...)
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}
	return cfg
}

// Validate reports every out-of-range field, joined with ErrInvalidConfig.
func (c Config) Validate() error {
	var errs []error
	if _, err := logger.ParseFormat(string(c.LogFormat)); err != nil {
		errs = append(errs, err)
	}
	if c.HTTP.Addr == "" {
		errs = append(errs, errors.New("http addr is empty"))
	}
	if c.CacheSize < 0 {
		errs = append(errs, fmt.Errorf("cache size %d is negative", c.CacheSize))
	}
	if c.PatternWorkers < 1 {
		errs = append(errs, fmt.Errorf("pattern workers %d < 1", c.PatternWorkers))
	}
	if c.BatchConcurrency < 1 {
		errs = append(errs, fmt.Errorf("batch concurrency %d < 1", c.BatchConcurrency))
	}
	if c.MaxBodyBytes < 1 {
		errs = append(errs, fmt.Errorf("max body bytes %d < 1", c.MaxBodyBytes))
	}
	if c.MaxBatch < 1 {
		errs = append(errs, fmt.Errorf("max batch %d < 1", c.MaxBatch))
	}
	if c.RateLimit.Requests < 0 || c.RateLimit.Burst < 0 {
		errs = append(errs, errors.New("rate limit requests and burst must be >= 0"))
	}
	if c.RateLimit.Enabled() && c.RateLimit.Interval <= 0 {
		errs = append(errs, fmt.Errorf("rate limit interval %s must be > 0", c.RateLimit.Interval))
	}
	for _, d := range []time.Duration{c.HTTP.ReadTimeout, c.HTTP.ReadHeaderTimeout, c.HTTP.WriteTimeout, c.HTTP.IdleTimeout, c.HTTP.ShutdownTimeout} {
		if d <= 0 {
			errs = append(errs, fmt.Errorf("http timeout %s must be > 0", d))
		}
	}
	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidConfig}, errs...)...)
	}
	return nil
}
