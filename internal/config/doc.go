// Package config loads the readkitd configuration from READKIT_* environment
// variables, optionally seeded from .env files.
//
//	cfg, err := config.Load()
//	if err != nil {
//		// errors.Is(err, config.ErrParsingConfig) or config.ErrInvalidConfig
//	}
//
// Variables (defaults in parentheses):
//
//	READKIT_SERVICE (readkitd), READKIT_LOG_LEVEL (info), READKIT_LOG_FORMAT (json)
//	READKIT_HTTP_ADDR (:8080), READKIT_HTTP_READ_TIMEOUT (15s),
//	READKIT_HTTP_READ_HEADER_TIMEOUT (5s), READKIT_HTTP_WRITE_TIMEOUT (30s),
//	READKIT_HTTP_IDLE_TIMEOUT (120s), READKIT_HTTP_SHUTDOWN_TIMEOUT (10s)
//	READKIT_CACHE_SIZE (4096), READKIT_PATTERN_WORKERS (1),
//	READKIT_BATCH_CONCURRENCY (8), READKIT_MAX_BODY_BYTES (1048576),
//	READKIT_MAX_BATCH (256), READKIT_TERMINATORS_FILE
//	READKIT_RATE_REQUESTS (0, disabled), READKIT_RATE_BURST (requests),
//	READKIT_RATE_INTERVAL (1s), READKIT_TRUST_PROXY (false)
package config
