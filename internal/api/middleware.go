package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/readkit/pkg/logger"
)

// requestLogger logs one record per request after it completes. Health
// probes are logged at debug level.
func requestLogger(log *slog.Logger, trustProxy bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			level := slog.LevelInfo
			switch {
			case status >= http.StatusInternalServerError:
				level = slog.LevelError
			case status >= http.StatusBadRequest:
				level = slog.LevelWarn
			case isHealthPath(r):
				level = slog.LevelDebug
			}
			log.LogAttrs(r.Context(), level, "request",
				logger.HTTP(r.Method, routePattern(r), status),
				slog.Int("bytes", ww.BytesWritten()),
				slog.String("client_ip", clientIP(r, trustProxy)),
				logger.Duration(time.Since(start)),
			)
		})
	}
}

// routePattern prefers the matched chi pattern so logs group by route.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return r.URL.Path
}

func isHealthPath(r *http.Request) bool {
	p := r.URL.Path
	return p == "/health/live" || p == "/health/ready"
}

// recoverer turns a handler panic into the internal_error envelope.
// http.ErrAbortHandler is re-panicked so net/http can abort the response.
func recoverer(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}
				log.DebugContext(r.Context(), "panic stack", slog.String("stack", string(debug.Stack())))
				respondError(w, r, log, fmt.Errorf("recovered panic: %v", rec))
			}()
			next.ServeHTTP(w, r)
		})
	}
}
