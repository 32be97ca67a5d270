package api

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/dmitrymomot/readkit/internal/ratelimit"
)

// rateLimit rejects requests from clients whose bucket is empty with 429.
func (a *API) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := clientIP(r, a.trustProxy)
		if key == "" {
			key = "unknown"
		}
		res := a.limiter.Allow(key)
		setRateLimitHeaders(w, res)
		if !res.Allowed {
			retry := res.RetryAfter(time.Now())
			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(retry.Seconds()))))
			respondError(w, r, a.logger, ErrRateLimited)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func setRateLimitHeaders(w http.ResponseWriter, res ratelimit.Result) {
	h := w.Header()
	h.Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
	h.Set("X-RateLimit-Remaining", strconv.Itoa(max(0, res.Remaining)))
	h.Set("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))
}
