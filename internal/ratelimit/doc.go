// Package ratelimit implements an in-memory token bucket limiter keyed by an
// arbitrary string, used by readkitd to bound per-client request rates.
//
//	l, err := ratelimit.New(ratelimit.Config{
//		Capacity:       20,
//		RefillRate:     10,
//		RefillInterval: time.Second,
//	})
//	go l.Run(ctx, time.Minute) // prune idle buckets
//	if res := l.Allow(clientIP); !res.Allowed {
//		// 429, retry after res.RetryAfter(time.Now())
//	}
package ratelimit
