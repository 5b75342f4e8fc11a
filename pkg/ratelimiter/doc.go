// Package ratelimiter implements token bucket rate limiting with an
// in-memory store and HTTP middleware.
//
// A bucket holds up to Capacity tokens and regains RefillRate tokens every
// RefillInterval. Each admitted request takes one token; a request that does
// not fit is rejected without draining the bucket further.
//
//	store := ratelimiter.NewMemoryStore()
//	store.StartPruning(ctx, 5*time.Minute, time.Hour)
//
//	limiter, err := ratelimiter.NewBucket(store, cfg)
//	if err != nil {
//		return err
//	}
//	r.With(ratelimiter.Middleware(limiter, ratelimiter.ClientIP)).Post("/check", h)
//
// The middleware sets X-RateLimit-Limit, X-RateLimit-Remaining and
// X-RateLimit-Reset on every limited route, and Retry-After (whole seconds,
// rounded up) on rejections.
package ratelimiter
