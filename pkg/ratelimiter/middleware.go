package ratelimiter

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/summitair/website/pkg/clientip"
)

// KeyFunc derives the bucket key for a request.
type KeyFunc func(r *http.Request) string

// ByClientIP keys buckets on the originating client IP.
func ByClientIP(r *http.Request) string {
	return clientip.GetIP(r)
}

// Middleware enforces the bucket per request key and sets standard
// X-RateLimit headers. Rejected requests get 429 with Retry-After. Store
// failures fail open: the request proceeds and the error is logged.
func Middleware(bucket *Bucket, keyFn KeyFunc, log *slog.Logger) func(http.Handler) http.Handler {
	if keyFn == nil {
		keyFn = ByClientIP
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res, err := bucket.Allow(r.Context(), keyFn(r))
			if err != nil {
				if log != nil {
					log.ErrorContext(r.Context(), "rate limit check failed", slog.Any("error", err))
				}
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.FormatInt(res.Limit, 10))
			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(res.Remaining, 10))

			if !res.Allowed {
				retryAfter := int64(math.Ceil(res.RetryAfter.Seconds()))
				if retryAfter < 1 {
					retryAfter = 1
				}
				w.Header().Set("Retry-After", strconv.FormatInt(retryAfter, 10))
				http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
