package ratelimit

import (
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

// Middleware limits the request rate per client address, using a token
// bucket refilled every interval.
func Middleware(funcs ...OptionFunc) func(http.Handler) http.Handler {
	opts := NewOptions(funcs...)

	limiters := expirable.NewLRU[string, *rate.Limiter](opts.CacheSize, nil, opts.CacheTTL)

	getLimiter := func(remoteAddr string) *rate.Limiter {
		limiter, exists := limiters.Get(remoteAddr)
		if !exists {
			limiter = rate.NewLimiter(rate.Every(opts.Interval), opts.MaxBurst)
			limiters.Add(remoteAddr, limiter)
		}

		return limiter
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			remoteAddr := clientAddr(r, opts.TrustHeaders)
			limiter := getLimiter(remoteAddr)

			reservation := limiter.Reserve()
			if !reservation.OK() {
				opts.OnLimited.ServeHTTP(w, r)
				return
			}

			if delay := reservation.Delay(); delay > 0 {
				reservation.Cancel()

				slog.WarnContext(r.Context(), "rate limit exceeded", slog.String("remoteAddr", remoteAddr))

				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(delay.Seconds()))))
				opts.OnLimited.ServeHTTP(w, r)
				return
			}

			tokens := limiter.Tokens()

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(opts.MaxBurst))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(max(int(tokens), 0)))

			reset := time.Now()
			if missing := float64(opts.MaxBurst) - tokens; missing > 0 {
				reset = reset.Add(time.Duration(missing * float64(opts.Interval)))
			}

			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(reset.Unix(), 10))

			next.ServeHTTP(w, r)
		})
	}
}

func clientAddr(r *http.Request, trustHeaders bool) string {
	if trustHeaders {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			first, _, _ := strings.Cut(xff, ",")
			return strings.TrimSpace(first)
		}

		if xri := r.Header.Get("X-Real-Ip"); xri != "" {
			return xri
		}
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return ip
}
