package middleware

import (
	"net/http"
	"sync"

	"github.com/PriceIQ/PriceIQ-Backend/internal/utils"
	"golang.org/x/time/rate"
)

// ThrottleMiddleware applies a per-origin token bucket to a route. This is a
// per-process backstop against burst abuse; the fraud scorer's 24h window is
// computed from persisted submissions and stays correct across instances.
func ThrottleMiddleware(r rate.Limit, burst int) func(http.Handler) http.Handler {
	var mu sync.Mutex
	limiters := make(map[string]*rate.Limiter)

	limiterFor := func(origin string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		l, ok := limiters[origin]
		if !ok {
			l = rate.NewLimiter(r, burst)
			limiters[origin] = l
		}
		return l
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			origin, ok := utils.GetOriginFromContext(req.Context())
			if !ok {
				origin = utils.ClientOrigin(req)
			}

			if !limiterFor(origin).Allow() {
				w.Header().Set("Retry-After", "60")
				http.Error(w, "Too many submissions, please try again later", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, req)
		})
	}
}
