package middleware

import (
	"context"
	"net/http"
	"os"
	"strings"

	"github.com/PriceIQ/PriceIQ-Backend/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

var allowed = map[string]struct{}{
	"http://localhost:3000":      {},
	"http://localhost:5173":      {},
	"https://priceiq.vercel.app": {},
	"https://priceiq.com":        {},
	"https://www.priceiq.com":    {},
}

func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		// Echo the origin back only if it’s on our allow-list
		if _, ok := allowed[origin]; ok {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin") // important for caches
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods",
				"GET, POST, PUT, PATCH, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers",
				"Content-Type, Authorization, X-Moderator")
		}

		w.Header().Set("Access-Control-Expose-Headers", "Retry-After, Cache-Control")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// OriginMiddleware resolves the caller's network origin once and stores it in
// the request context so handlers and the fraud scorer agree on the value.
func OriginMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), utils.ContextOriginKey, utils.ClientOrigin(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ModeratorMiddleware gates moderation routes behind a shared bearer token.
// The token is never stored in plaintext: MODERATION_TOKEN_HASH holds a
// bcrypt hash and the presented token is compared against it.
func ModeratorMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hash := os.Getenv("MODERATION_TOKEN_HASH")
		if hash == "" {
			http.Error(w, "server misconfigured", http.StatusInternalServerError)
			return
		}

		auth := r.Header.Get("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			http.Error(w, "Missing bearer token", http.StatusUnauthorized)
			return
		}
		token := strings.TrimPrefix(auth, "Bearer ")

		if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(token)); err != nil {
			http.Error(w, "Invalid moderation token", http.StatusUnauthorized)
			return
		}

		moderator := r.Header.Get("X-Moderator")
		if moderator == "" {
			moderator = "admin"
		}
		ctx := context.WithValue(r.Context(), utils.ContextModeratorKey, moderator)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
