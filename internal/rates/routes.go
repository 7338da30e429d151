package rates

import (
	"net/http"
	"time"

	"github.com/PriceIQ/PriceIQ-Backend/internal/middleware"
	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"
)

func SetupRoutes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.OriginMiddleware)

	// Public aggregate reads
	r.Get("/market", MarketRatesHandler)
	r.Get("/distribution", DistributionHandler)
	r.Get("/trend", TrendHandler)
	r.Get("/geo", GeoRankingHandler)

	// Submissions get a per-origin burst throttle on top of the DB-backed
	// fraud window.
	r.Group(func(r chi.Router) {
		r.Use(middleware.ThrottleMiddleware(rate.Every(time.Minute), 5))
		r.Post("/submissions", SubmitHandler)
	})

	return r
}
