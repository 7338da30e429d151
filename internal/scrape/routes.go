package scrape

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

var errNoSource = errors.New("no html in request and SCRAPE_SOURCE_URL unset")

func SetupRoutes() http.Handler {
	r := chi.NewRouter()

	// Bearer auth is checked in the handler itself (CRON_SECRET).
	r.Post("/scrape", CronHandler)

	return r
}
