package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func SetupRoutes() http.Handler {
	r := chi.NewRouter()

	// Public read-only reference data
	r.Get("/skills", SkillsHandler)
	r.Get("/locations", LocationsHandler)

	return r
}
