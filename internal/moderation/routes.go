package moderation

import (
	"net/http"

	"github.com/PriceIQ/PriceIQ-Backend/internal/middleware"
	"github.com/go-chi/chi/v5"
)

func SetupRoutes() http.Handler {
	r := chi.NewRouter()

	// All moderation routes require the moderator token
	r.Group(func(r chi.Router) {
		r.Use(middleware.ModeratorMiddleware)

		r.Get("/queue", QueueHandler)
		r.Post("/submissions/{id}/approve", ApproveHandler)
		r.Post("/submissions/{id}/reject", RejectHandler)
	})

	return r
}
