package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/PriceIQ/PriceIQ-Backend/internal/catalog"
	"github.com/PriceIQ/PriceIQ-Backend/internal/db"
	"github.com/PriceIQ/PriceIQ-Backend/internal/metrics"
	"github.com/PriceIQ/PriceIQ-Backend/internal/middleware"
	"github.com/PriceIQ/PriceIQ-Backend/internal/moderation"
	"github.com/PriceIQ/PriceIQ-Backend/internal/rates"
	"github.com/PriceIQ/PriceIQ-Backend/internal/scrape"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
)

func RootHandler(w http.ResponseWriter, r *http.Request) {
	response := "Server is up!"
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, response)
}

func main() {
	_ = godotenv.Load(".env.local")
	db.Connect()

	port := os.Getenv("PORT")
	if port == "" {
		port = "5050"
	}

	catalog.Init()
	rates.Init()
	moderation.Init()

	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware)
	r.Get("/", RootHandler)
	r.Handle("/metrics", metrics.Handler())

	r.Mount("/catalog", catalog.SetupRoutes())
	r.Mount("/rates", rates.SetupRoutes())
	r.Mount("/moderation", moderation.SetupRoutes())
	r.Mount("/cron", scrape.SetupRoutes())

	fmt.Println("Server listening on port :" + port + "...")

	http.ListenAndServe("0.0.0.0:"+port, r)
}
