package rates

import (
	"log"

	"github.com/PriceIQ/PriceIQ-Backend/internal/catalog"
	"github.com/PriceIQ/PriceIQ-Backend/internal/db"
)

func Init() {
	// Ensure the rates schema exists first
	if err := db.EnsureSchema(db.DB, "rates"); err != nil {
		log.Fatal("Failed to create rates schema: ", err)
	}

	if err := db.DB.AutoMigrate(&RateSubmission{}); err != nil {
		log.Fatal("Failed to auto-migrate tables", err)
	}

	// Composite index backing every aggregate read path.
	if err := db.DB.Exec(`
		CREATE INDEX IF NOT EXISTS idx_submissions_approved_slice
		ON rates.submissions (skill_id, location_id, is_approved);
	`).Error; err != nil {
		log.Fatal("Failed to create idx_submissions_approved_slice: ", err)
	}

	Cfg = LoadFromEnv()
	if err := Cfg.Validate(); err != nil {
		log.Fatal("Invalid rates configuration: ", err)
	}
	DataStore = GormStore{}
	Refs = catalog.Store{}

	log.Println("[rates] module initialized")
}
