package catalog

import (
	"log"

	"github.com/PriceIQ/PriceIQ-Backend/internal/db"
)

func Init() {
	// Ensure the catalog schema exists first
	if err := db.EnsureSchema(db.DB, "catalog"); err != nil {
		log.Fatal("Failed to create catalog schema: ", err)
	}

	if err := db.DB.AutoMigrate(&Skill{}, &Location{}); err != nil {
		log.Fatal("Failed to auto-migrate tables", err)
	}
}
