package moderation

import (
	"log"

	"github.com/PriceIQ/PriceIQ-Backend/internal/db"
)

func Init() {
	// Ensure the moderation schema exists
	if err := db.EnsureSchema(db.DB, "moderation"); err != nil {
		log.Fatal("Failed to ensure schema moderation: ", err)
	}

	// uuid_generate_v4 backs the log table's default primary key
	if err := db.DB.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		log.Fatal("Failed to enable uuid-ossp extension:", err)
	}

	if err := db.DB.AutoMigrate(&ModerationLog{}); err != nil {
		log.Fatal("Failed to auto-migrate tables", err)
	}
}
