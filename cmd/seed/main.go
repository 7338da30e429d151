package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/PriceIQ/PriceIQ-Backend/internal/catalog"
	"github.com/PriceIQ/PriceIQ-Backend/internal/db"
	"github.com/PriceIQ/PriceIQ-Backend/internal/moderation"
	"github.com/PriceIQ/PriceIQ-Backend/internal/rates"
	"github.com/PriceIQ/PriceIQ-Backend/internal/seeds"
	"github.com/joho/godotenv"
)

// CLI flags
var (
	fixturesPath = flag.String("fixtures", "", "Path to a fixtures YAML file (default: built-in launch catalog)")
	demoCount    = flag.Int("demo", 0, "Number of demo rate submissions to generate (0 = none)")
	dsn          = flag.String("dsn", os.Getenv("DATABASE_URL"), "Postgres DSN (default: env DATABASE_URL)")
	dryRun       = flag.Bool("dry-run", false, "Print the plan only; no DB writes")
)

func main() {
	_ = godotenv.Load(".env.local")
	flag.Parse()

	fixtures := seeds.Defaults()
	if *fixturesPath != "" {
		loaded, err := seeds.Load(*fixturesPath)
		if err != nil {
			log.Fatalf("❌ Fixtures error: %v", err)
		}
		fixtures = loaded
	}

	if *dryRun {
		fmt.Printf("Would seed %d skills, %d locations", len(fixtures.Skills), len(fixtures.Locations))
		if *demoCount > 0 {
			fmt.Printf(" and %d demo submissions", *demoCount)
		}
		fmt.Println(". No changes made.")
		return
	}

	db.Connect()
	catalog.Init()
	rates.Init()
	moderation.Init()

	if err := seeds.SeedAll(fixtures); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}
	log.Printf("✅ Seeded %d skills and %d locations", len(fixtures.Skills), len(fixtures.Locations))

	if *demoCount > 0 {
		if *dsn == "" {
			log.Fatal("❌ --dsn not provided and DATABASE_URL not set")
		}
		inserted, err := seedDemoSubmissions(*dsn, *demoCount)
		if err != nil {
			log.Fatalf("❌ Demo data failed: %v", err)
		}
		log.Printf("✅ Planted %d demo rate submissions", inserted)
	}
}
