package seeds

import (
	"fmt"
	"os"

	"github.com/PriceIQ/PriceIQ-Backend/internal/catalog"
	"github.com/PriceIQ/PriceIQ-Backend/internal/db"
	"github.com/goccy/go-yaml"
	"github.com/lib/pq"
)

// Fixtures is the YAML shape of the reference-data seed file.
type Fixtures struct {
	Skills    []SkillFixture    `yaml:"skills"`
	Locations []LocationFixture `yaml:"locations"`
}

type SkillFixture struct {
	Name     string   `yaml:"name"`
	Category string   `yaml:"category"`
	Aliases  []string `yaml:"aliases"`
}

type LocationFixture struct {
	City    string `yaml:"city"`
	Country string `yaml:"country"`
}

// Load reads a fixtures YAML file.
func Load(path string) (Fixtures, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Fixtures{}, err
	}
	var f Fixtures
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return Fixtures{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return f, nil
}

// SeedAll upserts the fixtures into the catalog. Existing rows are left
// alone; seeding is safe to re-run.
func SeedAll(f Fixtures) error {
	if err := SeedSkills(f.Skills); err != nil {
		return err
	}
	if err := SeedLocations(f.Locations); err != nil {
		return err
	}
	return nil
}

func SeedSkills(fixtures []SkillFixture) error {
	for _, f := range fixtures {
		skill := catalog.Skill{
			Name:     f.Name,
			Category: f.Category,
			Aliases:  pq.StringArray(f.Aliases),
		}
		if err := db.DB.Where("name = ?", f.Name).FirstOrCreate(&skill).Error; err != nil {
			return fmt.Errorf("seed skill %q: %w", f.Name, err)
		}
	}
	return nil
}

func SeedLocations(fixtures []LocationFixture) error {
	for _, f := range fixtures {
		location := catalog.Location{
			City:    f.City,
			Country: f.Country,
		}
		if err := db.DB.Where("city = ? AND country = ?", f.City, f.Country).
			FirstOrCreate(&location).Error; err != nil {
			return fmt.Errorf("seed location %q: %w", f.City, err)
		}
	}
	return nil
}
