package catalog

import (
	"errors"
	"strings"

	"github.com/PriceIQ/PriceIQ-Backend/internal/db"
	"gorm.io/gorm"
)

var (
	ErrSkillNotFound    = errors.New("skill not found")
	ErrLocationNotFound = errors.New("location not found")
)

// Store resolves reference rows for other packages. Lookups by name are
// case-insensitive; skills also match their alias list.
type Store struct{}

func (Store) SkillByID(id uint) (Skill, error) {
	var skill Skill
	if err := db.DB.First(&skill, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Skill{}, ErrSkillNotFound
		}
		return Skill{}, err
	}
	return skill, nil
}

func (Store) SkillByName(name string) (Skill, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return Skill{}, ErrSkillNotFound
	}

	var skill Skill
	err := db.DB.
		Where("LOWER(name) = ? OR EXISTS (SELECT 1 FROM unnest(aliases) AS alias WHERE LOWER(alias) = ?)", lower, lower).
		First(&skill).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Skill{}, ErrSkillNotFound
		}
		return Skill{}, err
	}
	return skill, nil
}

func (Store) LocationByID(id uint) (Location, error) {
	var location Location
	if err := db.DB.First(&location, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Location{}, ErrLocationNotFound
		}
		return Location{}, err
	}
	return location, nil
}

// LocationByName matches the "City, Country" label used on the submit form.
// Any name containing "remote" resolves to the remote sentinel row.
func (Store) LocationByName(name string) (Location, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return Location{}, ErrLocationNotFound
	}

	var location Location
	if strings.Contains(lower, "remote") {
		if err := db.DB.First(&location, "city = ?", RemoteCity).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return Location{}, ErrLocationNotFound
			}
			return Location{}, err
		}
		return location, nil
	}

	err := db.DB.
		Where("LOWER(city || ', ' || country) = ? OR LOWER(city) = ?", lower, lower).
		First(&location).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Location{}, ErrLocationNotFound
		}
		return Location{}, err
	}
	return location, nil
}
