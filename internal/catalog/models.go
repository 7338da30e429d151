package catalog

import (
	"time"

	"github.com/lib/pq"
)

// Skill is immutable reference data; unique by name. Aliases cover common
// community spellings ("ReactJS", "react.js") so submissions resolve without
// an exact match.
type Skill struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"uniqueIndex;not null" json:"name"`
	Category  string         `json:"category"`
	Aliases   pq.StringArray `gorm:"type:text[]" json:"aliases,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// Location is immutable reference data. The row with City = "Remote" is the
// sentinel for location-agnostic work.
type Location struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	City      string    `gorm:"not null;index:idx_city_country,unique" json:"city"`
	Country   string    `gorm:"index:idx_city_country,unique" json:"country"`
	CreatedAt time.Time `json:"created_at"`
}

func (Skill) TableName() string {
	return "catalog.skills"
}

func (Location) TableName() string {
	return "catalog.locations"
}

const RemoteCity = "Remote"

// IsRemote reports whether this location is the remote sentinel.
func (l Location) IsRemote() bool {
	return l.City == RemoteCity
}

// Label renders a location the way the submission form shows it.
func (l Location) Label() string {
	if l.IsRemote() || l.Country == "" {
		return l.City
	}
	return l.City + ", " + l.Country
}
