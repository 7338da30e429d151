package rates

import (
	"time"

	"github.com/PriceIQ/PriceIQ-Backend/internal/catalog"
)

// Seniority and ProjectType use the title-cased values the submission form
// sends ("Junior", "Hourly").
type Seniority string

const (
	SeniorityJunior Seniority = "Junior"
	SeniorityMid    Seniority = "Mid"
	SenioritySenior Seniority = "Senior"
	SeniorityExpert Seniority = "Expert"
)

type ProjectType string

const (
	ProjectHourly ProjectType = "Hourly"
	ProjectFixed  ProjectType = "Fixed"
)

func ValidSeniority(s Seniority) bool {
	switch s {
	case SeniorityJunior, SeniorityMid, SenioritySenior, SeniorityExpert:
		return true
	}
	return false
}

func ValidProjectType(p ProjectType) bool {
	switch p {
	case ProjectHourly, ProjectFixed:
		return true
	}
	return false
}

// RateSubmission is one community-reported rate observation. Core fields are
// immutable after insert; moderation only flips the approval flags or deletes
// the row. Only rows with IsApproved = true are visible to any aggregate.
type RateSubmission struct {
	ID              string      `gorm:"primaryKey" json:"id"`
	UserID          *string     `json:"user_id,omitempty"` // nil for anonymous submitters
	SkillID         uint        `gorm:"not null;index" json:"skill_id"`
	LocationID      uint        `gorm:"not null;index" json:"location_id"`
	HourlyRate      float64     `gorm:"not null" json:"hourly_rate"`
	SeniorityLevel  Seniority   `gorm:"not null" json:"seniority_level"`
	ProjectType     ProjectType `gorm:"not null" json:"project_type"`
	YearsExperience *int        `json:"years_experience,omitempty"`

	IsApproved bool    `gorm:"default:false;index" json:"is_approved"`
	IsVerified bool    `gorm:"default:false" json:"is_verified"`
	FraudScore float64 `gorm:"default:0" json:"fraud_score"`

	// Network origin of the submitter, used only for the rate-limit window.
	Origin string `gorm:"index" json:"-"`

	CreatedAt  time.Time  `json:"created_at"`
	ApprovedAt *time.Time `json:"approved_at,omitempty"`
	ApprovedBy *string    `json:"approved_by,omitempty"`

	Skill    catalog.Skill    `gorm:"foreignKey:SkillID" json:"skill,omitempty"`
	Location catalog.Location `gorm:"foreignKey:LocationID" json:"location,omitempty"`
}

func (RateSubmission) TableName() string {
	return "rates.submissions"
}

// MarketRates is the percentile summary for a skill/location slice. A zero
// value with SampleCount 0 means "no data", never "rate is $0".
type MarketRates struct {
	P25         float64 `json:"p25"`
	P50         float64 `json:"p50"`
	P75         float64 `json:"p75"`
	P90         float64 `json:"p90"`
	SampleCount int     `json:"sample_count"`
}

// DistributionBucket is one fixed-width histogram bar.
type DistributionBucket struct {
	Floor     float64 `json:"bucket_floor"`
	Ceiling   float64 `json:"bucket_ceiling"`
	Frequency int     `json:"frequency"`
}

// TrendPoint is the mean rate for one calendar month (UTC). Months with no
// submissions are omitted, not zero-filled.
type TrendPoint struct {
	Period      string  `json:"period"` // YYYY-MM
	AvgRate     float64 `json:"avg_rate"`
	SampleCount int     `json:"sample_count"`
}

// GeoRatePoint is the mean rate for one location.
type GeoRatePoint struct {
	Location    string  `json:"location"`
	AvgRate     float64 `json:"avg_rate"`
	SampleCount int     `json:"sample_count"`
}

// Observation is the slim read-side row the aggregation engine works on:
// everything it needs and nothing the submitter provided that it doesn't.
type Observation struct {
	Rate         float64
	CreatedAt    time.Time
	LocationID   uint
	LocationName string
}
