package rates

import (
	"fmt"
	"math"
	"strings"

	"github.com/PriceIQ/PriceIQ-Backend/internal/catalog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ReferenceResolver is the slice of the catalog the validator needs.
// catalog.Store satisfies it; tests use an in-memory fake.
type ReferenceResolver interface {
	SkillByID(id uint) (catalog.Skill, error)
	SkillByName(name string) (catalog.Skill, error)
	LocationByID(id uint) (catalog.Location, error)
	LocationByName(name string) (catalog.Location, error)
}

// Candidate is a raw submission as it arrives from a form or the scraper.
// Skill and location may be given by id or by (case-insensitive) name.
type Candidate struct {
	UserID          *string `json:"user_id,omitempty"`
	SkillID         *uint   `json:"skill_id,omitempty"`
	SkillName       string  `json:"skill_name,omitempty"`
	LocationID      *uint   `json:"location_id,omitempty"`
	LocationName    string  `json:"location_name,omitempty"`
	HourlyRate      float64 `json:"hourly_rate"`
	YearsExperience *int    `json:"years_experience,omitempty"`
	Seniority       string  `json:"seniority"`
	ProjectType     string  `json:"project_type"`

	// Hidden form field. Humans never fill it; bots do.
	Honeypot string `json:"website_url_hp,omitempty"`
}

// Validated is a normalized submission that passed every check and is ready
// for fraud scoring.
type Validated struct {
	UserID          *string
	Skill           catalog.Skill
	Location        catalog.Location
	HourlyRate      float64
	YearsExperience *int
	Seniority       Seniority
	ProjectType     ProjectType
}

// Validator normalizes and sanity-checks candidates. It is a pure check: no
// side effects, no writes.
type Validator struct {
	Refs ReferenceResolver
	Cfg  Config
}

var titleCaser = cases.Title(language.English)

// Validate runs the checks in a fixed order so the first failure is the one
// reported: reference resolution, rate bounds, experience bounds, enum
// membership, honeypot.
func (v Validator) Validate(c Candidate) (Validated, error) {
	skill, err := v.resolveSkill(c)
	if err != nil {
		return Validated{}, err
	}

	location, err := v.resolveLocation(c)
	if err != nil {
		return Validated{}, err
	}

	if math.IsNaN(c.HourlyRate) || math.IsInf(c.HourlyRate, 0) {
		return Validated{}, fmt.Errorf("%w: hourly_rate is not a finite number", ErrOutOfRange)
	}
	if c.HourlyRate < v.Cfg.MinRate || c.HourlyRate > v.Cfg.MaxRate {
		return Validated{}, fmt.Errorf("%w: hourly_rate %.2f outside [%v, %v]",
			ErrOutOfRange, c.HourlyRate, v.Cfg.MinRate, v.Cfg.MaxRate)
	}

	if c.YearsExperience != nil {
		if *c.YearsExperience < 0 || *c.YearsExperience > v.Cfg.MaxYearsExperience {
			return Validated{}, fmt.Errorf("%w: years_experience %d outside [0, %d]",
				ErrOutOfRange, *c.YearsExperience, v.Cfg.MaxYearsExperience)
		}
	}

	seniority := Seniority(titleCaser.String(strings.ToLower(strings.TrimSpace(c.Seniority))))
	if !ValidSeniority(seniority) {
		return Validated{}, fmt.Errorf("%w: seniority %q", ErrInvalidEnum, c.Seniority)
	}

	projectType := ProjectType(titleCaser.String(strings.ToLower(strings.TrimSpace(c.ProjectType))))
	if !ValidProjectType(projectType) {
		return Validated{}, fmt.Errorf("%w: project_type %q", ErrInvalidEnum, c.ProjectType)
	}

	if strings.TrimSpace(c.Honeypot) != "" {
		return Validated{}, errHoneypot
	}

	return Validated{
		UserID:          c.UserID,
		Skill:           skill,
		Location:        location,
		HourlyRate:      c.HourlyRate,
		YearsExperience: c.YearsExperience,
		Seniority:       seniority,
		ProjectType:     projectType,
	}, nil
}

func (v Validator) resolveSkill(c Candidate) (catalog.Skill, error) {
	if c.SkillID != nil {
		skill, err := v.Refs.SkillByID(*c.SkillID)
		if err != nil {
			return catalog.Skill{}, fmt.Errorf("%w: skill id %d", ErrReferenceNotFound, *c.SkillID)
		}
		return skill, nil
	}
	skill, err := v.Refs.SkillByName(c.SkillName)
	if err != nil {
		return catalog.Skill{}, fmt.Errorf("%w: skill %q", ErrReferenceNotFound, c.SkillName)
	}
	return skill, nil
}

func (v Validator) resolveLocation(c Candidate) (catalog.Location, error) {
	if c.LocationID != nil {
		location, err := v.Refs.LocationByID(*c.LocationID)
		if err != nil {
			return catalog.Location{}, fmt.Errorf("%w: location id %d", ErrReferenceNotFound, *c.LocationID)
		}
		return location, nil
	}
	location, err := v.Refs.LocationByName(c.LocationName)
	if err != nil {
		return catalog.Location{}, fmt.Errorf("%w: location %q", ErrReferenceNotFound, c.LocationName)
	}
	return location, nil
}
