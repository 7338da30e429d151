package rates

import (
	"fmt"
	"time"

	"github.com/PriceIQ/PriceIQ-Backend/internal/db"
)

// SubmissionStore is the persistence contract the handlers depend on. The
// aggregate readers only ever see approved rows; writers insert unapproved
// rows. GormStore is the production implementation, tests use an in-memory
// fake.
type SubmissionStore interface {
	// ApprovedObservations returns approved submissions for a skill,
	// optionally narrowed to one location (nil means all locations).
	ApprovedObservations(skillID uint, locationID *uint) ([]Observation, error)

	// CountRecentFromOrigin counts all submissions (approved or not) from
	// one network origin since the given time.
	CountRecentFromOrigin(origin string, since time.Time) (int64, error)

	Insert(sub *RateSubmission) error
}

type GormStore struct{}

func (GormStore) ApprovedObservations(skillID uint, locationID *uint) ([]Observation, error) {
	query := db.DB.Preload("Location").
		Where("skill_id = ? AND is_approved = ?", skillID, true)
	if locationID != nil {
		query = query.Where("location_id = ?", *locationID)
	}

	var subs []RateSubmission
	if err := query.Order("created_at").Find(&subs).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	obs := make([]Observation, len(subs))
	for i, s := range subs {
		obs[i] = Observation{
			Rate:         s.HourlyRate,
			CreatedAt:    s.CreatedAt,
			LocationID:   s.LocationID,
			LocationName: s.Location.Label(),
		}
	}
	return obs, nil
}

func (GormStore) CountRecentFromOrigin(origin string, since time.Time) (int64, error) {
	var count int64
	err := db.DB.Model(&RateSubmission{}).
		Where("origin = ? AND created_at > ?", origin, since).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return count, nil
}

func (GormStore) Insert(sub *RateSubmission) error {
	if err := db.DB.Create(sub).Error; err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return nil
}
