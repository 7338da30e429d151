package moderation

import (
	"time"

	"github.com/google/uuid"
)

// ModerationLog records every decision for audit and anti-fraud pattern
// analysis. Rejected submissions are hard-deleted, so the log keeps the
// facts a later investigation would want.
type ModerationLog struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	SubmissionID string    `gorm:"not null;index" json:"submission_id"`
	Action       string    `gorm:"not null" json:"action"` // approved, rejected
	Moderator    string    `gorm:"not null" json:"moderator"`

	// Snapshot of the submission at decision time.
	SkillID    uint    `json:"skill_id"`
	LocationID uint    `json:"location_id"`
	HourlyRate float64 `json:"hourly_rate"`
	FraudScore float64 `json:"fraud_score"`

	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (ModerationLog) TableName() string {
	return "moderation.logs"
}
