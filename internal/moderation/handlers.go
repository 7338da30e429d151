package moderation

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/PriceIQ/PriceIQ-Backend/internal/db"
	"github.com/PriceIQ/PriceIQ-Backend/internal/metrics"
	"github.com/PriceIQ/PriceIQ-Backend/internal/rates"
	"github.com/PriceIQ/PriceIQ-Backend/internal/utils"
	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"
)

// QueueHandler returns submissions awaiting review, most suspicious first so
// likely fraud gets eyes before it ages out.
func QueueHandler(w http.ResponseWriter, r *http.Request) {
	var pending []rates.RateSubmission
	if err := db.DB.Preload("Skill").Preload("Location").
		Where("is_approved = ?", false).
		Order("fraud_score DESC, created_at ASC").
		Find(&pending).Error; err != nil {
		http.Error(w, "Failed to fetch queue: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(pending)
}

// ApproveHandler flips a submission to approved and verified. This is the
// single switch that makes a submission count in any aggregate. Approving an
// already-approved submission is a no-op, safe to retry.
func ApproveHandler(w http.ResponseWriter, r *http.Request) {
	moderator, ok := utils.GetModeratorFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id := chi.URLParam(r, "id")

	var sub rates.RateSubmission
	if err := db.DB.First(&sub, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Submission not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to fetch submission: "+err.Error(), http.StatusInternalServerError)
		return
	}

	if sub.IsApproved {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "approved"})
		return
	}

	now := time.Now()
	sub.IsApproved = true
	sub.IsVerified = true
	sub.ApprovedAt = &now
	sub.ApprovedBy = &moderator

	entry := ModerationLog{
		SubmissionID: sub.ID,
		Action:       "approved",
		Moderator:    moderator,
		SkillID:      sub.SkillID,
		LocationID:   sub.LocationID,
		HourlyRate:   sub.HourlyRate,
		FraudScore:   sub.FraudScore,
		CreatedAt:    now,
	}

	tx := db.DB.Begin()
	if tx.Error != nil {
		http.Error(w, "Failed to start transaction", http.StatusInternalServerError)
		return
	}
	if err := tx.Create(&entry).Error; err != nil {
		tx.Rollback()
		http.Error(w, "Failed to log decision: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if err := tx.Save(&sub).Error; err != nil {
		tx.Rollback()
		http.Error(w, "Failed to approve submission: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if err := tx.Commit().Error; err != nil {
		http.Error(w, "Failed to commit: "+err.Error(), http.StatusInternalServerError)
		return
	}

	metrics.ModerationDecisions.WithLabelValues("approved").Inc()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "approved"})
}

// RejectHandler removes a submission entirely. The audit log row is written
// in the same transaction, so no rejection vanishes without trace. Rejecting
// an id that no longer exists returns 404 so a caller's retry sees a clean
// not-found instead of an error.
func RejectHandler(w http.ResponseWriter, r *http.Request) {
	moderator, ok := utils.GetModeratorFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id := chi.URLParam(r, "id")

	var req struct {
		Comment string `json:"comment"`
	}
	json.NewDecoder(r.Body).Decode(&req)

	var sub rates.RateSubmission
	if err := db.DB.First(&sub, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Submission not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to fetch submission: "+err.Error(), http.StatusInternalServerError)
		return
	}

	entry := ModerationLog{
		SubmissionID: sub.ID,
		Action:       "rejected",
		Moderator:    moderator,
		SkillID:      sub.SkillID,
		LocationID:   sub.LocationID,
		HourlyRate:   sub.HourlyRate,
		FraudScore:   sub.FraudScore,
		Comment:      req.Comment,
		CreatedAt:    time.Now(),
	}

	tx := db.DB.Begin()
	if tx.Error != nil {
		http.Error(w, "Failed to start transaction", http.StatusInternalServerError)
		return
	}
	if err := tx.Create(&entry).Error; err != nil {
		tx.Rollback()
		http.Error(w, "Failed to log decision: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if err := tx.Delete(&rates.RateSubmission{}, "id = ?", sub.ID).Error; err != nil {
		tx.Rollback()
		http.Error(w, "Failed to reject submission: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if err := tx.Commit().Error; err != nil {
		http.Error(w, "Failed to commit: "+err.Error(), http.StatusInternalServerError)
		return
	}

	metrics.ModerationDecisions.WithLabelValues("rejected").Inc()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "rejected"})
}
