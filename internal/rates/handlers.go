package rates

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/PriceIQ/PriceIQ-Backend/internal/metrics"
	"github.com/PriceIQ/PriceIQ-Backend/internal/utils"
	"github.com/google/uuid"
)

// Package-level collaborators, set by Init and swapped by tests.
var (
	Cfg       Config
	DataStore SubmissionStore
	Refs      ReferenceResolver
)

// SubmitResponse is the caller-facing result of a submission attempt.
// Honeypot drops answer with the exact success shape so bots can't tell.
type SubmitResponse struct {
	Accepted bool   `json:"accepted"`
	Message  string `json:"message"`
}

const submitSuccessMessage = "Rate submitted successfully"

// parseSliceParams reads the skill_id (required) and location_id (optional)
// query params shared by all aggregate endpoints.
func parseSliceParams(r *http.Request) (uint, *uint, error) {
	skillID, err := strconv.ParseUint(r.URL.Query().Get("skill_id"), 10, 32)
	if err != nil {
		return 0, nil, errors.New("skill_id is required and must be a positive integer")
	}

	var locationID *uint
	if raw := r.URL.Query().Get("location_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return 0, nil, errors.New("location_id must be a positive integer")
		}
		v := uint(id)
		locationID = &v
	}
	return uint(skillID), locationID, nil
}

// MarketRatesHandler returns the percentile summary for a skill, optionally
// narrowed to one location. Zero matching samples yield the zero-filled
// result, never an error.
func MarketRatesHandler(w http.ResponseWriter, r *http.Request) {
	skillID, locationID, err := parseSliceParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	obs, err := DataStore.ApprovedObservations(skillID, locationID)
	if err != nil {
		http.Error(w, "Failed to fetch rates: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ComputeMarketRates(obs))
}

// DistributionHandler returns the gap-free histogram for a skill/location slice.
func DistributionHandler(w http.ResponseWriter, r *http.Request) {
	skillID, locationID, err := parseSliceParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	obs, err := DataStore.ApprovedObservations(skillID, locationID)
	if err != nil {
		http.Error(w, "Failed to fetch rates: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ComputeDistribution(obs, Cfg.BucketWidth))
}

// TrendHandler returns the monthly average-rate series for a skill/location slice.
func TrendHandler(w http.ResponseWriter, r *http.Request) {
	skillID, locationID, err := parseSliceParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	obs, err := DataStore.ApprovedObservations(skillID, locationID)
	if err != nil {
		http.Error(w, "Failed to fetch rates: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ComputeTrend(obs))
}

// GeoRankingHandler ranks locations by average rate for a skill. top_n and
// min_samples are caller policy; the engine itself never suppresses
// low-sample locations.
func GeoRankingHandler(w http.ResponseWriter, r *http.Request) {
	skillID, err := strconv.ParseUint(r.URL.Query().Get("skill_id"), 10, 32)
	if err != nil {
		http.Error(w, "skill_id is required and must be a positive integer", http.StatusBadRequest)
		return
	}

	topN := Cfg.GeoTopN
	if raw := r.URL.Query().Get("top_n"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			topN = n
		}
	}
	minSamples := 0
	if raw := r.URL.Query().Get("min_samples"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			minSamples = n
		}
	}

	obs, err := DataStore.ApprovedObservations(uint(skillID), nil)
	if err != nil {
		http.Error(w, "Failed to fetch rates: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ComputeGeoRanking(obs, topN, minSamples))
}

// SubmitHandler ingests one rate candidate: validate, score, store
// unapproved. Scoring never blocks storage; a high score only marks the row
// for priority review.
func SubmitHandler(w http.ResponseWriter, r *http.Request) {
	var candidate Candidate
	if err := json.NewDecoder(r.Body).Decode(&candidate); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	origin, _ := utils.GetOriginFromContext(r.Context())

	validator := Validator{Refs: Refs, Cfg: Cfg}
	validated, err := validator.Validate(candidate)
	if err != nil {
		if errors.Is(err, errHoneypot) {
			// Bots get the success shape and nothing persisted.
			metrics.HoneypotDrops.Inc()
			writeSubmitResponse(w, http.StatusCreated, SubmitResponse{Accepted: true, Message: submitSuccessMessage})
			return
		}

		status := http.StatusBadRequest
		reason := "invalid"
		switch {
		case errors.Is(err, ErrReferenceNotFound):
			reason = "reference_not_found"
		case errors.Is(err, ErrOutOfRange):
			reason = "out_of_range"
		case errors.Is(err, ErrInvalidEnum):
			reason = "invalid_enum"
		}
		metrics.SubmissionsRejected.WithLabelValues(reason).Inc()
		writeSubmitResponse(w, status, SubmitResponse{Accepted: false, Message: err.Error()})
		return
	}

	scoreCtx, err := buildScoreContext(origin, validated.Skill.ID)
	if err != nil {
		http.Error(w, "Failed to store submission", http.StatusServiceUnavailable)
		return
	}

	score := NewScorer(Cfg).Score(validated, scoreCtx)
	if score >= Cfg.AutoFlagThreshold {
		metrics.FraudAutoFlagged.Inc()
		log.Printf("[rates] auto-flagged submission from %s (score %.2f)", origin, score)
	}

	sub := RateSubmission{
		ID:              uuid.NewString(),
		UserID:          validated.UserID,
		SkillID:         validated.Skill.ID,
		LocationID:      validated.Location.ID,
		HourlyRate:      validated.HourlyRate,
		SeniorityLevel:  validated.Seniority,
		ProjectType:     validated.ProjectType,
		YearsExperience: validated.YearsExperience,
		FraudScore:      score,
		Origin:          origin,
	}
	if err := DataStore.Insert(&sub); err != nil {
		http.Error(w, "Failed to store submission", http.StatusServiceUnavailable)
		return
	}

	metrics.SubmissionsTotal.Inc()
	writeSubmitResponse(w, http.StatusCreated, SubmitResponse{Accepted: true, Message: submitSuccessMessage})
}

// buildScoreContext gathers the scorer's signals: the 24h origin window from
// persisted rows and the skill's current approved distribution.
func buildScoreContext(origin string, skillID uint) (ScoreContext, error) {
	since := time.Now().Add(-Cfg.RateLimitWindow)
	recent, err := DataStore.CountRecentFromOrigin(origin, since)
	if err != nil {
		return ScoreContext{}, err
	}

	obs, err := DataStore.ApprovedObservations(skillID, nil)
	if err != nil {
		return ScoreContext{}, err
	}
	skillRates := make([]float64, len(obs))
	for i, o := range obs {
		skillRates[i] = o.Rate
	}

	return ScoreContext{
		Origin:           origin,
		RecentFromOrigin: int(recent),
		SkillRates:       skillRates,
	}, nil
}

func writeSubmitResponse(w http.ResponseWriter, status int, resp SubmitResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}
