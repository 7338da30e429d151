package scrape

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/PriceIQ/PriceIQ-Backend/internal/catalog"
	"github.com/PriceIQ/PriceIQ-Backend/internal/db"
	"github.com/PriceIQ/PriceIQ-Backend/internal/metrics"
	"github.com/PriceIQ/PriceIQ-Backend/internal/rates"
	"github.com/google/uuid"
)

// scrapeOrigin marks scraper-inserted rows so the fraud window never
// confuses them with a human submitter.
const scrapeOrigin = "scraper"

// CronHandler runs one scrape pass. It is triggered by the platform's cron
// with a bearer secret, mirroring the deploy target's scheduled-function
// auth.
func CronHandler(w http.ResponseWriter, r *http.Request) {
	secret := os.Getenv("CRON_SECRET")
	if secret == "" {
		http.Error(w, "server misconfigured", http.StatusInternalServerError)
		return
	}
	if r.Header.Get("Authorization") != "Bearer "+secret {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	html, err := sourceHTML(r)
	if err != nil {
		http.Error(w, "No scrape source: "+err.Error(), http.StatusBadRequest)
		return
	}

	var skills []catalog.Skill
	if err := db.DB.Find(&skills).Error; err != nil {
		http.Error(w, "Failed to fetch skills: "+err.Error(), http.StatusInternalServerError)
		return
	}
	names := make([]string, len(skills))
	for i, s := range skills {
		names[i] = s.Name
	}

	listings, err := ExtractListings(html, names)
	if err != nil {
		http.Error(w, "Failed to parse source: "+err.Error(), http.StatusBadRequest)
		return
	}

	stored := 0
	validator := rates.Validator{Refs: rates.Refs, Cfg: rates.Cfg}
	scorer := rates.NewScorer(rates.Cfg)
	for _, l := range listings {
		metrics.ScrapedCandidates.Inc()

		candidate := rates.Candidate{
			SkillName:    l.Skill,
			LocationName: l.Location,
			HourlyRate:   (l.RateMin + l.RateMax) / 2,
			Seniority:    SeniorityFromTitle(l.Title),
			ProjectType:  "hourly",
		}

		validated, err := validator.Validate(candidate)
		if err != nil {
			log.Printf("[scrape] skipping %q: %v", l.Title, err)
			continue
		}

		score := scorer.Score(validated, rates.ScoreContext{Origin: scrapeOrigin})
		sub := rates.RateSubmission{
			ID:              uuid.NewString(),
			SkillID:         validated.Skill.ID,
			LocationID:      validated.Location.ID,
			HourlyRate:      validated.HourlyRate,
			SeniorityLevel:  validated.Seniority,
			ProjectType:     validated.ProjectType,
			YearsExperience: validated.YearsExperience,
			FraudScore:      score,
			Origin:          scrapeOrigin,
		}
		if err := rates.DataStore.Insert(&sub); err != nil {
			log.Printf("[scrape] insert failed for %q: %v", l.Title, err)
			continue
		}
		stored++
	}

	log.Printf("[scrape] extracted %d listings, stored %d candidates", len(listings), stored)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success":   true,
		"extracted": len(listings),
		"stored":    stored,
		"sample":    listings,
	})
}

// sourceHTML takes the markup from the request body when provided, else
// fetches SCRAPE_SOURCE_URL.
func sourceHTML(r *http.Request) (string, error) {
	if r.Body != nil {
		raw, err := io.ReadAll(http.MaxBytesReader(nil, r.Body, 1<<20)) // 1 MiB
		if err == nil && len(strings.TrimSpace(string(raw))) > 0 {
			var body struct {
				HTML string `json:"html"`
			}
			if err := json.Unmarshal(raw, &body); err == nil && body.HTML != "" {
				return body.HTML, nil
			}
			return string(raw), nil
		}
	}

	url := os.Getenv("SCRAPE_SOURCE_URL")
	if url == "" {
		return "", errNoSource
	}
	resp, err := http.Get(url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
