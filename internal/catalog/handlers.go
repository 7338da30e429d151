package catalog

import (
	"encoding/json"
	"net/http"

	"github.com/PriceIQ/PriceIQ-Backend/internal/db"
)

// SkillsHandler returns all skills, ordered by name for form dropdowns.
func SkillsHandler(w http.ResponseWriter, r *http.Request) {
	var skills []Skill

	if err := db.DB.Order("name").Find(&skills).Error; err != nil {
		http.Error(w, "Failed to fetch skills: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(skills); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// LocationsHandler returns all locations, ordered the way the submit form lists them.
func LocationsHandler(w http.ResponseWriter, r *http.Request) {
	var locations []Location

	if err := db.DB.Order("country, city").Find(&locations).Error; err != nil {
		http.Error(w, "Failed to fetch locations: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(locations); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
