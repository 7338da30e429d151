// Package scrape extracts hourly-rate candidates from job-listing HTML and
// feeds them through the same validation and scoring path as user
// submissions. Scraped rows always enter unapproved.
package scrape

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Listing is one rate candidate pulled out of a job card.
type Listing struct {
	Title    string  `json:"title"`
	Skill    string  `json:"skill"`
	Location string  `json:"location"`
	RateMin  float64 `json:"rate_min"`
	RateMax  float64 `json:"rate_max"`
}

// Matches "$50 - $100 / hr", "$60/hr" and similar.
var hourlyPattern = regexp.MustCompile(`(?i)\$(\d+)\s*-?\s*\$?(\d+)?\s*/\s*hr`)

var locationPattern = regexp.MustCompile(`(?i)location:\s*([^\n<]+)`)

// ExtractListings parses job-card markup and returns every card that
// advertises an hourly rate and classifies into one of the known skills.
// Cards with only yearly salaries are skipped; salary-to-rate conversion is
// a different data source with different trust.
func ExtractListings(html string, skills []string) ([]Listing, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	var listings []Listing
	doc.Find(".job-card").Each(func(i int, card *goquery.Selection) {
		title := strings.TrimSpace(card.Find("h2").First().Text())
		text := card.Text()

		match := hourlyPattern.FindStringSubmatch(text)
		if match == nil {
			return
		}

		rateMin, _ := strconv.ParseFloat(match[1], 64)
		rateMax := rateMin
		if match[2] != "" {
			rateMax, _ = strconv.ParseFloat(match[2], 64)
		}

		skill := classifySkill(title, skills)
		if skill == "" {
			return
		}

		location := "Remote"
		if m := locationPattern.FindStringSubmatch(text); m != nil {
			location = strings.TrimSpace(m[1])
		}

		listings = append(listings, Listing{
			Title:    title,
			Skill:    skill,
			Location: location,
			RateMin:  rateMin,
			RateMax:  rateMax,
		})
	})

	return listings, nil
}

// classifySkill picks the first known skill mentioned in the title. Longer
// names are checked first so "Node.js Engineer" doesn't match a skill named
// "JS".
func classifySkill(title string, skills []string) string {
	lower := strings.ToLower(title)
	best := ""
	for _, s := range skills {
		if strings.Contains(lower, strings.ToLower(s)) && len(s) > len(best) {
			best = s
		}
	}
	return best
}

// SeniorityFromTitle maps a job title onto the submission seniority enum.
func SeniorityFromTitle(title string) string {
	lower := strings.ToLower(title)
	switch {
	case strings.Contains(lower, "senior") || strings.Contains(lower, "lead"):
		return "senior"
	case strings.Contains(lower, "junior") || strings.Contains(lower, "entry"):
		return "junior"
	default:
		return "mid"
	}
}
