// Package metrics exposes Prometheus counters for the ingestion and
// moderation pipeline.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	SubmissionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "priceiq",
		Name:      "submissions_total",
		Help:      "Rate submissions accepted for moderation review.",
	})

	SubmissionsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "priceiq",
		Name:      "submissions_rejected_total",
		Help:      "Submissions rejected at validation, by reason.",
	}, []string{"reason"})

	HoneypotDrops = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "priceiq",
		Name:      "honeypot_drops_total",
		Help:      "Bot submissions silently dropped by the honeypot field.",
	})

	FraudAutoFlagged = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "priceiq",
		Name:      "fraud_auto_flagged_total",
		Help:      "Submissions whose fraud score crossed the auto-flag threshold.",
	})

	ModerationDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "priceiq",
		Name:      "moderation_decisions_total",
		Help:      "Moderation decisions, by action.",
	}, []string{"action"})

	ScrapedCandidates = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "priceiq",
		Name:      "scraped_candidates_total",
		Help:      "Rate candidates extracted by the scrape job.",
	})
)

// Handler serves the Prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
