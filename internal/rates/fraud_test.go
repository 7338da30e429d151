package rates_test

import (
	"testing"

	"github.com/PriceIQ/PriceIQ-Backend/internal/catalog"
	"github.com/PriceIQ/PriceIQ-Backend/internal/rates"
	. "github.com/smartystreets/goconvey/convey"
)

func intPtr(v int) *int { return &v }

func validated(rate float64, seniority rates.Seniority, years *int) rates.Validated {
	return rates.Validated{
		Skill:           catalog.Skill{ID: 1, Name: "React"},
		Location:        catalog.Location{ID: 1, City: "Remote"},
		HourlyRate:      rate,
		Seniority:       seniority,
		ProjectType:     rates.ProjectHourly,
		YearsExperience: years,
	}
}

func TestScorer(t *testing.T) {
	cfg := rates.DefaultConfig()
	scorer := rates.NewScorer(cfg)

	Convey("Given a clean submission from a fresh origin", t, func() {
		score := scorer.Score(validated(75, rates.SeniorityMid, intPtr(4)), rates.ScoreContext{
			Origin:           "203.0.113.7",
			RecentFromOrigin: 0,
		})

		Convey("Then the score is zero", func() {
			So(score, ShouldEqual, 0)
		})
	})

	Convey("Given a 4th submission from the same origin inside the window", t, func() {
		busy := scorer.Score(validated(75, rates.SeniorityMid, intPtr(4)), rates.ScoreContext{
			Origin:           "203.0.113.7",
			RecentFromOrigin: 3,
		})
		fresh := scorer.Score(validated(75, rates.SeniorityMid, intPtr(4)), rates.ScoreContext{
			Origin:           "198.51.100.9",
			RecentFromOrigin: 0,
		})

		Convey("Then the busy origin scores strictly higher than a fresh one", func() {
			So(busy, ShouldBeGreaterThan, fresh)
		})
	})

	Convey("Given a sentinel origin", t, func() {
		Convey("Then the score is pinned to 1", func() {
			for _, origin := range []string{"", "0.0.0.0", "::"} {
				score := scorer.Score(validated(75, rates.SeniorityMid, intPtr(4)), rates.ScoreContext{Origin: origin})
				So(score, ShouldEqual, 1)
			}
		})
	})

	Convey("Given an established distribution for the skill", t, func() {
		skillRates := []float64{60, 65, 70, 72, 75, 78, 80, 85, 90, 95}

		Convey("When the candidate sits far outside P5..P95", func() {
			outlier := scorer.Score(validated(450, rates.SeniorityMid, intPtr(4)), rates.ScoreContext{
				Origin:     "203.0.113.7",
				SkillRates: skillRates,
			})
			typical := scorer.Score(validated(75, rates.SeniorityMid, intPtr(4)), rates.ScoreContext{
				Origin:     "203.0.113.7",
				SkillRates: skillRates,
			})

			Convey("Then the outlier scores higher", func() {
				So(outlier, ShouldBeGreaterThan, typical)
				So(typical, ShouldEqual, 0)
			})
		})

		Convey("When the skill has fewer samples than the minimum", func() {
			sparse := scorer.Score(validated(450, rates.SeniorityMid, intPtr(4)), rates.ScoreContext{
				Origin:     "203.0.113.7",
				SkillRates: []float64{60, 70, 80},
			})

			Convey("Then the outlier heuristic stays silent (cold start)", func() {
				So(sparse, ShouldEqual, 0)
			})
		})
	})

	Convey("Given contradictory fields", t, func() {
		Convey("An expert with zero years of experience is penalized", func() {
			score := scorer.Score(validated(75, rates.SeniorityExpert, intPtr(0)), rates.ScoreContext{
				Origin: "203.0.113.7",
			})
			So(score, ShouldBeGreaterThan, 0)
		})

		Convey("A junior with 20 years of experience is penalized", func() {
			score := scorer.Score(validated(75, rates.SeniorityJunior, intPtr(20)), rates.ScoreContext{
				Origin: "203.0.113.7",
			})
			So(score, ShouldBeGreaterThan, 0)
		})

		Convey("Missing years of experience is not penalized", func() {
			score := scorer.Score(validated(75, rates.SeniorityExpert, nil), rates.ScoreContext{
				Origin: "203.0.113.7",
			})
			So(score, ShouldEqual, 0)
		})
	})

	Convey("Given every heuristic firing at once", t, func() {
		score := scorer.Score(validated(450, rates.SeniorityExpert, intPtr(0)), rates.ScoreContext{
			Origin:           "203.0.113.7",
			RecentFromOrigin: 10,
			SkillRates:       []float64{60, 65, 70, 72, 75, 78, 80, 85, 90, 95},
		})

		Convey("Then the total is clamped to 1", func() {
			So(score, ShouldBeLessThanOrEqualTo, 1)
			So(score, ShouldBeGreaterThan, 0.9)
		})
	})
}
