package rates

// Fraud scoring is advisory: every submission is stored unapproved whatever
// its score, and only moderation decides visibility. Each heuristic is an
// independent function contributing a weighted term; the sum is clamped to
// [0, 1].

// ScoreContext carries the signals a scoring pass needs. RecentFromOrigin is
// the count of submissions from the same network origin inside the rolling
// rate-limit window, computed from persisted rows so it holds across
// concurrent instances.
type ScoreContext struct {
	Origin           string
	RecentFromOrigin int

	// Approved rates already on record for the same skill; empty when the
	// skill has no data yet (cold start).
	SkillRates []float64
}

// Heuristic returns a suspicion contribution in [0, 1] for one signal.
type Heuristic func(v Validated, ctx ScoreContext, cfg Config) float64

// Scorer combines a list of heuristics into one clamped score.
type Scorer struct {
	Cfg        Config
	heuristics []Heuristic
}

func NewScorer(cfg Config) Scorer {
	return Scorer{
		Cfg: cfg,
		heuristics: []Heuristic{
			originHeuristic,
			outlierHeuristic,
			consistencyHeuristic,
		},
	}
}

// Score runs every heuristic and clamps the running total to 1.0.
func (s Scorer) Score(v Validated, ctx ScoreContext) float64 {
	total := 0.0
	for _, h := range s.heuristics {
		total += h(v, ctx, s.Cfg)
	}
	if total > 1 {
		return 1
	}
	return total
}

// sentinelOrigins are address values no legitimate client presents.
var sentinelOrigins = map[string]struct{}{
	"":        {},
	"0.0.0.0": {},
	"::":      {},
}

// originHeuristic penalizes bursty origins. Sentinel addresses are treated
// as definitely fraudulent.
func originHeuristic(_ Validated, ctx ScoreContext, cfg Config) float64 {
	if _, ok := sentinelOrigins[ctx.Origin]; ok {
		return 1
	}
	if ctx.RecentFromOrigin >= cfg.RateLimitMax {
		return 0.6
	}
	return 0
}

// outlierHeuristic compares the candidate against the skill's existing
// distribution. With fewer than OutlierMinSamples approved rates the
// distribution isn't trusted and the heuristic stays silent, so sparse
// skills don't punish early contributors.
func outlierHeuristic(v Validated, ctx ScoreContext, cfg Config) float64 {
	if len(ctx.SkillRates) < cfg.OutlierMinSamples {
		return 0
	}

	low := Percentile(ctx.SkillRates, 5)
	high := Percentile(ctx.SkillRates, 95)
	if v.HourlyRate < low || v.HourlyRate > high {
		return 0.35
	}
	return 0
}

// consistencyHeuristic flags contradictory field combinations.
func consistencyHeuristic(v Validated, _ ScoreContext, _ Config) float64 {
	if v.YearsExperience == nil {
		return 0
	}
	years := *v.YearsExperience

	switch v.Seniority {
	case SeniorityExpert, SenioritySenior:
		if years == 0 {
			return 0.2
		}
	case SeniorityJunior:
		if years >= 15 {
			return 0.1
		}
	}
	return 0
}
