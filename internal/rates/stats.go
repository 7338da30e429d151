package rates

import (
	"math"
	"sort"
)

// The aggregation engine is pure: every function here takes the approved
// observations for one skill/location slice and computes over them in a
// single pass. The store decides what "approved" means; nothing in this file
// touches the database.

// Percentile computes the p-th percentile (0-100) of values using linear
// interpolation between order statistics: rank = p/100 * (n-1), interpolated
// between the neighboring sorted values. A single value is every percentile
// of itself. Returns 0 for an empty slice.
func Percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return percentileSorted(sorted, p)
}

func percentileSorted(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}

	rank := p / 100 * float64(n-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

// ComputeMarketRates returns the P25/P50/P75/P90 summary over the given
// observations. Zero observations yield the zero-filled sentinel with
// SampleCount 0; callers must treat that as "no data", not "$0".
func ComputeMarketRates(obs []Observation) MarketRates {
	if len(obs) == 0 {
		return MarketRates{}
	}

	sorted := make([]float64, len(obs))
	for i, o := range obs {
		sorted[i] = o.Rate
	}
	sort.Float64s(sorted)

	return MarketRates{
		P25:         round2(percentileSorted(sorted, 25)),
		P50:         round2(percentileSorted(sorted, 50)),
		P75:         round2(percentileSorted(sorted, 75)),
		P90:         round2(percentileSorted(sorted, 90)),
		SampleCount: len(obs),
	}
}

// ComputeDistribution groups observations into fixed-width buckets spanning
// from the minimum to the maximum observed rate. Every bucket in the span is
// emitted, zero-frequency ones included, so chart consumers get a gap-free
// histogram. Empty input yields an empty slice.
func ComputeDistribution(obs []Observation, width float64) []DistributionBucket {
	if len(obs) == 0 || width <= 0 {
		return []DistributionBucket{}
	}

	min, max := obs[0].Rate, obs[0].Rate
	for _, o := range obs[1:] {
		if o.Rate < min {
			min = o.Rate
		}
		if o.Rate > max {
			max = o.Rate
		}
	}

	numBuckets := int(math.Floor((max-min)/width)) + 1
	buckets := make([]DistributionBucket, numBuckets)
	for i := range buckets {
		floor := min + float64(i)*width
		buckets[i] = DistributionBucket{
			Floor:   floor,
			Ceiling: floor + width,
		}
	}

	for _, o := range obs {
		idx := int(math.Floor((o.Rate - min) / width))
		if idx >= numBuckets {
			idx = numBuckets - 1
		}
		buckets[idx].Frequency++
	}

	return buckets
}

// ComputeTrend returns the mean rate per UTC calendar month, in
// chronological order. Months without data are omitted; a series shorter
// than 2 points is "insufficient for trend display", which is the chart's
// call, not an error here.
func ComputeTrend(obs []Observation) []TrendPoint {
	type acc struct {
		sum   float64
		count int
	}
	byMonth := make(map[string]*acc)

	for _, o := range obs {
		period := o.CreatedAt.UTC().Format("2006-01")
		a, ok := byMonth[period]
		if !ok {
			a = &acc{}
			byMonth[period] = a
		}
		a.sum += o.Rate
		a.count++
	}

	points := make([]TrendPoint, 0, len(byMonth))
	for period, a := range byMonth {
		points = append(points, TrendPoint{
			Period:      period,
			AvgRate:     round2(a.sum / float64(a.count)),
			SampleCount: a.count,
		})
	}

	// YYYY-MM sorts lexicographically in time order.
	sort.Slice(points, func(i, j int) bool { return points[i].Period < points[j].Period })
	return points
}

// ComputeGeoRanking returns the topN locations by mean rate, descending.
// minSamples is the caller's low-confidence suppression policy; 0 keeps
// every location, single submissions included.
func ComputeGeoRanking(obs []Observation, topN, minSamples int) []GeoRatePoint {
	type acc struct {
		name  string
		sum   float64
		count int
	}
	byLocation := make(map[uint]*acc)

	for _, o := range obs {
		a, ok := byLocation[o.LocationID]
		if !ok {
			a = &acc{name: o.LocationName}
			byLocation[o.LocationID] = a
		}
		a.sum += o.Rate
		a.count++
	}

	points := make([]GeoRatePoint, 0, len(byLocation))
	for _, a := range byLocation {
		if a.count < minSamples {
			continue
		}
		points = append(points, GeoRatePoint{
			Location:    a.name,
			AvgRate:     math.Round(a.sum / float64(a.count)),
			SampleCount: a.count,
		})
	}

	sort.SliceStable(points, func(i, j int) bool {
		if points[i].AvgRate != points[j].AvgRate {
			return points[i].AvgRate > points[j].AvgRate
		}
		return points[i].SampleCount > points[j].SampleCount
	})

	if topN > 0 && len(points) > topN {
		points = points[:topN]
	}
	return points
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
