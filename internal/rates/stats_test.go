package rates_test

import (
	"testing"
	"time"

	"github.com/PriceIQ/PriceIQ-Backend/internal/rates"
	. "github.com/smartystreets/goconvey/convey"
)

func obsAt(rate float64, locationID uint, locationName string, created time.Time) rates.Observation {
	return rates.Observation{
		Rate:         rate,
		CreatedAt:    created,
		LocationID:   locationID,
		LocationName: locationName,
	}
}

func globalObs(rateValues ...float64) []rates.Observation {
	obs := make([]rates.Observation, len(rateValues))
	for i, r := range rateValues {
		obs[i] = obsAt(r, 1, "Remote", time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))
	}
	return obs
}

func TestPercentile(t *testing.T) {
	Convey("Given the fixed rate set [20 40 60 80 100]", t, func() {
		values := []float64{20, 40, 60, 80, 100}

		Convey("Then the interpolated percentiles are exact", func() {
			So(rates.Percentile(values, 25), ShouldEqual, 40)
			So(rates.Percentile(values, 50), ShouldEqual, 60)
			So(rates.Percentile(values, 75), ShouldEqual, 80)
			So(rates.Percentile(values, 90), ShouldAlmostEqual, 92)
		})

		Convey("And input order does not matter", func() {
			shuffled := []float64{80, 20, 100, 60, 40}
			So(rates.Percentile(shuffled, 50), ShouldEqual, 60)
		})
	})

	Convey("Given a single value", t, func() {
		Convey("Then every percentile is that value", func() {
			So(rates.Percentile([]float64{75}, 25), ShouldEqual, 75)
			So(rates.Percentile([]float64{75}, 90), ShouldEqual, 75)
		})
	})

	Convey("Given no values", t, func() {
		Convey("Then the sentinel 0 is returned", func() {
			So(rates.Percentile(nil, 50), ShouldEqual, 0)
		})
	})
}

func TestComputeMarketRates(t *testing.T) {
	Convey("Given five approved rates [20 40 60 80 100]", t, func() {
		result := rates.ComputeMarketRates(globalObs(20, 40, 60, 80, 100))

		Convey("Then p50 is 60 with sample count 5", func() {
			So(result.P50, ShouldEqual, 60)
			So(result.SampleCount, ShouldEqual, 5)
			So(result.P25, ShouldEqual, 40)
			So(result.P75, ShouldEqual, 80)
			So(result.P90, ShouldAlmostEqual, 92)
		})
	})

	Convey("Given duplicate rate values", t, func() {
		result := rates.ComputeMarketRates(globalObs(50, 50, 50, 100))

		Convey("Then ties count multiply, no dedup", func() {
			So(result.SampleCount, ShouldEqual, 4)
			So(result.P50, ShouldEqual, 50)
		})
	})

	Convey("Given no approved rates", t, func() {
		result := rates.ComputeMarketRates(nil)

		Convey("Then the zero-filled sentinel comes back, never NaN", func() {
			So(result.SampleCount, ShouldEqual, 0)
			So(result.P25, ShouldEqual, 0)
			So(result.P50, ShouldEqual, 0)
			So(result.P75, ShouldEqual, 0)
			So(result.P90, ShouldEqual, 0)
		})
	})

	Convey("Given a single approved rate", t, func() {
		result := rates.ComputeMarketRates(globalObs(60))

		Convey("Then all percentiles equal that rate", func() {
			So(result.P25, ShouldEqual, 60)
			So(result.P50, ShouldEqual, 60)
			So(result.P75, ShouldEqual, 60)
			So(result.P90, ShouldEqual, 60)
			So(result.SampleCount, ShouldEqual, 1)
		})
	})
}

func TestComputeDistribution(t *testing.T) {
	Convey("Given rates [10 15 45] and bucket width 10", t, func() {
		buckets := rates.ComputeDistribution(globalObs(10, 15, 45), 10)

		Convey("Then the histogram spans min to max with no gaps", func() {
			So(len(buckets), ShouldEqual, 4)

			So(buckets[0].Floor, ShouldEqual, 10)
			So(buckets[0].Ceiling, ShouldEqual, 20)
			So(buckets[0].Frequency, ShouldEqual, 2)

			So(buckets[1].Floor, ShouldEqual, 20)
			So(buckets[1].Frequency, ShouldEqual, 0)

			So(buckets[2].Floor, ShouldEqual, 30)
			So(buckets[2].Frequency, ShouldEqual, 0)

			So(buckets[3].Floor, ShouldEqual, 40)
			So(buckets[3].Ceiling, ShouldEqual, 50)
			So(buckets[3].Frequency, ShouldEqual, 1)
		})
	})

	Convey("Given all rates equal", t, func() {
		buckets := rates.ComputeDistribution(globalObs(30, 30, 30), 20)

		Convey("Then a single bucket holds everything", func() {
			So(len(buckets), ShouldEqual, 1)
			So(buckets[0].Frequency, ShouldEqual, 3)
		})
	})

	Convey("Given a max rate on a bucket boundary", t, func() {
		buckets := rates.ComputeDistribution(globalObs(10, 30), 10)

		Convey("Then the boundary value lands in the last bucket", func() {
			So(len(buckets), ShouldEqual, 3)
			So(buckets[2].Frequency, ShouldEqual, 1)
		})
	})

	Convey("Given no data", t, func() {
		Convey("Then the histogram is empty, not nil percentiles", func() {
			So(rates.ComputeDistribution(nil, 10), ShouldBeEmpty)
		})
	})
}

func TestComputeTrend(t *testing.T) {
	jan := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	mar := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	Convey("Given submissions in January and March but not February", t, func() {
		obs := []rates.Observation{
			obsAt(40, 1, "Remote", jan),
			obsAt(60, 1, "Remote", jan),
			obsAt(90, 1, "Remote", mar),
		}
		points := rates.ComputeTrend(obs)

		Convey("Then the series is sparse and chronological", func() {
			So(len(points), ShouldEqual, 2)
			So(points[0].Period, ShouldEqual, "2026-01")
			So(points[0].AvgRate, ShouldEqual, 50)
			So(points[0].SampleCount, ShouldEqual, 2)
			So(points[1].Period, ShouldEqual, "2026-03")
			So(points[1].AvgRate, ShouldEqual, 90)
		})
	})

	Convey("Given a month boundary in UTC", t, func() {
		lateJan := time.Date(2026, 1, 31, 23, 59, 0, 0, time.UTC)
		points := rates.ComputeTrend([]rates.Observation{obsAt(50, 1, "Remote", lateJan)})

		Convey("Then grouping uses the UTC calendar month", func() {
			So(points[0].Period, ShouldEqual, "2026-01")
		})
	})

	Convey("Given no data", t, func() {
		So(rates.ComputeTrend(nil), ShouldBeEmpty)
	})
}

func TestComputeGeoRanking(t *testing.T) {
	now := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	Convey("Given submissions across three locations", t, func() {
		obs := []rates.Observation{
			obsAt(120, 1, "San Francisco, USA", now),
			obsAt(100, 1, "San Francisco, USA", now),
			obsAt(60, 2, "Berlin, Germany", now),
			obsAt(20, 3, "Manila, Philippines", now),
		}

		Convey("When ranking without suppression", func() {
			points := rates.ComputeGeoRanking(obs, 5, 0)

			Convey("Then locations come back descending by mean rate", func() {
				So(len(points), ShouldEqual, 3)
				So(points[0].Location, ShouldEqual, "San Francisco, USA")
				So(points[0].AvgRate, ShouldEqual, 110)
				So(points[0].SampleCount, ShouldEqual, 2)
				So(points[1].Location, ShouldEqual, "Berlin, Germany")
				So(points[2].Location, ShouldEqual, "Manila, Philippines")
			})

			Convey("And single-submission locations are not excluded", func() {
				So(points[2].SampleCount, ShouldEqual, 1)
			})
		})

		Convey("When the caller asks for a minimum sample count", func() {
			points := rates.ComputeGeoRanking(obs, 5, 2)

			Convey("Then low-confidence locations drop out", func() {
				So(len(points), ShouldEqual, 1)
				So(points[0].Location, ShouldEqual, "San Francisco, USA")
			})
		})

		Convey("When topN truncates the ranking", func() {
			points := rates.ComputeGeoRanking(obs, 2, 0)
			So(len(points), ShouldEqual, 2)
		})
	})

	Convey("Given no data", t, func() {
		So(rates.ComputeGeoRanking(nil, 5, 0), ShouldBeEmpty)
	})
}
