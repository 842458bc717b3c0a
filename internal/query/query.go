// Package query derives filtered, sorted and aggregated views over a
// snapshot of the workout record store. Every function here is a pure
// function of (records, parameters): identical input always produces
// identical output, so callers may recompute per request or memoize.
package query

import (
	"math"
	"sort"
	"time"

	"github.com/iris-j-yan/workout-tracker/internal/domain"
)

// Range selects how far back an analytics view reaches.
type Range string

const (
	RangeWeek  Range = "week"
	RangeMonth Range = "month"
	RangeYear  Range = "year"
)

// Valid reports whether the range is one of week/month/year.
func (r Range) Valid() bool {
	switch r {
	case RangeWeek, RangeMonth, RangeYear:
		return true
	}
	return false
}

const (
	weeklyBucketLimit    = 8
	periodBucketLimit    = 10
	intensityBucketLimit = 14
)

// dayLabel matches the short "Jan 2" style labels used on chart axes.
const dayLabelLayout = "Jan 2"

// FilterSince keeps records dated on or after now minus the range.
// Week subtracts seven days; month and year use calendar-relative
// subtraction, with end-of-month overflow handled by the host calendar
// (time.Time.AddDate).
func FilterSince(records []domain.WorkoutRecord, rng Range, now time.Time) []domain.WorkoutRecord {
	// Record dates parse into UTC, so the cutoff midnight is built in
	// UTC too; only now's calendar date matters, not its zone offset.
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	var cutoff time.Time
	switch rng {
	case RangeWeek:
		cutoff = today.AddDate(0, 0, -7)
	case RangeMonth:
		cutoff = today.AddDate(0, -1, 0)
	case RangeYear:
		cutoff = today.AddDate(-1, 0, 0)
	default:
		cutoff = today.AddDate(0, -1, 0)
	}

	var kept []domain.WorkoutRecord
	for _, rec := range records {
		day, err := rec.Day()
		if err != nil {
			continue
		}
		if !day.Before(cutoff) {
			kept = append(kept, rec)
		}
	}
	return kept
}

// WeekBucket is one week's workout count, keyed by its Sunday start.
type WeekBucket struct {
	WeekStart time.Time `json:"-"`
	Week      string    `json:"week"`
	Workouts  int       `json:"workouts"`
}

// WeeklyFrequency groups records by the Sunday-aligned start of their
// week and counts per bucket, returning the most recent eight buckets
// in chronological order.
func WeeklyFrequency(records []domain.WorkoutRecord) []WeekBucket {
	counts := make(map[time.Time]int)
	for _, rec := range records {
		day, err := rec.Day()
		if err != nil {
			continue
		}
		counts[weekStart(day)]++
	}

	buckets := make([]WeekBucket, 0, len(counts))
	for start, n := range counts {
		buckets = append(buckets, WeekBucket{
			WeekStart: start,
			Week:      start.Format(dayLabelLayout),
			Workouts:  n,
		})
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].WeekStart.Before(buckets[j].WeekStart)
	})
	if len(buckets) > weeklyBucketLimit {
		buckets = buckets[len(buckets)-weeklyBucketLimit:]
	}
	return buckets
}

// TypeCount is one slice of the workout type distribution.
type TypeCount struct {
	Type  domain.WorkoutType `json:"type"`
	Name  string             `json:"name"`
	Count int                `json:"count"`
}

// TypeDistribution counts records per workout type. Types with zero
// records are omitted; output follows first-occurrence order over the
// input.
func TypeDistribution(records []domain.WorkoutRecord) []TypeCount {
	index := make(map[domain.WorkoutType]int)
	var out []TypeCount
	for _, rec := range records {
		if i, seen := index[rec.Type]; seen {
			out[i].Count++
			continue
		}
		index[rec.Type] = len(out)
		out = append(out, TypeCount{
			Type:  rec.Type,
			Name:  rec.Type.DisplayName(),
			Count: 1,
		})
	}
	return out
}

// PeriodBucket aggregates duration for one chart period.
type PeriodBucket struct {
	Period        string `json:"period"`
	TotalDuration int    `json:"duration"`
	AvgDuration   int    `json:"avgDuration"`
}

// DurationByPeriod groups records by a label chosen per granularity
// (weekday name for week, "Jan 2" for month, month name for year) and
// accumulates total and average duration per bucket. The most recent
// ten buckets are returned, in first-encounter order over the input.
func DurationByPeriod(records []domain.WorkoutRecord, rng Range) []PeriodBucket {
	type acc struct {
		total int
		count int
	}
	grouped := make(map[string]*acc)
	var order []string

	for _, rec := range records {
		day, err := rec.Day()
		if err != nil {
			continue
		}
		var key string
		switch rng {
		case RangeWeek:
			key = day.Format("Mon")
		case RangeYear:
			key = day.Format("Jan")
		default:
			key = day.Format(dayLabelLayout)
		}
		a, seen := grouped[key]
		if !seen {
			a = &acc{}
			grouped[key] = a
			order = append(order, key)
		}
		a.total += rec.Duration
		a.count++
	}

	if len(order) > periodBucketLimit {
		order = order[len(order)-periodBucketLimit:]
	}
	buckets := make([]PeriodBucket, 0, len(order))
	for _, key := range order {
		a := grouped[key]
		buckets = append(buckets, PeriodBucket{
			Period:        key,
			TotalDuration: a.total,
			AvgDuration:   int(math.Round(float64(a.total) / float64(a.count))),
		})
	}
	return buckets
}

// IntensityPoint is one day's average intensity.
type IntensityPoint struct {
	Date         string  `json:"date"`
	AvgIntensity float64 `json:"avgIntensity"`
}

// IntensityTrend averages intensity per day label, one decimal place,
// returning the most recent fourteen points in first-encounter order.
func IntensityTrend(records []domain.WorkoutRecord) []IntensityPoint {
	type acc struct {
		total int
		count int
	}
	grouped := make(map[string]*acc)
	var order []string

	for _, rec := range records {
		day, err := rec.Day()
		if err != nil {
			continue
		}
		key := day.Format(dayLabelLayout)
		a, seen := grouped[key]
		if !seen {
			a = &acc{}
			grouped[key] = a
			order = append(order, key)
		}
		a.total += rec.Intensity
		a.count++
	}

	if len(order) > intensityBucketLimit {
		order = order[len(order)-intensityBucketLimit:]
	}
	points := make([]IntensityPoint, 0, len(order))
	for _, key := range order {
		a := grouped[key]
		points = append(points, IntensityPoint{
			Date:         key,
			AvgIntensity: round1(float64(a.total) / float64(a.count)),
		})
	}
	return points
}

// Summary holds aggregate stats for a set of records.
type Summary struct {
	Count         int     `json:"totalWorkouts"`
	TotalDuration int     `json:"totalDuration"`
	AvgIntensity  float64 `json:"avgIntensity"`
	AvgDuration   int     `json:"avgDuration"`
}

// SummaryStats computes count, total duration, average intensity (one
// decimal) and average duration (rounded). All fields are zero for an
// empty input.
func SummaryStats(records []domain.WorkoutRecord) Summary {
	s := Summary{Count: len(records)}
	if s.Count == 0 {
		return s
	}

	var totalIntensity int
	for _, rec := range records {
		s.TotalDuration += rec.Duration
		totalIntensity += rec.Intensity
	}
	s.AvgIntensity = round1(float64(totalIntensity) / float64(s.Count))
	s.AvgDuration = int(math.Round(float64(s.TotalDuration) / float64(s.Count)))
	return s
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func weekStart(day time.Time) time.Time {
	return day.AddDate(0, 0, -int(day.Weekday()))
}
