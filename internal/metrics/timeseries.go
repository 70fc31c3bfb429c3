package metrics

import (
	"fmt"
	"sort"
	"time"

	"netreach/internal/clean"
	"netreach/internal/tabular"
)

// Supported time-series bucket periods.
const (
	PeriodDay   = "day"
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

// Bucket is one period in a time series.
type Bucket struct {
	Period     string `json:"period"`
	Count      int    `json:"count"`
	Cumulative int    `json:"cumulative"`
}

// TimeSeries buckets records by the calendar period of the named date
// column and returns per-bucket counts with a running cumulative total, in
// chronological order. Rows with missing or unparseable dates are omitted.
// An unknown period falls back to monthly buckets.
func TimeSeries(frame *tabular.Frame, dateCol, period string) []Bucket {
	if frame == nil {
		return nil
	}

	values := frame.Column(dateCol)
	if values == nil {
		return nil
	}

	counts := make(map[string]int)

	for _, v := range values {
		t, ok := clean.ParseTime(v)
		if !ok {
			continue
		}

		counts[bucketKey(t, period)]++
	}

	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}

	// Bucket keys are zero-padded, so lexicographic order is
	// chronological order.
	sort.Strings(keys)

	buckets := make([]Bucket, 0, len(keys))
	cumulative := 0

	for _, k := range keys {
		cumulative += counts[k]
		buckets = append(buckets, Bucket{Period: k, Count: counts[k], Cumulative: cumulative})
	}

	return buckets
}

func bucketKey(t time.Time, period string) string {
	switch period {
	case PeriodDay:
		return t.Format("2006-01-02")
	case PeriodWeek:
		year, week := t.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week)
	case PeriodYear:
		return t.Format("2006")
	default:
		return t.Format("2006-01")
	}
}

// VelocityMetrics reports networking activity over a trailing window ending
// at the most recent record.
type VelocityMetrics struct {
	RecentCount     int     `json:"recent_count"`
	WindowDays      int     `json:"window_days"`
	VelocityPerWeek float64 `json:"velocity_per_week"`
}

// Velocity counts records whose date falls within windowDays of the latest
// date in the column and derives a per-week rate.
func Velocity(frame *tabular.Frame, dateCol string, windowDays int) VelocityMetrics {
	m := VelocityMetrics{WindowDays: windowDays}

	if frame == nil || windowDays < 1 {
		return m
	}

	values := frame.Column(dateCol)
	if values == nil {
		return m
	}

	var times []time.Time

	for _, v := range values {
		if t, ok := clean.ParseTime(v); ok {
			times = append(times, t)
		}
	}

	if len(times) == 0 {
		return m
	}

	latest := times[0]
	for _, t := range times[1:] {
		if t.After(latest) {
			latest = t
		}
	}

	cutoff := latest.AddDate(0, 0, -windowDays)

	for _, t := range times {
		if !t.Before(cutoff) {
			m.RecentCount++
		}
	}

	m.VelocityPerWeek = float64(m.RecentCount) / float64(windowDays) * 7

	return m
}
