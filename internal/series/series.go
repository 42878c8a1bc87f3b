// Package series defines the core time-series data model shared by the
// analysis engines and the pipeline: timestamped points, ranges used for
// filtering, and small helpers for extracting and ordering values.
package series

import (
	"fmt"
	"math"
	"sort"
	"strconv"
)

// DataPoint is a single sample: a UTC timestamp in epoch milliseconds and a
// value. A non-finite value (NaN or ±Inf) represents a missing sample.
type DataPoint struct {
	Time  int64   `json:"time"`
	Value float64 `json:"value"`
}

// MarshalJSON renders a missing sample's value as null, since JSON has no
// NaN literal.
func (p DataPoint) MarshalJSON() ([]byte, error) {
	if !IsFinite(p.Value) {
		return []byte(fmt.Sprintf(`{"time":%d,"value":null}`, p.Time)), nil
	}
	return []byte(fmt.Sprintf(`{"time":%d,"value":%s}`,
		p.Time, strconv.FormatFloat(p.Value, 'g', -1, 64))), nil
}

// Series is an ordered sequence of data points. Chronological order is not
// guaranteed; consumers that need it must sort explicitly.
type Series []DataPoint

// Values extracts just the values from the series.
func (s Series) Values() []float64 {
	values := make([]float64, len(s))
	for i, p := range s {
		values[i] = p.Value
	}
	return values
}

// Times extracts just the timestamps from the series.
func (s Series) Times() []int64 {
	times := make([]int64, len(s))
	for i, p := range s {
		times[i] = p.Time
	}
	return times
}

// Len returns the number of data points.
func (s Series) Len() int {
	return len(s)
}

// MissingCount returns the number of non-finite (missing) values.
func (s Series) MissingCount() int {
	count := 0
	for _, p := range s {
		if !IsFinite(p.Value) {
			count++
		}
	}
	return count
}

// SortedByTime returns a copy of the series sorted ascending by timestamp.
// The receiver is not modified.
func (s Series) SortedByTime() Series {
	sorted := make(Series, len(s))
	copy(sorted, s)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Time < sorted[j].Time
	})
	return sorted
}

// DateRange bounds a series in time. A nil bound is unbounded on that side.
// Inverted bounds are legal and simply match nothing.
type DateRange struct {
	Start *int64 `json:"start,omitempty"`
	End   *int64 `json:"end,omitempty"`
}

// Contains reports whether the timestamp falls inside the range (inclusive).
func (r DateRange) Contains(ts int64) bool {
	if r.Start != nil && ts < *r.Start {
		return false
	}
	if r.End != nil && ts > *r.End {
		return false
	}
	return true
}

// Active reports whether the range constrains anything.
func (r DateRange) Active() bool {
	return r.Start != nil || r.End != nil
}

// Equal reports whether two date ranges have the same bounds.
func (r DateRange) Equal(o DateRange) bool {
	return ptrEqual(r.Start, o.Start) && ptrEqual(r.End, o.End)
}

// ValueRange bounds a series by value. A nil bound is unbounded on that side.
// When ExcludeOutliers is set, the effective bounds are intersected with the
// 1.5×IQR envelope of the full unfiltered series (applied by the pipeline,
// not here).
type ValueRange struct {
	Min             *float64 `json:"min,omitempty"`
	Max             *float64 `json:"max,omitempty"`
	ExcludeOutliers bool     `json:"exclude_outliers"`
}

// Active reports whether the range constrains anything.
func (r ValueRange) Active() bool {
	return r.Min != nil || r.Max != nil || r.ExcludeOutliers
}

// Equal reports whether two value ranges have the same bounds and flags.
func (r ValueRange) Equal(o ValueRange) bool {
	return ptrEqual(r.Min, o.Min) && ptrEqual(r.Max, o.Max) &&
		r.ExcludeOutliers == o.ExcludeOutliers
}

// IsFinite reports whether the value is a real sample rather than a
// missing-value marker.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func ptrEqual[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
