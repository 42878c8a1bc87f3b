package aggregation

import (
	"sort"
	"time"

	"github.com/gridlens/gridlens/internal/series"
)

// Aggregate buckets the series by the period-aligned start instant of each
// timestamp, evaluated in the calendar terms of loc (UTC when nil), and
// reduces each bucket. Output is sorted ascending by bucket start and each
// output point carries the bucket-start timestamp.
//
// Input order does not matter and the input is not modified. Values are not
// filtered here; callers must pre-filter. Empty input yields empty output.
func Aggregate(s series.Series, period Period, reducer Reducer, loc *time.Location) series.Series {
	if len(s) == 0 {
		return series.Series{}
	}
	if loc == nil {
		loc = time.UTC
	}

	buckets := make(map[int64][]float64)
	for _, p := range s {
		t := time.UnixMilli(p.Time).In(loc)
		key := BucketStart(t, period).UnixMilli()
		buckets[key] = append(buckets[key], p.Value)
	}

	keys := make([]int64, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	out := make(series.Series, len(keys))
	for i, key := range keys {
		out[i] = series.DataPoint{Time: key, Value: reduce(buckets[key], reducer)}
	}
	return out
}
