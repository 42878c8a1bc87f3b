package aggregation

import (
	"fmt"
	"sort"
)

// Reducer collapses a bucket's values into one.
type Reducer string

const (
	ReducerMean   Reducer = "mean"
	ReducerSum    Reducer = "sum"
	ReducerMin    Reducer = "min"
	ReducerMax    Reducer = "max"
	ReducerCount  Reducer = "count"
	ReducerMedian Reducer = "median"
)

// ParseReducer validates a reducer name.
func ParseReducer(s string) (Reducer, error) {
	switch Reducer(s) {
	case ReducerMean, ReducerSum, ReducerMin, ReducerMax, ReducerCount, ReducerMedian:
		return Reducer(s), nil
	default:
		return "", fmt.Errorf("unknown aggregation reducer: %q", s)
	}
}

// reduce applies the reducer to a non-empty bucket. count ignores the values
// themselves; median of an even-sized bucket is the mean of the two middle
// sorted values.
func reduce(values []float64, reducer Reducer) float64 {
	switch reducer {
	case ReducerSum:
		sum := 0.0
		for _, v := range values {
			sum += v
		}
		return sum
	case ReducerMin:
		min := values[0]
		for _, v := range values[1:] {
			if v < min {
				min = v
			}
		}
		return min
	case ReducerMax:
		max := values[0]
		for _, v := range values[1:] {
			if v > max {
				max = v
			}
		}
		return max
	case ReducerCount:
		return float64(len(values))
	case ReducerMedian:
		sorted := make([]float64, len(values))
		copy(sorted, values)
		sort.Float64s(sorted)
		mid := len(sorted) / 2
		if len(sorted)%2 == 0 {
			return (sorted[mid-1] + sorted[mid]) / 2
		}
		return sorted[mid]
	default: // mean
		sum := 0.0
		for _, v := range values {
			sum += v
		}
		return sum / float64(len(values))
	}
}
