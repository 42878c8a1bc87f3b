package analytics

import "fmt"

// TrendResult describes an ordinary least-squares line fit and its
// coefficient of determination.
type TrendResult struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	R2        float64 `json:"r2"`
}

// LinearTrend fits y = slope·x + intercept by centered least squares:
// slope = Σ(x−x̄)(y−ȳ) / Σ(x−x̄)².
//
// Returns ErrInvalidParameter when the slices differ in length or are empty.
// Two degenerate inputs are defined rather than erroring: all-identical x
// yields slope 0 and intercept ȳ, and constant y yields R² = 0.
func LinearTrend(x, y []float64) (TrendResult, error) {
	if len(x) == 0 || len(y) == 0 {
		return TrendResult{}, fmt.Errorf("%w: empty input", ErrInvalidParameter)
	}
	if len(x) != len(y) {
		return TrendResult{}, fmt.Errorf("%w: length mismatch %d vs %d", ErrInvalidParameter, len(x), len(y))
	}

	n := float64(len(x))
	meanX := 0.0
	meanY := 0.0
	for i := range x {
		meanX += x[i]
		meanY += y[i]
	}
	meanX /= n
	meanY /= n

	sxx := 0.0
	sxy := 0.0
	for i := range x {
		dx := x[i] - meanX
		sxx += dx * dx
		sxy += dx * (y[i] - meanY)
	}

	slope := 0.0
	intercept := meanY
	if sxx != 0 {
		slope = sxy / sxx
		intercept = meanY - slope*meanX
	}

	ssTot := 0.0
	ssRes := 0.0
	for i := range x {
		dy := y[i] - meanY
		ssTot += dy * dy
		res := y[i] - (intercept + slope*x[i])
		ssRes += res * res
	}

	r2 := 0.0
	if ssTot > 0 {
		r2 = 1 - ssRes/ssTot
	}

	return TrendResult{Slope: slope, Intercept: intercept, R2: r2}, nil
}
