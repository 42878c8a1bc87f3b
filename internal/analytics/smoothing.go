package analytics

import "fmt"

// SMA computes a simple moving average with a best-effort boundary: indices
// before window−1 receive the mean of all points from the start (a partial
// window), so the output always has the same length as the input.
//
// Returns ErrInvalidParameter when window is not positive or exceeds the
// input length. Empty input yields empty output without error.
func SMA(values []float64, window int) ([]float64, error) {
	if window <= 0 {
		return nil, fmt.Errorf("%w: window must be positive, got %d", ErrInvalidParameter, window)
	}
	if len(values) == 0 {
		return []float64{}, nil
	}
	if window > len(values) {
		return nil, fmt.Errorf("%w: window %d exceeds series length %d", ErrInvalidParameter, window, len(values))
	}

	out := make([]float64, len(values))
	sum := 0.0
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		n := i + 1
		if n > window {
			n = window
		}
		out[i] = sum / float64(n)
	}
	return out, nil
}

// EMA computes an exponential moving average seeded with the first value:
// out[0] = values[0], out[t] = alpha·values[t] + (1−alpha)·out[t−1].
//
// Returns ErrInvalidParameter when alpha is outside (0,1]. Empty input
// yields empty output without error.
func EMA(values []float64, alpha float64) ([]float64, error) {
	if alpha <= 0 || alpha > 1 {
		return nil, fmt.Errorf("%w: alpha must be in (0,1], got %v", ErrInvalidParameter, alpha)
	}
	if len(values) == 0 {
		return []float64{}, nil
	}

	out := make([]float64, len(values))
	out[0] = values[0]
	for i := 1; i < len(values); i++ {
		out[i] = alpha*values[i] + (1-alpha)*out[i-1]
	}
	return out, nil
}
