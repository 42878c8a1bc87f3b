// Package analytics provides the numeric kernels of the analysis pipeline:
// quartile/outlier bounds, moving-average smoothing, least-squares trend
// fitting and z-score anomaly detection. Every function is pure and
// stateless; calling twice with the same input yields identical output.
//
// Engines return an error wrapping ErrInvalidParameter only for caller
// misuse (bad window, bad alpha, mismatched lengths). Degenerate data
// conditions such as empty input, zero variance or zero IQR never error and
// instead produce well-defined default results.
package analytics

import "errors"

// ErrInvalidParameter signals caller misuse, as opposed to a degenerate data
// condition. Use errors.Is to test for it.
var ErrInvalidParameter = errors.New("invalid parameter")
