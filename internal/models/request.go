// Package models defines the HTTP request and response payloads.
package models

// PointPayload is one sample in an upload. Time accepts an RFC3339 string or
// an epoch-milliseconds number; Value accepts a number or null for a missing
// sample.
type PointPayload struct {
	Time  interface{} `json:"time"`
	Value interface{} `json:"value"`
}

// UploadVariableRequest represents a variable upload.
type UploadVariableRequest struct {
	Name    string         `json:"name"`
	Units   string         `json:"units,omitempty"`
	Replace bool           `json:"replace,omitempty"`
	Points  []PointPayload `json:"points"`
}

// DateRangePayload bounds the analysis in time (epoch milliseconds, UTC).
type DateRangePayload struct {
	Start *int64 `json:"start,omitempty"`
	End   *int64 `json:"end,omitempty"`
}

// ValueRangePayload bounds the analysis by value.
type ValueRangePayload struct {
	Min             *float64 `json:"min,omitempty"`
	Max             *float64 `json:"max,omitempty"`
	ExcludeOutliers bool     `json:"exclude_outliers,omitempty"`
}

// SmoothingPayload configures smoothing: method "sma" with a window, or
// "ema" with an alpha in (0,1].
type SmoothingPayload struct {
	Method string  `json:"method"`
	Window int     `json:"window,omitempty"`
	Alpha  float64 `json:"alpha,omitempty"`
}

// AggregationPayload configures calendar bucketing.
type AggregationPayload struct {
	Period  string `json:"period"`
	Reducer string `json:"reducer"`
}

// AnomalyPayload configures z-score anomaly detection.
type AnomalyPayload struct {
	ThresholdSigma float64 `json:"threshold_sigma"`
}

// AnalyzeRequest is the full parameter set of one analysis run.
type AnalyzeRequest struct {
	DateRange   *DateRangePayload   `json:"date_range,omitempty"`
	ValueRange  *ValueRangePayload  `json:"value_range,omitempty"`
	Smoothing   *SmoothingPayload   `json:"smoothing,omitempty"`
	Trend       bool                `json:"trend,omitempty"`
	Aggregation *AggregationPayload `json:"aggregation,omitempty"`
	Anomaly     *AnomalyPayload     `json:"anomaly,omitempty"`
}
