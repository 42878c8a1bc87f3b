package pipeline

import (
	"github.com/gridlens/gridlens/internal/aggregation"
	"github.com/gridlens/gridlens/internal/series"
)

// SmoothingMethod selects the smoothing transform.
type SmoothingMethod string

const (
	SmoothingSMA SmoothingMethod = "sma"
	SmoothingEMA SmoothingMethod = "ema"
)

// SmoothingSpec configures the smoothing stage. Window applies to SMA,
// Alpha to EMA.
type SmoothingSpec struct {
	Method SmoothingMethod `json:"method"`
	Window int             `json:"window,omitempty"`
	Alpha  float64         `json:"alpha,omitempty"`
}

// AggregationSpec configures the calendar bucketing stage.
type AggregationSpec struct {
	Period  aggregation.Period  `json:"period"`
	Reducer aggregation.Reducer `json:"reducer"`
}

// AnomalySpec configures z-score anomaly detection.
type AnomalySpec struct {
	ThresholdSigma float64 `json:"threshold_sigma"`
}

// Params is the full parameter set of one recomputation. A nil spec pointer
// means the stage is inactive.
type Params struct {
	DateRange   series.DateRange  `json:"date_range"`
	ValueRange  series.ValueRange `json:"value_range"`
	Smoothing   *SmoothingSpec    `json:"smoothing,omitempty"`
	Trend       bool              `json:"trend"`
	Aggregation *AggregationSpec  `json:"aggregation,omitempty"`
	Anomaly     *AnomalySpec      `json:"anomaly,omitempty"`
}

// Equal compares two parameter sets by value, following pointers.
func (p Params) Equal(o Params) bool {
	if !p.DateRange.Equal(o.DateRange) || !p.ValueRange.Equal(o.ValueRange) {
		return false
	}
	if p.Trend != o.Trend {
		return false
	}
	if (p.Smoothing == nil) != (o.Smoothing == nil) {
		return false
	}
	if p.Smoothing != nil && *p.Smoothing != *o.Smoothing {
		return false
	}
	if (p.Aggregation == nil) != (o.Aggregation == nil) {
		return false
	}
	if p.Aggregation != nil && *p.Aggregation != *o.Aggregation {
		return false
	}
	if (p.Anomaly == nil) != (o.Anomaly == nil) {
		return false
	}
	if p.Anomaly != nil && *p.Anomaly != *o.Anomaly {
		return false
	}
	return true
}
