package pipeline

import (
	"math"

	"github.com/gridlens/gridlens/internal/analytics"
	"github.com/gridlens/gridlens/internal/series"
)

// filterByDate keeps points whose timestamp falls inside the range, in their
// original order. Inverted bounds simply match nothing.
func filterByDate(s series.Series, r series.DateRange) series.Series {
	if !r.Active() {
		return s
	}
	out := make(series.Series, 0, len(s))
	for _, p := range s {
		if r.Contains(p.Time) {
			out = append(out, p)
		}
	}
	return out
}

// filterByValue drops non-finite (missing) values and applies the effective
// value bounds: the requested min/max intersected with the IQR envelope when
// outlier exclusion is on. envelope is computed over the full unfiltered
// series and may be nil when exclusion is off.
func filterByValue(s series.Series, r series.ValueRange, envelope *analytics.IQRResult) series.Series {
	min, max, bounded := effectiveBounds(r, envelope)

	out := make(series.Series, 0, len(s))
	for _, p := range s {
		if !series.IsFinite(p.Value) {
			continue
		}
		if bounded && (p.Value < min || p.Value > max) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// effectiveBounds intersects the requested value bounds with the outlier
// envelope. bounded is false when nothing constrains the value axis.
func effectiveBounds(r series.ValueRange, envelope *analytics.IQRResult) (min, max float64, bounded bool) {
	min, max = math.Inf(-1), math.Inf(1)
	if r.Min != nil {
		min = *r.Min
		bounded = true
	}
	if r.Max != nil {
		max = *r.Max
		bounded = true
	}
	if r.ExcludeOutliers && envelope != nil {
		if envelope.LowerBound > min {
			min = envelope.LowerBound
		}
		if envelope.UpperBound < max {
			max = envelope.UpperBound
		}
		bounded = true
	}
	return min, max, bounded
}
