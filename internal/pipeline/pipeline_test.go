package pipeline

import (
	"math"
	"testing"
	"time"

	"github.com/gridlens/gridlens/internal/aggregation"
	"github.com/gridlens/gridlens/internal/series"
)

func i64(v int64) *int64     { return &v }
func f64(v float64) *float64 { return &v }

func hourlySeries(start time.Time, values ...float64) series.Series {
	s := make(series.Series, len(values))
	for i, v := range values {
		s[i] = series.DataPoint{Time: start.Add(time.Duration(i) * time.Hour).UnixMilli(), Value: v}
	}
	return s
}

func TestRecompute_NoParams_PassesThrough(t *testing.T) {
	start := time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC)
	raw := hourlySeries(start, 1, 2, 3)

	p := New(time.UTC)
	result := p.Recompute(raw, Params{})

	if result.FilteredCount != 3 {
		t.Errorf("Expected 3 filtered points, got %d", result.FilteredCount)
	}
	if result.Aggregated != nil || result.Smoothed != nil || result.Trend != nil {
		t.Error("Inactive stages must be absent")
	}
	if len(result.Anomalies) != 0 {
		t.Errorf("Expected no anomalies, got %v", result.Anomalies)
	}
	if result.Stages != (ActiveStages{}) {
		t.Errorf("Expected no active stages, got %+v", result.Stages)
	}
}

func TestRecompute_DateFilter(t *testing.T) {
	start := time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC)
	raw := hourlySeries(start, 1, 2, 3, 4, 5)

	params := Params{
		DateRange: series.DateRange{
			Start: i64(start.Add(1 * time.Hour).UnixMilli()),
			End:   i64(start.Add(3 * time.Hour).UnixMilli()),
		},
	}

	result := New(time.UTC).Recompute(raw, params)

	if result.FilteredCount != 3 {
		t.Errorf("Expected 3 points in range, got %d", result.FilteredCount)
	}
	if !result.Stages.DateFilter {
		t.Error("Date filter stage should be active")
	}
}

func TestRecompute_InvertedDateRangeIsEmpty(t *testing.T) {
	start := time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC)
	raw := hourlySeries(start, 1, 2, 3)

	params := Params{
		DateRange: series.DateRange{
			Start: i64(start.Add(2 * time.Hour).UnixMilli()),
			End:   i64(start.UnixMilli()),
		},
	}

	result := New(time.UTC).Recompute(raw, params)
	if result.FilteredCount != 0 {
		t.Errorf("Inverted bounds should match nothing, got %d points", result.FilteredCount)
	}
}

func TestRecompute_ValueFilterDropsMissingValues(t *testing.T) {
	start := time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC)
	raw := hourlySeries(start, 1, math.NaN(), 3, math.Inf(1), 5)

	result := New(time.UTC).Recompute(raw, Params{})

	if result.FilteredCount != 3 {
		t.Errorf("Expected non-finite values dropped, got %d points", result.FilteredCount)
	}
	for _, p := range result.Filtered {
		if !series.IsFinite(p.Value) {
			t.Errorf("Non-finite value %v survived filtering", p.Value)
		}
	}
}

func TestRecompute_ExcludeOutliers_EnvelopeFromFullSeries(t *testing.T) {
	start := time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC)
	// 100 is an outlier of the full series
	raw := hourlySeries(start, 1, 2, 3, 4, 5, 6, 7, 8, 9, 100)

	params := Params{
		ValueRange: series.ValueRange{ExcludeOutliers: true},
		// Date-filter down to the last two points; the envelope must still
		// come from the full series, so 100 stays excluded.
		DateRange: series.DateRange{Start: i64(start.Add(8 * time.Hour).UnixMilli())},
	}

	result := New(time.UTC).Recompute(raw, params)

	if result.FilteredCount != 1 {
		t.Fatalf("Expected only the value 9 to survive, got %d points", result.FilteredCount)
	}
	if result.Filtered[0].Value != 9 {
		t.Errorf("Expected surviving value 9, got %v", result.Filtered[0].Value)
	}
}

func TestRecompute_ValueBoundsIntersectEnvelope(t *testing.T) {
	start := time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC)
	raw := hourlySeries(start, 1, 2, 3, 4, 5, 6, 7, 8, 9, 100)

	params := Params{
		ValueRange: series.ValueRange{Min: f64(3), ExcludeOutliers: true},
	}

	result := New(time.UTC).Recompute(raw, params)

	// Envelope keeps values in [-4.5, 15.5]; Min raises the floor to 3.
	if result.FilteredCount != 7 {
		t.Fatalf("Expected 7 points (3..9), got %d", result.FilteredCount)
	}
	for _, p := range result.Filtered {
		if p.Value < 3 || p.Value > 15.5 {
			t.Errorf("Value %v escaped effective bounds", p.Value)
		}
	}
}

func TestRecompute_AggregationFeedsDerivedStages(t *testing.T) {
	day1 := time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC)
	raw := series.Series{
		{Time: day1.Add(1 * time.Hour).UnixMilli(), Value: 10},
		{Time: day1.Add(2 * time.Hour).UnixMilli(), Value: 20},
		{Time: day1.Add(25 * time.Hour).UnixMilli(), Value: 30},
		{Time: day1.Add(49 * time.Hour).UnixMilli(), Value: 40},
	}

	params := Params{
		Aggregation: &AggregationSpec{Period: aggregation.PeriodDaily, Reducer: aggregation.ReducerMean},
		Smoothing:   &SmoothingSpec{Method: SmoothingSMA, Window: 2},
		Trend:       true,
	}

	result := New(time.UTC).Recompute(raw, params)

	if result.AggregatedCount != 3 {
		t.Fatalf("Expected 3 daily buckets, got %d", result.AggregatedCount)
	}
	// Buckets: 15, 30, 40. Smoothing and trend run over these 3 values,
	// not the 4 raw points.
	if len(result.Smoothed) != 3 {
		t.Errorf("Smoothed must align with the aggregated series, got length %d", len(result.Smoothed))
	}
	if result.Trend == nil {
		t.Fatal("Expected trend over aggregated series")
	}
	if math.Abs(result.Trend.Slope-12.5) > 1e-9 {
		t.Errorf("Expected slope 12.5 over buckets [15 30 40], got %v", result.Trend.Slope)
	}
}

func TestRecompute_TrendRequiresTwoPoints(t *testing.T) {
	start := time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC)
	raw := hourlySeries(start, 42)

	result := New(time.UTC).Recompute(raw, Params{Trend: true})

	if result.Trend != nil {
		t.Error("Trend must be absent with fewer than 2 points")
	}
	if result.Stages.Trend {
		t.Error("Trend stage must not be reported active")
	}
}

func TestRecompute_InvalidSmoothingYieldsAbsentField(t *testing.T) {
	start := time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC)
	raw := hourlySeries(start, 1, 2, 3)

	params := Params{Smoothing: &SmoothingSpec{Method: SmoothingSMA, Window: 10}}
	result := New(time.UTC).Recompute(raw, params)

	if result.Smoothed != nil {
		t.Error("Smoothing with window > length must be absent, not an error")
	}
	if result.Stages.Smoothing {
		t.Error("Smoothing stage must not be reported active")
	}
}

func TestRecompute_Anomalies(t *testing.T) {
	start := time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC)
	raw := hourlySeries(start, 1, 1, 1, 1, 100)

	params := Params{Anomaly: &AnomalySpec{ThresholdSigma: 1.5}}
	result := New(time.UTC).Recompute(raw, params)

	if len(result.Anomalies) != 1 {
		t.Fatalf("Expected 1 anomaly, got %d", len(result.Anomalies))
	}
	a := result.Anomalies[0]
	if a.Index != 4 || a.Value != 100 {
		t.Errorf("Expected index 4 value 100, got %+v", a)
	}
	if a.Time != raw[4].Time {
		t.Errorf("Anomaly timestamp should match the flagged point")
	}
	if math.Abs(a.ZScore-2) > 1e-9 {
		t.Errorf("Expected z-score 2, got %v", a.ZScore)
	}
}

func TestRecompute_MemoizesLastResult(t *testing.T) {
	start := time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC)
	raw := hourlySeries(start, 1, 2, 3, 4, 5)

	params := Params{
		Smoothing: &SmoothingSpec{Method: SmoothingEMA, Alpha: 0.5},
		Trend:     true,
	}

	p := New(time.UTC)
	first := p.Recompute(raw, params)
	second := p.Recompute(raw, params)

	if first != second {
		t.Error("Unchanged (series, params) must return the memoized result")
	}

	// A changed parameter must displace the memo.
	third := p.Recompute(raw, Params{Trend: true})
	if third == first {
		t.Error("Changed params must produce a new result")
	}

	// And going back recomputes rather than resurrecting a stale slot.
	fourth := p.Recompute(raw, params)
	if fourth == first {
		t.Error("Single memo slot should have been displaced")
	}
	if fourth.Trend == nil || first.Trend == nil || *fourth.Trend != *first.Trend {
		t.Error("Recomputation must be idempotent for identical inputs")
	}
}

func TestRecompute_IdenticalInputsBitIdentical(t *testing.T) {
	start := time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC)
	raw := hourlySeries(start, 3, 1, 4, 1, 5, 9, 2, 6)

	params := Params{
		Aggregation: &AggregationSpec{Period: aggregation.PeriodHourly, Reducer: aggregation.ReducerMedian},
		Anomaly:     &AnomalySpec{ThresholdSigma: 2},
		Trend:       true,
	}

	a := New(time.UTC).Recompute(raw, params)
	b := New(time.UTC).Recompute(raw, params)

	if len(a.Filtered) != len(b.Filtered) || len(a.Aggregated) != len(b.Aggregated) {
		t.Fatal("Result shapes differ across fresh pipelines")
	}
	for i := range a.Aggregated {
		if a.Aggregated[i] != b.Aggregated[i] {
			t.Errorf("Aggregated point %d differs: %+v vs %+v", i, a.Aggregated[i], b.Aggregated[i])
		}
	}
	if (a.Trend == nil) != (b.Trend == nil) || (a.Trend != nil && *a.Trend != *b.Trend) {
		t.Error("Trend differs across fresh pipelines")
	}
}

func TestRecompute_EmptySeries(t *testing.T) {
	params := Params{
		Aggregation: &AggregationSpec{Period: aggregation.PeriodDaily, Reducer: aggregation.ReducerMean},
		Smoothing:   &SmoothingSpec{Method: SmoothingEMA, Alpha: 0.5},
		Trend:       true,
		Anomaly:     &AnomalySpec{ThresholdSigma: 2},
	}

	result := New(time.UTC).Recompute(series.Series{}, params)

	if result.FilteredCount != 0 || result.AggregatedCount != 0 {
		t.Errorf("Expected empty counts, got %d/%d", result.FilteredCount, result.AggregatedCount)
	}
	if result.Trend != nil {
		t.Error("Trend must be absent for empty input")
	}
	if len(result.Anomalies) != 0 {
		t.Error("Expected no anomalies for empty input")
	}
}
