package series

import (
	"encoding/json"
	"math"
	"testing"
)

func TestSeries_Values(t *testing.T) {
	s := Series{{Time: 1, Value: 10}, {Time: 2, Value: 20}}
	values := s.Values()

	if len(values) != 2 {
		t.Fatalf("Expected 2 values, got %d", len(values))
	}
	if values[0] != 10 || values[1] != 20 {
		t.Errorf("Expected [10 20], got %v", values)
	}
}

func TestSeries_MissingCount(t *testing.T) {
	s := Series{
		{Time: 1, Value: 10},
		{Time: 2, Value: math.NaN()},
		{Time: 3, Value: math.Inf(1)},
		{Time: 4, Value: 0},
	}

	if got := s.MissingCount(); got != 2 {
		t.Errorf("Expected 2 missing values, got %d", got)
	}
}

func TestSeries_SortedByTime(t *testing.T) {
	s := Series{{Time: 3, Value: 3}, {Time: 1, Value: 1}, {Time: 2, Value: 2}}
	sorted := s.SortedByTime()

	for i, want := range []int64{1, 2, 3} {
		if sorted[i].Time != want {
			t.Errorf("Position %d: expected time %d, got %d", i, want, sorted[i].Time)
		}
	}

	// Original must be untouched
	if s[0].Time != 3 {
		t.Error("SortedByTime modified the receiver")
	}
}

func TestDateRange_Contains(t *testing.T) {
	start := int64(100)
	end := int64(200)

	tests := []struct {
		name string
		r    DateRange
		ts   int64
		want bool
	}{
		{"unbounded", DateRange{}, 50, true},
		{"inside", DateRange{Start: &start, End: &end}, 150, true},
		{"at start", DateRange{Start: &start, End: &end}, 100, true},
		{"at end", DateRange{Start: &start, End: &end}, 200, true},
		{"before", DateRange{Start: &start, End: &end}, 99, false},
		{"after", DateRange{Start: &start, End: &end}, 201, false},
		{"start only", DateRange{Start: &start}, 1000, true},
		{"end only", DateRange{End: &end}, 1000, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Contains(tt.ts); got != tt.want {
				t.Errorf("Contains(%d) = %v, want %v", tt.ts, got, tt.want)
			}
		})
	}
}

func TestDateRange_InvertedBoundsMatchNothing(t *testing.T) {
	start := int64(200)
	end := int64(100)
	r := DateRange{Start: &start, End: &end}

	for _, ts := range []int64{50, 100, 150, 200, 250} {
		if r.Contains(ts) {
			t.Errorf("Inverted range should not contain %d", ts)
		}
	}
}

func TestValueRange_Equal(t *testing.T) {
	min1 := 1.0
	min2 := 1.0
	min3 := 2.0

	a := ValueRange{Min: &min1}
	b := ValueRange{Min: &min2}
	c := ValueRange{Min: &min3}
	d := ValueRange{Min: &min1, ExcludeOutliers: true}

	if !a.Equal(b) {
		t.Error("Ranges with equal pointed-to values should be equal")
	}
	if a.Equal(c) {
		t.Error("Ranges with different bounds should not be equal")
	}
	if a.Equal(d) {
		t.Error("Ranges with different outlier flags should not be equal")
	}
	if !(ValueRange{}).Equal(ValueRange{}) {
		t.Error("Empty ranges should be equal")
	}
}

func TestDataPoint_MarshalJSON(t *testing.T) {
	got, err := json.Marshal(DataPoint{Time: 42, Value: 1.5})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(got) != `{"time":42,"value":1.5}` {
		t.Errorf("Marshal = %s", got)
	}

	got, err = json.Marshal(DataPoint{Time: 42, Value: math.NaN()})
	if err != nil {
		t.Fatalf("Marshal of missing sample failed: %v", err)
	}
	if string(got) != `{"time":42,"value":null}` {
		t.Errorf("Marshal of missing sample = %s", got)
	}
}
