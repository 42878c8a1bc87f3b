package analytics

import (
	"errors"
	"math"
	"testing"
)

func TestLinearTrend_PerfectLine(t *testing.T) {
	result, err := LinearTrend([]float64{0, 1, 2, 3}, []float64{0, 2, 4, 6})
	if err != nil {
		t.Fatalf("LinearTrend failed: %v", err)
	}

	if result.Slope != 2 {
		t.Errorf("Expected slope 2, got %v", result.Slope)
	}
	if result.Intercept != 0 {
		t.Errorf("Expected intercept 0, got %v", result.Intercept)
	}
	if result.R2 != 1 {
		t.Errorf("Expected R² 1, got %v", result.R2)
	}
}

func TestLinearTrend_NoisyLine(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	y := []float64{1.1, 2.9, 5.2, 6.8, 9.1}

	result, err := LinearTrend(x, y)
	if err != nil {
		t.Fatalf("LinearTrend failed: %v", err)
	}

	if math.Abs(result.Slope-2) > 0.1 {
		t.Errorf("Expected slope near 2, got %v", result.Slope)
	}
	if result.R2 <= 0.99 {
		t.Errorf("Expected R² above 0.99 for a near-perfect fit, got %v", result.R2)
	}
}

func TestLinearTrend_LengthMismatch(t *testing.T) {
	_, err := LinearTrend([]float64{1, 2}, []float64{1, 2, 3})
	if !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("Expected ErrInvalidParameter, got %v", err)
	}
}

func TestLinearTrend_EmptyInput(t *testing.T) {
	_, err := LinearTrend(nil, nil)
	if !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("Expected ErrInvalidParameter, got %v", err)
	}
}

func TestLinearTrend_AllXIdentical(t *testing.T) {
	result, err := LinearTrend([]float64{5, 5, 5}, []float64{1, 2, 3})
	if err != nil {
		t.Fatalf("Degenerate x should not error: %v", err)
	}

	if result.Slope != 0 {
		t.Errorf("Expected slope 0 for identical x, got %v", result.Slope)
	}
	if result.Intercept != 2 {
		t.Errorf("Expected intercept ȳ=2, got %v", result.Intercept)
	}
}

func TestLinearTrend_ConstantY(t *testing.T) {
	result, err := LinearTrend([]float64{1, 2, 3}, []float64{4, 4, 4})
	if err != nil {
		t.Fatalf("Constant y should not error: %v", err)
	}

	if result.Slope != 0 {
		t.Errorf("Expected slope 0, got %v", result.Slope)
	}
	if result.R2 != 0 {
		t.Errorf("Expected R² 0 for zero total variance, got %v", result.R2)
	}
	if math.IsNaN(result.R2) {
		t.Error("R² must not be NaN")
	}
}

func TestLinearTrend_Idempotent(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4, 5}
	y := []float64{2, 1, 4, 3, 6, 5}

	first, err := LinearTrend(x, y)
	if err != nil {
		t.Fatalf("LinearTrend failed: %v", err)
	}
	second, err := LinearTrend(x, y)
	if err != nil {
		t.Fatalf("LinearTrend failed: %v", err)
	}

	if first != second {
		t.Errorf("Repeated calls differ: %+v vs %+v", first, second)
	}
}
