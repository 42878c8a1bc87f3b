package analytics

import "sort"

// IQRResult holds quartiles and the 1.5×IQR outlier envelope for a value
// slice. OutlierIndices are positions in the original, unsorted input.
type IQRResult struct {
	Q1             float64 `json:"q1"`
	Q3             float64 `json:"q3"`
	IQR            float64 `json:"iqr"`
	LowerBound     float64 `json:"lower_bound"`
	UpperBound     float64 `json:"upper_bound"`
	OutlierIndices []int   `json:"outlier_indices"`
}

// ComputeIQR computes quartiles and the 1.5×IQR outlier envelope.
//
// Quartiles are taken at floor(n·0.25) and floor(n·0.75) of an
// ascending-sorted copy. This is a lower-value-biased estimator, not an
// interpolated one; the outlier boundary on small or skewed samples depends
// on it, so downstream consumers rely on exactly this method.
//
// Empty input returns all-zero bounds and no outliers.
func ComputeIQR(values []float64) IQRResult {
	if len(values) == 0 {
		return IQRResult{}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	q1 := sorted[int(float64(len(sorted))*0.25)]
	q3 := sorted[int(float64(len(sorted))*0.75)]
	iqr := q3 - q1

	lower := q1 - 1.5*iqr
	upper := q3 + 1.5*iqr

	var outliers []int
	for i, v := range values {
		if v < lower || v > upper {
			outliers = append(outliers, i)
		}
	}

	return IQRResult{
		Q1:             q1,
		Q3:             q3,
		IQR:            iqr,
		LowerBound:     lower,
		UpperBound:     upper,
		OutlierIndices: outliers,
	}
}
