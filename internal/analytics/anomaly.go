package analytics

import "math"

// MeanStdDev computes the mean and population standard deviation
// (divisor n, not n−1) of the values. Empty input returns (0, 0).
//
// The population estimator is deliberate: anomaly scores here are
// descriptive, not inferential. Do not substitute the sample estimator.
func MeanStdDev(values []float64) (mean, stdDev float64) {
	if len(values) == 0 {
		return 0, 0
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}
	mean = sum / float64(len(values))

	varianceSum := 0.0
	for _, v := range values {
		diff := v - mean
		varianceSum += diff * diff
	}
	stdDev = math.Sqrt(varianceSum / float64(len(values)))

	return mean, stdDev
}

// DetectAnomalies flags index i when |values[i] − mean| / stdDev exceeds
// thresholdSigma, using the population standard deviation over the full
// input. Empty input or a non-positive threshold yields an empty result.
//
// Zero variance flags nothing: with stdDev == 0 every point equals the mean,
// and dividing through would only manufacture NaN or Inf scores.
func DetectAnomalies(values []float64, thresholdSigma float64) []int {
	if len(values) == 0 || thresholdSigma <= 0 {
		return nil
	}

	mean, stdDev := MeanStdDev(values)
	if stdDev == 0 {
		return nil
	}

	var anomalies []int
	for i, v := range values {
		if math.Abs(v-mean)/stdDev > thresholdSigma {
			anomalies = append(anomalies, i)
		}
	}
	return anomalies
}
