package ranking

import "sort"

// normalize maps v into [0,1] relative to the observed sample range. A flat
// sample (min == max) normalizes to 0 so single-value attributes never skew
// a composite score.
func normalize(v, min, max float64) float64 {
	if max <= min {
		return 0
	}
	n := (v - min) / (max - min)
	if n < 0 {
		return 0
	}
	if n > 1 {
		return 1
	}
	return n
}

func sampleRange(values []float64) (min, max float64, ok bool) {
	if len(values) == 0 {
		return 0, 0, false
	}
	min, max = values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max, true
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// AttributeStats summarizes one raw numeric attribute across a candidate set.
type AttributeStats struct {
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
}

func describeAttribute(values []float64) AttributeStats {
	stats := AttributeStats{Count: len(values)}
	if min, max, ok := sampleRange(values); ok {
		stats.Min = min
		stats.Max = max
		stats.Mean = mean(values)
		stats.Median = median(values)
	}
	return stats
}
