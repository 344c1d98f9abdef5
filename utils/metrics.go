package utils

// OccupancyPercentage returns occupied rooms as a percentage of total capacity.
// A zero capacity yields 0.0 rather than dividing by zero.
func OccupancyPercentage(occupied, total int) float64 {
	if total == 0 {
		return 0.0
	}
	return float64(occupied) / float64(total) * 100
}

// Mean returns the arithmetic mean of values, or 0.0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0.0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// PercentageChange returns the percentage change from old to new. A zero old
// value yields 0.0.
func PercentageChange(oldValue, newValue float64) float64 {
	if oldValue == 0 {
		return 0.0
	}
	return (newValue - oldValue) / oldValue * 100
}
