package util

type Number interface {
	int | int64 | float64
}

// Sum adds up values as float64.
func Sum[T Number](values []T) float64 {
	var sum float64
	for _, v := range values {
		sum += float64(v)
	}
	return sum
}

// CalculateAverage divides the sum of values by count. A non-positive count
// yields 0 instead of NaN or Inf.
func CalculateAverage[T Number](values []T, count int) float64 {
	if count <= 0 {
		return 0
	}
	return Sum(values) / float64(count)
}

// Mean is the arithmetic mean of values, 0 for an empty slice.
func Mean[T Number](values []T) float64 {
	return CalculateAverage(values, len(values))
}
