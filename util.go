package pedals

import (
	"gonum.org/v1/gonum/floats"
)

// Clamp current value between low and high
func Clamp(cur, low, high float64) float64 {
	if low > high {
		low, high = high, low
	}
	if cur < low {
		return low
	}
	if cur > high {
		return high
	}
	return cur
}

// Lerp is a linear interpolation from v0 to v1 where t varies from 0 to 1
func Lerp(v0, v1, t float64) float64 {
	return v0*(1-t) + v1*t
}

// Linspace returns n evenly spaced values from low to high, both included.
// n must be at least 2.
func Linspace(low, high float64, n int) []float64 {
	return floats.Span(make([]float64, n), low, high)
}
