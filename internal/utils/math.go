package utils

import "math"

// RoundTo rounds v half away from zero to the given number of decimal places
func RoundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// IsWhole reports whether v has no fractional part
func IsWhole(v float64) bool {
	return v == math.Trunc(v) && !math.IsInf(v, 0)
}

// ClampFloat bounds v to [lo, hi]
func ClampFloat(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// ClampInt bounds v to [lo, hi]
func ClampInt(v, lo, hi int) int {
	return max(lo, min(hi, v))
}

// Binomial returns C(n, k) as a float64, 0 when k is out of range
func Binomial(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	result := 1.0
	for i := 1; i <= k; i++ {
		result = result * float64(n-k+i) / float64(i)
	}
	return result
}
