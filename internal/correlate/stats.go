// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package correlate

import "math"

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func variance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := mean(values)
	sumSquares := 0.0
	for _, v := range values {
		diff := v - m
		sumSquares += diff * diff
	}
	return sumSquares / float64(len(values))
}

// pearson returns the Pearson correlation coefficient of two equal-length
// series, and ok=false when it is undefined: fewer than two points, or a
// constant series (zero variance), which would otherwise manufacture a
// spurious correlation.
func pearson(xs, ys []float64) (float64, bool) {
	n := len(xs)
	if n < 2 || n != len(ys) {
		return 0, false
	}

	vx, vy := variance(xs), variance(ys)
	if vx == 0 || vy == 0 {
		return 0, false
	}

	mx, my := mean(xs), mean(ys)
	cov := 0.0
	for i := 0; i < n; i++ {
		cov += (xs[i] - mx) * (ys[i] - my)
	}
	cov /= float64(n)

	r := cov / math.Sqrt(vx*vy)

	// Clamp rounding drift at the boundaries.
	if r > 1 {
		r = 1
	}
	if r < -1 {
		r = -1
	}
	return r, true
}
