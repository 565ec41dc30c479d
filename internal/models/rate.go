package models

import "math"

func clip01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// rate is the sigmoidal transfer function y / (1 - exp(-d*y)) mapping a
// gain-scaled input current y = a*x - b to a firing rate in Hz.
//
// y = 0 is a removable singularity with limit 1/d. The denominator is
// guarded explicitly so the hot path never evaluates 0/0; away from zero
// Expm1 keeps the denominator accurate where exp(-d*y) is close to 1.
func rate(y, d float64) float64 {
	if math.Abs(y) < 1e-9 {
		return 1.0 / d
	}
	return y / -math.Expm1(-d*y)
}
