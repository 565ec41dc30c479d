package spectral

import "math"

// Conv returns the same-length convolution of signal with kernel,
// center-aligned: edge overhang is trimmed symmetrically, with any odd
// remainder trimmed from the front.
func Conv(signal, kernel []float64) []float64 {
	n, m := len(signal), len(kernel)
	full := make([]float64, n+m-1)
	for i, s := range signal {
		for k, v := range kernel {
			full[i+k] += s * v
		}
	}
	npad := m - 1
	first := npad - npad/2
	return full[first : first+n]
}

// GaussFilt smooths values sampled at positions t with a discretized
// Gaussian kernel of standard deviation sigma. Tail coefficients below
// 1e-6 of the peak are truncated, and the result is divided by the same
// kernel convolved with an all-ones signal to correct edge attenuation.
//
// The positions must be uniformly spaced; non-uniform input silently
// produces wrong results. The kernel is strictly positive, so the
// edge-correction denominator is bounded below by its peak coefficient
// and never vanishes.
func GaussFilt(t, z []float64, sigma float64) []float64 {
	if len(t) < 2 || sigma <= 0 {
		out := make([]float64, len(z))
		copy(out, z)
		return out
	}

	dt := t[1] - t[0]
	a := 1.0 / (math.Sqrt(2.0*math.Pi) * sigma)

	mean := 0.0
	for _, v := range t {
		mean += v
	}
	mean /= float64(len(t))

	threshold := dt * a * 1e-6
	kernel := make([]float64, 0, len(t))
	for _, v := range t {
		c := dt * a * math.Exp(-0.5*(v-mean)*(v-mean)/(sigma*sigma))
		if c >= threshold {
			kernel = append(kernel, c)
		}
	}

	// A smoothing width far below the sample spacing truncates every
	// coefficient; the signal is already smoother than the kernel.
	if len(kernel) == 0 {
		out := make([]float64, len(z))
		copy(out, z)
		return out
	}

	zfilt := Conv(z, kernel)
	ones := make([]float64, len(z))
	for i := range ones {
		ones[i] = 1.0
	}
	onesFilt := Conv(ones, kernel)

	for i := range zfilt {
		zfilt[i] /= onesFilt[i]
	}
	return zfilt
}
