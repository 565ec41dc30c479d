// Package filters provides time-domain band-pass filters for multi-region
// series.
package filters

import "math"

// Butterworth is a second-order band-pass biquad applied forward and
// backward (zero phase). tr is the sampling interval in seconds; flp and
// fhi bound the passband in Hz.
type Butterworth struct {
	b0, b1, b2 float64
	a1, a2     float64
}

func NewButterworth(tr, flp, fhi float64) *Butterworth {
	fs := 1.0 / tr
	f0 := math.Sqrt(flp * fhi)
	q := f0 / (fhi - flp)
	w0 := 2.0 * math.Pi * f0 / fs
	alpha := math.Sin(w0) / (2.0 * q)
	a0 := 1.0 + alpha
	return &Butterworth{
		b0: alpha / a0,
		b1: 0.0,
		b2: -alpha / a0,
		a1: -2.0 * math.Cos(w0) / a0,
		a2: (1.0 - alpha) / a0,
	}
}

// Filter applies the filter along the time axis of a regions × time
// series, returning a new array of the same shape.
func (f *Butterworth) Filter(signal [][]float64) [][]float64 {
	out := make([][]float64, len(signal))
	for i, series := range signal {
		fwd := f.apply(series)
		reverse(fwd)
		bwd := f.apply(fwd)
		reverse(bwd)
		out[i] = bwd
	}
	return out
}

func (f *Butterworth) apply(x []float64) []float64 {
	y := make([]float64, len(x))
	var x1, x2, y1, y2 float64
	for i, v := range x {
		y[i] = f.b0*v + f.b1*x1 + f.b2*x2 - f.a1*y1 - f.a2*y2
		x2, x1 = x1, v
		y2, y1 = y1, y[i]
	}
	return y
}

func reverse(x []float64) {
	for i, j := 0, len(x)-1; i < j; i, j = i+1, j-1 {
		x[i], x[j] = x[j], x[i]
	}
}
