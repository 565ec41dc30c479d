// Package metrics provides scalar summaries accumulated over recorded
// simulation samples.
package metrics

import (
	"math"

	"github.com/san-kum/neurosim/internal/nmm"
)

// MeanRate averages the excitatory firing rate (observable row 1) over
// all regions and samples.
type MeanRate struct {
	name    string
	sum     float64
	samples int
}

func NewMeanRate() *MeanRate {
	return &MeanRate{name: "mean_rate"}
}

func (m *MeanRate) Name() string { return m.name }

func (m *MeanRate) Observe(t float64, state, obs nmm.Matrix) {
	re := obs[1]
	for _, v := range re {
		m.sum += v
	}
	m.samples += len(re)
}

func (m *MeanRate) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *MeanRate) Reset() {
	m.sum = 0
	m.samples = 0
}

// RateDeviation accumulates the RMS deviation of the excitatory firing
// rate from a target rate, the quantity feedback inhibition drives down.
type RateDeviation struct {
	name    string
	target  float64
	sumSq   float64
	samples int
}

func NewRateDeviation(target float64) *RateDeviation {
	return &RateDeviation{name: "rate_deviation", target: target}
}

func (m *RateDeviation) Name() string { return m.name }

func (m *RateDeviation) Observe(t float64, state, obs nmm.Matrix) {
	re := obs[1]
	for _, v := range re {
		d := v - m.target
		m.sumSq += d * d
	}
	m.samples += len(re)
}

func (m *RateDeviation) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return math.Sqrt(m.sumSq / float64(m.samples))
}

func (m *RateDeviation) Reset() {
	m.sumSq = 0
	m.samples = 0
}
