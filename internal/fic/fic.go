// Package fic provides feedback-inhibition-control gain estimation.
//
// The gain balances excitation and inhibition so each region's excitatory
// firing rate sits near its resting operating point. The closed form here
// scales with a region's total afferent connection strength; a model
// consumes it once during dependent-parameter initialization.
package fic

// Herzog2022 computes the per-region gain as 0.75*g*strength + 1, where
// strength is the sum of a region's incoming connectome weights.
type Herzog2022 struct{}

func NewHerzog2022() *Herzog2022 { return &Herzog2022{} }

func (h *Herzog2022) ComputeGain(weights [][]float64, g float64) []float64 {
	gain := make([]float64, len(weights))
	for i, row := range weights {
		strength := 0.0
		for _, w := range row {
			strength += w
		}
		gain[i] = 0.75*g*strength + 1.0
	}
	return gain
}
