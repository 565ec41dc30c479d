// Package coupling computes afferent coupling inputs from the structural
// connectome.
package coupling

import "github.com/san-kum/neurosim/internal/nmm"

// Linear is connectome-weighted linear coupling: for each coupling
// variable v and region i, coupling[v][i] = g * sum_j C[i][j] * state[v][j].
type Linear struct {
	weights [][]float64
	g       float64
	cvars   []int
}

func NewLinear(weights [][]float64, g float64, cvars []int) *Linear {
	return &Linear{weights: weights, g: g, cvars: cvars}
}

func (l *Linear) Apply(state, coupling nmm.Matrix) {
	for row, v := range l.cvars {
		src := state[v]
		dst := coupling[row]
		for i, wrow := range l.weights {
			acc := 0.0
			for j, w := range wrow {
				acc += w * src[j]
			}
			dst[i] = l.g * acc
		}
	}
}
