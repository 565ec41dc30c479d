// Package integrators provides time-stepping schemes over matrix states.
//
// Steppers advance the full variables × regions state in place; the
// model's Dfun and the coupler are the only callbacks per step.
package integrators

import "github.com/san-kum/neurosim/internal/nmm"

// Euler is the deterministic forward Euler scheme.
type Euler struct{}

func NewEuler() *Euler { return &Euler{} }

func (e *Euler) Step(m nmm.Model, cpl nmm.Coupler, state, coupling, deriv, obs nmm.Matrix, dt float64) {
	cpl.Apply(state, coupling)
	m.Dfun(state, coupling, deriv, obs)
	for i := range state {
		row, d := state[i], deriv[i]
		for j := range row {
			row[j] += dt * d[j]
		}
	}
}
