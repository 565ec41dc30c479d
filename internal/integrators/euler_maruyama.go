package integrators

import (
	"math"
	"math/rand"

	"github.com/san-kum/neurosim/internal/nmm"
)

// EulerMaruyama is forward Euler with additive Gaussian noise per state
// row, the usual scheme for stochastic neural-mass simulations. A sigma
// of zero for a row (e.g. a plasticity weight) leaves that row
// deterministic.
type EulerMaruyama struct {
	sigma []float64
	rng   *rand.Rand
}

func NewEulerMaruyama(sigma []float64, seed int64) *EulerMaruyama {
	return &EulerMaruyama{sigma: sigma, rng: rand.New(rand.NewSource(seed))}
}

func (e *EulerMaruyama) Step(m nmm.Model, cpl nmm.Coupler, state, coupling, deriv, obs nmm.Matrix, dt float64) {
	cpl.Apply(state, coupling)
	m.Dfun(state, coupling, deriv, obs)

	sqrtDt := math.Sqrt(dt)
	for i := range state {
		row, d := state[i], deriv[i]
		s := 0.0
		if i < len(e.sigma) {
			s = e.sigma[i]
		}
		if s == 0 {
			for j := range row {
				row[j] += dt * d[j]
			}
			continue
		}
		for j := range row {
			row[j] += dt*d[j] + sqrtDt*s*e.rng.NormFloat64()
		}
	}
}
