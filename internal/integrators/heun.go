package integrators

import "github.com/san-kum/neurosim/internal/nmm"

// Heun is the explicit trapezoidal predictor-corrector scheme.
type Heun struct {
	k1        nmm.Matrix
	predicted nmm.Matrix
	obs2      nmm.Matrix
}

func NewHeun() *Heun { return &Heun{} }

func (h *Heun) ensureScratch(rows, regions, obsRows int) {
	if h.k1.Rows() != rows || h.k1.Regions() != regions {
		h.k1 = nmm.NewMatrix(rows, regions)
		h.predicted = nmm.NewMatrix(rows, regions)
	}
	if h.obs2.Rows() != obsRows || h.obs2.Regions() != regions {
		h.obs2 = nmm.NewMatrix(obsRows, regions)
	}
}

// Step reports observables from the pre-step state (the predictor
// evaluation), matching what a recorder expects at time t.
func (h *Heun) Step(m nmm.Model, cpl nmm.Coupler, state, coupling, deriv, obs nmm.Matrix, dt float64) {
	rows, regions := state.Rows(), state.Regions()
	h.ensureScratch(rows, regions, obs.Rows())

	cpl.Apply(state, coupling)
	m.Dfun(state, coupling, h.k1, obs)

	for i := range state {
		row, k, p := state[i], h.k1[i], h.predicted[i]
		for j := range row {
			p[j] = row[j] + dt*k[j]
		}
	}

	cpl.Apply(h.predicted, coupling)
	m.Dfun(h.predicted, coupling, deriv, h.obs2)

	half := dt * 0.5
	for i := range state {
		row, k1, k2 := state[i], h.k1[i], deriv[i]
		for j := range row {
			row[j] += half * (k1[j] + k2[j])
		}
	}
}
