package nmm

import "math"

// Matrix is a dense row-major table, one row per variable and one column
// per region. State vectors, coupling inputs, observables and parameter
// tables all share this shape.
type Matrix [][]float64

func NewMatrix(rows, regions int) Matrix {
	m := make(Matrix, rows)
	for i := range m {
		m[i] = make([]float64, regions)
	}
	return m
}

// Filled returns a rows × regions matrix with every row set to the
// corresponding fill value.
func Filled(regions int, fill ...float64) Matrix {
	m := NewMatrix(len(fill), regions)
	for i, f := range fill {
		for j := range m[i] {
			m[i][j] = f
		}
	}
	return m
}

func (m Matrix) Rows() int { return len(m) }

func (m Matrix) Regions() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

func (m Matrix) Clone() Matrix {
	c := make(Matrix, len(m))
	for i := range m {
		c[i] = make([]float64, len(m[i]))
		copy(c[i], m[i])
	}
	return c
}

func (m Matrix) CopyFrom(src Matrix) {
	for i := range m {
		copy(m[i], src[i])
	}
}

func (m Matrix) IsValid() bool {
	for i := range m {
		for _, v := range m[i] {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}
	return true
}

// Model is the right-hand side of a region-wise ODE system.
//
// Dfun writes the state derivative and the observable rows for every
// region into caller-owned buffers. It must not mutate state or coupling
// and must not allocate; shape agreement between the buffers and the
// model's declared dimensions is a caller contract, not a checked error.
type Model interface {
	Name() string
	NumStateVars() int
	NumObservables() int

	// CouplingVars lists the state rows whose activity propagates
	// through the connectome (row indices into the coupling input).
	CouplingVars() []int

	InitialState(nRegions int) Matrix
	InitialObserved(nRegions int) Matrix

	Dfun(state, coupling, deriv, obs Matrix)
}

// Coupler computes the afferent coupling input from the current state,
// one row per coupling variable declared by the model.
type Coupler interface {
	Apply(state, coupling Matrix)
}

// Stepper advances state in place by one integration step of size dt
// (milliseconds), using deriv and obs as scratch for Dfun outputs. The
// coupler is invoked for each sub-stage that needs fresh coupling input.
type Stepper interface {
	Step(m Model, cpl Coupler, state, coupling, deriv, obs Matrix, dt float64)
}

// Monitor observes the simulation at each recorded sample.
type Monitor interface {
	OnSample(t float64, state, obs Matrix)
}
