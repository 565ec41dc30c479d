package models

import "github.com/san-kum/neurosim/internal/nmm"

// Parameter table rows for Deco2018. Row order must match the slice
// passed to buildTable in Build.
const (
	dTauE = iota // excitatory time constant taon [ms]
	dTauI        // inhibitory time constant taog [ms]
	dGammaE
	dGammaI
	dI0 // overall effective external input [nA]
	dW
	dJNMDA // NMDA current [nA]
	dJextE
	dJextI
	dAe
	dBe
	dDe
	dAi
	dBi
	dDi
	dJ // feedback inhibition gain
	dIExt
	dReceptor // receptor density, per region
	dWGainE
	dWGainI
	numDecoParams
)

// Deco2018 is the Dynamic Mean Field (reduced Wong-Wang) model with a
// fixed per-region feedback-inhibition gain J, optionally modulated by a
// receptor-density gain on both transfer functions.
//
// State rows: S_e, S_i. Observable rows: Ie, re.
type Deco2018 struct {
	TauE   Param
	TauI   Param
	GammaE Param
	GammaI Param
	I0     Param
	W      Param
	JNMDA  Param
	JextE  Param
	JextI  Param
	Ae     Param
	Be     Param
	De     Param
	Ai     Param
	Bi     Param
	Di     Param

	// J is the feedback-inhibition gain. Leave nil to use the default
	// (1.0 everywhere) or, with AutoFIC set, to have BuildFIC derive it
	// from the connectome.
	J    Param
	IExt Param

	Receptor Param
	WGainE   Param
	WGainI   Param

	// AutoFIC enables dependent initialization of J in BuildFIC.
	AutoFIC bool

	m nmm.Matrix
}

func NewDeco2018() *Deco2018 {
	return &Deco2018{
		TauE:     Scalar(100.0),
		TauI:     Scalar(10.0),
		GammaE:   Scalar(0.641),
		GammaI:   Scalar(1.0),
		I0:       Scalar(0.382),
		W:        Scalar(1.4),
		JNMDA:    Scalar(0.15),
		JextE:    Scalar(1.0),
		JextI:    Scalar(0.7),
		Ae:       Scalar(310.0),
		Be:       Scalar(125.0),
		De:       Scalar(0.16),
		Ai:       Scalar(615.0),
		Bi:       Scalar(177.0),
		Di:       Scalar(0.087),
		IExt:     Scalar(0.0),
		Receptor: Scalar(0.0),
		WGainE:   Scalar(0.0),
		WGainI:   Scalar(0.0),
	}
}

func (d *Deco2018) Name() string        { return "deco2018" }
func (d *Deco2018) NumStateVars() int   { return 2 }
func (d *Deco2018) NumObservables() int { return 2 }
func (d *Deco2018) CouplingVars() []int { return []int{0} }

// Build packs the parameter table for nRegions regions. Must be called
// exactly once after all parameters are finalized; mutating a parameter
// afterward does not propagate to the table.
func (d *Deco2018) Build(nRegions int) error {
	j := d.J
	if j == nil {
		j = Scalar(1.0)
	}
	params := make([]Param, numDecoParams)
	params[dTauE] = d.TauE
	params[dTauI] = d.TauI
	params[dGammaE] = d.GammaE
	params[dGammaI] = d.GammaI
	params[dI0] = d.I0
	params[dW] = d.W
	params[dJNMDA] = d.JNMDA
	params[dJextE] = d.JextE
	params[dJextI] = d.JextI
	params[dAe] = d.Ae
	params[dBe] = d.Be
	params[dDe] = d.De
	params[dAi] = d.Ai
	params[dBi] = d.Bi
	params[dDi] = d.Di
	params[dJ] = j
	params[dIExt] = d.IExt
	params[dReceptor] = d.Receptor
	params[dWGainE] = d.WGainE
	params[dWGainI] = d.WGainI

	m, err := buildTable(nRegions, params)
	if err != nil {
		return err
	}
	d.m = m
	return nil
}

// BuildFIC builds the table like Build, first deriving J from the
// connectome via gain when AutoFIC is set and J was not supplied.
func (d *Deco2018) BuildFIC(nRegions int, gain GainProvider, weights [][]float64, g float64) error {
	if d.AutoFIC && d.J == nil {
		d.J = PerRegion(gain.ComputeGain(weights, g))
	}
	return d.Build(nRegions)
}

func (d *Deco2018) InitialState(nRegions int) nmm.Matrix {
	return nmm.Filled(nRegions, 0.001, 0.001)
}

func (d *Deco2018) InitialObserved(nRegions int) nmm.Matrix {
	return nmm.Filled(nRegions, 0.0, 0.0)
}

// Dfun evaluates the model equations for every region. Se and Si are
// clipped into [0,1] in locals; the stored state is left untouched.
func (d *Deco2018) Dfun(state, coupling, deriv, obs nmm.Matrix) {
	m := d.m
	se, si, c0 := state[0], state[1], coupling[0]
	for j := range se {
		Se := clip01(se[j])
		Si := clip01(si[j])

		// Excitatory and inhibitory input currents; IExt = 0 is the
		// resting-state condition.
		ie := m[dJextE][j]*m[dI0][j] + m[dW][j]*m[dJNMDA][j]*Se + m[dJNMDA][j]*c0[j] - m[dJ][j]*Si + m[dIExt][j]
		ii := m[dJextI][j]*m[dI0][j] + m[dJNMDA][j]*Se - Si

		re := rate((m[dAe][j]*ie-m[dBe][j])*(1.0+m[dReceptor][j]*m[dWGainE][j]), m[dDe][j])
		ri := rate((m[dAi][j]*ii-m[dBi][j])*(1.0+m[dReceptor][j]*m[dWGainI][j]), m[dDi][j])

		// Rates are in Hz; time constants in ms, hence the /1000.
		deriv[0][j] = -Se/m[dTauE][j] + m[dGammaE][j]*(1.0-Se)*re/1000.0
		deriv[1][j] = -Si/m[dTauI][j] + m[dGammaI][j]*ri/1000.0

		obs[0][j] = ie
		obs[1][j] = re
	}
}
