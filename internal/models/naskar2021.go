package models

import "github.com/san-kum/neurosim/internal/nmm"

// Parameter table rows for Naskar2021.
const (
	nTGlu = iota // glutamate time constant [ms]
	nTGaba
	nWe
	nWi
	nI0
	nW
	nJNMDA
	nMe
	nAe
	nBe
	nDe
	nMi
	nAi
	nBi
	nDi
	nAlphaE
	nAlphaI
	nBetaE
	nBetaI
	nGamma // plasticity learning rate
	nRho   // target excitatory rate [Hz]
	numNaskarParams
)

// Naskar2021 is the Multiscale Dynamic Mean Field model with local
// inhibitory (Vogels-style) synaptic plasticity: the feedback-inhibition
// weight J is a state row driven toward a target excitatory rate rho
// instead of a fixed parameter.
//
// State rows: S_e, S_i, J. Observable rows: Ie, re.
type Naskar2021 struct {
	TGlu  Param
	TGaba Param
	We    Param
	Wi    Param
	I0    Param
	W     Param
	JNMDA Param
	Me    Param
	Ae    Param
	Be    Param
	De    Param
	Mi    Param
	Ai    Param
	Bi    Param
	Di    Param

	AlphaE Param
	AlphaI Param
	BetaE  Param
	BetaI  Param

	Gamma Param
	Rho   Param

	m nmm.Matrix
}

func NewNaskar2021() *Naskar2021 {
	return &Naskar2021{
		TGlu:   Scalar(7.46),
		TGaba:  Scalar(1.82),
		We:     Scalar(1.0),
		Wi:     Scalar(0.7),
		I0:     Scalar(0.382),
		W:      Scalar(1.4),
		JNMDA:  Scalar(0.15),
		Me:     Scalar(1.0),
		Ae:     Scalar(310.0),
		Be:     Scalar(125.0),
		De:     Scalar(0.16),
		Mi:     Scalar(1.0),
		Ai:     Scalar(615.0),
		Bi:     Scalar(177.0),
		Di:     Scalar(0.087),
		AlphaE: Scalar(0.072),
		AlphaI: Scalar(0.53),
		BetaE:  Scalar(0.0066),
		BetaI:  Scalar(0.18),
		Gamma:  Scalar(1.0),
		Rho:    Scalar(3.0),
	}
}

func (n *Naskar2021) Name() string        { return "naskar2021" }
func (n *Naskar2021) NumStateVars() int   { return 3 }
func (n *Naskar2021) NumObservables() int { return 2 }
func (n *Naskar2021) CouplingVars() []int { return []int{0} }

// Build packs the parameter table for nRegions regions. The plasticity
// state J is excluded: it lives in the state matrix, not the table.
func (n *Naskar2021) Build(nRegions int) error {
	params := make([]Param, numNaskarParams)
	params[nTGlu] = n.TGlu
	params[nTGaba] = n.TGaba
	params[nWe] = n.We
	params[nWi] = n.Wi
	params[nI0] = n.I0
	params[nW] = n.W
	params[nJNMDA] = n.JNMDA
	params[nMe] = n.Me
	params[nAe] = n.Ae
	params[nBe] = n.Be
	params[nDe] = n.De
	params[nMi] = n.Mi
	params[nAi] = n.Ai
	params[nBi] = n.Bi
	params[nDi] = n.Di
	params[nAlphaE] = n.AlphaE
	params[nAlphaI] = n.AlphaI
	params[nBetaE] = n.BetaE
	params[nBetaI] = n.BetaI
	params[nGamma] = n.Gamma
	params[nRho] = n.Rho

	m, err := buildTable(nRegions, params)
	if err != nil {
		return err
	}
	n.m = m
	return nil
}

func (n *Naskar2021) InitialState(nRegions int) nmm.Matrix {
	return nmm.Filled(nRegions, 0.001, 0.001, 1.0)
}

func (n *Naskar2021) InitialObserved(nRegions int) nmm.Matrix {
	return nmm.Filled(nRegions, 0.0, 0.0)
}

// Dfun evaluates the model equations for every region. J is read from
// state row 2 and is not clipped; only Se and Si are bounded.
func (n *Naskar2021) Dfun(state, coupling, deriv, obs nmm.Matrix) {
	m := n.m
	se, si, jw, c0 := state[0], state[1], state[2], coupling[0]
	for j := range se {
		Se := clip01(se[j])
		Si := clip01(si[j])
		J := jw[j]

		ie := m[nWe][j]*m[nI0][j] + m[nW][j]*m[nJNMDA][j]*Se + m[nJNMDA][j]*c0[j] - J*Si
		ii := m[nWi][j]*m[nI0][j] + m[nJNMDA][j]*Se - Si

		re := rate(m[nMe][j]*(m[nAe][j]*ie-m[nBe][j]), m[nDe][j])
		ri := rate(m[nMi][j]*(m[nAi][j]*ii-m[nBi][j]), m[nDi][j])

		// Rates are in Hz; derivatives per ms, hence the /1000.
		deriv[0][j] = -Se*m[nBetaE][j] + m[nAlphaE][j]*m[nTGlu][j]*(1.0-Se)*re/1000.0
		deriv[1][j] = -Si*m[nBetaI][j] + m[nAlphaI][j]*m[nTGaba][j]*(1.0-Si)*ri/1000.0
		// Local inhibitory plasticity: homeostatic drive of re toward rho.
		deriv[2][j] = m[nGamma][j] * (ri / 1000.0) * (re - m[nRho][j]) / 1000.0

		obs[0][j] = ie
		obs[1][j] = re
	}
}
