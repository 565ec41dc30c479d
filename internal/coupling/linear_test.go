package coupling

import (
	"testing"

	"github.com/san-kum/neurosim/internal/nmm"
)

func TestLinearApply(t *testing.T) {
	weights := [][]float64{
		{0.0, 0.5},
		{0.25, 0.0},
	}
	l := NewLinear(weights, 2.0, []int{0})

	state := nmm.Matrix{{1.0, 4.0}, {9.0, 9.0}}
	cpl := nmm.NewMatrix(1, 2)
	l.Apply(state, cpl)

	// region 0: 2 * (0*1 + 0.5*4) = 4; region 1: 2 * (0.25*1) = 0.5
	if cpl[0][0] != 4.0 || cpl[0][1] != 0.5 {
		t.Errorf("coupling = %v, want [4 0.5]", cpl[0])
	}
}

func TestLinearMultipleVars(t *testing.T) {
	weights := [][]float64{{0, 1}, {1, 0}}
	l := NewLinear(weights, 1.0, []int{0, 2})

	state := nmm.Matrix{{1, 2}, {0, 0}, {5, 7}}
	cpl := nmm.NewMatrix(2, 2)
	l.Apply(state, cpl)

	if cpl[0][0] != 2 || cpl[0][1] != 1 {
		t.Errorf("row 0 coupling = %v, want [2 1]", cpl[0])
	}
	if cpl[1][0] != 7 || cpl[1][1] != 5 {
		t.Errorf("row 1 coupling = %v, want [7 5]", cpl[1])
	}
}

func TestLinearZeroGain(t *testing.T) {
	l := NewLinear([][]float64{{0, 1}, {1, 0}}, 0.0, []int{0})
	state := nmm.Matrix{{3, 4}}
	cpl := nmm.Matrix{{99, 99}}
	l.Apply(state, cpl)
	if cpl[0][0] != 0 || cpl[0][1] != 0 {
		t.Errorf("zero gain should zero the coupling, got %v", cpl[0])
	}
}
