package models

import (
	"fmt"

	"github.com/san-kum/neurosim/internal/nmm"
)

// Param is a scalar-or-per-region model parameter. A length-1 Param is
// broadcast across all regions when the parameter table is packed.
type Param []float64

// Scalar returns a Param holding a single value for all regions.
func Scalar(v float64) Param { return Param{v} }

// PerRegion returns a Param with one value per region.
func PerRegion(vs []float64) Param {
	p := make(Param, len(vs))
	copy(p, vs)
	return p
}

func (p Param) expand(row []float64) error {
	switch len(p) {
	case 1:
		for j := range row {
			row[j] = p[0]
		}
	case len(row):
		copy(row, p)
	default:
		return fmt.Errorf("%w: got %d values for %d regions", nmm.ErrParamLength, len(p), len(row))
	}
	return nil
}

// buildTable packs named parameters into a table with one row per
// parameter and one column per region (row order = slice order). Built
// once per model configuration; callers must not mutate it afterward.
func buildTable(nRegions int, params []Param) (nmm.Matrix, error) {
	m := nmm.NewMatrix(len(params), nRegions)
	for i, p := range params {
		if err := p.expand(m[i]); err != nil {
			return nil, fmt.Errorf("parameter row %d: %w", i, err)
		}
	}
	return m, nil
}

// GainProvider supplies the per-region feedback-inhibition gain from the
// structural connectome and a global coupling strength. Implemented by
// the fic package; consumed during dependent-parameter initialization.
type GainProvider interface {
	ComputeGain(weights [][]float64, g float64) []float64
}
