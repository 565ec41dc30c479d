// Package optim fits global model parameters against empirical summary
// statistics.
package optim

import (
	"context"
	"math"

	"github.com/san-kum/neurosim/internal/config"
	"github.com/san-kum/neurosim/internal/experiment"
	"github.com/san-kum/neurosim/internal/spectral"
)

// CouplingFit grid-searches the global coupling strength g, scoring each
// candidate by the mean squared difference between simulated and
// empirical per-region dominant frequencies.
type CouplingFit struct {
	gMin, gMax, step float64
}

func NewCouplingFit(gMin, gMax, step float64) *CouplingFit {
	return &CouplingFit{gMin: gMin, gMax: gMax, step: step}
}

func (f *CouplingFit) Fit(
	ctx context.Context,
	cfg *config.Config,
	weights [][]float64,
	empirical []float64,
	bpf spectral.BandPass,
) (bestG, bestScore float64, err error) {

	bestScore = math.Inf(1)
	for g := f.gMin; g <= f.gMax+1e-12; g += f.step {
		cfgCopy := *cfg
		cfgCopy.G = g

		series, runErr := experiment.New(&cfgCopy, weights).RunCohort(ctx)
		if runErr != nil {
			return 0, 0, runErr
		}

		peaks := spectral.DominantFrequenciesStacked(series, cfg.TR, bpf)
		score := 0.0
		for i, p := range peaks {
			d := p - empirical[i]
			score += d * d
		}
		score /= float64(len(peaks))

		if score < bestScore {
			bestScore = score
			bestG = g
		}
	}
	return bestG, bestScore, nil
}
