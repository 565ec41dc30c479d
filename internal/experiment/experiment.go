package experiment

import (
	"context"
	"fmt"

	"github.com/san-kum/neurosim/internal/config"
	"github.com/san-kum/neurosim/internal/coupling"
	"github.com/san-kum/neurosim/internal/metrics"
	"github.com/san-kum/neurosim/internal/sim"
)

// Experiment wires a configured model, connectome and integrator into
// runnable simulations: one per virtual subject.
type Experiment struct {
	cfg     *config.Config
	weights [][]float64
}

func New(cfg *config.Config, weights [][]float64) *Experiment {
	return &Experiment{cfg: cfg, weights: weights}
}

func (e *Experiment) SimConfig() sim.Config {
	return sim.Config{
		Dt:             e.cfg.Dt,
		Duration:       e.cfg.Duration,
		Warmup:         e.cfg.Warmup,
		SamplingPeriod: e.cfg.TR * 1000.0, // TR in s, simulation clock in ms
		Seed:           e.cfg.Seed,
		ValidateState:  true,
	}
}

// Run simulates a single subject, recording the excitatory firing rate,
// and returns the run result plus the regions × time series.
func (e *Experiment) Run(ctx context.Context) (*sim.Result, [][]float64, error) {
	s, ts, err := e.build(e.cfg.Seed)
	if err != nil {
		return nil, nil, err
	}
	result, err := s.Run(ctx, e.SimConfig())
	if err != nil {
		return nil, nil, err
	}
	return result, ts.Series(), nil
}

// RunCohort simulates cfg.Subjects independent virtual subjects in
// parallel and returns the stacked subjects × regions × time series.
func (e *Experiment) RunCohort(ctx context.Context) ([][][]float64, error) {
	n := e.cfg.Subjects
	if n < 1 {
		n = 1
	}
	factory := func(seed int64) (*sim.Simulator, *sim.TimeSeries) {
		s, ts, err := e.build(seed)
		if err != nil {
			// Config was validated by the first build; a later failure
			// would be a programming error.
			panic(fmt.Sprintf("experiment: building subject run: %v", err))
		}
		return s, ts
	}
	if _, _, err := e.build(e.cfg.Seed); err != nil {
		return nil, err
	}
	return sim.NewEnsemble(factory, n, e.cfg.Seed).Run(ctx, e.SimConfig())
}

func (e *Experiment) build(seed int64) (*sim.Simulator, *sim.TimeSeries, error) {
	model, err := BuildModel(e.cfg, e.weights)
	if err != nil {
		return nil, nil, err
	}
	stepper, err := BuildStepper(e.cfg, model, seed)
	if err != nil {
		return nil, nil, err
	}
	cpl := coupling.NewLinear(e.weights, e.cfg.G, model.CouplingVars())

	s := sim.New(model, cpl, stepper, len(e.weights))
	s.AddMetric(metrics.NewMeanRate())
	s.AddMetric(metrics.NewRateDeviation(e.cfg.ModelParams.Rho))

	ts := sim.NewObservableSeries(1)
	s.AddMonitor(ts)
	return s, ts, nil
}
