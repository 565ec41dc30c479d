package sim

import (
	"context"
	"fmt"

	"github.com/san-kum/neurosim/internal/nmm"
)

// Simulator drives a model through time: at every step it computes the
// coupling input, calls the model's Dfun through the stepper, and hands
// recorded samples to monitors and metrics.
type Simulator struct {
	model    nmm.Model
	coupler  nmm.Coupler
	stepper  nmm.Stepper
	nRegions int
	monitors []nmm.Monitor
	metrics  []Metric
}

func New(model nmm.Model, coupler nmm.Coupler, stepper nmm.Stepper, nRegions int) *Simulator {
	return &Simulator{
		model:    model,
		coupler:  coupler,
		stepper:  stepper,
		nRegions: nRegions,
	}
}

func (s *Simulator) AddMonitor(m nmm.Monitor) { s.monitors = append(s.monitors, m) }
func (s *Simulator) AddMetric(m Metric)       { s.metrics = append(s.metrics, m) }

func (s *Simulator) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	state := s.model.InitialState(s.nRegions)
	obs := s.model.InitialObserved(s.nRegions)
	deriv := nmm.NewMatrix(s.model.NumStateVars(), s.nRegions)
	coupling := nmm.NewMatrix(len(s.model.CouplingVars()), s.nRegions)

	steps := int(cfg.Duration / cfg.Dt)
	recordEvery := 1
	if cfg.SamplingPeriod > cfg.Dt {
		recordEvery = int(cfg.SamplingPeriod/cfg.Dt + 0.5)
	}

	result := &Result{Metrics: make(map[string]float64)}
	for _, m := range s.metrics {
		m.Reset()
	}

	t := 0.0
	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		s.stepper.Step(s.model, s.coupler, state, coupling, deriv, obs, cfg.Dt)
		t += cfg.Dt
		result.StepsTaken++

		if cfg.ValidateState && !state.IsValid() {
			err := &nmm.SimulationError{Step: i, Time: t, Wrapped: nmm.ErrInvalidState}
			result.Errors = append(result.Errors, err)
			break
		}

		if t < cfg.Warmup || i%recordEvery != 0 {
			continue
		}

		for _, m := range s.metrics {
			m.Observe(t, state, obs)
		}
		for _, mon := range s.monitors {
			mon.OnSample(t, state, obs)
		}
		result.Times = append(result.Times, t)
		result.Samples++
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

func validateConfig(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", cfg.Duration)
	}
	if cfg.Warmup < 0 || cfg.Warmup >= cfg.Duration {
		return fmt.Errorf("warmup must lie within [0, duration), got %f", cfg.Warmup)
	}
	return nil
}
