package sim

import (
	"context"
	"testing"

	"github.com/san-kum/neurosim/internal/nmm"
)

type testModel struct{}

func (testModel) Name() string        { return "test" }
func (testModel) NumStateVars() int   { return 1 }
func (testModel) NumObservables() int { return 2 }
func (testModel) CouplingVars() []int { return []int{0} }

func (testModel) InitialState(n int) nmm.Matrix    { return nmm.Filled(n, 1.0) }
func (testModel) InitialObserved(n int) nmm.Matrix { return nmm.Filled(n, 0.0, 0.0) }

func (testModel) Dfun(state, coupling, deriv, obs nmm.Matrix) {
	for j := range state[0] {
		deriv[0][j] = -state[0][j]
		obs[0][j] = state[0][j]
		obs[1][j] = state[0][j]
	}
}

type testCoupler struct{}

func (testCoupler) Apply(state, coupling nmm.Matrix) {
	for j := range coupling[0] {
		coupling[0][j] = 0
	}
}

type testStepper struct{}

func (testStepper) Step(m nmm.Model, cpl nmm.Coupler, state, coupling, deriv, obs nmm.Matrix, dt float64) {
	cpl.Apply(state, coupling)
	m.Dfun(state, coupling, deriv, obs)
	for i := range state {
		for j := range state[i] {
			state[i][j] += dt * deriv[i][j]
		}
	}
}

func TestSimulatorRun(t *testing.T) {
	s := New(testModel{}, testCoupler{}, testStepper{}, 3)
	ts := NewObservableSeries(1)
	s.AddMonitor(ts)

	cfg := Config{Dt: 1.0, Duration: 100.0, SamplingPeriod: 10.0, ValidateState: true}
	result, err := s.Run(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}

	if result.StepsTaken != 100 {
		t.Errorf("expected 100 steps, got %d", result.StepsTaken)
	}
	if result.Samples != 10 {
		t.Errorf("expected 10 samples, got %d", result.Samples)
	}

	series := ts.Series()
	if len(series) != 3 {
		t.Fatalf("expected 3 regions, got %d", len(series))
	}
	for r := range series {
		if len(series[r]) != result.Samples {
			t.Errorf("region %d: %d samples, want %d", r, len(series[r]), result.Samples)
		}
	}
}

func TestSimulatorWarmup(t *testing.T) {
	s := New(testModel{}, testCoupler{}, testStepper{}, 2)
	ts := NewObservableSeries(1)
	s.AddMonitor(ts)

	cfg := Config{Dt: 1.0, Duration: 100.0, Warmup: 50.0, SamplingPeriod: 10.0}
	result, err := s.Run(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if result.Samples != 5 {
		t.Errorf("expected 5 post-warmup samples, got %d", result.Samples)
	}
	for _, tm := range result.Times {
		if tm < cfg.Warmup {
			t.Errorf("recorded sample at t=%.1f inside warmup", tm)
		}
	}
}

func TestSimulatorContextCancel(t *testing.T) {
	s := New(testModel{}, testCoupler{}, testStepper{}, 2)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Run(ctx, Config{Dt: 1.0, Duration: 1000.0, SamplingPeriod: 1.0})
	if err == nil {
		t.Error("expected error from canceled context")
	}
}

func TestSimulatorConfigValidation(t *testing.T) {
	s := New(testModel{}, testCoupler{}, testStepper{}, 1)
	if _, err := s.Run(context.Background(), Config{Dt: 0, Duration: 10}); err == nil {
		t.Error("expected error for zero dt")
	}
	if _, err := s.Run(context.Background(), Config{Dt: 1, Duration: 0}); err == nil {
		t.Error("expected error for zero duration")
	}
	if _, err := s.Run(context.Background(), Config{Dt: 1, Duration: 10, Warmup: 10}); err == nil {
		t.Error("expected error for warmup >= duration")
	}
}

func TestEnsembleRun(t *testing.T) {
	factory := func(seed int64) (*Simulator, *TimeSeries) {
		s := New(testModel{}, testCoupler{}, testStepper{}, 2)
		ts := NewObservableSeries(1)
		s.AddMonitor(ts)
		return s, ts
	}

	e := NewEnsemble(factory, 4, 100)
	cfg := Config{Dt: 1.0, Duration: 50.0, SamplingPeriod: 10.0}
	series, err := e.Run(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}

	if len(series) != 4 {
		t.Fatalf("expected 4 subjects, got %d", len(series))
	}
	for i, s := range series {
		if len(s) != 2 {
			t.Errorf("subject %d: %d regions, want 2", i, len(s))
		}
	}
}
