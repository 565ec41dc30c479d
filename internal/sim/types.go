package sim

import "github.com/san-kum/neurosim/internal/nmm"

// Config controls one simulation run. All times are in milliseconds.
type Config struct {
	Dt             float64
	Duration       float64
	Warmup         float64 // transient discarded before recording
	SamplingPeriod float64 // interval between recorded samples (e.g. the TR)
	Seed           int64
	ValidateState  bool
}

func DefaultConfig() Config {
	return Config{
		Dt:             0.1,
		Duration:       60000.0,
		Warmup:         10000.0,
		SamplingPeriod: 1.0,
		ValidateState:  true,
	}
}

// Metric accumulates a scalar over recorded samples.
type Metric interface {
	Name() string
	Observe(t float64, state, obs nmm.Matrix)
	Value() float64
	Reset()
}

type Result struct {
	Times      []float64
	StepsTaken int
	Samples    int
	Metrics    map[string]float64
	Errors     []error
}

// TimeSeries is a monitor recording one state or observable row as a
// regions × samples array, the shape the spectral pipeline consumes.
type TimeSeries struct {
	row       int
	fromState bool
	data      [][]float64
}

// NewObservableSeries records observable row `row` (0 = current, 1 = rate).
func NewObservableSeries(row int) *TimeSeries {
	return &TimeSeries{row: row}
}

// NewStateSeries records state row `row`.
func NewStateSeries(row int) *TimeSeries {
	return &TimeSeries{row: row, fromState: true}
}

func (ts *TimeSeries) OnSample(t float64, state, obs nmm.Matrix) {
	src := obs[ts.row]
	if ts.fromState {
		src = state[ts.row]
	}
	if ts.data == nil {
		ts.data = make([][]float64, len(src))
	}
	for j, v := range src {
		ts.data[j] = append(ts.data[j], v)
	}
}

// Series returns the recorded regions × time array.
func (ts *TimeSeries) Series() [][]float64 { return ts.data }
