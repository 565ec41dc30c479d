package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/neurosim/internal/nmm"
)

func TestMeanRate(t *testing.T) {
	m := NewMeanRate()
	if m.Name() != "mean_rate" {
		t.Errorf("name %q", m.Name())
	}
	if m.Value() != 0 {
		t.Error("value before samples should be 0")
	}

	obs := nmm.Matrix{{0, 0}, {2.0, 4.0}}
	m.Observe(0, nil, obs)
	m.Observe(1, nil, nmm.Matrix{{0, 0}, {6.0, 8.0}})
	if m.Value() != 5.0 {
		t.Errorf("mean %v, want 5", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("value after reset should be 0")
	}
}

func TestRateDeviation(t *testing.T) {
	m := NewRateDeviation(3.0)
	if m.Name() != "rate_deviation" {
		t.Errorf("name %q", m.Name())
	}

	m.Observe(0, nil, nmm.Matrix{{0, 0}, {3.0, 3.0}})
	if m.Value() != 0 {
		t.Errorf("deviation at target %v, want 0", m.Value())
	}

	m.Observe(1, nil, nmm.Matrix{{0, 0}, {4.0, 2.0}})
	// four samples: 0, 0, 1, 1 squared -> sqrt(2/4)
	want := math.Sqrt(0.5)
	if math.Abs(m.Value()-want) > 1e-12 {
		t.Errorf("deviation %v, want %v", m.Value(), want)
	}
}
