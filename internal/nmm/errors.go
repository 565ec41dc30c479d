package nmm

import (
	"errors"
	"fmt"
)

// Domain errors for simulation operations.
var (
	// ErrInvalidState indicates a state matrix with NaN or Inf entries.
	ErrInvalidState = errors.New("nmm: invalid state (NaN or Inf detected)")

	// ErrParamLength indicates a per-region parameter whose length does
	// not match the configured region count.
	ErrParamLength = errors.New("nmm: per-region parameter length does not match region count")
)

// SimulationError wraps an error with step context.
type SimulationError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf("step %d (t=%.1fms): %v", e.Step, e.Time, e.Wrapped)
}

func (e *SimulationError) Unwrap() error {
	return e.Wrapped
}
