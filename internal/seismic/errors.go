package seismic

import (
	"errors"
	"fmt"
)

// Domain errors for simulation operations.
var (
	// ErrInvalidConfiguration indicates parameters the stencil cannot run with.
	ErrInvalidConfiguration = errors.New("seismic: invalid configuration")

	// ErrNumericalInstability indicates the stability ratio exceeds the scheme limit.
	ErrNumericalInstability = errors.New("seismic: numerical instability")
)

// ConfigError describes a single rejected parameter.
type ConfigError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v: %s=%v: %s", ErrInvalidConfiguration, e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfiguration
}

// SimulationError wraps an error with the step it occurred at.
type SimulationError struct {
	Step    int
	Wrapped error
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf("step %d: %v", e.Step, e.Wrapped)
}

func (e *SimulationError) Unwrap() error {
	return e.Wrapped
}
