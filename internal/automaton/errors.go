package automaton

import (
	"errors"
	"fmt"
)

// Domain errors for grid and simulator operations. These mark caller
// contract violations and are never retried.
var (
	// ErrInvalidDimensions indicates a grid constructed with a width or
	// height below 1.
	ErrInvalidDimensions = errors.New("automaton: invalid dimensions (width and height must be >= 1)")

	// ErrOutOfBounds indicates coordinates outside the grid.
	ErrOutOfBounds = errors.New("automaton: coordinates out of bounds")

	// ErrDimensionMismatch indicates two grids of different sizes used together.
	ErrDimensionMismatch = errors.New("automaton: dimension mismatch between grids")

	// ErrStepInProgress indicates an edit attempted while a generation is computing.
	ErrStepInProgress = errors.New("automaton: edit rejected while step in progress")
)

// StepError wraps an error with the generation at which it occurred.
type StepError struct {
	Generation uint64
	Wrapped    error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("generation %d: %v", e.Generation, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
