package pipeline

import "fmt"

// Stage names one step of Run.
type Stage string

// Stages of Run, in execution order.
const (
	StageThin      Stage = "thin"
	StageOrder     Stage = "order"
	StageDecompose Stage = "decompose"
	StageFidelity  Stage = "fidelity"
)

// StageError reports which stage of Run failed. It unwraps to the stage's
// own sentinel, so errors.Is(err, spectrum.ErrEmptyInput) works through it.
type StageError struct {
	Stage Stage
	Err   error
}

// Error implements error.
func (e *StageError) Error() string {
	return fmt.Sprintf("pipeline: %s stage: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying stage error.
func (e *StageError) Unwrap() error { return e.Err }
