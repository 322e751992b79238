package workflow

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStage indicates a stage name outside the workflow's catalog.
var ErrUnknownStage = errors.New("unknown stage")

// PrerequisiteError means a stage was asked to start before all stages
// preceding it in configured order had completed.
type PrerequisiteError struct {
	StageName string
	Missing   []string
}

func (e *PrerequisiteError) Error() string {
	return fmt.Sprintf("stage %s has incomplete prerequisites: %s",
		e.StageName, strings.Join(e.Missing, ", "))
}

// StageExecutionError means the LLM invocation or downstream parsing for
// one stage failed. Recoverable errors are retried by queue redelivery;
// the engine marks the stage failed either way.
type StageExecutionError struct {
	StageName   string
	Recoverable bool
	Err         error
}

func (e *StageExecutionError) Error() string {
	return fmt.Sprintf("stage %s execution failed: %v", e.StageName, e.Err)
}

func (e *StageExecutionError) Unwrap() error {
	return e.Err
}
