package runner

import (
	"fmt"
	"strings"
)

// ExecutionError reports a stage command that exited with a non-zero status.
// It is fatal; the pipeline performs no retries.
type ExecutionError struct {
	Command  string
	ExitCode int
}

// Error implements the error interface for ExecutionError.
func (e *ExecutionError) Error() string {
	return fmt.Sprintf("command exited with status %d: %s", e.ExitCode, e.Command)
}

// MissingOutputError reports a stage command that exited successfully but
// did not produce every declared output.
type MissingOutputError struct {
	Command string
	Missing []string
}

// Error implements the error interface for MissingOutputError.
func (e *MissingOutputError) Error() string {
	return fmt.Sprintf("command succeeded but declared outputs are missing (%s): %s",
		strings.Join(e.Missing, ", "), e.Command)
}
