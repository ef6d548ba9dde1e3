package runner

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
)

// Result holds the observable outcome of a subprocess invocation.
type Result struct {
	ExitCode int
}

// Invoker abstracts subprocess execution so the conditional-execution logic
// can be tested with a spy instead of real external tools.
type Invoker interface {
	// Run executes argv[0] with argv[1:] as arguments and blocks until the
	// process exits. A non-zero exit is reported through Result, not the
	// error; the error is reserved for failures to start the process at all.
	Run(ctx context.Context, argv []string) (*Result, error)
}

// ExecInvoker runs commands through os/exec. The external genomic tools are
// long-running and chatty, so their output streams to the configured writers
// rather than being captured.
type ExecInvoker struct {
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecInvoker creates an ExecInvoker wired to the process's own streams.
func NewExecInvoker() *ExecInvoker {
	return &ExecInvoker{Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run implements the Invoker interface.
func (e *ExecInvoker) Run(ctx context.Context, argv []string) (*Result, error) {
	if len(argv) == 0 {
		return nil, errors.New("empty command")
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return &Result{ExitCode: 0}, nil
	case errors.As(err, &exitErr):
		return &Result{ExitCode: exitErr.ExitCode()}, nil
	default:
		return nil, err
	}
}
