package slurm

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
)

// CommandRunner abstracts the sbatch and squeue invocations so the gate can
// be tested without a scheduler.
type CommandRunner interface {
	// Output runs argv and returns its stdout. A failure to start the
	// process or a non-zero exit are both reported as errors; the gate
	// treats any scheduler failure as fatal.
	Output(ctx context.Context, argv []string) (string, error)
}

// execRunner is the production CommandRunner backed by os/exec.
type execRunner struct{}

func (execRunner) Output(ctx context.Context, argv []string) (string, error) {
	if len(argv) == 0 {
		return "", errors.New("empty command")
	}
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return out.String(), err
	}
	return out.String(), nil
}
