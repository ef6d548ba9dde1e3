// Package slurm implements the remote dispatch gate: when active, the whole
// riboprep invocation is reconstructed and submitted to sbatch as one opaque
// batch job, and the local process stops without running any stage itself.
// Submission is fire-and-forget; the remote job is never supervised.
package slurm

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/ribokit/riboprep/internal/ctxlog"
)

// Options holds the scheduling parameters forwarded to sbatch.
type Options struct {
	Enabled    bool
	NumCPUs    int
	Mem        string // SLURM memory string, e.g. "64G"
	Partition  string
	TimeLimit  string
	JobName    string
	CheckQueue bool   // skip submission when a same-named job is already queued
	ScriptDir  string // where submission scripts are written; empty means os.TempDir
}

// DispatchError reports a failed interaction with the batch scheduler.
type DispatchError struct {
	Op  string // "squeue" or "sbatch"
	Err error
}

// Error implements the error interface for DispatchError.
func (e *DispatchError) Error() string {
	return fmt.Sprintf("slurm %s failed: %v", e.Op, e.Err)
}

// Unwrap exposes the underlying scheduler error.
func (e *DispatchError) Unwrap() error {
	return e.Err
}

// Gate decides whether an invocation is deferred to the batch queue.
type Gate struct {
	runner CommandRunner
	opts   Options
}

// NewGate creates a Gate that talks to the real sbatch and squeue binaries.
func NewGate(opts Options) *Gate {
	return &Gate{runner: execRunner{}, opts: opts}
}

// NewGateWithRunner creates a Gate with a custom scheduler command runner.
// Used by tests.
func NewGateWithRunner(opts Options, runner CommandRunner) *Gate {
	return &Gate{runner: runner, opts: opts}
}

// MaybeDispatch submits the given invocation to the queue when the gate is
// active. It returns true when dispatch occurred (or an equivalent job was
// already queued), meaning the caller must stop all local execution.
func (g *Gate) MaybeDispatch(ctx context.Context, argv []string) (bool, error) {
	if !g.opts.Enabled {
		return false, nil
	}
	logger := ctxlog.FromContext(ctx)

	// The submitted job must run the pipeline itself, not resubmit to the
	// queue again, so the flag that routed us here is stripped.
	command := strings.Join(stripBoolFlag(argv, "use-slurm"), " ")

	if g.opts.CheckQueue && g.opts.JobName != "" {
		queued, err := g.jobQueued(ctx)
		if err != nil {
			return false, &DispatchError{Op: "squeue", Err: err}
		}
		if queued {
			logger.Info("An equivalent job is already queued, not submitting again.",
				"job_name", g.opts.JobName)
			return true, nil
		}
	}

	script, err := g.writeScript(command)
	if err != nil {
		return false, &DispatchError{Op: "sbatch", Err: err}
	}

	out, err := g.runner.Output(ctx, g.sbatchArgv(script))
	if err != nil {
		return false, &DispatchError{Op: "sbatch", Err: err}
	}

	logger.Info("Invocation submitted to SLURM.",
		"job_name", g.opts.JobName,
		"script", script,
		"sbatch_output", strings.TrimSpace(out))
	return true, nil
}

// jobQueued reports whether a job with our name is already pending or
// running.
func (g *Gate) jobQueued(ctx context.Context) (bool, error) {
	out, err := g.runner.Output(ctx, []string{
		"squeue", "--noheader", "--format", "%j", "--name", g.opts.JobName,
	})
	if err != nil {
		return false, err
	}
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) == g.opts.JobName {
			return true, nil
		}
	}
	return false, nil
}

// writeScript persists the reconstructed invocation as a uniquely named
// submission script and returns its path.
func (g *Gate) writeScript(command string) (string, error) {
	dir := g.opts.ScriptDir
	if dir == "" {
		dir = os.TempDir()
	}
	path := filepath.Join(dir, fmt.Sprintf("riboprep-%s.sbatch", uuid.NewString()))
	content := "#!/bin/bash\n" + command + "\n"
	if err := os.WriteFile(path, []byte(content), 0o755); err != nil {
		return "", err
	}
	return path, nil
}

// sbatchArgv builds the submission command line from the scheduling options.
func (g *Gate) sbatchArgv(script string) []string {
	argv := []string{
		"sbatch",
		"--ntasks", "1",
		"--cpus-per-task", strconv.Itoa(g.opts.NumCPUs),
		"--mem", g.opts.Mem,
	}
	if g.opts.Partition != "" {
		argv = append(argv, "--partition", g.opts.Partition)
	}
	if g.opts.TimeLimit != "" {
		argv = append(argv, "--time", g.opts.TimeLimit)
	}
	if g.opts.JobName != "" {
		argv = append(argv, "--job-name", g.opts.JobName)
	}
	return append(argv, script)
}

// stripBoolFlag removes every spelling of a boolean flag that the flag
// package accepts (-name, --name, -name=value, --name=value) from a
// reconstructed invocation. A surviving spelling would make the batch job
// re-enter the gate and exit without running any stage.
func stripBoolFlag(argv []string, name string) []string {
	out := make([]string, 0, len(argv))
	for _, a := range argv {
		if isBoolFlag(a, name) {
			continue
		}
		out = append(out, a)
	}
	return out
}

func isBoolFlag(arg, name string) bool {
	body, ok := strings.CutPrefix(arg, "-")
	if !ok {
		return false
	}
	body = strings.TrimPrefix(body, "-")
	return body == name || strings.HasPrefix(body, name+"=")
}
