// Package runner implements the conditional execution model that makes the
// pipeline restart-safe: a step whose declared outputs already exist on disk
// is skipped instead of recomputed, so re-running the whole driver after a
// partial failure only redoes the stages that never finished.
package runner

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ribokit/riboprep/internal/ctxlog"
)

// Step describes one pipeline stage: the command to run and the files it
// promises to consume and produce. Steps are short-lived values constructed
// fresh per invocation; the filesystem itself is the only state store.
type Step struct {
	Name    string
	Argv    []string
	Outputs []string
	Inputs  []string
}

// Command renders the argv as a single display string for logs and errors.
func (s Step) Command() string {
	return strings.Join(s.Argv, " ")
}

// Outcome is the decision the runner made for a step.
type Outcome int

const (
	// OutcomeRan means the command was executed and its outputs verified.
	OutcomeRan Outcome = iota
	// OutcomeSkipped means all declared outputs already existed.
	OutcomeSkipped
	// OutcomePlanned means dry-run mode logged the command without executing.
	OutcomePlanned
)

// String implements fmt.Stringer for Outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeRan:
		return "ran"
	case OutcomeSkipped:
		return "skipped"
	case OutcomePlanned:
		return "planned"
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// Runner decides whether each step's command actually runs. It holds the
// process-wide overwrite and dry-run switches so stage builders stay pure.
type Runner struct {
	invoker    Invoker
	overwrite  bool
	dryRun     bool
	staleCheck bool
}

// Option configures a Runner.
type Option func(*Runner)

// WithOverwrite forces every step to run even when its outputs exist.
func WithOverwrite(v bool) Option {
	return func(r *Runner) { r.overwrite = v }
}

// WithDryRun logs commands instead of executing them.
func WithDryRun(v bool) Option {
	return func(r *Runner) { r.dryRun = v }
}

// WithStaleCheck additionally compares modification times: a step whose
// outputs all exist is still re-run when any declared input is newer than
// the oldest output. Off by default, preserving the existence-only
// semantics of the original tool.
func WithStaleCheck(v bool) Option {
	return func(r *Runner) { r.staleCheck = v }
}

// New creates a Runner that executes commands through the given Invoker.
func New(invoker Invoker, opts ...Option) *Runner {
	r := &Runner{invoker: invoker}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run applies the conditional-execution decision to one step:
//
//  1. If overwrite is off and every declared output exists, skip.
//  2. If dry-run is on, log the command and stop.
//  3. Execute the command; a non-zero exit is an ExecutionError.
//  4. Verify every declared output now exists; any absentee is a
//     MissingOutputError.
//
// Declared inputs are never existence-checked here; the fixed stage order of
// the driver is what guarantees upstream artifacts.
func (r *Runner) Run(ctx context.Context, step Step) (Outcome, error) {
	logger := ctxlog.FromContext(ctx).With("stage", step.Name)

	if !r.overwrite && r.complete(step) {
		logger.Info("All declared outputs exist, skipping stage.", "command", step.Command())
		return OutcomeSkipped, nil
	}

	if r.dryRun {
		logger.Info("Dry run, command not executed.", "command", step.Command())
		return OutcomePlanned, nil
	}

	logger.Info("Executing stage command.", "command", step.Command())
	res, err := r.invoker.Run(ctx, step.Argv)
	if err != nil {
		return OutcomeRan, fmt.Errorf("stage %s: %w", step.Name, err)
	}
	if res.ExitCode != 0 {
		return OutcomeRan, &ExecutionError{Command: step.Command(), ExitCode: res.ExitCode}
	}

	var missing []string
	for _, out := range step.Outputs {
		if !exists(out) {
			missing = append(missing, out)
		}
	}
	if len(missing) > 0 {
		return OutcomeRan, &MissingOutputError{Command: step.Command(), Missing: missing}
	}

	logger.Debug("Stage outputs verified.", "count", len(step.Outputs))
	return OutcomeRan, nil
}

// complete reports whether the step's declared outputs are all present (and,
// with the stale check enabled, not older than any input).
func (r *Runner) complete(step Step) bool {
	if len(step.Outputs) == 0 {
		return false
	}
	for _, out := range step.Outputs {
		if !exists(out) {
			return false
		}
	}
	if r.staleCheck {
		return !r.stale(step)
	}
	return true
}

// stale reports whether any declared input is newer than the oldest declared
// output. Missing inputs are ignored; input validation is not this
// component's job.
func (r *Runner) stale(step Step) bool {
	var oldest time.Time
	for i, out := range step.Outputs {
		fi, err := os.Stat(out)
		if err != nil {
			return true
		}
		if i == 0 || fi.ModTime().Before(oldest) {
			oldest = fi.ModTime()
		}
	}
	for _, in := range step.Inputs {
		fi, err := os.Stat(in)
		if err != nil {
			continue
		}
		if fi.ModTime().After(oldest) {
			return true
		}
	}
	return false
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
