package app

import (
	"context"
	"fmt"

	"github.com/ribokit/riboprep/internal/config"
	"github.com/ribokit/riboprep/internal/ctxlog"
	"github.com/ribokit/riboprep/internal/pipeline"
	"github.com/ribokit/riboprep/internal/programs"
	"github.com/ribokit/riboprep/internal/runner"
	"github.com/ribokit/riboprep/internal/slurm"
)

// Run executes one invocation end to end: fail-fast startup checks, the
// SLURM gate (which short-circuits everything when active), then the six
// pipeline stages in order. argv is the full original command line, needed
// so the gate can resubmit this exact invocation.
func (a *App) Run(ctx context.Context, argv []string) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	strategy, err := pipeline.TranscriptStrategyFrom(a.doc)
	if err != nil {
		return err
	}

	roster := programs.Roster(a.cfg.StarExecutable)
	if strategy == pipeline.StrategyBedSequences {
		roster = append(roster, "extract-bed-sequences")
	}
	if err := programs.EnsureAvailable(roster); err != nil {
		return err
	}
	a.logger.Debug("All required external programs are on PATH.")

	if err := a.doc.Validate(config.RequiredKeys); err != nil {
		return err
	}
	a.logger.Debug("Configuration document validated.")

	ramLimit, err := slurm.ParseMemory(a.cfg.Mem)
	if err != nil {
		return fmt.Errorf("invalid --mem value: %w", err)
	}

	gate := slurm.NewGate(slurm.Options{
		Enabled:    a.cfg.UseSlurm,
		NumCPUs:    a.cfg.NumCPUs,
		Mem:        a.cfg.Mem,
		Partition:  a.cfg.Partition,
		TimeLimit:  a.cfg.TimeLimit,
		JobName:    "riboprep-" + a.doc.Path("genome_name"),
		CheckQueue: true,
	})
	dispatched, err := gate.MaybeDispatch(ctx, argv)
	if err != nil {
		return err
	}
	if dispatched {
		a.logger.Info("Invocation deferred to SLURM; nothing runs locally.")
		return nil
	}

	invoker := runner.NewExecInvoker()
	r := runner.New(invoker,
		runner.WithOverwrite(a.cfg.Overwrite),
		runner.WithDryRun(a.cfg.DryRun),
	)

	driver, err := pipeline.New(a.doc, r, pipeline.Options{
		StarExecutable: a.cfg.StarExecutable,
		NumCPUs:        a.cfg.NumCPUs,
		RAMLimit:       ramLimit,
		LogLevel:       a.cfg.LogLevel,
	})
	if err != nil {
		return err
	}

	if err := driver.Run(ctx); err != nil {
		return fmt.Errorf("genome preparation failed: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
