// Package pipeline drives the fixed, strictly ordered sequence of
// genome-preparation stages: the rRNA bowtie2 index, the STAR genome index,
// the GTF-to-BED12 conversion, the transcript FASTA extraction, the ORF
// extraction, and the per-exon split. Whether a stage's command actually
// runs is decided by the runner's output-existence check; the order itself
// never branches and nothing is rolled back on failure.
package pipeline

import (
	"context"
	"strconv"

	"github.com/ribokit/riboprep/internal/config"
	"github.com/ribokit/riboprep/internal/ctxlog"
	"github.com/ribokit/riboprep/internal/runner"
)

// Options carries the invocation-level knobs that shape the constructed
// stage commands.
type Options struct {
	StarExecutable string
	NumCPUs        int
	RAMLimit       int64  // bytes for STAR --limitGenomeGenerateRAM
	LogLevel       string // forwarded to the downstream tools that accept it
}

// Driver holds one pipeline invocation: the configuration document, the
// command options, and the runner that gates each stage.
type Driver struct {
	doc     *config.Document
	opts    Options
	runner  *runner.Runner
	extract TranscriptStrategy
}

// New builds a Driver. The transcript-extraction strategy is resolved here
// so that an invalid configuration fails before any stage runs.
func New(doc *config.Document, r *runner.Runner, opts Options) (*Driver, error) {
	strategy, err := TranscriptStrategyFrom(doc)
	if err != nil {
		return nil, err
	}
	if opts.NumCPUs < 1 {
		opts.NumCPUs = 1
	}
	return &Driver{doc: doc, opts: opts, runner: r, extract: strategy}, nil
}

// Run executes the six stages in their fixed order. The first stage error
// aborts the run; artifacts from completed stages stay on disk, which is
// exactly what makes a later re-run cheap.
func (d *Driver) Run(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	stages := []runner.Step{
		d.ribosomalIndexStage(),
		d.genomeIndexStage(),
		d.bed12Stage(),
		d.transcriptFastaStage(),
		d.orfStage(),
		d.exonStage(),
	}

	for _, step := range stages {
		outcome, err := d.runner.Run(ctx, step)
		if err != nil {
			return err
		}
		logger.Debug("Stage finished.", "stage", step.Name, "outcome", outcome)
	}

	logger.Info("Genome preparation complete.",
		"genome", d.doc.Path("genome_name"),
		"stages", len(stages))
	return nil
}

func (d *Driver) numCPUsArgs() []string {
	return []string{"--num-cpus", strconv.Itoa(d.opts.NumCPUs)}
}

// loggingArgs forwards the invocation's log level to the downstream tools
// that understand it.
func (d *Driver) loggingArgs() []string {
	if d.opts.LogLevel == "" {
		return nil
	}
	return []string{"--logging-level", d.opts.LogLevel}
}
