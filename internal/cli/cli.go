// Package cli parses the command-line surface of riboprep into an app.Config.
package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/ribokit/riboprep/internal/app"
)

// ExitError carries a process exit code alongside the message printed to the
// user.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating the program should exit cleanly (help or missing
// arguments), or an ExitError for usage mistakes.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("riboprep", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
riboprep - prepares the reference-genome artifacts consumed by
ribosome-profiling analysis: rRNA and genome aligner indexes, the transcript
BED12 and FASTA, and the ORF and exon coordinate files.

Usage:
  riboprep [options] CONFIG_PATH

Arguments:
  CONFIG_PATH
    Path to the configuration document (.yaml, .yml or .hcl).

Options:
`)
		flagSet.PrintDefaults()
	}

	starFlag := flagSet.String("star-executable", "STAR", "Name of the STAR executable.")
	overwriteFlag := flagSet.Bool("overwrite", false, "Rebuild artifacts even when all declared outputs already exist.")
	dryRunFlag := flagSet.Bool("dry-run", false, "Log the commands that would run without executing anything.")
	useSlurmFlag := flagSet.Bool("use-slurm", false, "Submit this invocation to the SLURM queue instead of running locally.")
	numCPUsFlag := flagSet.Int("num-cpus", 1, "CPU count passed to the external tools and to sbatch.")
	memFlag := flagSet.String("mem", "4G", "Memory request, e.g. '64G'. Also caps STAR index-generation RAM.")
	partitionFlag := flagSet.String("partition", "", "SLURM partition to submit to (only with --use-slurm).")
	timeFlag := flagSet.String("time", "", "SLURM time limit (only with --use-slurm).")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if flagSet.NArg() == 0 {
		flagSet.Usage()
		return nil, true, nil
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: "expected exactly one CONFIG_PATH argument"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	config, err := app.NewConfig(app.Config{
		ConfigPath:     flagSet.Arg(0),
		StarExecutable: *starFlag,
		Overwrite:      *overwriteFlag,
		DryRun:         *dryRunFlag,
		UseSlurm:       *useSlurmFlag,
		NumCPUs:        *numCPUsFlag,
		Mem:            *memFlag,
		Partition:      *partitionFlag,
		TimeLimit:      *timeFlag,
		LogFormat:      logFormat,
		LogLevel:       logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return config, false, nil
}
