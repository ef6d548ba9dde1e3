package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ribokit/riboprep/internal/app"
	"github.com/ribokit/riboprep/internal/cli"
	"github.com/ribokit/riboprep/internal/config"
)

// main is the entrypoint for the riboprep genome-preparation tool.
func main() {
	// Use a minimal logger until the configured one takes over.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Args); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the application logic so tests can drive it with their own
// writers and argument lists. argv is the full command line including the
// program name, matching os.Args.
func run(outW io.Writer, argv []string) error {
	var args []string
	if len(argv) > 1 {
		args = argv[1:]
	}
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	loader := config.LoaderFor(appConfig.ConfigPath)
	prep, err := app.New(outW, appConfig, loader)
	if err != nil {
		return err
	}

	// The full original argv is needed so the SLURM gate can resubmit this
	// exact invocation as a batch job.
	return prep.Run(context.Background(), argv)
}
