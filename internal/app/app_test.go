package app_test

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ribokit/riboprep/internal/app"
	"github.com/ribokit/riboprep/internal/config"
	"github.com/ribokit/riboprep/internal/filenames"
	"github.com/ribokit/riboprep/internal/programs"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

// installFakeTools puts stub executables for the whole roster on PATH. The
// stubs would fail loudly if ever invoked, so tests that expect zero
// invocations catch accidental execution.
func installFakeTools(t *testing.T, star string) {
	t.Helper()
	bin := t.TempDir()
	for _, name := range programs.Roster(star) {
		path := filepath.Join(bin, name)
		require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\nexit 42\n"), 0o755))
	}
	t.Setenv("PATH", bin)
}

// writeConfig writes a YAML document rooted in dir and returns its path.
// Any extra lines are appended verbatim.
func writeConfig(t *testing.T, dir string, extra ...string) string {
	t.Helper()
	content := fmt.Sprintf(`genome_base_path: %s
genome_name: sacCer3
gtf: %s
fasta: %s
ribosomal_fasta: %s
ribosomal_index: %s
star_index: %s
`,
		dir,
		filepath.Join(dir, "sacCer3.gtf"),
		filepath.Join(dir, "sacCer3.fa"),
		filepath.Join(dir, "rrna.fa"),
		filepath.Join(dir, "rrna-index"),
		filepath.Join(dir, "star-index"),
	)
	for _, line := range extra {
		content += line + "\n"
	}
	path := filepath.Join(dir, "genome.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func createAllArtifacts(t *testing.T, dir string) {
	t.Helper()
	for _, f := range filenames.Bowtie2IndexFiles(filepath.Join(dir, "rrna-index")) {
		touch(t, f)
	}
	for _, f := range filenames.STARIndexFiles(filepath.Join(dir, "star-index")) {
		touch(t, f)
	}
	touch(t, filenames.TranscriptBed(dir, "sacCer3"))
	touch(t, filenames.TranscriptFasta(dir, "sacCer3"))
	touch(t, filenames.ORFs(dir, "sacCer3", ""))
	touch(t, filenames.Exons(dir, "sacCer3", ""))
}

func newAppConfig(t *testing.T, configPath string) *app.Config {
	t.Helper()
	cfg, err := app.NewConfig(app.Config{
		ConfigPath: configPath,
		NumCPUs:    1,
		LogLevel:   "debug",
		LogFormat:  "text",
	})
	require.NoError(t, err)
	return cfg
}

func TestRunCompletesWithZeroInvocationsWhenAllArtifactsExist(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("PATH stubbing is unix-specific")
	}
	dir := t.TempDir()
	installFakeTools(t, "STAR")
	configPath := writeConfig(t, dir)
	createAllArtifacts(t, dir)

	var logBuf bytes.Buffer
	prep, err := app.New(&logBuf, newAppConfig(t, configPath), config.LoaderFor(configPath))
	require.NoError(t, err)

	// The stub tools exit 42 if executed, so success proves every stage
	// self-skipped.
	err = prep.Run(context.Background(), []string{"riboprep", configPath})
	require.NoError(t, err)
	assert.Contains(t, logBuf.String(), "skipping stage")
}

func TestRunFailsFastOnMissingConfigKeys(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("PATH stubbing is unix-specific")
	}
	dir := t.TempDir()
	installFakeTools(t, "STAR")

	path := filepath.Join(dir, "genome.yaml")
	require.NoError(t, os.WriteFile(path, []byte("genome_name: sacCer3\n"), 0o644))

	var logBuf bytes.Buffer
	prep, err := app.New(&logBuf, newAppConfig(t, path), config.LoaderFor(path))
	require.NoError(t, err)

	err = prep.Run(context.Background(), []string{"riboprep", path})
	var missingErr *config.MissingKeyError
	require.ErrorAs(t, err, &missingErr)
	assert.Contains(t, missingErr.Keys, "gtf")
	assert.Contains(t, missingErr.Keys, "fasta")
}

func TestRunFailsFastOnMissingExecutables(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("PATH stubbing is unix-specific")
	}
	dir := t.TempDir()
	t.Setenv("PATH", dir) // empty PATH: nothing resolvable
	configPath := writeConfig(t, dir)

	var logBuf bytes.Buffer
	prep, err := app.New(&logBuf, newAppConfig(t, configPath), config.LoaderFor(configPath))
	require.NoError(t, err)

	err = prep.Run(context.Background(), []string{"riboprep", configPath})
	var missingErr *programs.MissingExecutableError
	require.ErrorAs(t, err, &missingErr)
	assert.Contains(t, missingErr.Names, "bowtie2-build-s")
}

func TestRunRequiresExtractBedSequencesOnlyForItsStrategy(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("PATH stubbing is unix-specific")
	}
	dir := t.TempDir()
	// The stubbed PATH covers the fixed roster but not extract-bed-sequences.
	installFakeTools(t, "STAR")
	configPath := writeConfig(t, dir, "transcript_extraction: bed-sequences")

	var logBuf bytes.Buffer
	prep, err := app.New(&logBuf, newAppConfig(t, configPath), config.LoaderFor(configPath))
	require.NoError(t, err)

	err = prep.Run(context.Background(), []string{"riboprep", configPath})
	var missingErr *programs.MissingExecutableError
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, []string{"extract-bed-sequences"}, missingErr.Names)
}

func TestNewFailsOnUnreadableConfig(t *testing.T) {
	var logBuf bytes.Buffer
	cfg := newAppConfig(t, filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := app.New(&logBuf, cfg, config.LoaderFor(cfg.ConfigPath))
	require.Error(t, err)
}
