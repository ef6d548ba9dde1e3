// Package programs verifies that the external bioinformatics tools the
// pipeline shells out to are resolvable on PATH before any stage runs, so a
// missing tool fails the invocation immediately instead of mid-pipeline.
package programs

import (
	"fmt"
	"os/exec"
	"strings"
)

// Roster returns the external executables every pipeline run depends on.
// The STAR executable name is configurable; the rest is fixed. Tools that
// only some configurations invoke (extract-bed-sequences) are appended by
// the caller.
func Roster(starExecutable string) []string {
	return []string{
		"extract-orfs",
		"bowtie2-build-s",
		"gffread",
		"intersectBed",
		"split-bed12-blocks",
		"gtf-to-bed12",
		starExecutable,
	}
}

// MissingExecutableError reports every roster entry that could not be
// resolved on PATH.
type MissingExecutableError struct {
	Names []string
}

// Error implements the error interface for MissingExecutableError.
func (e *MissingExecutableError) Error() string {
	return fmt.Sprintf("required executables not found on PATH: %s", strings.Join(e.Names, ", "))
}

// EnsureAvailable resolves every name with exec.LookPath and reports all
// unresolvable names in a single error.
func EnsureAvailable(names []string) error {
	var missing []string
	for _, name := range names {
		if _, err := exec.LookPath(name); err != nil {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &MissingExecutableError{Names: missing}
	}
	return nil
}
