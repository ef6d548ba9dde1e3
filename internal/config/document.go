// Package config models the riboprep configuration document: a flat mapping
// from string keys to path and option values, loaded once before any stage
// runs and treated as immutable afterwards.
package config

import (
	"fmt"
	"sort"
	"strings"
)

// RequiredKeys lists the keys every configuration document must define
// before the pipeline may run.
var RequiredKeys = []string{
	"genome_base_path",
	"genome_name",
	"gtf",
	"fasta",
	"ribosomal_fasta",
	"ribosomal_index",
	"star_index",
}

// Document is a loaded configuration mapping. Values are opaque strings that
// flow into the constructed stage commands; the pipeline never interprets
// their content.
type Document struct {
	values map[string]string
}

// NewDocument wraps an already-decoded key/value mapping.
func NewDocument(values map[string]string) *Document {
	if values == nil {
		values = map[string]string{}
	}
	return &Document{values: values}
}

// Path returns the value for key, or the empty string when absent.
func (d *Document) Path(key string) string {
	return d.values[key]
}

// Optional returns the value for key and whether it is present.
func (d *Document) Optional(key string) (string, bool) {
	v, ok := d.values[key]
	return v, ok
}

// Has reports whether key is present, regardless of its value.
func (d *Document) Has(key string) bool {
	_, ok := d.values[key]
	return ok
}

// OptionalFlag renders an optional key as an argv fragment for a downstream
// tool, e.g. OptionalFlag("start_codons", "--start-codons") yields
// ["--start-codons", "ATG"]. Absent or empty keys yield nil.
func (d *Document) OptionalFlag(key, flagName string) []string {
	v, ok := d.values[key]
	if !ok || v == "" {
		return nil
	}
	return []string{flagName, v}
}

// MissingKeyError reports every required key absent from the document, so a
// user can fix the configuration in one pass.
type MissingKeyError struct {
	Keys []string
}

// Error implements the error interface for MissingKeyError.
func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("configuration is missing required keys: %s", strings.Join(e.Keys, ", "))
}

// Validate checks that all required keys are present. It collects every
// absent key rather than failing on the first.
func (d *Document) Validate(required []string) error {
	var missing []string
	for _, key := range required {
		if _, ok := d.values[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return &MissingKeyError{Keys: missing}
	}
	return nil
}
