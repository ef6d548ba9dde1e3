package pipeline

import (
	"fmt"

	"github.com/ribokit/riboprep/internal/config"
)

// TranscriptStrategy names one of the interchangeable commands that can
// produce the transcript FASTA. The upstream tooling historically had two
// candidates for this stage, so the choice is explicit configuration rather
// than a silent default baked into the code.
type TranscriptStrategy string

const (
	// StrategyGffread extracts spliced transcript sequences directly from
	// the GTF with gffread. This is the default.
	StrategyGffread TranscriptStrategy = "gffread"
	// StrategyBedSequences extracts sequences from the transcript BED12
	// produced by the preceding stage.
	StrategyBedSequences TranscriptStrategy = "bed-sequences"
)

// TranscriptStrategyFrom resolves the optional transcript_extraction config
// key. An unknown value is rejected up front so the pipeline never runs a
// prefix of its stages on a bad configuration.
func TranscriptStrategyFrom(doc *config.Document) (TranscriptStrategy, error) {
	v, ok := doc.Optional("transcript_extraction")
	if !ok || v == "" {
		return StrategyGffread, nil
	}
	switch TranscriptStrategy(v) {
	case StrategyGffread, StrategyBedSequences:
		return TranscriptStrategy(v), nil
	}
	return "", fmt.Errorf("unknown transcript_extraction strategy %q (valid: %q, %q)",
		v, StrategyGffread, StrategyBedSequences)
}
