package filenames

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathsAreDeterministic(t *testing.T) {
	a := ORFs("/data/yeast", "sacCer3", "canonical")
	b := ORFs("/data/yeast", "sacCer3", "canonical")
	assert.Equal(t, a, b)
}

func TestTranscriptArtifacts(t *testing.T) {
	assert.Equal(t,
		filepath.Join("/data/yeast", "sacCer3.annotated.bed.gz"),
		TranscriptBed("/data/yeast", "sacCer3"))

	assert.Equal(t,
		filepath.Join("/data/yeast", "transcript-index", "sacCer3.transcripts.fa"),
		TranscriptFasta("/data/yeast", "sacCer3"))
}

func TestNoteIsFoldedIntoOrfAndExonNames(t *testing.T) {
	assert.Equal(t,
		filepath.Join("/data/yeast", "transcript-index", "sacCer3.genomic-orfs.bed.gz"),
		ORFs("/data/yeast", "sacCer3", ""))

	assert.Equal(t,
		filepath.Join("/data/yeast", "transcript-index", "sacCer3.genomic-orfs.v2.bed.gz"),
		ORFs("/data/yeast", "sacCer3", "v2"))

	assert.Equal(t,
		filepath.Join("/data/yeast", "transcript-index", "sacCer3.orfs-exons.v2.bed.gz"),
		Exons("/data/yeast", "sacCer3", "v2"))
}

func TestBowtie2IndexFiles(t *testing.T) {
	files := Bowtie2IndexFiles("/idx/rrna")
	assert.Len(t, files, 6)
	assert.Contains(t, files, "/idx/rrna.1.bt2")
	assert.Contains(t, files, "/idx/rrna.rev.2.bt2")
}

func TestSTARIndexFiles(t *testing.T) {
	files := STARIndexFiles("/idx/star")
	assert.Len(t, files, 8)
	assert.Contains(t, files, filepath.Join("/idx/star", "SA"))
	assert.Contains(t, files, filepath.Join("/idx/star", "chrName.txt"))
	assert.Equal(t, filepath.Join("/idx/star", "chrName.txt"), ChrNameFile("/idx/star"))
}
