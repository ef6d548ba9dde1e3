// Package filenames derives the canonical locations of the artifacts the
// pipeline produces. The same inputs always map to the same path; these pure
// functions are what let the runner's existence checks stand in for a build
// manifest.
package filenames

import "path/filepath"

// transcriptIndexDir is the subdirectory of the genome base path that holds
// the transcript-derived artifacts.
const transcriptIndexDir = "transcript-index"

func noteSuffix(note string) string {
	if note == "" {
		return ""
	}
	return "." + note
}

// TranscriptBed returns the path of the BED12 file holding the annotated
// transcript structures converted from the GTF.
func TranscriptBed(basePath, name string) string {
	return filepath.Join(basePath, name+".annotated.bed.gz")
}

// TranscriptFasta returns the path of the extracted transcript sequences.
func TranscriptFasta(basePath, name string) string {
	return filepath.Join(basePath, transcriptIndexDir, name+".transcripts.fa")
}

// ORFs returns the path of the deduplicated, annotated, genomic-coordinate
// ORF file. An optional note is folded into the name so variant ORF sets can
// coexist.
func ORFs(basePath, name, note string) string {
	return filepath.Join(basePath, transcriptIndexDir, name+".genomic-orfs"+noteSuffix(note)+".bed.gz")
}

// Exons returns the path of the per-exon split of the ORF file.
func Exons(basePath, name, note string) string {
	return filepath.Join(basePath, transcriptIndexDir, name+".orfs-exons"+noteSuffix(note)+".bed.gz")
}

// Bowtie2IndexFiles lists the index files bowtie2-build-s writes for the
// given index prefix.
func Bowtie2IndexFiles(prefix string) []string {
	exts := []string{".1.bt2", ".2.bt2", ".3.bt2", ".4.bt2", ".rev.1.bt2", ".rev.2.bt2"}
	files := make([]string, 0, len(exts))
	for _, ext := range exts {
		files = append(files, prefix+ext)
	}
	return files
}

// STARIndexFiles lists the fixed set of files STAR's genomeGenerate run mode
// writes into the index directory.
func STARIndexFiles(dir string) []string {
	names := []string{
		"SA",
		"SAindex",
		"Genome",
		"chrLength.txt",
		"chrName.txt",
		"chrNameLength.txt",
		"chrStart.txt",
		"genomeParameters.txt",
	}
	files := make([]string, 0, len(names))
	for _, name := range names {
		files = append(files, filepath.Join(dir, name))
	}
	return files
}

// ChrNameFile returns the chromosome-name file inside a STAR index, consumed
// by the GTF-to-BED12 conversion.
func ChrNameFile(starIndexDir string) string {
	return filepath.Join(starIndexDir, "chrName.txt")
}
