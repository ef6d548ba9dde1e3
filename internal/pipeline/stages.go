package pipeline

import (
	"strconv"

	"github.com/ribokit/riboprep/internal/filenames"
	"github.com/ribokit/riboprep/internal/runner"
)

// ribosomalIndexStage builds the bowtie2 index over the ribosomal RNA
// sequences used to filter rRNA-derived reads.
func (d *Driver) ribosomalIndexStage() runner.Step {
	fasta := d.doc.Path("ribosomal_fasta")
	index := d.doc.Path("ribosomal_index")
	return runner.Step{
		Name:    "rrna-index",
		Argv:    []string{"bowtie2-build-s", fasta, index},
		Inputs:  []string{fasta},
		Outputs: filenames.Bowtie2IndexFiles(index),
	}
}

// genomeIndexStage builds the splice-aware STAR index over the genome FASTA.
func (d *Driver) genomeIndexStage() runner.Step {
	indexDir := d.doc.Path("star_index")
	fasta := d.doc.Path("fasta")
	argv := []string{
		d.opts.StarExecutable,
		"--runMode", "genomeGenerate",
		"--genomeDir", indexDir,
		"--genomeFastaFiles", fasta,
		"--runThreadN", strconv.Itoa(d.opts.NumCPUs),
		"--limitGenomeGenerateRAM", strconv.FormatInt(d.opts.RAMLimit, 10),
	}
	return runner.Step{
		Name:    "genome-index",
		Argv:    argv,
		Inputs:  []string{fasta},
		Outputs: filenames.STARIndexFiles(indexDir),
	}
}

// bed12Stage converts the GTF annotation into the canonical transcript
// BED12 file, restricted to the chromosomes the STAR index knows about.
func (d *Driver) bed12Stage() runner.Step {
	gtf := d.doc.Path("gtf")
	bed := filenames.TranscriptBed(d.doc.Path("genome_base_path"), d.doc.Path("genome_name"))

	argv := []string{"gtf-to-bed12", gtf, bed}
	argv = append(argv, d.numCPUsArgs()...)
	argv = append(argv, "--chr-name-file", filenames.ChrNameFile(d.doc.Path("star_index")))
	argv = append(argv, d.loggingArgs()...)

	return runner.Step{
		Name:    "bed12-convert",
		Argv:    argv,
		Inputs:  []string{gtf},
		Outputs: []string{bed},
	}
}

// transcriptFastaStage extracts the transcript sequences using the
// configured strategy.
func (d *Driver) transcriptFastaStage() runner.Step {
	base := d.doc.Path("genome_base_path")
	name := d.doc.Path("genome_name")
	genomeFasta := d.doc.Path("fasta")
	transcriptFasta := filenames.TranscriptFasta(base, name)

	if d.extract == StrategyBedSequences {
		bed := filenames.TranscriptBed(base, name)
		argv := []string{"extract-bed-sequences", bed, genomeFasta, transcriptFasta}
		argv = append(argv, d.loggingArgs()...)
		return runner.Step{
			Name:    "transcript-fasta",
			Argv:    argv,
			Inputs:  []string{bed, genomeFasta},
			Outputs: []string{transcriptFasta},
		}
	}

	gtf := d.doc.Path("gtf")
	return runner.Step{
		Name:    "transcript-fasta",
		Argv:    []string{"gffread", "-W", "-w", transcriptFasta, "-g", genomeFasta, gtf},
		Inputs:  []string{gtf, genomeFasta},
		Outputs: []string{transcriptFasta},
	}
}

// orfStage extracts the deduplicated, annotated ORFs in genomic coordinates
// from the transcript sequences.
func (d *Driver) orfStage() runner.Step {
	base := d.doc.Path("genome_base_path")
	name := d.doc.Path("genome_name")
	note := d.doc.Path("orf_note")

	transcriptFasta := filenames.TranscriptFasta(base, name)
	orfs := filenames.ORFs(base, name, note)

	argv := []string{"extract-orfs", transcriptFasta, orfs}
	argv = append(argv, d.numCPUsArgs()...)
	argv = append(argv, d.doc.OptionalFlag("start_codons", "--start-codons")...)
	argv = append(argv, d.doc.OptionalFlag("stop_codons", "--stop-codons")...)
	argv = append(argv, d.doc.OptionalFlag("novel_id_re", "--novel-id-re")...)
	if d.doc.Has("ignore_parsing_errors") {
		argv = append(argv, "--ignore-parsing-errors")
	}
	argv = append(argv, d.loggingArgs()...)

	return runner.Step{
		Name:    "orf-extract",
		Argv:    argv,
		Inputs:  []string{transcriptFasta},
		Outputs: []string{orfs},
	}
}

// exonStage splits the BED12 ORF blocks into one exon per record.
func (d *Driver) exonStage() runner.Step {
	base := d.doc.Path("genome_base_path")
	name := d.doc.Path("genome_name")
	note := d.doc.Path("orf_note")

	orfs := filenames.ORFs(base, name, note)
	exons := filenames.Exons(base, name, note)

	argv := []string{"split-bed12-blocks", orfs, exons}
	argv = append(argv, d.numCPUsArgs()...)
	argv = append(argv, d.loggingArgs()...)

	return runner.Step{
		Name:    "exon-split",
		Argv:    argv,
		Inputs:  []string{orfs},
		Outputs: []string{exons},
	}
}
