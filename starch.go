// Package starch provides a compact archive format for sorted genomic
// BED interval records: a delta/run-length transform followed by
// per-chromosome block compression (bzip2 or gzip), framed by a
// self-describing JSON metadata trailer.
//
// # Writing an archive
//
//	w, err := starch.NewWriter(sink, starch.WithCompression(format.CompressionBzip2))
//	for _, line := range sortedBedLines {
//	    if err := w.WriteLine(line); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//	if err := w.Finish(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Reading an archive
//
//	r, err := starch.NewReader(archiveBytes)
//	err = r.ExtractAll(os.Stdout, format.HeaderAssumeAbsent)
//
// Input lines must be fed sorted, with each chromosome's records
// contiguous; the writer rejects an interleaved chromosome with
// InputCorrupt.
package starch

import (
	"io"

	"github.com/arl-data/starch/archive"
	"github.com/arl-data/starch/format"
)

// Re-exported so callers need only import this package for the common
// path; archive.Writer/Reader remain available directly for advanced
// use (e.g. inspecting Metadata()).
type (
	Writer = archive.Writer
	Reader = archive.Reader

	WriterOption = archive.WriterOption
)

// Re-exported enum values so callers configuring a Writer or choosing a
// HeaderPolicy don't need a second import.
const (
	CompressionBzip2 = format.CompressionBzip2
	CompressionGzip  = format.CompressionGzip

	RevisionLegacy  = format.RevisionLegacy
	RevisionCurrent = format.RevisionCurrent

	HeaderEmit         = format.HeaderEmit
	HeaderDrop         = format.HeaderDrop
	HeaderAssumeAbsent = format.HeaderAssumeAbsent
)

// WithCompression selects the block codec used for every chromosome
// stream in the archive.
func WithCompression(t format.CompressionType) WriterOption { return archive.WithCompression(t) }

// WithRevision selects the archive envelope revision to produce.
func WithRevision(r format.ArchiveRevision) WriterOption { return archive.WithRevision(r) }

// WithNote sets the free-text note carried in the archive's metadata.
func WithNote(note string) WriterOption { return archive.WithNote(note) }

// WithHeaderFlag records whether non-coordinate lines were present and
// preserved in the input.
func WithHeaderFlag(flag bool) WriterOption { return archive.WithHeaderFlag(flag) }

// WithBufferMax overrides the intermediate-buffer flush threshold
// (default archive.DefaultBufferMax).
func WithBufferMax(n int) WriterOption { return archive.WithBufferMax(n) }

// NewWriter returns a Writer that streams an archive to sink as lines
// are fed to it via WriteLine.
func NewWriter(sink io.Writer, opts ...WriterOption) (*Writer, error) {
	return archive.NewWriter(sink, opts...)
}

// NewReader parses data's metadata trailer, verifying the revision-2
// footer signature, and returns a Reader ready to extract chromosomes.
func NewReader(data []byte) (*Reader, error) {
	return archive.NewReader(data)
}
