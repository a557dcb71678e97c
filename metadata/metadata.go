// Package metadata implements the ordered per-chromosome record list an
// archive carries, and its JSON (de)serialization.
package metadata

import (
	"time"

	"github.com/arl-data/starch/format"
)

// Version is the archive's major.minor.revision triple.
type Version struct {
	Major    int
	Minor    int
	Revision int
}

// ChromosomeRecord is one persistent metadata entry describing a single
// compressed chromosome stream (spec §3).
type ChromosomeRecord struct {
	Name                  string
	FilenameStub          string
	CompressedSizeBytes   Count
	LineCount             Count
	NonUniqueBases        Count
	UniqueBases           Count
	UncompressedSizeBytes Count
}

// Metadata is the archive-wide trailer: an ordered, name-unique list of
// ChromosomeRecords plus the global fields every starch archive carries.
type Metadata struct {
	Version           Version
	CompressionType   format.CompressionType
	Note              string
	CreationTimestamp time.Time
	HeaderFlag        bool
	Records           []ChromosomeRecord

	// Signature holds a SHA-1 digest (raw bytes) of this metadata's
	// serialized JSON. The archive Writer and Reader do not set it: a
	// revision-2 archive carries its digest only in the footer
	// (section.Footer), and this field stays empty.
	Signature []byte
}
