// Package encoding implements the tokenizer, delta transform, and its
// inverse — the text-level heart of a starch archive.
package encoding

import "github.com/arl-data/starch/format"

// Limits enforced by the Tokenizer, matching the historical BEDOPS
// constants referenced by the wire format this package implements.
const (
	ChrMax         = 128
	HeaderMax      = 1024
	MaxDecIntegers = 19
	MaxCoordValue  = 1<<63 - 2
	IDMax          = 255
	RestMax        = 16384
)

// BedLine is one tokenized input record. Chromosome and Remainder are
// owned strings; they do not alias a Tokenizer's internal buffers.
type BedLine struct {
	Chromosome string
	Start      int64
	Stop       int64
	Remainder  string
	Kind       format.LineKind
}

// IsCoordinate reports whether the line carries a chromosome interval,
// as opposed to a header or comment line.
func (l BedLine) IsCoordinate() bool {
	return l.Kind == format.Coordinates
}
