// Package errs defines the error kinds a starch archive operation can
// fail with. Callers classify an error with errors.Is against the
// sentinel values below rather than type-asserting a hierarchy.
package errs

import (
	"errors"
	"strconv"
)

var (
	// ErrInputMalformed marks a BED line that cannot be tokenized at all
	// (wrong column count, non-numeric coordinate, chromosome too long).
	ErrInputMalformed = errors.New("input malformed")

	// ErrInputCorrupt marks input that tokenizes fine but violates an
	// ordering or uniqueness invariant (negative start, stop not after
	// start, duplicate chromosome, interleaved chromosome blocks).
	ErrInputCorrupt = errors.New("input corrupt")

	// ErrCodec marks a failure inside a block compressor or decompressor.
	ErrCodec = errors.New("codec failure")

	// ErrIO marks a failure reading from or writing to the underlying
	// sink or source.
	ErrIO = errors.New("io failure")

	// ErrMetadataParse marks a failure decoding the JSON or legacy fixed
	// metadata trailer.
	ErrMetadataParse = errors.New("metadata parse failure")

	// ErrSignature marks a footer signature that does not match the
	// recomputed digest of the metadata it covers.
	ErrSignature = errors.New("signature mismatch")

	// ErrNotFound marks a request for a chromosome absent from the
	// archive's metadata.
	ErrNotFound = errors.New("not found")

	// ErrOutOfMemory marks a buffer growth request that exceeds a
	// configured ceiling.
	ErrOutOfMemory = errors.New("out of memory")
)

// Kind returns the sentinel the given error was wrapped around, or nil
// if err does not match any kind defined in this package.
func Kind(err error) error {
	for _, k := range []error{
		ErrInputMalformed,
		ErrInputCorrupt,
		ErrCodec,
		ErrIO,
		ErrMetadataParse,
		ErrSignature,
		ErrNotFound,
		ErrOutOfMemory,
	} {
		if errors.Is(err, k) {
			return k
		}
	}

	return nil
}

// LineError is a one-line diagnostic attached to a specific input
// location: a line number within a chromosome's record stream.
type LineError struct {
	Kind       error
	Line       int
	Chromosome string
	Field      string
	Err        error
}

func (e *LineError) Error() string {
	msg := e.Kind.Error()
	if e.Chromosome != "" {
		msg += " in chromosome " + e.Chromosome
	}
	if e.Line > 0 {
		msg += ", line " + strconv.Itoa(e.Line)
	}
	if e.Field != "" {
		msg += ", field " + e.Field
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Unwrap exposes both e.Kind and e.Err to errors.Is/errors.As, so a
// caller can match either the classification sentinel or the
// underlying cause.
func (e *LineError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}

	return []error{e.Kind}
}
