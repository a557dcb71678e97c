package encoding

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/arl-data/starch/errs"
	"github.com/arl-data/starch/format"
)

// InverseTransformer is the dual of DeltaEncoder (spec §4.7): given the
// uncompressed per-chromosome text stream a DeltaEncoder produced, it
// reconstructs absolute BED lines.
//
// One InverseTransformer holds state for exactly one chromosome; the
// Archive Reader constructs a fresh one per chromosome it decodes (see
// DESIGN.md's resolution of the statefulness open question), so there
// is no cross-chromosome Reset to get wrong.
type InverseTransformer struct {
	chromosome   string
	policy       format.HeaderPolicy
	lastPosition int64
	lcDiff       int64
}

// NewInverseTransformer returns a transformer that reconstructs records
// for the given chromosome under the given header policy.
func NewInverseTransformer(chromosome string, policy format.HeaderPolicy) *InverseTransformer {
	return &InverseTransformer{chromosome: chromosome, policy: policy}
}

// ProcessLine consumes one line of the uncompressed delta stream
// (without its trailing newline) and, if it represents a coordinate
// record, writes the reconstructed BED line to w. Run markers update
// internal state and never write. Header lines are emitted, dropped, or
// ignored per the transformer's HeaderPolicy.
func (t *InverseTransformer) ProcessLine(line []byte, w io.Writer) error {
	if len(line) == 0 {
		return nil
	}

	if line[0] == 'p' {
		n, err := strconv.ParseInt(string(line[1:]), 10, 64)
		if err != nil {
			return &errs.LineError{Kind: errs.ErrInputCorrupt, Chromosome: t.chromosome, Field: "run-marker", Err: err}
		}
		t.lcDiff = n

		return nil
	}

	if t.policy != format.HeaderAssumeAbsent && isHeaderLine(line) {
		if t.policy == format.HeaderDrop {
			return nil
		}

		if _, err := w.Write(line); err != nil {
			return &errs.LineError{Kind: errs.ErrIO, Err: err}
		}
		if _, err := w.Write([]byte{'\n'}); err != nil {
			return &errs.LineError{Kind: errs.ErrIO, Err: err}
		}

		return nil
	}

	tokenField, remainderField, hasRemainder := cutField(line, delimiter)
	if !hasRemainder {
		tokenField = line
		remainderField = nil
	}

	v, err := strconv.ParseInt(string(tokenField), 10, 64)
	if err != nil {
		return &errs.LineError{Kind: errs.ErrInputCorrupt, Chromosome: t.chromosome, Err: err}
	}

	var start int64
	if t.lastPosition == 0 {
		start = v
	} else {
		start = t.lastPosition + v
	}
	stop := start + t.lcDiff

	if _, err := fmt.Fprintf(w, "%s\t%d\t%d", t.chromosome, start, stop); err != nil {
		return &errs.LineError{Kind: errs.ErrIO, Err: err}
	}
	if len(remainderField) > 0 {
		if _, err := w.Write([]byte{'\t'}); err != nil {
			return &errs.LineError{Kind: errs.ErrIO, Err: err}
		}
		if _, err := w.Write(remainderField); err != nil {
			return &errs.LineError{Kind: errs.ErrIO, Err: err}
		}
	}
	if _, err := w.Write([]byte{'\n'}); err != nil {
		return &errs.LineError{Kind: errs.ErrIO, Err: err}
	}

	t.lastPosition = stop

	return nil
}

func isHeaderLine(line []byte) bool {
	switch {
	case bytes.HasPrefix(line, []byte("track ")):
		return true
	case bytes.HasPrefix(line, []byte("browser ")):
		return true
	case bytes.HasPrefix(line, []byte("@")):
		return true
	case bytes.HasPrefix(line, []byte("#")):
		return true
	default:
		return false
	}
}
