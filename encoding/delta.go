package encoding

import (
	"fmt"
	"strconv"

	"github.com/arl-data/starch/errs"
	"github.com/arl-data/starch/internal/pool"
)

// DeltaEncoder is the forward delta transform (spec §4.2): it turns a
// sorted run of (start, stop, remainder) triples for one chromosome
// into the compact textual stream a Writer compresses.
//
// A DeltaEncoder holds state for exactly one chromosome; callers
// construct (or Reset) one per chromosome transition.
type DeltaEncoder struct {
	lastStop           int64
	lastIntervalLength int64
	previousStop       int64

	nonUniqueBases uint64
	uniqueBases    uint64

	headerLines   []byte
	headerPending bool

	scratch [24]byte
}

// NewDeltaEncoder returns a DeltaEncoder ready to transform the first
// chromosome's records.
func NewDeltaEncoder() *DeltaEncoder {
	return &DeltaEncoder{}
}

// Reset returns the encoder to its initial numeric state for a new
// chromosome. It deliberately leaves any pending accumulated header
// text untouched: header lines seen between two chromosomes' coordinate
// blocks belong to whichever chromosome's coordinate line flushes them
// next, not to the chromosome Reset is leaving.
func (d *DeltaEncoder) Reset() {
	d.lastStop = 0
	d.lastIntervalLength = 0
	d.previousStop = 0
	d.nonUniqueBases = 0
	d.uniqueBases = 0
}

// AccumulateHeader buffers a non-coordinate line under header_flag mode;
// it is flushed verbatim immediately before the next coordinate line
// emitted by TransformInto.
func (d *DeltaEncoder) AccumulateHeader(line string) {
	d.headerLines = append(d.headerLines, line...)
	d.headerLines = append(d.headerLines, '\n')
	d.headerPending = true
}

// TransformInto writes the delta-encoded representation of one
// coordinate line into dst, flushing any pending accumulated header
// text first, and updates the running base-count invariants.
func (d *DeltaEncoder) TransformInto(dst *pool.ByteBuffer, start, stop int64, remainder string) error {
	if start < 0 {
		return &errs.LineError{Kind: errs.ErrInputCorrupt, Err: fmt.Errorf("start %d is negative", start)}
	}
	if stop <= start {
		return &errs.LineError{Kind: errs.ErrInputCorrupt, Err: fmt.Errorf("stop %d <= start %d", stop, start)}
	}

	if d.headerPending {
		dst.Write(d.headerLines)
		d.headerLines = d.headerLines[:0]
		d.headerPending = false
	}

	length := stop - start
	if length != d.lastIntervalLength {
		dst.Write([]byte{'p'})
		dst.Write(d.appendInt(length))
		dst.Write([]byte{'\n'})
		d.lastIntervalLength = length
	}

	var value int64
	if d.lastStop == 0 {
		value = start
	} else {
		value = start - d.lastStop
	}
	dst.Write(d.appendInt(value))
	if remainder != "" {
		dst.Write([]byte{'\t'})
		dst.Write([]byte(remainder))
	}
	dst.Write([]byte{'\n'})

	d.nonUniqueBases += uint64(length)
	switch {
	case d.previousStop <= start:
		d.uniqueBases += uint64(length)
	case d.previousStop < stop:
		d.uniqueBases += uint64(stop - d.previousStop)
	}
	if stop > d.previousStop {
		d.previousStop = stop
	}
	d.lastStop = stop

	return nil
}

func (d *DeltaEncoder) appendInt(v int64) []byte {
	return strconv.AppendInt(d.scratch[:0], v, 10)
}

// NonUniqueBases returns Σ(stop-start) over every line transformed
// since the last Reset.
func (d *DeltaEncoder) NonUniqueBases() uint64 { return d.nonUniqueBases }

// UniqueBases returns the length of the union of intervals transformed
// since the last Reset, assuming sorted input (spec §9 open question).
func (d *DeltaEncoder) UniqueBases() uint64 { return d.uniqueBases }
