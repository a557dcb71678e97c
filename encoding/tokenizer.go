package encoding

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/arl-data/starch/errs"
	"github.com/arl-data/starch/format"
	"github.com/arl-data/starch/internal/pool"
)

const delimiter = '\t'

// Tokenizer splits one input line at a time into a BedLine. TokenizeInto
// stages the chromosome and remainder fields in two owned growable
// buffers that are reused across lines; the strings it returns are
// still copied out of those buffers, one allocation per field per line.
type Tokenizer struct {
	chrBuf  *pool.ByteBuffer
	restBuf *pool.ByteBuffer
}

// NewTokenizer returns a Tokenizer whose buffers are drawn from the
// shared field-buffer pool; Close returns them.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{
		chrBuf:  pool.GetFieldBuffer(),
		restBuf: pool.GetFieldBuffer(),
	}
}

// Close returns the Tokenizer's buffers to the pool. The Tokenizer must
// not be used for TokenizeInto after Close.
func (t *Tokenizer) Close() {
	pool.PutFieldBuffer(t.chrBuf)
	pool.PutFieldBuffer(t.restBuf)
	t.chrBuf = nil
	t.restBuf = nil
}

// Tokenize parses line into a BedLine, allocating fresh strings for
// Chromosome and Remainder.
func Tokenize(line []byte) (BedLine, error) {
	return tokenize(line, nil, nil)
}

// TokenizeInto parses line into a BedLine, staging Chromosome and
// Remainder in t's owned buffers. The returned strings are copies, not
// views into those buffers, so they stay valid after later calls.
func (t *Tokenizer) TokenizeInto(line []byte) (BedLine, error) {
	return tokenize(line, t.chrBuf, t.restBuf)
}

func tokenize(line []byte, chrBuf, restBuf *pool.ByteBuffer) (BedLine, error) {
	kind := classify(line)

	if kind != format.Coordinates {
		if len(line) > HeaderMax {
			return BedLine{}, &errs.LineError{
				Kind: errs.ErrInputMalformed,
				Err:  fmt.Errorf("header line length %d exceeds limit %d", len(line), HeaderMax),
			}
		}

		return BedLine{Chromosome: string(line), Kind: kind}, nil
	}

	chrField, rest, ok := cutField(line, delimiter)
	if !ok || len(chrField) == 0 {
		return BedLine{}, &errs.LineError{Kind: errs.ErrInputMalformed, Err: fmt.Errorf("missing chromosome field")}
	}
	if len(chrField) > ChrMax {
		return BedLine{}, &errs.LineError{
			Kind:       errs.ErrInputMalformed,
			Chromosome: string(chrField),
			Err:        fmt.Errorf("chromosome length %d exceeds limit %d", len(chrField), ChrMax),
		}
	}

	startField, rest, ok := cutField(rest, delimiter)
	if !ok {
		return BedLine{}, &errs.LineError{Kind: errs.ErrInputMalformed, Err: fmt.Errorf("missing start/stop coordinates")}
	}

	stopField, remainderField, hasRemainder := cutField(rest, delimiter)
	if !hasRemainder {
		stopField = rest
		remainderField = nil
	}

	start, err := parseCoord(startField)
	if err != nil {
		return BedLine{}, &errs.LineError{Kind: errs.ErrInputMalformed, Chromosome: string(chrField), Field: "start", Err: err}
	}
	stop, err := parseCoord(stopField)
	if err != nil {
		return BedLine{}, &errs.LineError{Kind: errs.ErrInputMalformed, Chromosome: string(chrField), Field: "stop", Err: err}
	}

	if len(remainderField) > 0 {
		id, _, _ := cutField(remainderField, delimiter)
		if len(id) > IDMax {
			return BedLine{}, &errs.LineError{
				Kind: errs.ErrInputMalformed, Chromosome: string(chrField), Field: "id",
				Err: fmt.Errorf("id length %d exceeds limit %d", len(id), IDMax),
			}
		}
		if len(remainderField) > RestMax {
			return BedLine{}, &errs.LineError{
				Kind: errs.ErrInputMalformed, Chromosome: string(chrField), Field: "remainder",
				Err: fmt.Errorf("remainder length %d exceeds limit %d", len(remainderField), RestMax),
			}
		}
	}

	chrStr := viewOrCopy(chrBuf, chrField)
	restStr := ""
	if len(remainderField) > 0 {
		restStr = viewOrCopy(restBuf, remainderField)
	}

	return BedLine{
		Chromosome: chrStr,
		Start:      start,
		Stop:       stop,
		Remainder:  restStr,
		Kind:       format.Coordinates,
	}, nil
}

// viewOrCopy writes field into buf (if non-nil) and returns a string
// copied from buf's contents; with a nil buf it copies field directly.
// Either way the result is a fresh allocation.
func viewOrCopy(buf *pool.ByteBuffer, field []byte) string {
	if buf == nil {
		return string(field)
	}

	buf.Reset()
	buf.Grow(len(field))
	buf.Write(field)

	return string(buf.Bytes())
}

// cutField splits b at the first occurrence of sep, like strings.Cut
// but for bytes and without allocation.
func cutField(b []byte, sep byte) (before, after []byte, found bool) {
	if i := bytes.IndexByte(b, sep); i >= 0 {
		return b[:i], b[i+1:], true
	}

	return b, nil, false
}

func parseCoord(field []byte) (int64, error) {
	if len(field) == 0 || len(field) > MaxDecIntegers {
		return 0, fmt.Errorf("invalid coordinate length %d", len(field))
	}

	v, err := strconv.ParseInt(string(field), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid coordinate %q: %w", field, err)
	}
	if v < 0 || v > MaxCoordValue {
		return 0, fmt.Errorf("coordinate %d out of range [0, %d]", v, int64(MaxCoordValue))
	}

	return v, nil
}

// classify determines the LineKind of a raw input line by its prefix.
func classify(line []byte) format.LineKind {
	switch {
	case bytes.HasPrefix(line, []byte("track ")):
		return format.HeaderTrack
	case bytes.HasPrefix(line, []byte("browser ")):
		return format.HeaderBrowser
	case bytes.HasPrefix(line, []byte("@")):
		return format.HeaderSAM
	case bytes.HasPrefix(line, []byte("##")):
		return format.HeaderVCF
	case bytes.HasPrefix(line, []byte("#")):
		return format.GenericComment
	default:
		return format.Coordinates
	}
}
