// Package compress wraps the two streaming block codecs a starch
// archive can use: bzip2 and gzip. Unlike a whole-buffer codec, a
// Stream is opened once per chromosome, written to incrementally, and
// closed to finalize that chromosome's compressed region.
package compress

import (
	"fmt"
	"io"

	"github.com/arl-data/starch/errs"
	"github.com/arl-data/starch/format"
)

// Stream is a single chromosome's compressed output. Close finalizes
// the underlying codec (flushing internal buffers) without closing the
// sink it was opened on.
type Stream interface {
	io.Writer
	Close() error
	// BytesWritten reports how many compressed bytes this stream wrote
	// to its sink since Open.
	BytesWritten() int64
}

// BlockCompressor opens compression streams of one codec variant.
type BlockCompressor interface {
	// Open begins a fresh compressed stream over w. The returned Stream
	// must be written to and then Closed before Open is called again
	// for the next chromosome.
	Open(w io.Writer) (Stream, error)
	Type() format.CompressionType
}

// BlockDecompressor opens decompression readers of one codec variant.
type BlockDecompressor interface {
	Open(r io.Reader) (io.ReadCloser, error)
	Type() format.CompressionType
}

// NewCompressor returns the BlockCompressor for the given compression
// type.
func NewCompressor(t format.CompressionType) (BlockCompressor, error) {
	switch t {
	case format.CompressionBzip2:
		return newBzip2Compressor(), nil
	case format.CompressionGzip:
		return newGzipCompressor(), nil
	default:
		return nil, &errs.LineError{Kind: errs.ErrCodec, Err: fmt.Errorf("unsupported compression type %v", t)}
	}
}

// NewDecompressor returns the BlockDecompressor for the given
// compression type.
func NewDecompressor(t format.CompressionType) (BlockDecompressor, error) {
	switch t {
	case format.CompressionBzip2:
		return newBzip2Decompressor(), nil
	case format.CompressionGzip:
		return newGzipDecompressor(), nil
	default:
		return nil, &errs.LineError{Kind: errs.ErrCodec, Err: fmt.Errorf("unsupported compression type %v", t)}
	}
}

// countingWriter tracks how many bytes have passed through it,
// independent of what the wrapped codec's own internal counters (if
// any) report — the Archive Writer trusts this counter, not the
// library, for compressed_size_bytes bookkeeping (spec §4.3).
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)

	return n, err
}
