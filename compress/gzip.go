package compress

import (
	"io"

	"github.com/arl-data/starch/errs"
	"github.com/arl-data/starch/format"
	"github.com/klauspost/compress/gzip"
)

type gzipCompressor struct{}

func newGzipCompressor() BlockCompressor { return gzipCompressor{} }

func (gzipCompressor) Type() format.CompressionType { return format.CompressionGzip }

func (gzipCompressor) Open(w io.Writer) (Stream, error) {
	counter := &countingWriter{w: w}

	zw, err := gzip.NewWriterLevel(counter, gzip.BestCompression)
	if err != nil {
		return nil, &errs.LineError{Kind: errs.ErrCodec, Err: err}
	}

	return &gzipStream{zw: zw, counter: counter}, nil
}

type gzipStream struct {
	zw      *gzip.Writer
	counter *countingWriter
}

func (s *gzipStream) Write(p []byte) (int, error) {
	n, err := s.zw.Write(p)
	if err != nil {
		return n, &errs.LineError{Kind: errs.ErrCodec, Err: err}
	}

	return n, nil
}

func (s *gzipStream) Close() error {
	if err := s.zw.Close(); err != nil {
		return &errs.LineError{Kind: errs.ErrCodec, Err: err}
	}

	return nil
}

func (s *gzipStream) BytesWritten() int64 { return s.counter.n }

type gzipDecompressor struct{}

func newGzipDecompressor() BlockDecompressor { return gzipDecompressor{} }

func (gzipDecompressor) Type() format.CompressionType { return format.CompressionGzip }

func (gzipDecompressor) Open(r io.Reader) (io.ReadCloser, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, &errs.LineError{Kind: errs.ErrCodec, Err: err}
	}

	return zr, nil
}
