package compress

import (
	"io"

	"github.com/arl-data/starch/errs"
	"github.com/arl-data/starch/format"
	"github.com/dsnet/compress/bzip2"
)

type bzip2Compressor struct{}

func newBzip2Compressor() BlockCompressor { return bzip2Compressor{} }

func (bzip2Compressor) Type() format.CompressionType { return format.CompressionBzip2 }

func (bzip2Compressor) Open(w io.Writer) (Stream, error) {
	counter := &countingWriter{w: w}

	zw, err := bzip2.NewWriterLevel(counter, bzip2.BestCompression)
	if err != nil {
		return nil, &errs.LineError{Kind: errs.ErrCodec, Err: err}
	}

	return &bzip2Stream{zw: zw, counter: counter}, nil
}

type bzip2Stream struct {
	zw      *bzip2.Writer
	counter *countingWriter
}

func (s *bzip2Stream) Write(p []byte) (int, error) {
	n, err := s.zw.Write(p)
	if err != nil {
		return n, &errs.LineError{Kind: errs.ErrCodec, Err: err}
	}

	return n, nil
}

func (s *bzip2Stream) Close() error {
	if err := s.zw.Close(); err != nil {
		return &errs.LineError{Kind: errs.ErrCodec, Err: err}
	}

	return nil
}

func (s *bzip2Stream) BytesWritten() int64 { return s.counter.n }

type bzip2Decompressor struct{}

func newBzip2Decompressor() BlockDecompressor { return bzip2Decompressor{} }

func (bzip2Decompressor) Type() format.CompressionType { return format.CompressionBzip2 }

func (bzip2Decompressor) Open(r io.Reader) (io.ReadCloser, error) {
	zr, err := bzip2.NewReader(r, nil)
	if err != nil {
		return nil, &errs.LineError{Kind: errs.ErrCodec, Err: err}
	}

	return zr, nil
}
