// Package archive assembles and reads the starch archive envelope: the
// concatenated per-chromosome compressed streams, the JSON metadata
// trailer, and (revision 2) the signed footer.
package archive

import (
	"bytes"
	"fmt"
	"io"

	"github.com/arl-data/starch/compress"
	"github.com/arl-data/starch/encoding"
	"github.com/arl-data/starch/errs"
	"github.com/arl-data/starch/format"
	"github.com/arl-data/starch/internal/options"
	"github.com/arl-data/starch/internal/pool"
	"github.com/arl-data/starch/metadata"
	"github.com/arl-data/starch/section"
)

// nullChromosome is the placeholder chromosome name/filename stub a
// Writer emits when the input contained no coordinate lines at all
// (spec §4.5).
const nullChromosome = "null"

// Writer drives the state machine of spec §4.5: Start →
// InChromosome(name) → InChromosome(name') → … → End. It tokenizes raw
// input lines itself, so callers feed it whole lines, not BedLine
// values.
type Writer struct {
	cfg *writerConfig

	sink       io.Writer
	streamSink io.Writer
	legacyBuf  *bytes.Buffer

	recorder *metadata.Recorder
	delta    *encoding.DeltaEncoder
	tok      *encoding.Tokenizer

	compressor compress.BlockCompressor
	stream     compress.Stream

	chromosome   string
	inChromosome bool
	lineCount    uint64

	transformed  *pool.ByteBuffer
	intermediate *pool.ByteBuffer

	sawCoordinate bool
	finished      bool
}

// NewWriter returns a Writer that streams an archive to sink as lines
// are fed to it via WriteLine.
func NewWriter(sink io.Writer, opts ...WriterOption) (*Writer, error) {
	cfg := defaultWriterConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	compressor, err := compress.NewCompressor(cfg.compressionType)
	if err != nil {
		return nil, err
	}

	w := &Writer{
		cfg:          cfg,
		sink:         sink,
		recorder:     metadata.NewRecorder(),
		delta:        encoding.NewDeltaEncoder(),
		tok:          encoding.NewTokenizer(),
		compressor:   compressor,
		transformed:  pool.NewByteBuffer(cfg.bufferMax),
		intermediate: pool.NewByteBuffer(256),
	}

	if cfg.revision == format.RevisionCurrent {
		w.streamSink = sink
		if _, err := sink.Write(section.Magic[:]); err != nil {
			return nil, &errs.LineError{Kind: errs.ErrIO, Err: err}
		}
	} else {
		w.legacyBuf = &bytes.Buffer{}
		w.streamSink = w.legacyBuf
	}

	return w, nil
}

// WriteLine tokenizes and applies one input line, without its trailing
// newline. Lines must be fed in the sorted, chromosome-contiguous order
// the format requires (spec §9 open question).
func (w *Writer) WriteLine(line []byte) error {
	if w.finished {
		return fmt.Errorf("starch: WriteLine called after Finish")
	}

	bl, err := w.tok.TokenizeInto(line)
	if err != nil {
		return err
	}

	if !bl.IsCoordinate() {
		if w.cfg.headerFlag {
			w.delta.AccumulateHeader(string(line))
		}

		return nil
	}

	w.sawCoordinate = true

	if !w.inChromosome || bl.Chromosome != w.chromosome {
		if err := w.transitionChromosome(bl.Chromosome); err != nil {
			return err
		}
	}

	w.intermediate.Reset()
	if err := w.delta.TransformInto(w.intermediate, bl.Start, bl.Stop, bl.Remainder); err != nil {
		return err
	}
	w.lineCount++

	if w.transformed.Len()+w.intermediate.Len() >= w.cfg.bufferMax {
		if err := w.flushTransformed(); err != nil {
			return err
		}
		w.transformed, w.intermediate = w.intermediate, w.transformed
		w.intermediate.Reset()
	} else {
		w.transformed.Write(w.intermediate.Bytes())
	}

	return nil
}

// transitionChromosome closes the in-progress chromosome (if any) and
// opens a fresh compressor stream for name (spec §4.5, "On entering a
// new coordinate chromosome").
func (w *Writer) transitionChromosome(name string) error {
	if w.inChromosome {
		if err := w.closeChromosome(); err != nil {
			return err
		}
	}

	if w.recorder.Contains(name) {
		return &errs.LineError{
			Kind:       errs.ErrInputCorrupt,
			Chromosome: name,
			Err:        fmt.Errorf("duplicate chromosome, possible interleaving issue"),
		}
	}

	if err := w.recorder.Create(name, w.filenameStub(name)); err != nil {
		return err
	}

	stream, err := w.compressor.Open(w.streamSink)
	if err != nil {
		return err
	}

	w.stream = stream
	w.chromosome = name
	w.inChromosome = true
	w.lineCount = 0
	w.delta.Reset()
	w.transformed.Reset()

	return nil
}

// closeChromosome flushes any buffered transformed output, closes the
// compressor stream, and records the chromosome's final counters.
func (w *Writer) closeChromosome() error {
	if err := w.flushTransformed(); err != nil {
		return err
	}

	if err := w.stream.Close(); err != nil {
		return err
	}

	compressedSize := uint64(w.stream.BytesWritten())
	if err := w.recorder.Update(w.chromosome, compressedSize, w.lineCount, w.delta.NonUniqueBases(), w.delta.UniqueBases()); err != nil {
		return err
	}

	w.inChromosome = false

	return nil
}

// filenameStub names the region metadata carries for a chromosome; in
// a revision-2 archive all regions live concatenated in one file, so
// this is bookkeeping only, not an actual path used to locate bytes.
func (w *Writer) filenameStub(chromosome string) string {
	if chromosome == nullChromosome {
		return nullChromosome
	}

	ext := "bz2"
	if w.cfg.compressionType == format.CompressionGzip {
		ext = "gz"
	}

	return chromosome + "." + ext
}

func (w *Writer) flushTransformed() error {
	if w.transformed.Len() == 0 {
		return nil
	}

	if _, err := w.stream.Write(w.transformed.Bytes()); err != nil {
		return &errs.LineError{Kind: errs.ErrIO, Chromosome: w.chromosome, Err: err}
	}

	w.transformed.Reset()

	return nil
}

// Finish closes the final chromosome, serializes the metadata trailer,
// and (revision 2) appends the signed footer. The Writer must not be
// used again afterward.
func (w *Writer) Finish() error {
	if w.finished {
		return fmt.Errorf("starch: Finish called more than once")
	}
	w.finished = true

	if !w.sawCoordinate {
		if err := w.transitionChromosome(nullChromosome); err != nil {
			return err
		}
	}

	if err := w.closeChromosome(); err != nil {
		return err
	}

	w.tok.Close()

	meta := &metadata.Metadata{
		Version:           metadata.Version{Major: 1, Minor: 0, Revision: int(w.cfg.revision)},
		CompressionType:   w.cfg.compressionType,
		Note:              w.cfg.note,
		CreationTimestamp: w.cfg.now(),
		HeaderFlag:        w.cfg.headerFlag,
		Records:           w.recorder.Records(),
	}

	metaJSON, err := meta.MarshalJSON()
	if err != nil {
		return err
	}

	if w.cfg.revision == format.RevisionLegacy {
		return w.finishLegacy(metaJSON)
	}

	return w.finishCurrent(metaJSON)
}

func (w *Writer) finishCurrent(metaJSON []byte) error {
	offset := int64(section.MagicSize)
	for _, r := range w.recorder.Records() {
		offset += int64(r.CompressedSizeBytes)
	}

	if _, err := w.sink.Write(metaJSON); err != nil {
		return &errs.LineError{Kind: errs.ErrIO, Err: err}
	}

	footer := section.Footer{Offset: offset, Digest: digestBase64(metaJSON)}
	footerBytes, err := footer.Bytes()
	if err != nil {
		return err
	}

	if _, err := w.sink.Write(footerBytes); err != nil {
		return &errs.LineError{Kind: errs.ErrIO, Err: err}
	}

	return nil
}

func (w *Writer) finishLegacy(metaJSON []byte) error {
	if len(metaJSON) > section.LegacyMetadataSize {
		return &errs.LineError{
			Kind: errs.ErrMetadataParse,
			Err:  fmt.Errorf("metadata size %d exceeds legacy buffer size %d", len(metaJSON), section.LegacyMetadataSize),
		}
	}

	buf := make([]byte, section.LegacyMetadataSize)
	copy(buf, metaJSON)

	if _, err := w.sink.Write(buf); err != nil {
		return &errs.LineError{Kind: errs.ErrIO, Err: err}
	}

	if _, err := w.sink.Write(w.legacyBuf.Bytes()); err != nil {
		return &errs.LineError{Kind: errs.ErrIO, Err: err}
	}

	return nil
}
