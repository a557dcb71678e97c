package metadata

import (
	"fmt"

	"github.com/arl-data/starch/errs"
	"github.com/arl-data/starch/internal/dedupe"
)

// Recorder builds the ordered, name-unique ChromosomeRecord list that
// becomes an archive's metadata (spec §4.4). It is the Archive Writer's
// only means of accumulating per-chromosome bookkeeping; the writer
// never appends to Metadata.Records directly.
type Recorder struct {
	records []ChromosomeRecord
	index   map[string]int
	seen    *dedupe.Tracker
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		index: make(map[string]int),
		seen:  dedupe.NewTracker(),
	}
}

// Contains reports whether chromosome already has a record.
func (r *Recorder) Contains(chromosome string) bool {
	return r.seen.Contains(chromosome)
}

// Create opens a new record for chromosome. It is an InputCorrupt error
// to create a chromosome that already has a record: the archive format
// requires each chromosome's lines to be contiguous in the input, and a
// second Create for the same name means the input interleaved two
// chromosomes' lines (spec §4.4: "possible interleaving issue").
func (r *Recorder) Create(chromosome, filenameStub string) error {
	if r.seen.Contains(chromosome) {
		return &errs.LineError{
			Kind:       errs.ErrInputCorrupt,
			Chromosome: chromosome,
			Err:        fmt.Errorf("duplicate chromosome, possible interleaving issue"),
		}
	}

	r.seen.Track(chromosome)
	r.index[chromosome] = len(r.records)
	r.records = append(r.records, ChromosomeRecord{
		Name:         chromosome,
		FilenameStub: filenameStub,
	})

	return nil
}

// Append is an alias for Create kept for parity with the append/create
// naming spec §4.4 uses interchangeably for opening a chromosome's
// record; both reject a chromosome already seen.
func (r *Recorder) Append(chromosome, filenameStub string) error {
	return r.Create(chromosome, filenameStub)
}

// Update accumulates the running totals for chromosome's record. It may
// be called repeatedly as an Archive Writer flushes intermediate
// buffers for the same chromosome; each call adds to, rather than
// replaces, the existing totals.
func (r *Recorder) Update(chromosome string, compressedDelta, lineDelta, nonUniqueDelta, uniqueDelta uint64) error {
	i, ok := r.index[chromosome]
	if !ok {
		return &errs.LineError{
			Kind:       errs.ErrInputCorrupt,
			Chromosome: chromosome,
			Err:        fmt.Errorf("update on chromosome with no record"),
		}
	}

	rec := &r.records[i]
	rec.CompressedSizeBytes += Count(compressedDelta)
	rec.LineCount += Count(lineDelta)
	rec.NonUniqueBases += Count(nonUniqueDelta)
	rec.UniqueBases += Count(uniqueDelta)

	return nil
}

// SetUncompressedSize records the total uncompressed byte count written
// for chromosome, independent of the running Update totals above.
func (r *Recorder) SetUncompressedSize(chromosome string, size uint64) error {
	i, ok := r.index[chromosome]
	if !ok {
		return &errs.LineError{
			Kind:       errs.ErrInputCorrupt,
			Chromosome: chromosome,
			Err:        fmt.Errorf("set size on chromosome with no record"),
		}
	}

	r.records[i].UncompressedSizeBytes = Count(size)

	return nil
}

// Records returns the accumulated records in first-occurrence order.
// The returned slice is owned by the Recorder; callers must not mutate
// it.
func (r *Recorder) Records() []ChromosomeRecord {
	return r.records
}

// Reset clears all accumulated records.
func (r *Recorder) Reset() {
	r.records = r.records[:0]
	for k := range r.index {
		delete(r.index, k)
	}
	r.seen.Reset()
}
