package archive

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/arl-data/starch/compress"
	"github.com/arl-data/starch/encoding"
	"github.com/arl-data/starch/errs"
	"github.com/arl-data/starch/format"
	"github.com/arl-data/starch/metadata"
	"github.com/arl-data/starch/section"
)

// Reader parses an archive's metadata trailer (revision 1 or 2) and
// locates and decodes individual chromosomes' compressed regions (spec
// §4.6). A Reader holds the whole archive in memory and works from that
// byte slice rather than from a stream.
type Reader struct {
	data        []byte
	revision    format.ArchiveRevision
	meta        *metadata.Metadata
	regionOff   []int64
	indexByName map[string]int
}

// NewReader parses data's metadata trailer and, for revision 2,
// verifies the footer's signature against the metadata JSON it covers.
func NewReader(data []byte) (*Reader, error) {
	if len(data) >= section.MagicSize && bytes.Equal(data[:section.MagicSize], section.Magic[:]) {
		return newReaderV2(data)
	}

	return newReaderV1(data)
}

func newReaderV2(data []byte) (*Reader, error) {
	if len(data) < section.MagicSize+section.FooterSize {
		return nil, &errs.LineError{Kind: errs.ErrMetadataParse, Err: fmt.Errorf("archive too small for revision 2 footer")}
	}

	footerStart := len(data) - section.FooterSize
	footer, err := section.ParseFooter(data[footerStart:])
	if err != nil {
		return nil, err
	}

	if footer.Offset < section.MagicSize || footer.Offset > int64(footerStart) {
		return nil, &errs.LineError{Kind: errs.ErrMetadataParse, Err: fmt.Errorf("footer offset %d out of range", footer.Offset)}
	}

	metaJSON := data[footer.Offset:footerStart]

	if digestBase64(metaJSON) != footer.Digest {
		return nil, &errs.LineError{Kind: errs.ErrSignature, Err: fmt.Errorf("metadata digest mismatch")}
	}

	meta, err := metadata.ParseMetadataJSON(metaJSON)
	if err != nil {
		return nil, err
	}

	return newReader(data, format.RevisionCurrent, meta, section.MagicSize)
}

func newReaderV1(data []byte) (*Reader, error) {
	if len(data) < section.LegacyMetadataSize {
		return nil, &errs.LineError{Kind: errs.ErrMetadataParse, Err: fmt.Errorf("archive too small for legacy metadata buffer")}
	}

	region := data[:section.LegacyMetadataSize]
	if end := bytes.IndexByte(region, 0); end >= 0 {
		region = region[:end]
	}

	meta, err := metadata.ParseMetadataJSON(region)
	if err != nil {
		return nil, err
	}

	return newReader(data, format.RevisionLegacy, meta, section.LegacyMetadataSize)
}

func newReader(data []byte, revision format.ArchiveRevision, meta *metadata.Metadata, streamsStart int64) (*Reader, error) {
	r := &Reader{
		data:        data,
		revision:    revision,
		meta:        meta,
		regionOff:   make([]int64, len(meta.Records)+1),
		indexByName: make(map[string]int, len(meta.Records)),
	}

	offset := streamsStart
	for i, rec := range meta.Records {
		r.regionOff[i] = offset
		r.indexByName[rec.Name] = i
		offset += int64(rec.CompressedSizeBytes)
	}
	r.regionOff[len(meta.Records)] = offset

	return r, nil
}

// Chromosomes returns chromosome names in the archive's metadata order.
func (r *Reader) Chromosomes() []string {
	names := make([]string, len(r.meta.Records))
	for i, rec := range r.meta.Records {
		names[i] = rec.Name
	}

	return names
}

// Metadata returns the archive's parsed metadata trailer.
func (r *Reader) Metadata() *metadata.Metadata {
	return r.meta
}

// Extract decompresses and inverse-transforms the named chromosome's
// region, writing reconstructed BED lines to w.
func (r *Reader) Extract(chromosome string, w io.Writer, policy format.HeaderPolicy) error {
	i, ok := r.indexByName[chromosome]
	if !ok {
		return &errs.LineError{Kind: errs.ErrNotFound, Chromosome: chromosome, Err: fmt.Errorf("chromosome not in archive")}
	}

	return r.extractRegion(i, w, policy)
}

// ExtractAll decompresses and inverse-transforms every chromosome in
// the archive's metadata order, writing reconstructed BED lines to w.
func (r *Reader) ExtractAll(w io.Writer, policy format.HeaderPolicy) error {
	for i := range r.meta.Records {
		if err := r.extractRegion(i, w, policy); err != nil {
			return err
		}
	}

	return nil
}

func (r *Reader) extractRegion(i int, w io.Writer, policy format.HeaderPolicy) error {
	rec := r.meta.Records[i]
	region := r.data[r.regionOff[i]:r.regionOff[i+1]]

	decompressor, err := compress.NewDecompressor(r.meta.CompressionType)
	if err != nil {
		return err
	}

	stream, err := decompressor.Open(bytes.NewReader(region))
	if err != nil {
		return err
	}
	defer stream.Close()

	inverse := encoding.NewInverseTransformer(rec.Name, policy)

	scanner := bufio.NewScanner(stream)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<24)
	for scanner.Scan() {
		if err := inverse.ProcessLine(scanner.Bytes(), w); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return &errs.LineError{Kind: errs.ErrIO, Chromosome: rec.Name, Err: err}
	}

	return nil
}
