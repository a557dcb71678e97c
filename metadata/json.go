package metadata

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/arl-data/starch/errs"
	"github.com/arl-data/starch/format"
)

// jsonDoc mirrors the wire schema of spec §4.4 exactly; Metadata itself
// uses richer Go types (time.Time, format.CompressionType) that this
// type translates to and from the archive-portable JSON shapes.
type jsonDoc struct {
	Archive jsonArchive  `json:"archive"`
	Streams []jsonStream `json:"streams"`
}

type jsonVersion struct {
	Major    int `json:"major"`
	Minor    int `json:"minor"`
	Revision int `json:"revision"`
}

type jsonArchive struct {
	Version           jsonVersion `json:"version"`
	CompressionFormat string      `json:"compressionFormat"`
	CreationTimestamp string      `json:"creationTimestamp"`
	HeaderBedType     bool        `json:"headerBedType"`
	Note              string      `json:"note"`
	Type              string      `json:"type"`
}

type jsonStream struct {
	Chromosome            string `json:"chromosome"`
	Filename              string `json:"filename"`
	Size                  Count  `json:"size"`
	UncompressedLineCount Count  `json:"uncompressedLineCount"`
	NonUniqueBaseCount    Count  `json:"nonUniqueBaseCount"`
	UniqueBaseCount       Count  `json:"uniqueBaseCount"`
}

const archiveDocType = "starch"

// MarshalJSON serializes m into the archive's metadata wire schema.
// This is the "serialize_json" operation of spec §4.4.
func (m *Metadata) MarshalJSON() ([]byte, error) {
	doc := jsonDoc{
		Archive: jsonArchive{
			Version: jsonVersion{
				Major:    m.Version.Major,
				Minor:    m.Version.Minor,
				Revision: m.Version.Revision,
			},
			CompressionFormat: m.CompressionType.String(),
			CreationTimestamp: m.CreationTimestamp.UTC().Format(time.RFC3339),
			HeaderBedType:     m.HeaderFlag,
			Note:              m.Note,
			Type:              archiveDocType,
		},
		Streams: make([]jsonStream, len(m.Records)),
	}

	for i, r := range m.Records {
		doc.Streams[i] = jsonStream{
			Chromosome:            r.Name,
			Filename:              r.FilenameStub,
			Size:                  r.CompressedSizeBytes,
			UncompressedLineCount: r.LineCount,
			NonUniqueBaseCount:    r.NonUniqueBases,
			UniqueBaseCount:       r.UniqueBases,
		}
	}

	out, err := json.Marshal(doc)
	if err != nil {
		return nil, &errs.LineError{Kind: errs.ErrMetadataParse, Err: err}
	}

	return out, nil
}

// ParseMetadataJSON parses the archive's metadata wire schema ("parse_json"
// in spec §4.4 terminology).
func ParseMetadataJSON(data []byte) (*Metadata, error) {
	var doc jsonDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &errs.LineError{Kind: errs.ErrMetadataParse, Err: err}
	}

	compType, err := parseCompressionFormat(doc.Archive.CompressionFormat)
	if err != nil {
		return nil, &errs.LineError{Kind: errs.ErrMetadataParse, Err: err}
	}

	created, err := time.Parse(time.RFC3339, doc.Archive.CreationTimestamp)
	if err != nil {
		created = time.Time{}
	}

	m := &Metadata{
		Version: Version{
			Major:    doc.Archive.Version.Major,
			Minor:    doc.Archive.Version.Minor,
			Revision: doc.Archive.Version.Revision,
		},
		CompressionType:   compType,
		Note:              doc.Archive.Note,
		CreationTimestamp: created,
		HeaderFlag:        doc.Archive.HeaderBedType,
		Records:           make([]ChromosomeRecord, len(doc.Streams)),
	}

	for i, s := range doc.Streams {
		m.Records[i] = ChromosomeRecord{
			Name:                  s.Chromosome,
			FilenameStub:          s.Filename,
			CompressedSizeBytes:   s.Size,
			LineCount:             s.UncompressedLineCount,
			NonUniqueBases:        s.NonUniqueBaseCount,
			UniqueBases:           s.UniqueBaseCount,
			UncompressedSizeBytes: 0,
		}
	}

	return m, nil
}

func parseCompressionFormat(s string) (format.CompressionType, error) {
	switch s {
	case format.CompressionBzip2.String():
		return format.CompressionBzip2, nil
	case format.CompressionGzip.String():
		return format.CompressionGzip, nil
	default:
		return 0, fmt.Errorf("unknown compressionFormat %q", s)
	}
}
