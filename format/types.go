package format

type (
	// CompressionType identifies which block codec compressed a
	// chromosome's stream.
	CompressionType uint8

	// ArchiveRevision selects the envelope layout a Writer produces and
	// a Reader must parse.
	ArchiveRevision uint8

	// LineKind classifies a raw input line before it enters the delta
	// transform.
	LineKind uint8

	// HeaderPolicy controls what the inverse transformer does with
	// header/comment lines recorded at transform time.
	HeaderPolicy uint8
)

const (
	// CompressionBzip2 selects the bzip2 block codec.
	CompressionBzip2 CompressionType = iota + 1
	// CompressionGzip selects the gzip block codec.
	CompressionGzip
)

const (
	// RevisionLegacy is the version 1 envelope: no magic, no footer, a
	// fixed-length metadata buffer prepended. A Writer produces it only
	// when this revision is selected explicitly; the default is
	// RevisionCurrent.
	RevisionLegacy ArchiveRevision = 1
	// RevisionCurrent is the version 2 envelope: magic-prefixed streams
	// followed by JSON metadata and a signed footer.
	RevisionCurrent ArchiveRevision = 2
)

const (
	// Coordinates is an ordinary chromosome/start/stop(/remainder) line.
	Coordinates LineKind = iota
	// HeaderTrack is a UCSC "track ..." line.
	HeaderTrack
	// HeaderBrowser is a UCSC "browser ..." line.
	HeaderBrowser
	// HeaderSAM is a SAM header line ("@..." prefix).
	HeaderSAM
	// HeaderVCF is a VCF meta-information line ("##" prefix).
	HeaderVCF
	// GenericComment is any other line a BED producer may emit before
	// coordinate data ("#" prefix not matching a more specific kind).
	GenericComment
)

const (
	// HeaderEmit reproduces the recorded header line verbatim before the
	// first coordinate record of its chromosome.
	HeaderEmit HeaderPolicy = iota
	// HeaderDrop discards the recorded header line; only coordinate
	// records are emitted.
	HeaderDrop
	// HeaderAssumeAbsent never looks for a header line in the delta
	// stream; the transform is assumed to have never recorded one.
	HeaderAssumeAbsent
)

func (c CompressionType) String() string {
	switch c {
	case CompressionBzip2:
		return "bzip2"
	case CompressionGzip:
		return "gzip"
	default:
		return "unknown"
	}
}

func (r ArchiveRevision) String() string {
	switch r {
	case RevisionLegacy:
		return "legacy"
	case RevisionCurrent:
		return "current"
	default:
		return "unknown"
	}
}

func (k LineKind) String() string {
	switch k {
	case Coordinates:
		return "coordinates"
	case HeaderTrack:
		return "track"
	case HeaderBrowser:
		return "browser"
	case HeaderSAM:
		return "sam"
	case HeaderVCF:
		return "vcf"
	case GenericComment:
		return "comment"
	default:
		return "unknown"
	}
}

func (p HeaderPolicy) String() string {
	switch p {
	case HeaderEmit:
		return "emit"
	case HeaderDrop:
		return "drop"
	case HeaderAssumeAbsent:
		return "assume-absent"
	default:
		return "unknown"
	}
}
