// Package section defines the archive envelope's fixed byte layout:
// the revision-2 magic prefix and signed footer, and the revision-1
// legacy metadata buffer size.
package section

// Magic is the 4-byte prefix identifying a revision-2 archive.
var Magic = [4]byte{0xCA, 0x5C, 0xAD, 0xE5}

const (
	// MagicSize is the length of the revision-2 magic prefix.
	MagicSize = len(Magic)

	// FooterSize is the fixed length of the revision-2 footer.
	FooterSize = 128

	// OffsetFieldSize is the width of the footer's ASCII decimal byte
	// offset field.
	OffsetFieldSize = 20

	// DigestFieldSize is the width of the footer's Base64-encoded
	// SHA-1 digest field (trailing "=" padding included).
	DigestFieldSize = 28

	// fillerSize is the number of filler bytes between the digest field
	// and the footer's terminating newline and NUL.
	fillerSize = FooterSize - OffsetFieldSize - DigestFieldSize - 2

	// FillByte is the printable character used to pad the footer's
	// filler region.
	FillByte = ' '

	// LegacyMetadataSize is the fixed-length metadata buffer prepended
	// to a revision-1 (legacy) archive. A record set that does not fit
	// is an error, not a silent truncation (spec §9 open question).
	LegacyMetadataSize = 4096
)
