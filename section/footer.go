package section

import (
	"fmt"
	"strconv"

	"github.com/arl-data/starch/errs"
)

// Footer is the revision-2 archive's 128-byte trailer: the byte offset
// at which the metadata JSON begins, and the Base64 encoding of its
// SHA-1 digest.
type Footer struct {
	Offset int64
	Digest string // Base64, DigestFieldSize bytes including "=" padding
}

// Bytes serializes the footer into its fixed 128-byte wire form.
func (f Footer) Bytes() ([]byte, error) {
	if f.Offset < 0 {
		return nil, &errs.LineError{Kind: errs.ErrMetadataParse, Err: fmt.Errorf("footer offset %d is negative", f.Offset)}
	}

	offsetStr := fmt.Sprintf("%0*d", OffsetFieldSize, f.Offset)
	if len(offsetStr) != OffsetFieldSize {
		return nil, &errs.LineError{Kind: errs.ErrMetadataParse, Err: fmt.Errorf("footer offset %d does not fit in %d digits", f.Offset, OffsetFieldSize)}
	}
	if len(f.Digest) != DigestFieldSize {
		return nil, &errs.LineError{Kind: errs.ErrMetadataParse, Err: fmt.Errorf("digest length %d, want %d", len(f.Digest), DigestFieldSize)}
	}

	buf := make([]byte, FooterSize)
	copy(buf[0:OffsetFieldSize], offsetStr)
	copy(buf[OffsetFieldSize:OffsetFieldSize+DigestFieldSize], f.Digest)
	for i := OffsetFieldSize + DigestFieldSize; i < FooterSize-2; i++ {
		buf[i] = FillByte
	}
	buf[FooterSize-2] = '\n'
	buf[FooterSize-1] = 0

	return buf, nil
}

// ParseFooter parses a 128-byte footer region.
func ParseFooter(data []byte) (Footer, error) {
	if len(data) != FooterSize {
		return Footer{}, &errs.LineError{Kind: errs.ErrMetadataParse, Err: fmt.Errorf("footer size %d, want %d", len(data), FooterSize)}
	}
	if data[FooterSize-2] != '\n' {
		return Footer{}, &errs.LineError{Kind: errs.ErrMetadataParse, Err: fmt.Errorf("footer missing newline terminator")}
	}

	offset, err := strconv.ParseInt(string(data[0:OffsetFieldSize]), 10, 64)
	if err != nil {
		return Footer{}, &errs.LineError{Kind: errs.ErrMetadataParse, Err: fmt.Errorf("invalid footer offset: %w", err)}
	}

	digest := string(data[OffsetFieldSize : OffsetFieldSize+DigestFieldSize])

	return Footer{Offset: offset, Digest: digest}, nil
}
