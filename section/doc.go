// Package section defines the fixed byte layout of a starch archive's
// envelope framing: the revision-2 magic prefix and signed footer, and
// the revision-1 legacy metadata region size.
//
// # Revision 2 layout
//
//	offset 0:      4 bytes   magic = CA 5C AD E5
//	offset 4:      N bytes   compressed per-chromosome streams
//	offset 4+N:    M bytes   metadata JSON
//	offset 4+N+M:  128 bytes footer
//	                 [0..20)   ASCII decimal offset, zero-padded
//	                 [20..48)  Base64 SHA-1 digest of the metadata bytes
//	                 [48..126) filler
//	                 [126]     '\n'
//	                 [127]     '\0'
//
// Footer fields are serialized and parsed with Footer.Bytes and
// ParseFooter, mirroring the fixed-size Bytes()/Parse() round trip this
// package's binary header types used before being adapted to this
// text-framed format.
//
// # Revision 1 (legacy) layout
//
// No magic prefix, no footer: a fixed LegacyMetadataSize buffer holding
// the metadata precedes the compressed streams. starch reads this
// revision, and writes it when a Writer is configured for it.
package section
