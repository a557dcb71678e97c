package archive

import (
	"crypto/sha1" //nolint:gosec // spec-mandated digest algorithm, not a security boundary
	"encoding/base64"
)

// digestBase64 returns the Base64 encoding of the SHA-1 digest of data,
// the exact signature a revision-2 footer carries (spec §4.5/§4.6).
func digestBase64(data []byte) string {
	sum := sha1.Sum(data) //nolint:gosec // spec-mandated digest algorithm

	return base64.StdEncoding.EncodeToString(sum[:])
}
