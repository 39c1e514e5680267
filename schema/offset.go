package schema

import (
	"crypto/sha256"
	"encoding/binary"
)

// Offset returns the comp-def offset of an encrypted instruction: the first
// four bytes of SHA-256(name) read as a little-endian uint32.
func Offset(name string) uint32 {
	sum := sha256.Sum256([]byte(name))
	return binary.LittleEndian.Uint32(sum[:4])
}
