package tqa

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
)

// newID returns an opaque, process-unique random token. Callers must not
// depend on its format; only uniqueness within one process run is
// contractual (§6 of the spec).
func newID(prefix string) string {
	var buf [16]byte
	_, _ = rand.Read(buf[:]) // crypto/rand.Read only errors on an unreadable source; token stays unique enough regardless.
	return prefix + "-" + hex.EncodeToString(buf[:])
}

// ContentHash computes the SHA-256 hex digest of raw bundle bytes. It is
// used as the first half of a result-cache key (see ResultCache).
func ContentHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
