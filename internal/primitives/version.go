// Package primitives provides fingerprint utilities for State.
package primitives

import (
	"crypto/sha256"
	"fmt"
)

// Fingerprint returns a short, deterministic identifier for a state: the
// first 8 bytes of SHA256 over the capacity and canonical key, hex-encoded.
// It labels logs, events and saved solutions. It is NOT used for dedup.
func Fingerprint(s State) string {
	h := sha256.New()
	fmt.Fprintf(h, "%d:", s.Capacity)
	h.Write([]byte(s.Key()))
	sum := h.Sum(nil)
	return fmt.Sprintf("%x", sum[:8])
}
