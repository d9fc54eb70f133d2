// Package internal provides helpers for the cryptopals tools.
// It wraps golang.org/x/crypto and the standard encoding packages.
package internal

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// fingerprintSize is the number of BLAKE2b output bytes shown in a key
// fingerprint.
const fingerprintSize = 8

// Fingerprint returns a short hex identifier for a key so tools can refer
// to it without printing the key itself.
func Fingerprint(key []byte) string {
	h, err := blake2b.New(fingerprintSize, []byte("cryptopals key fingerprint"))
	if err != nil {
		// Only possible for invalid sizes, which fingerprintSize is not.
		panic("blake2b.New failed with valid length: " + err.Error())
	}
	h.Write(key)
	return hex.EncodeToString(h.Sum(nil))
}

// Checksum256 computes a 256-bit BLAKE2b digest.
func Checksum256(data []byte) [32]byte {
	return blake2b.Sum256(data)
}
