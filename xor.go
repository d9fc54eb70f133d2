package cryptopals

import "math/bits"

// XOR returns the bytewise XOR of a and b.
// It panics if the buffers differ in length.
func XOR(a, b []byte) []byte {
	out := append([]byte(nil), a...)
	XORInPlace(out, b)
	return out
}

// XORInPlace sets a[i] ^= b[i] for every i.
// It panics if the buffers differ in length.
func XORInPlace(a, b []byte) {
	if len(a) != len(b) {
		panic("cryptopals: XOR of buffers with different lengths")
	}
	for i := range a {
		a[i] ^= b[i]
	}
}

// RepeatingXOR returns a XORed with key repeated to a's length.
// It panics if key is empty.
func RepeatingXOR(a, key []byte) []byte {
	out := append([]byte(nil), a...)
	RepeatingXORInPlace(out, key)
	return out
}

// RepeatingXORInPlace XORs key, cycled, into a.
// It panics if key is empty.
func RepeatingXORInPlace(a, key []byte) {
	if len(key) == 0 {
		panic("cryptopals: empty XOR key")
	}
	for off := 0; off < len(a); off += len(key) {
		chunk := a[off:min(off+len(key), len(a))]
		XORInPlace(chunk, key[:len(chunk)])
	}
}

// HammingDistance returns the number of differing bits between two
// equal-length buffers. It panics if the lengths differ.
func HammingDistance(a, b []byte) int {
	if len(a) != len(b) {
		panic("cryptopals: Hamming distance of buffers with different lengths")
	}
	n := 0
	for i := range a {
		n += bits.OnesCount8(a[i] ^ b[i])
	}
	return n
}
