package cryptopals

import "sync"

// scratchPool recycles temporary buffers used by CBC decryption and the
// key searches, which otherwise allocate one buffer per call.
var scratchPool = sync.Pool{
	New: func() interface{} {
		b := make([]byte, 0, 4096)
		return &b
	},
}

// getScratch returns a buffer of length n from the pool.
func getScratch(n int) []byte {
	bp := scratchPool.Get().(*[]byte)
	if cap(*bp) < n {
		*bp = make([]byte, n)
	}
	return (*bp)[:n]
}

// putScratch clears b and returns it to the pool. Ciphertext and candidate
// plaintext must not linger in pooled memory.
func putScratch(b []byte) {
	if b == nil {
		return
	}
	zeroBytes(b[:cap(b)])
	b = b[:0]
	scratchPool.Put(&b)
}

// zeroBytes clears a byte slice.
func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
