package cryptopals

import "crypto/cipher"

// Cipher is an AES-128 block cipher built on this package's own round
// functions. It holds a single expanded key and is safe for concurrent use.
type Cipher struct {
	rk Schedule
}

var _ cipher.Block = (*Cipher)(nil)

// NewCipher expands key into a Cipher.
// It panics if key is not 16 bytes; use Config.Validate to check
// untrusted keys first.
func NewCipher(key []byte) *Cipher {
	return &Cipher{rk: ExpandKey(key)}
}

// BlockSize returns the AES block size, 16 bytes.
func (c *Cipher) BlockSize() int { return BlockSize }

// Encrypt encrypts the first block in src into dst.
func (c *Cipher) Encrypt(dst, src []byte) {
	EncryptBlock(&c.rk, dst, src)
}

// Decrypt decrypts the first block in src into dst.
func (c *Cipher) Decrypt(dst, src []byte) {
	DecryptBlock(&c.rk, dst, src)
}

// EncryptBlocks encrypts every block of src into dst.
// Both must be the same length and a multiple of 16 bytes.
func (c *Cipher) EncryptBlocks(dst, src []byte) {
	checkBlocks(dst, src)
	for i := 0; i < len(src); i += BlockSize {
		EncryptBlock(&c.rk, dst[i:i+BlockSize], src[i:i+BlockSize])
	}
}

// DecryptBlocks decrypts every block of src into dst.
// Both must be the same length and a multiple of 16 bytes.
func (c *Cipher) DecryptBlocks(dst, src []byte) {
	checkBlocks(dst, src)
	for i := 0; i < len(src); i += BlockSize {
		DecryptBlock(&c.rk, dst[i:i+BlockSize], src[i:i+BlockSize])
	}
}

// Schedule returns a copy of the expanded key.
func (c *Cipher) Schedule() Schedule {
	return c.rk
}

func checkBlocks(dst, src []byte) {
	if len(src)%BlockSize != 0 {
		panic("cryptopals: input not full blocks")
	}
	if len(dst) != len(src) {
		panic("cryptopals: input and output buffers must have the same length")
	}
}
