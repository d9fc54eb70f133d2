package internal

import (
	"crypto/aes"
	"crypto/cipher"
)

// ReferenceCipher wraps the standard library AES-128 implementation.
// It is the oracle the hand-written cipher is checked against.
type ReferenceCipher struct {
	block cipher.Block
}

// NewReferenceCipher creates a reference cipher with the given key.
// Key must be 16 bytes.
func NewReferenceCipher(key []byte) (*ReferenceCipher, error) {
	if len(key) != 16 {
		return nil, aes.KeySizeError(len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return &ReferenceCipher{block: block}, nil
}

// Block returns the underlying cipher.Block.
func (r *ReferenceCipher) Block() cipher.Block {
	return r.block
}

// EncryptECB encrypts src block by block into dst.
// src must be a multiple of 16 bytes and dst at least as long.
func (r *ReferenceCipher) EncryptECB(dst, src []byte) {
	checkBlocks(dst, src)
	for i := 0; i < len(src); i += aes.BlockSize {
		r.block.Encrypt(dst[i:i+aes.BlockSize], src[i:i+aes.BlockSize])
	}
}

// DecryptECB decrypts src block by block into dst.
func (r *ReferenceCipher) DecryptECB(dst, src []byte) {
	checkBlocks(dst, src)
	for i := 0; i < len(src); i += aes.BlockSize {
		r.block.Decrypt(dst[i:i+aes.BlockSize], src[i:i+aes.BlockSize])
	}
}

// EncryptCBC encrypts src into dst with crypto/cipher's CBC mode.
func (r *ReferenceCipher) EncryptCBC(iv, dst, src []byte) {
	checkBlocks(dst, src)
	cipher.NewCBCEncrypter(r.block, iv).CryptBlocks(dst, src)
}

// DecryptCBC decrypts src into dst with crypto/cipher's CBC mode.
func (r *ReferenceCipher) DecryptCBC(iv, dst, src []byte) {
	checkBlocks(dst, src)
	cipher.NewCBCDecrypter(r.block, iv).CryptBlocks(dst, src)
}

func checkBlocks(dst, src []byte) {
	if len(src)%aes.BlockSize != 0 {
		panic("aes: input not full blocks")
	}
	if len(dst) < len(src) {
		panic("aes: output buffer too small")
	}
}
