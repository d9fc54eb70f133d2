package cryptopals

import (
	"crypto/cipher"
	"runtime"
	"sync"
)

// parallelThreshold is the number of blocks above which ECB and CBC
// decryption fan the per-block transforms out across goroutines.
const parallelThreshold = 1024

// ecb runs a block cipher over each block independently.
type ecb struct {
	b       cipher.Block
	decrypt bool
}

// NewECBEncrypter returns a BlockMode that encrypts in electronic codebook
// mode. b must be safe for concurrent use.
func NewECBEncrypter(b cipher.Block) cipher.BlockMode {
	return &ecb{b: b}
}

// NewECBDecrypter returns a BlockMode that decrypts in electronic codebook
// mode. b must be safe for concurrent use.
func NewECBDecrypter(b cipher.Block) cipher.BlockMode {
	return &ecb{b: b, decrypt: true}
}

func (x *ecb) BlockSize() int { return x.b.BlockSize() }

func (x *ecb) CryptBlocks(dst, src []byte) {
	bs := x.b.BlockSize()
	checkModeBlocks(dst, src, bs)

	fn := x.b.Encrypt
	if x.decrypt {
		fn = x.b.Decrypt
	}
	cryptBlocks(fn, dst, src, bs)
}

// cbcEncrypter chains each plaintext block into the next one's input.
type cbcEncrypter struct {
	b  cipher.Block
	iv []byte
}

// NewCBCEncrypter returns a BlockMode that encrypts in cipher block
// chaining mode. The IV is copied and advanced after each CryptBlocks
// call, like crypto/cipher's CBC. It panics if len(iv) is not the block
// size.
func NewCBCEncrypter(b cipher.Block, iv []byte) cipher.BlockMode {
	if len(iv) != b.BlockSize() {
		panic("cryptopals: IV length must equal block size")
	}
	return &cbcEncrypter{b: b, iv: append([]byte(nil), iv...)}
}

func (x *cbcEncrypter) BlockSize() int { return x.b.BlockSize() }

func (x *cbcEncrypter) CryptBlocks(dst, src []byte) {
	bs := x.b.BlockSize()
	checkModeBlocks(dst, src, bs)

	prev := x.iv
	for i := 0; i < len(src); i += bs {
		copy(dst[i:i+bs], src[i:i+bs])
		XORInPlace(dst[i:i+bs], prev)
		x.b.Encrypt(dst[i:i+bs], dst[i:i+bs])
		prev = dst[i : i+bs]
	}
	copy(x.iv, prev)
}

// cbcDecrypter undoes cbcEncrypter. Each block's inverse transform only
// needs its own ciphertext, so those run first (possibly in parallel) and
// the chaining XOR follows.
type cbcDecrypter struct {
	b  cipher.Block
	iv []byte
}

// NewCBCDecrypter returns a BlockMode that decrypts in cipher block
// chaining mode. It panics if len(iv) is not the block size.
func NewCBCDecrypter(b cipher.Block, iv []byte) cipher.BlockMode {
	if len(iv) != b.BlockSize() {
		panic("cryptopals: IV length must equal block size")
	}
	return &cbcDecrypter{b: b, iv: append([]byte(nil), iv...)}
}

func (x *cbcDecrypter) BlockSize() int { return x.b.BlockSize() }

func (x *cbcDecrypter) CryptBlocks(dst, src []byte) {
	bs := x.b.BlockSize()
	checkModeBlocks(dst, src, bs)
	if len(src) == 0 {
		return
	}

	// dst may alias src, so keep the ciphertext for chaining.
	ct := getScratch(len(src))
	defer putScratch(ct)
	copy(ct, src)

	cryptBlocks(x.b.Decrypt, dst, ct, bs)

	XORInPlace(dst[:bs], x.iv)
	for i := bs; i < len(ct); i += bs {
		XORInPlace(dst[i:i+bs], ct[i-bs:i])
	}
	copy(x.iv, ct[len(ct)-bs:])
}

// ECBEncrypt encrypts src into dst under key in ECB mode. src must be a
// non-zero multiple of 16 bytes and dst the same length; dst may be src.
func ECBEncrypt(key, dst, src []byte) {
	checkNonEmpty(src)
	NewECBEncrypter(NewCipher(key)).CryptBlocks(dst, src)
}

// ECBDecrypt is the inverse of ECBEncrypt.
func ECBDecrypt(key, dst, src []byte) {
	checkNonEmpty(src)
	NewECBDecrypter(NewCipher(key)).CryptBlocks(dst, src)
}

// CBCEncrypt encrypts src into dst under key and iv in CBC mode. src must
// be a non-zero multiple of 16 bytes and dst the same length; dst may be src.
func CBCEncrypt(key, iv, dst, src []byte) {
	checkNonEmpty(src)
	NewCBCEncrypter(NewCipher(key), iv).CryptBlocks(dst, src)
}

// CBCDecrypt is the inverse of CBCEncrypt.
func CBCDecrypt(key, iv, dst, src []byte) {
	checkNonEmpty(src)
	NewCBCDecrypter(NewCipher(key), iv).CryptBlocks(dst, src)
}

// cryptBlocks applies fn to every block of src, writing to dst. Large
// inputs are split into contiguous ranges, one per worker.
func cryptBlocks(fn func(dst, src []byte), dst, src []byte, bs int) {
	blocks := len(src) / bs
	if blocks < parallelThreshold {
		for i := 0; i < len(src); i += bs {
			fn(dst[i:i+bs], src[i:i+bs])
		}
		return
	}

	numWorkers := runtime.NumCPU()
	perWorker := blocks / numWorkers

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()

			start := workerID * perWorker
			end := start + perWorker
			if workerID == numWorkers-1 {
				end = blocks
			}

			for b := start; b < end; b++ {
				off := b * bs
				fn(dst[off:off+bs], src[off:off+bs])
			}
		}(w)
	}
	wg.Wait()
}

func checkModeBlocks(dst, src []byte, bs int) {
	if len(src)%bs != 0 {
		panic("cryptopals: input not full blocks")
	}
	if len(dst) != len(src) {
		panic("cryptopals: input and output buffers must have the same length")
	}
}

func checkNonEmpty(src []byte) {
	if len(src) == 0 {
		panic("cryptopals: empty input")
	}
}
