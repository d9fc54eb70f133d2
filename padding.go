package cryptopals

import "fmt"

// Pad returns a copy of block extended to targetLen with PKCS#7 padding:
// n = targetLen-len(block) bytes, each holding n.
// It panics unless 0 < n <= 255.
func Pad(block []byte, targetLen int) []byte {
	n := targetLen - len(block)
	if n <= 0 || n > 255 {
		panic("cryptopals: invalid padding length")
	}

	out := make([]byte, targetLen)
	copy(out, block)
	for i := len(block); i < targetLen; i++ {
		out[i] = byte(n)
	}
	return out
}

// PadBlock pads data up to the next multiple of blockSize. A full block of
// padding is added when data is already aligned, so the result can always
// be unpadded.
func PadBlock(data []byte, blockSize int) []byte {
	if blockSize <= 0 || blockSize > 255 {
		panic("cryptopals: invalid block size")
	}
	return Pad(data, len(data)+blockSize-len(data)%blockSize)
}

// Unpad strips PKCS#7 padding. The returned slice aliases data.
// It returns an error wrapping ErrInvalidPadding if the trailing byte
// value k is zero, exceeds the data length, or the last k bytes are not
// all equal to k.
func Unpad(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrInvalidPadding)
	}

	k := int(data[len(data)-1])
	if k == 0 || k > len(data) {
		return nil, fmt.Errorf("%w: pad length %d for %d bytes", ErrInvalidPadding, k, len(data))
	}

	for _, b := range data[len(data)-k:] {
		if int(b) != k {
			return nil, fmt.Errorf("%w: pad byte 0x%02x, want 0x%02x", ErrInvalidPadding, b, k)
		}
	}

	return data[:len(data)-k], nil
}
