package cryptopals

import "errors"

var (
	// ErrInvalidPadding is returned when PKCS#7 padding fails validation.
	ErrInvalidPadding = errors.New("cryptopals: invalid padding")

	// ErrInvalidKeySize is returned for keys that are not 16 bytes.
	ErrInvalidKeySize = errors.New("cryptopals: invalid key size")

	// ErrInvalidIVSize is returned for CBC IVs that are not 16 bytes.
	ErrInvalidIVSize = errors.New("cryptopals: invalid IV size")

	// ErrNotFullBlocks is returned when ciphertext is empty or not a
	// multiple of the block size.
	ErrNotFullBlocks = errors.New("cryptopals: input not full blocks")

	// ErrUnknownMode is returned for an unsupported block mode.
	ErrUnknownMode = errors.New("cryptopals: unknown mode")
)
