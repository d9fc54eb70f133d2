// Package cryptopals provides a pure-Go AES-128 implementation and a small
// toolkit for breaking classical XOR ciphers.
//
// The cipher half builds AES from its parts: GF(2^8) arithmetic, the key
// schedule, the forward and inverse round functions, PKCS#7 padding and
// the ECB and CBC modes. The analysis half scores candidate plaintexts
// against English letter frequencies to break single-byte and
// repeating-key XOR.
//
// Example usage:
//
//	config := cryptopals.Config{
//	    Mode: cryptopals.CBC,
//	    Key:  []byte("YELLOW SUBMARINE"),
//	    IV:   make([]byte, cryptopals.BlockSize),
//	}
//	ciphertext, err := cryptopals.Seal(config, []byte("attack at dawn"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	key, plaintext := cryptopals.BreakRepeatingKeyXOR(xorCiphertext)
//
// Functions that take raw buffers panic on contract violations such as
// a short key or a misaligned buffer. Seal and Open validate their
// Config and return errors instead.
package cryptopals

import (
	"crypto/cipher"
	"fmt"
	"strings"
)

// Mode selects the block cipher mode of operation.
type Mode int

const (
	// ECB encrypts every block independently. Equal plaintext blocks give
	// equal ciphertext blocks.
	ECB Mode = iota

	// CBC XORs each plaintext block with the previous ciphertext block
	// (or the IV) before encrypting it.
	CBC
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ECB:
		return "ECB"
	case CBC:
		return "CBC"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts "ecb" or "cbc" (any case) to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "ecb":
		return ECB, nil
	case "cbc":
		return CBC, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Config specifies a key and mode for Seal and Open.
type Config struct {
	// Mode is ECB or CBC.
	Mode Mode

	// Key must be exactly 16 bytes.
	Key []byte

	// IV must be 16 bytes for CBC and is ignored for ECB.
	IV []byte
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if len(c.Key) != KeySize {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKeySize, len(c.Key), KeySize)
	}

	switch c.Mode {
	case ECB:
	case CBC:
		if len(c.IV) != BlockSize {
			return fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidIVSize, len(c.IV), BlockSize)
		}
	default:
		return fmt.Errorf("%w: %v", ErrUnknownMode, c.Mode)
	}

	return nil
}

// Seal pads plaintext with PKCS#7 and encrypts it. The result is always a
// non-zero multiple of 16 bytes.
func Seal(config Config, plaintext []byte) ([]byte, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	buf := PadBlock(plaintext, BlockSize)
	blockMode(config, false).CryptBlocks(buf, buf)
	return buf, nil
}

// Open decrypts ciphertext and strips its padding. Malformed padding is
// reported with an error wrapping ErrInvalidPadding.
func Open(config Config, ciphertext []byte) ([]byte, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if len(ciphertext) == 0 || len(ciphertext)%BlockSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrNotFullBlocks, len(ciphertext))
	}

	buf := make([]byte, len(ciphertext))
	blockMode(config, true).CryptBlocks(buf, ciphertext)

	plaintext, err := Unpad(buf)
	if err != nil {
		return nil, fmt.Errorf("cryptopals: open %v: %w", config.Mode, err)
	}
	return plaintext, nil
}

// blockMode builds the BlockMode for a validated config.
func blockMode(config Config, decrypt bool) cipher.BlockMode {
	c := NewCipher(config.Key)
	switch {
	case config.Mode == ECB && decrypt:
		return NewECBDecrypter(c)
	case config.Mode == ECB:
		return NewECBEncrypter(c)
	case decrypt:
		return NewCBCDecrypter(c, config.IV)
	default:
		return NewCBCEncrypter(c, config.IV)
	}
}
