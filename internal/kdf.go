package internal

import (
	"crypto/rand"
	"errors"

	"golang.org/x/crypto/argon2"
)

// KDFConfig specifies Argon2id parameters for turning a passphrase into an
// AES-128 key.
type KDFConfig struct {
	Time    uint32 // Number of iterations
	Memory  uint32 // Memory in KB
	Threads uint8  // Parallelism factor
	KeyLen  uint32 // Output length in bytes
}

// DefaultKDFConfig returns the parameters recommended by the argon2
// package documentation, sized for a 16-byte key.
func DefaultKDFConfig() KDFConfig {
	return KDFConfig{
		Time:    1,
		Memory:  64 * 1024, // 64 MB
		Threads: 4,
		KeyLen:  16,
	}
}

// SaltSize is the length of salts produced by NewSalt.
const SaltSize = 16

// DeriveKey computes an Argon2id key from passphrase and salt.
func DeriveKey(passphrase, salt []byte, config KDFConfig) ([]byte, error) {
	if len(passphrase) == 0 {
		return nil, errors.New("kdf: passphrase must not be empty")
	}
	if len(salt) == 0 {
		return nil, errors.New("kdf: salt must not be empty")
	}
	return argon2.IDKey(passphrase, salt, config.Time, config.Memory, config.Threads, config.KeyLen), nil
}

// NewSalt returns SaltSize random bytes.
func NewSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	return salt, nil
}
