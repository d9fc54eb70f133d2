package cryptopals

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
)

// TestVector is a single known-answer test for the block cipher or one of
// its modes. Plaintext and ciphertext are unpadded, block-aligned buffers.
type TestVector struct {
	Name       string `json:"name"`
	Mode       string `json:"mode"`
	Key        string `json:"key"`
	IV         string `json:"iv,omitempty"`
	Plaintext  string `json:"plaintext"`
	Ciphertext string `json:"ciphertext"`
}

// TestVectorSuite contains all test vectors with metadata about their source.
type TestVectorSuite struct {
	Version     string       `json:"version"`
	Description string       `json:"description"`
	Source      string       `json:"source,omitempty"`
	Vectors     []TestVector `json:"vectors"`
}

// LoadTestVectors loads test vectors from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadTestVectors(path string) (*TestVectorSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read test vectors: %w", err)
	}

	var suite TestVectorSuite
	if err := json.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("failed to parse test vectors: %w", err)
	}

	return &suite, nil
}

// GetKey returns the decoded 16-byte key.
func (tv *TestVector) GetKey() ([]byte, error) {
	key, err := hex.DecodeString(tv.Key)
	if err != nil {
		return nil, fmt.Errorf("invalid key hex: %w", err)
	}
	if len(key) != KeySize {
		return nil, fmt.Errorf("key must be %d bytes, got %d", KeySize, len(key))
	}
	return key, nil
}

// GetIV returns the decoded IV, or nil when the vector has none.
func (tv *TestVector) GetIV() ([]byte, error) {
	if tv.IV == "" {
		return nil, nil
	}
	iv, err := hex.DecodeString(tv.IV)
	if err != nil {
		return nil, fmt.Errorf("invalid IV hex: %w", err)
	}
	return iv, nil
}

// GetPlaintext returns the decoded plaintext.
func (tv *TestVector) GetPlaintext() ([]byte, error) {
	pt, err := hex.DecodeString(tv.Plaintext)
	if err != nil {
		return nil, fmt.Errorf("invalid plaintext hex: %w", err)
	}
	return pt, nil
}

// GetCiphertext returns the decoded ciphertext.
func (tv *TestVector) GetCiphertext() ([]byte, error) {
	ct, err := hex.DecodeString(tv.Ciphertext)
	if err != nil {
		return nil, fmt.Errorf("invalid ciphertext hex: %w", err)
	}
	return ct, nil
}

// GetMode returns the Mode value for this test vector.
func (tv *TestVector) GetMode() (Mode, error) {
	return ParseMode(tv.Mode)
}

// Check encrypts and decrypts the vector and reports the first mismatch.
func (tv *TestVector) Check() error {
	mode, err := tv.GetMode()
	if err != nil {
		return err
	}
	key, err := tv.GetKey()
	if err != nil {
		return err
	}
	iv, err := tv.GetIV()
	if err != nil {
		return err
	}
	pt, err := tv.GetPlaintext()
	if err != nil {
		return err
	}
	ct, err := tv.GetCiphertext()
	if err != nil {
		return err
	}
	if len(pt) == 0 || len(pt)%BlockSize != 0 || len(pt) != len(ct) {
		return fmt.Errorf("%s: %w", tv.Name, ErrNotFullBlocks)
	}

	config := Config{Mode: mode, Key: key, IV: iv}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("%s: %w", tv.Name, err)
	}

	got := make([]byte, len(pt))
	blockMode(config, false).CryptBlocks(got, pt)
	if !compareTrace(tv.Name+" encrypt", tv.Ciphertext, hex.EncodeToString(got)) {
		return fmt.Errorf("%s: ciphertext = %x, want %s", tv.Name, got, tv.Ciphertext)
	}

	blockMode(config, true).CryptBlocks(got, ct)
	if !compareTrace(tv.Name+" decrypt", tv.Plaintext, hex.EncodeToString(got)) {
		return fmt.Errorf("%s: plaintext = %x, want %s", tv.Name, got, tv.Plaintext)
	}

	return nil
}
