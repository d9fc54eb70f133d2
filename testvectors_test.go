package cryptopals

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

const vectorsPath = "testdata/aes_vectors.json"

// TestLoadTestVectors verifies test vector loading functionality.
func TestLoadTestVectors(t *testing.T) {
	suite, err := LoadTestVectors(vectorsPath)
	if err != nil {
		t.Fatalf("LoadTestVectors() error = %v", err)
	}

	if suite.Version == "" {
		t.Error("suite.Version should not be empty")
	}

	if len(suite.Vectors) == 0 {
		t.Fatal("suite.Vectors should not be empty")
	}

	t.Logf("Loaded %d test vectors from version %s", len(suite.Vectors), suite.Version)
}

// TestLoadTestVectors_FileNotFound verifies error handling for missing files.
func TestLoadTestVectors_FileNotFound(t *testing.T) {
	_, err := LoadTestVectors("nonexistent.json")
	if err == nil {
		t.Error("LoadTestVectors() should return error for nonexistent file")
	}
}

// TestLoadTestVectors_InvalidJSON verifies error handling for invalid JSON.
func TestLoadTestVectors_InvalidJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "invalid.json")
	if err := os.WriteFile(tmpFile, []byte("{invalid json}"), 0644); err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}

	_, err := LoadTestVectors(tmpFile)
	if err == nil {
		t.Error("LoadTestVectors() should return error for invalid JSON")
	}
}

// TestOfficialVectors runs every vector through the cipher in both directions.
func TestOfficialVectors(t *testing.T) {
	suite, err := LoadTestVectors(vectorsPath)
	if err != nil {
		t.Fatalf("LoadTestVectors() error = %v", err)
	}

	for _, tv := range suite.Vectors {
		tv := tv
		t.Run(tv.Name, func(t *testing.T) {
			if err := tv.Check(); err != nil {
				t.Error(err)
			}
		})
	}
}

// TestOfficialVectorsSeal checks that Seal output starts with the vector
// ciphertext, since padding only appends a block.
func TestOfficialVectorsSeal(t *testing.T) {
	suite, err := LoadTestVectors(vectorsPath)
	if err != nil {
		t.Fatalf("LoadTestVectors() error = %v", err)
	}

	for _, tv := range suite.Vectors {
		mode, _ := tv.GetMode()
		key, _ := tv.GetKey()
		iv, _ := tv.GetIV()
		pt, _ := tv.GetPlaintext()
		want, _ := tv.GetCiphertext()

		got, err := Seal(Config{Mode: mode, Key: key, IV: iv}, pt)
		if err != nil {
			t.Fatalf("%s: Seal() error = %v", tv.Name, err)
		}
		if len(got) != len(want)+BlockSize || !bytes.Equal(got[:len(want)], want) {
			t.Errorf("%s: Seal() = %x, want prefix %x", tv.Name, got, want)
		}
	}
}

// TestTestVector_GetKey verifies key extraction from test vectors.
func TestTestVector_GetKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{"valid", "000102030405060708090a0b0c0d0e0f", false},
		{"short", "00010203", true},
		{"invalid_hex", "zz0102030405060708090a0b0c0d0e0f", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tv := TestVector{Key: tt.key}
			key, err := tv.GetKey()
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetKey() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && len(key) != KeySize {
				t.Errorf("GetKey() returned %d bytes", len(key))
			}
		})
	}
}

// TestTestVector_GetIV verifies that a missing IV decodes to nil.
func TestTestVector_GetIV(t *testing.T) {
	tv := TestVector{}
	iv, err := tv.GetIV()
	if err != nil || iv != nil {
		t.Errorf("GetIV() = %x, %v, want nil, nil", iv, err)
	}

	tv.IV = "not hex"
	if _, err := tv.GetIV(); err == nil {
		t.Error("GetIV() should fail for invalid hex")
	}
}

// TestTestVector_Check_Mismatch verifies that a wrong ciphertext is reported.
func TestTestVector_Check_Mismatch(t *testing.T) {
	tv := TestVector{
		Name:       "corrupted",
		Mode:       "ecb",
		Key:        "000102030405060708090a0b0c0d0e0f",
		Plaintext:  "00112233445566778899aabbccddeeff",
		Ciphertext: "69c4e0d86a7b0430d8cdb78070b4c55b",
	}
	if err := tv.Check(); err == nil {
		t.Error("Check() should fail for a corrupted ciphertext")
	}

	tv.Mode = "ofb"
	if err := tv.Check(); err == nil {
		t.Error("Check() should fail for an unknown mode")
	}
}
