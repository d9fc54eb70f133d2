package internal

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func TestReferenceCipherKnownVector(t *testing.T) {
	key, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	pt, _ := hex.DecodeString("00112233445566778899aabbccddeeff")
	want, _ := hex.DecodeString("69c4e0d86a7b0430d8cdb78070b4c55a")

	r, err := NewReferenceCipher(key)
	if err != nil {
		t.Fatalf("NewReferenceCipher() error = %v", err)
	}

	ct := make([]byte, len(pt))
	r.EncryptECB(ct, pt)
	if !bytes.Equal(ct, want) {
		t.Errorf("EncryptECB() = %x, want %x", ct, want)
	}

	got := make([]byte, len(ct))
	r.DecryptECB(got, ct)
	if !bytes.Equal(got, pt) {
		t.Errorf("DecryptECB() = %x, want %x", got, pt)
	}
}

func TestReferenceCipherCBC(t *testing.T) {
	key, _ := hex.DecodeString("2b7e151628aed2a6abf7158809cf4f3c")
	iv, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	pt, _ := hex.DecodeString("6bc1bee22e409f96e93d7e117393172a")
	want, _ := hex.DecodeString("7649abac8119b246cee98e9b12e9197d")

	r, err := NewReferenceCipher(key)
	if err != nil {
		t.Fatalf("NewReferenceCipher() error = %v", err)
	}

	ct := make([]byte, len(pt))
	r.EncryptCBC(iv, ct, pt)
	if !bytes.Equal(ct, want) {
		t.Errorf("EncryptCBC() = %x, want %x", ct, want)
	}

	got := make([]byte, len(ct))
	r.DecryptCBC(iv, got, ct)
	if !bytes.Equal(got, pt) {
		t.Errorf("DecryptCBC() = %x, want %x", got, pt)
	}
}

func TestNewReferenceCipherKeySize(t *testing.T) {
	for _, n := range []int{0, 8, 15, 17, 24, 32} {
		if _, err := NewReferenceCipher(make([]byte, n)); err == nil {
			t.Errorf("NewReferenceCipher(%d bytes) should fail", n)
		}
	}
}

func TestReferenceCipherPanics(t *testing.T) {
	r, err := NewReferenceCipher(make([]byte, 16))
	if err != nil {
		t.Fatalf("NewReferenceCipher() error = %v", err)
	}

	tests := []struct {
		name string
		fn   func()
	}{
		{"partial block", func() { r.EncryptECB(make([]byte, 32), make([]byte, 20)) }},
		{"short dst", func() { r.DecryptECB(make([]byte, 16), make([]byte, 32)) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.fn()
		})
	}
}

func TestReferenceCipherBlock(t *testing.T) {
	r, err := NewReferenceCipher(make([]byte, 16))
	if err != nil {
		t.Fatalf("NewReferenceCipher() error = %v", err)
	}
	if got := r.Block().BlockSize(); got != 16 {
		t.Errorf("Block().BlockSize() = %d, want 16", got)
	}
}
