package cryptopals

import (
	"encoding/hex"
	"testing"
)

// TestExpandKeyFIPS197 checks round keys from FIPS-197 Appendix A.1 and C.1.
func TestExpandKeyFIPS197(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		round int
		want  string
	}{
		{"a1_round0", "2b7e151628aed2a6abf7158809cf4f3c", 0, "2b7e151628aed2a6abf7158809cf4f3c"},
		{"a1_round1", "2b7e151628aed2a6abf7158809cf4f3c", 1, "a0fafe1788542cb123a339392a6c7605"},
		{"a1_round2", "2b7e151628aed2a6abf7158809cf4f3c", 2, "f2c295f27a96b9435935807a7359f67f"},
		{"a1_round10", "2b7e151628aed2a6abf7158809cf4f3c", 10, "d014f9a8c9ee2589e13f0cc8b6630ca6"},
		{"c1_round10", "000102030405060708090a0b0c0d0e0f", 10, "13111d7fe3944a17f307a78b4d2b30c5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, _ := hex.DecodeString(tt.key)
			rk := ExpandKey(key)
			got := rk.RoundKey(tt.round)
			if hex.EncodeToString(got[:]) != tt.want {
				t.Errorf("round key %d = %x, want %s", tt.round, got, tt.want)
			}
		})
	}
}

func TestExpandKeyWordLayout(t *testing.T) {
	key, _ := hex.DecodeString("2b7e151628aed2a6abf7158809cf4f3c")
	rk := ExpandKey(key)

	// Word 4 is a0fafe17 in FIPS-197 byte order, stored little-endian.
	if rk[4] != 0x17fefaa0 {
		t.Errorf("w[4] = 0x%08x, want 0x17fefaa0", rk[4])
	}
	if len(rk) != 44 {
		t.Errorf("schedule has %d words, want 44", len(rk))
	}
}

func TestExpandKeyDeterministic(t *testing.T) {
	key := []byte("YELLOW SUBMARINE")
	if ExpandKey(key) != ExpandKey(key) {
		t.Error("ExpandKey() returned different schedules for the same key")
	}
}

func TestExpandKeyPanicsOnBadLength(t *testing.T) {
	for _, n := range []int{0, 15, 17, 24, 32} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("ExpandKey() with %d-byte key did not panic", n)
				}
			}()
			ExpandKey(make([]byte, n))
		}()
	}
}
