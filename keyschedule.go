package cryptopals

import "encoding/binary"

const (
	// KeySize is the AES-128 key length in bytes.
	KeySize = 16

	// BlockSize is the AES block length in bytes.
	BlockSize = 16

	nb = 4  // columns in the state
	nk = 4  // 32-bit words in the key
	nr = 10 // rounds

	// ScheduleWords is the number of 32-bit words in an expanded key.
	ScheduleWords = nb * (nr + 1)
)

// rcon holds the round constants. Each entry is the previous one doubled
// in GF(2^8), starting from 1.
var rcon = [nr]uint32{0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80, 0x1b, 0x36}

// Schedule is an expanded AES-128 key: 11 round keys of four words each.
// Word j of round key r is Schedule[4*r+j] and is XORed into state column j,
// read as a little-endian uint32.
type Schedule [ScheduleWords]uint32

// ExpandKey derives the round key schedule for a 16-byte key.
// The same schedule drives both encryption and decryption.
// It panics if key is not KeySize bytes long.
func ExpandKey(key []byte) Schedule {
	if len(key) != KeySize {
		panic("cryptopals: key must be 16 bytes")
	}

	var w Schedule
	for i := 0; i < nk; i++ {
		w[i] = binary.LittleEndian.Uint32(key[4*i:])
	}

	for i := nk; i < ScheduleWords; i++ {
		temp := w[i-1]
		if i%nk == 0 {
			temp = subWord(rotWord(temp)) ^ rcon[i/nk-1]
		}
		w[i] = w[i-nk] ^ temp
	}

	return w
}

// RoundKey returns round key r (0 through 10) in byte order.
func (s *Schedule) RoundKey(r int) [BlockSize]byte {
	var out [BlockSize]byte
	for j := 0; j < nb; j++ {
		binary.LittleEndian.PutUint32(out[4*j:], s[nb*r+j])
	}
	return out
}
