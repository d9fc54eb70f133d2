package cryptopals

import "encoding/binary"

// state is one AES block laid out column-major: byte 4*c+r holds row r
// of column c.
type state [BlockSize]byte

// EncryptBlock encrypts the first 16 bytes of src into dst using an
// expanded key. dst and src may overlap entirely.
func EncryptBlock(rk *Schedule, dst, src []byte) {
	if len(src) < BlockSize || len(dst) < BlockSize {
		panic("cryptopals: input not full block")
	}

	var s state
	copy(s[:], src[:BlockSize])
	encryptState(rk, &s)
	copy(dst, s[:])
}

// DecryptBlock decrypts the first 16 bytes of src into dst using the same
// expanded key that encrypted it. dst and src may overlap entirely.
func DecryptBlock(rk *Schedule, dst, src []byte) {
	if len(src) < BlockSize || len(dst) < BlockSize {
		panic("cryptopals: input not full block")
	}

	var s state
	copy(s[:], src[:BlockSize])
	decryptState(rk, &s)
	copy(dst, s[:])
}

func encryptState(rk *Schedule, s *state) {
	traceBytes("encrypt input", s[:])

	s.addRoundKey(rk, 0)

	for round := 1; round < nr; round++ {
		s.subBytes()
		s.shiftRows()
		s.mixColumns()
		s.addRoundKey(rk, round)
		traceState(round, s)
	}

	s.subBytes()
	s.shiftRows()
	s.addRoundKey(rk, nr)
	traceState(nr, s)
}

func decryptState(rk *Schedule, s *state) {
	traceBytes("decrypt input", s[:])

	s.addRoundKey(rk, nr)

	for round := nr - 1; round > 0; round-- {
		s.invShiftRows()
		s.invSubBytes()
		s.addRoundKey(rk, round)
		s.invMixColumns()
		traceState(round, s)
	}

	s.invShiftRows()
	s.invSubBytes()
	s.addRoundKey(rk, 0)
	traceState(0, s)
}

func (s *state) addRoundKey(rk *Schedule, round int) {
	for c := 0; c < nb; c++ {
		col := s[4*c : 4*c+4]
		binary.LittleEndian.PutUint32(col, binary.LittleEndian.Uint32(col)^rk[nb*round+c])
	}
}

func (s *state) subBytes() {
	for i, b := range s {
		s[i] = sbox[b]
	}
}

func (s *state) invSubBytes() {
	for i, b := range s {
		s[i] = invSbox[b]
	}
}

// shiftRows rotates row r left by r positions.
func (s *state) shiftRows() {
	for r := 1; r < 4; r++ {
		var row [4]byte
		for c := 0; c < 4; c++ {
			row[c] = s[4*c+r]
		}
		for c := 0; c < 4; c++ {
			s[4*c+r] = row[(c+r)%4]
		}
	}
}

// invShiftRows rotates row r right by r positions.
func (s *state) invShiftRows() {
	for r := 1; r < 4; r++ {
		var row [4]byte
		for c := 0; c < 4; c++ {
			row[c] = s[4*c+r]
		}
		for c := 0; c < 4; c++ {
			s[4*c+r] = row[(4+c-r)%4]
		}
	}
}

func (s *state) mixColumns() {
	for c := 0; c < nb; c++ {
		col := s[4*c : 4*c+4]
		binary.LittleEndian.PutUint32(col, mixWord(binary.LittleEndian.Uint32(col)))
	}
}

func (s *state) invMixColumns() {
	for c := 0; c < nb; c++ {
		col := s[4*c : 4*c+4]
		binary.LittleEndian.PutUint32(col, invMixWord(binary.LittleEndian.Uint32(col)))
	}
}
