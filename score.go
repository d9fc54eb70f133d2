package cryptopals

import (
	"math"
	"math/bits"
)

// Scorer rates how far a buffer is from the expected plaintext.
// Lower is better.
type Scorer func([]byte) uint64

// MaxScore is returned for buffers that cannot be English text.
const MaxScore = math.MaxUint64

const (
	spaceBucket = 26
	otherBucket = 27
	numBuckets  = 28
)

// englishFreq is the expected share of each bucket in English prose, in
// hundredths of a percent (the table sums to 10000). Buckets 0-25 are the
// letters a-z, then space, then everything else.
var englishFreq = [numBuckets]uint64{
	639, 122, 213, 343, 1021, 194, 155, 483, 547, 9, 50, 325, 198, // a-m
	553, 584, 135, 8, 488, 505, 715, 221, 81, 168, 13, 143, 8, // n-z
	1879, // space
	200,  // other
}

// bucket maps a byte to its frequency bucket, or -1 if the byte rules the
// buffer out as text.
func bucket(b byte) int {
	switch {
	case b >= 'a' && b <= 'z':
		return int(b - 'a')
	case b >= 'A' && b <= 'Z':
		return int(b - 'A')
	case b == ' ':
		return spaceBucket
	case b == '\n', b >= 0x21 && b <= 0x7e:
		return otherBucket
	default:
		return -1
	}
}

// ScoreEnglish is the default Scorer. Any byte that is neither printable
// ASCII nor a newline yields MaxScore. Otherwise the score is the sum over
// the 28 buckets of (expected - observed)^2, with counts measured in
// hundredths so the result stays an exact integer.
func ScoreEnglish(buf []byte) uint64 {
	var counts [numBuckets]uint64
	for _, b := range buf {
		i := bucket(b)
		if i < 0 {
			return MaxScore
		}
		counts[i]++
	}

	n := uint64(len(buf))
	var score uint64
	for i, freq := range englishFreq {
		expected := freq * n
		observed := counts[i] * 10000

		var diff uint64
		if expected > observed {
			diff = expected - observed
		} else {
			diff = observed - expected
		}
		diff /= 100

		hi, sq := bits.Mul64(diff, diff)
		sum, carry := bits.Add64(score, sq, 0)
		if hi != 0 || carry != 0 || sum == MaxScore {
			return MaxScore - 1
		}
		score = sum
	}
	return score
}

// Candidate is one scored guess produced by a key search.
type Candidate struct {
	Key       []byte
	Plaintext []byte
	Score     uint64
}
