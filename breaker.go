package cryptopals

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// BreakerConfig tunes the repeating-key XOR search.
type BreakerConfig struct {
	// MinKeySize and MaxKeySize bound the key lengths tried.
	MinKeySize int
	MaxKeySize int

	// SamplePairs is how many consecutive chunk pairs are compared when
	// estimating a key length.
	SamplePairs int

	// Candidates is how many of the best-ranked key lengths are fully
	// broken before picking a winner.
	Candidates int

	// Workers is the number of goroutines recovering key columns.
	// Values below 2 run sequentially.
	Workers int

	// Scorer rates candidate plaintexts. nil means ScoreEnglish.
	Scorer Scorer
}

// DefaultBreakerConfig returns key lengths 2-40, 4 sample pairs and the
// 5 best lengths, scored with ScoreEnglish.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		MinKeySize:  2,
		MaxKeySize:  40,
		SamplePairs: 4,
		Candidates:  5,
		Workers:     1,
		Scorer:      ScoreEnglish,
	}
}

// Validate checks if the configuration is usable.
func (c *BreakerConfig) Validate() error {
	if c.MinKeySize < 1 {
		return fmt.Errorf("cryptopals: minimum key size must be positive, got %d", c.MinKeySize)
	}
	if c.MaxKeySize < c.MinKeySize {
		return fmt.Errorf("cryptopals: maximum key size %d below minimum %d", c.MaxKeySize, c.MinKeySize)
	}
	if c.SamplePairs < 1 {
		return errors.New("cryptopals: sample pairs must be positive")
	}
	if c.Candidates < 1 {
		return errors.New("cryptopals: candidate count must be positive")
	}
	if c.Workers < 0 {
		return errors.New("cryptopals: worker count must not be negative")
	}
	return nil
}

// Breaker recovers XOR keys from ciphertext. It is safe for concurrent use.
type Breaker struct {
	config BreakerConfig
}

// NewBreaker returns a Breaker for a validated configuration.
func NewBreaker(config BreakerConfig) (*Breaker, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if config.Scorer == nil {
		config.Scorer = ScoreEnglish
	}
	return &Breaker{config: config}, nil
}

var defaultBreaker = &Breaker{config: DefaultBreakerConfig()}

// BreakSingleByteXOR tries every key byte 0-255 against ciphertext and
// returns the one whose plaintext scores lowest. Ties go to the smaller
// key. A nil scorer means ScoreEnglish.
func BreakSingleByteXOR(ciphertext []byte, scorer Scorer) (byte, []byte) {
	c := singleByteCandidate(ciphertext, scorer)
	return c.Key[0], c.Plaintext
}

// BreakSingleByteXORCandidate is BreakSingleByteXOR returning the score too.
func BreakSingleByteXORCandidate(ciphertext []byte, scorer Scorer) Candidate {
	return singleByteCandidate(ciphertext, scorer)
}

func singleByteCandidate(ciphertext []byte, scorer Scorer) Candidate {
	if scorer == nil {
		scorer = ScoreEnglish
	}

	tmp := getScratch(len(ciphertext))
	defer putScratch(tmp)

	var (
		bestKey   byte
		bestScore uint64 = MaxScore
	)
	for k := 0; k <= 0xff; k++ {
		for i, b := range ciphertext {
			tmp[i] = b ^ byte(k)
		}
		if s := scorer(tmp); s < bestScore {
			bestKey, bestScore = byte(k), s
		}
	}

	return Candidate{
		Key:       []byte{bestKey},
		Plaintext: RepeatingXOR(ciphertext, []byte{bestKey}),
		Score:     bestScore,
	}
}

// DetectSingleByteXOR breaks each line as single-byte XOR and returns the
// index and candidate of the line that scores best. It returns -1 for no
// lines.
func DetectSingleByteXOR(lines [][]byte, scorer Scorer) (int, Candidate) {
	best := -1
	var winner Candidate
	for i, line := range lines {
		c := singleByteCandidate(line, scorer)
		if best < 0 || c.Score < winner.Score {
			best, winner = i, c
		}
	}
	traceLog("detect single-byte XOR: line %d score %d", best, winner.Score)
	return best, winner
}

// keySizeRank is a key length and its normalized Hamming distance,
// scaled to an integer so ranking is exact.
type keySizeRank struct {
	size     int
	distance uint64
}

// EstimateKeySizes ranks key lengths by the average Hamming distance
// between consecutive ciphertext chunks of that length, divided by the
// length, and returns the best ones in ascending order of distance.
// Lengths too long to form a single chunk pair are skipped.
func (b *Breaker) EstimateKeySizes(ciphertext []byte) []int {
	cfg := b.config

	var ranks []keySizeRank
	for size := cfg.MinKeySize; size <= cfg.MaxKeySize; size++ {
		pairs := min(cfg.SamplePairs, len(ciphertext)/size-1)
		if pairs < 1 {
			break
		}

		total := 0
		for p := 0; p < pairs; p++ {
			a := ciphertext[p*size : (p+1)*size]
			c := ciphertext[(p+1)*size : (p+2)*size]
			total += HammingDistance(a, c)
		}

		// total/pairs/size in fixed point.
		ranks = append(ranks, keySizeRank{
			size:     size,
			distance: uint64(total) * keySizeScale / uint64(pairs*size),
		})
	}

	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].distance < ranks[j].distance
	})

	n := min(cfg.Candidates, len(ranks))
	sizes := make([]int, n)
	for i := range sizes {
		sizes[i] = ranks[i].size
		traceLog("key size candidate %d: size %d distance %d", i, ranks[i].size, ranks[i].distance)
	}
	return sizes
}

// keySizeScale is the fixed-point unit for normalized distances.
const keySizeScale = 1 << 20

// EstimateKeySizes ranks key lengths with DefaultBreakerConfig.
func EstimateKeySizes(ciphertext []byte) []int {
	return defaultBreaker.EstimateKeySizes(ciphertext)
}

// BreakRepeatingKeyXOR recovers a repeating XOR key. For each estimated
// key length it splits the ciphertext into columns, breaks each column as
// single-byte XOR, and decrypts with the assembled key. The plaintext
// with the lowest score wins; ties keep the better-ranked length.
func (b *Breaker) BreakRepeatingKeyXOR(ciphertext []byte) ([]byte, []byte) {
	c := b.BreakRepeatingKeyXORCandidate(ciphertext)
	return c.Key, c.Plaintext
}

// BreakRepeatingKeyXORCandidate is BreakRepeatingKeyXOR returning the
// winning score too.
func (b *Breaker) BreakRepeatingKeyXORCandidate(ciphertext []byte) Candidate {
	if len(ciphertext) == 0 {
		return Candidate{Score: b.config.Scorer(nil)}
	}

	sizes := b.EstimateKeySizes(ciphertext)
	if len(sizes) == 0 {
		// Too short for any pair comparison: fall back to one key byte.
		sizes = []int{1}
	}

	var (
		winner Candidate
		found  bool
	)
	for _, size := range sizes {
		key := b.recoverKey(ciphertext, size)
		pt := RepeatingXOR(ciphertext, key)
		score := b.config.Scorer(pt)
		traceLog("key size %d: key %x score %d", size, key, score)

		if !found || score < winner.Score {
			winner = Candidate{Key: key, Plaintext: pt, Score: score}
			found = true
		}
	}

	winner.Key = shortestPeriod(winner.Key)
	return winner
}

// BreakRepeatingKeyXOR recovers a repeating XOR key with
// DefaultBreakerConfig.
func BreakRepeatingKeyXOR(ciphertext []byte) ([]byte, []byte) {
	return defaultBreaker.BreakRepeatingKeyXOR(ciphertext)
}

// recoverKey breaks each of size interleaved columns as single-byte XOR.
func (b *Breaker) recoverKey(ciphertext []byte, size int) []byte {
	columns := transpose(ciphertext, size)
	key := make([]byte, size)

	if b.config.Workers < 2 {
		for i, col := range columns {
			key[i] = singleByteCandidate(col, b.config.Scorer).Key[0]
		}
		return key
	}

	sem := make(chan struct{}, b.config.Workers)
	var wg sync.WaitGroup
	for i, col := range columns {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, col []byte) {
			defer wg.Done()
			defer func() { <-sem }()
			key[i] = singleByteCandidate(col, b.config.Scorer).Key[0]
		}(i, col)
	}
	wg.Wait()
	return key
}

// transpose deinterleaves buf so that byte i lands in column i%size.
func transpose(buf []byte, size int) [][]byte {
	columns := make([][]byte, size)
	for i := range columns {
		columns[i] = make([]byte, 0, len(buf)/size+1)
	}
	for i, b := range buf {
		columns[i%size] = append(columns[i%size], b)
	}
	return columns
}

// shortestPeriod returns the shortest prefix of key that repeats to form
// all of key, so a length-2k guess collapses to the length-k key.
func shortestPeriod(key []byte) []byte {
	for p := 1; p < len(key); p++ {
		if len(key)%p != 0 {
			continue
		}
		repeats := true
		for i := p; i < len(key); i++ {
			if key[i] != key[i-p] {
				repeats = false
				break
			}
		}
		if repeats {
			return key[:p]
		}
	}
	return key
}
