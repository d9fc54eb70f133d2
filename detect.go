package cryptopals

// RepeatedBlocks counts 16-byte blocks of ciphertext that duplicate an
// earlier block. A trailing partial block is ignored.
func RepeatedBlocks(ciphertext []byte) int {
	seen := make(map[[BlockSize]byte]struct{}, len(ciphertext)/BlockSize)
	repeats := 0
	for off := 0; off+BlockSize <= len(ciphertext); off += BlockSize {
		var blk [BlockSize]byte
		copy(blk[:], ciphertext[off:])
		if _, ok := seen[blk]; ok {
			repeats++
			continue
		}
		seen[blk] = struct{}{}
	}
	return repeats
}

// DetectECB reports whether ciphertext contains a repeated block. ECB maps
// equal plaintext blocks to equal ciphertext blocks, while CBC does not.
func DetectECB(ciphertext []byte) bool {
	return RepeatedBlocks(ciphertext) > 0
}

// DetectECBLines returns the index of the line with the most repeated
// blocks, or -1 if no line has any.
func DetectECBLines(lines [][]byte) int {
	best, bestRepeats := -1, 0
	for i, line := range lines {
		if n := RepeatedBlocks(line); n > bestRepeats {
			best, bestRepeats = i, n
		}
	}
	traceLog("detect ECB: line %d with %d repeated blocks", best, bestRepeats)
	return best
}
