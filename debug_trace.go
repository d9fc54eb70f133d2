package cryptopals

import (
	"encoding/hex"
	"fmt"
	"os"
)

// debugEnabled controls whether debug tracing is enabled via CRYPTOPALS_DEBUG env var
var debugEnabled = os.Getenv("CRYPTOPALS_DEBUG") == "1"

// traceLog outputs a debug message if tracing is enabled
func traceLog(format string, args ...interface{}) {
	if debugEnabled {
		fmt.Printf("[TRACE] "+format+"\n", args...)
	}
}

// traceBytes outputs bytes in hex format with a descriptive name
func traceBytes(name string, data []byte) {
	if debugEnabled {
		fmt.Printf("[TRACE] %s (%d bytes): %s\n", name, len(data), hex.EncodeToString(data))
	}
}

// traceState outputs the block state after a round, one row per line
func traceState(round int, s *state) {
	if debugEnabled {
		fmt.Printf("[TRACE] round %2d: %s\n", round, hex.EncodeToString(s[:]))
		for r := 0; r < 4; r++ {
			fmt.Printf("[TRACE]   %02x %02x %02x %02x\n", s[r], s[4+r], s[8+r], s[12+r])
		}
	}
}

// compareTrace compares expected vs actual hex strings
// Returns true if they match, false otherwise
// Automatically logs the comparison result when debug is enabled
func compareTrace(stage, expected, actual string) bool {
	match := expected == actual
	if debugEnabled {
		if !match {
			fmt.Printf("[TRACE] ✗ MISMATCH %s:\n", stage)
			fmt.Printf("[TRACE]   Expected: %s\n", expected)
			fmt.Printf("[TRACE]   Actual:   %s\n", actual)
		} else {
			fmt.Printf("[TRACE] ✓ %s matches\n", stage)
		}
	}
	return match
}
