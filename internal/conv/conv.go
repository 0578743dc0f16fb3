// Package conv provides offset and integer conversion helpers used at the
// boundary between regolith and its engines.
//
// Engines report byte offsets (or, for rune-based libraries, rune indices)
// while regolith reports character offsets to its callers. Counts supplied by
// callers are unsigned and are narrowed here with saturation instead of
// wrapping.
package conv

import (
	"math"
	"unicode/utf8"
)

// ByteToRuneOffset returns the number of runes in s before byte offset off.
// Offsets outside s are clamped to its bounds.
func ByteToRuneOffset(s string, off int) int {
	if off <= 0 {
		return 0
	}
	if off > len(s) {
		off = len(s)
	}
	return utf8.RuneCountInString(s[:off])
}

// RuneOffsets returns the byte offset of every rune in s followed by len(s),
// so offsets[i] is where rune i starts and offsets[RuneCount] == len(s).
// Invalid bytes count as one rune each, matching a []rune(s) conversion.
func RuneOffsets(s string) []int {
	offsets := make([]int, 0, len(s)+1)
	for i := range s {
		offsets = append(offsets, i)
	}
	return append(offsets, len(s))
}

// UintToInt converts n to int, saturating at math.MaxInt.
func UintToInt(n uint) int {
	if n > math.MaxInt {
		return math.MaxInt
	}
	return int(n)
}
