package conv

import (
	"math"
	"testing"
)

func TestByteToRuneOffset(t *testing.T) {
	tests := []struct {
		s    string
		off  int
		want int
	}{
		{"barfoo", 3, 3},
		{"éfoo", 2, 1},
		{"日本語abc", 9, 3},
		{"abc", -1, 0},
		{"abc", 10, 3},
		{"", 0, 0},
	}

	for _, tt := range tests {
		if got := ByteToRuneOffset(tt.s, tt.off); got != tt.want {
			t.Errorf("ByteToRuneOffset(%q, %d) = %d, want %d", tt.s, tt.off, got, tt.want)
		}
	}
}

func TestRuneOffsets(t *testing.T) {
	got := RuneOffsets("aé日")
	want := []int{0, 1, 3, 6}
	if len(got) != len(want) {
		t.Fatalf("RuneOffsets = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("RuneOffsets[%d] = %d, want %d", i, got[i], want[i])
		}
	}

	// Invalid bytes are one rune each, like []rune conversion.
	invalid := "a\xffb"
	if n := len(RuneOffsets(invalid)) - 1; n != len([]rune(invalid)) {
		t.Errorf("rune count = %d, want %d", n, len([]rune(invalid)))
	}
}

func TestUintToInt(t *testing.T) {
	if got := UintToInt(2); got != 2 {
		t.Errorf("UintToInt(2) = %d", got)
	}
	if got := UintToInt(math.MaxUint); got != math.MaxInt {
		t.Errorf("UintToInt(MaxUint) = %d, want MaxInt", got)
	}
}
