package regolith

import (
	"errors"
	"testing"

	"github.com/coregx/regolith/engine"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		flags string
		want  FlagSet
		str   string
	}{
		{"", 0, ""},
		{"g", FlagGlobal, "g"},
		{"smig", FlagGlobal | FlagIgnoreCase | FlagMultiline | FlagDotAll, "gims"},
		{"gg", FlagGlobal, "g"},
		{"uyd", 0, ""},
		{"ié", FlagIgnoreCase, "i"},
	}

	for _, tt := range tests {
		got := ParseFlags(tt.flags)
		if got != tt.want {
			t.Errorf("ParseFlags(%q) = %b, want %b", tt.flags, got, tt.want)
		}
		if got.String() != tt.str {
			t.Errorf("ParseFlags(%q).String() = %q, want %q", tt.flags, got.String(), tt.str)
		}
	}
}

func TestParseFlagsStrict(t *testing.T) {
	tests := []struct {
		flags     string
		char      rune
		duplicate bool
	}{
		{"gig", 'g', true},
		{"mm", 'm', true},
		{"gu", 'u', false},
		{"é", 'é', false},
	}

	for _, tt := range tests {
		_, err := ParseFlagsStrict(tt.flags)
		var ferr *FlagError
		if !errors.As(err, &ferr) {
			t.Fatalf("ParseFlagsStrict(%q) error = %v, want *FlagError", tt.flags, err)
		}
		if ferr.Char != tt.char || ferr.Duplicate != tt.duplicate {
			t.Errorf("ParseFlagsStrict(%q) = %+v, want char %q duplicate %v", tt.flags, ferr, tt.char, tt.duplicate)
		}
		if !errors.Is(err, ErrInvalidFlags) {
			t.Errorf("ParseFlagsStrict(%q) error does not match ErrInvalidFlags", tt.flags)
		}
	}

	set, err := ParseFlagsStrict("msig")
	if err != nil {
		t.Fatalf("ParseFlagsStrict(msig) failed: %v", err)
	}
	if set.String() != "gims" {
		t.Errorf("ParseFlagsStrict(msig) = %q, want gims", set.String())
	}
}

func TestFlagSetOptions(t *testing.T) {
	got := ParseFlags("gs").Options()
	want := engine.Options{DotAll: true}
	if got != want {
		t.Errorf("Options() = %+v, want %+v", got, want)
	}
	if inline := ParseFlags("gims").Options().InlineFlags(); inline != "(?ims)" {
		t.Errorf("InlineFlags() = %q, want (?ims)", inline)
	}
	if inline := ParseFlags("g").Options().InlineFlags(); inline != "" {
		t.Errorf("InlineFlags() = %q, want empty", inline)
	}
}

func TestFlagErrorMessage(t *testing.T) {
	_, err := ParseFlagsStrict("gg")
	if want := `invalid regex flags "gg": duplicate flag 'g'`; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	_, err = ParseFlagsStrict("x")
	if want := `invalid regex flags "x": unknown flag 'x'`; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
