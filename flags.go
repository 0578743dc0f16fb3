package regolith

import (
	"strings"

	"github.com/coregx/regolith/engine"
)

// FlagSet is the parsed form of a flag string.
type FlagSet uint8

const (
	// FlagGlobal (g) makes Match and Replace act on every match.
	FlagGlobal FlagSet = 1 << iota
	// FlagIgnoreCase (i) enables case-insensitive matching.
	FlagIgnoreCase
	// FlagMultiline (m) makes ^ and $ match at line boundaries.
	FlagMultiline
	// FlagDotAll (s) makes . match line terminators.
	FlagDotAll
)

// flagChars lists the recognized flags in canonical order.
var flagChars = []struct {
	c    byte
	flag FlagSet
}{
	{'g', FlagGlobal},
	{'i', FlagIgnoreCase},
	{'m', FlagMultiline},
	{'s', FlagDotAll},
}

func lookupFlag(c rune) (FlagSet, bool) {
	for _, fc := range flagChars {
		if rune(fc.c) == c {
			return fc.flag, true
		}
	}
	return 0, false
}

// ParseFlags parses a flag string. Unrecognized characters are ignored and
// repeated flags are accepted.
func ParseFlags(s string) FlagSet {
	var set FlagSet
	for _, c := range s {
		if flag, ok := lookupFlag(c); ok {
			set |= flag
		}
	}
	return set
}

// ParseFlagsStrict parses a flag string, rejecting unrecognized and repeated
// characters with a *FlagError.
func ParseFlagsStrict(s string) (FlagSet, error) {
	var set FlagSet
	for _, c := range s {
		flag, ok := lookupFlag(c)
		if !ok {
			return 0, &FlagError{Flags: s, Char: c}
		}
		if set&flag != 0 {
			return 0, &FlagError{Flags: s, Char: c, Duplicate: true}
		}
		set |= flag
	}
	return set, nil
}

// Has reports whether every flag in flag is set.
func (f FlagSet) Has(flag FlagSet) bool {
	return f&flag == flag
}

// Options returns the compile-time engine options. The global flag has no
// compile-time meaning and is not part of them.
func (f FlagSet) Options() engine.Options {
	return engine.Options{
		CaseInsensitive: f.Has(FlagIgnoreCase),
		MultiLine:       f.Has(FlagMultiline),
		DotAll:          f.Has(FlagDotAll),
	}
}

// String returns the flags in canonical order, e.g. "gim".
func (f FlagSet) String() string {
	var b strings.Builder
	for _, fc := range flagChars {
		if f.Has(fc.flag) {
			b.WriteByte(fc.c)
		}
	}
	return b.String()
}
