// Package regolith provides regular expressions with JavaScript-flavored
// semantics on top of existing Go regex engines.
//
// A RegExp is compiled from a pattern and a flag string, as with the
// JavaScript RegExp constructor:
//   - i: case-insensitive matching
//   - m: multi-line mode, ^ and $ match at line boundaries
//   - s: dot-all mode, . matches line terminators
//   - g: global mode, Match and Replace act on every match
//
// The i, m and s flags configure the engine when the pattern is compiled.
// The g flag is not an engine option: it is consulted on every call and
// switches Match and Replace between first-match and all-matches behavior.
// Unrecognized flag characters are ignored unless Config.StrictFlags is set.
//
// Matching itself is delegated to an engine (see package engine). The
// default engine is the standard library regexp package; others are selected
// by name after importing their package:
//
//	import _ "github.com/coregx/regolith/engine/ecma"
//
//	config := regolith.DefaultConfig()
//	config.EngineName = "ecma"
//	re, err := regolith.CompileWithConfig(`(?<=\$)\d+`, "g", config)
//
// Basic usage:
//
//	re, err := regolith.Compile(`(\w+)@(\w+)\.com`, "i")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(re.Test("Mail: USER@EXAMPLE.COM")) // true
//	fmt.Println(re.Exec("user@example.com"))        // [user@example.com user example]
//
// A RegExp is immutable and safe for concurrent use by multiple goroutines.
// All matching operations are total: a pattern that does not match yields
// nil, -1 or the unchanged input, never an error.
package regolith

import (
	"strconv"
	"strings"

	"github.com/coregx/regolith/engine"
	"github.com/coregx/regolith/internal/conv"
)

// RegExp is a compiled regular expression together with its source and
// flags.
//
// Example:
//
//	re := regolith.MustCompile(`foo`, "g")
//	fmt.Println(re.Replace("foofoo", "bar")) // barbar
type RegExp struct {
	pattern  string
	flags    string
	set      FlagSet
	compiled engine.Pattern
	engine   string
	config   Config
}

// Compile compiles pattern with the given flags on the default engine.
//
// Returns a *PatternError matching ErrInvalidPattern if the engine rejects
// the pattern.
//
// Example:
//
//	re, err := regolith.Compile(`^\d+$`, "m")
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern, flags string) (*RegExp, error) {
	return CompileWithConfig(pattern, flags, DefaultConfig())
}

// New compiles pattern on the default engine. The flags argument is
// optional; when several are given they are concatenated.
//
// Example:
//
//	re, err := regolith.New(`\d+`)     // no flags
//	re, err = regolith.New(`\d+`, "g") // global
func New(pattern string, flags ...string) (*RegExp, error) {
	return Compile(pattern, strings.Join(flags, ""))
}

// MustCompile is like Compile but panics if the pattern cannot be compiled.
//
// This is useful for patterns known to be valid at compile time.
//
// Example:
//
//	var digits = regolith.MustCompile(`\d+`, "g")
func MustCompile(pattern, flags string) *RegExp {
	re, err := Compile(pattern, flags)
	if err != nil {
		panic(compilePanic(pattern, flags, err))
	}
	return re
}

func compilePanic(pattern, flags string, err error) string {
	return "regolith: Compile(" + quote(pattern) + ", " + quote(flags) + "): " + err.Error()
}

// CompileWithConfig compiles pattern with the given flags and configuration.
//
// Example:
//
//	config := regolith.DefaultConfig()
//	config.StrictFlags = true
//	_, err := regolith.CompileWithConfig(`a`, "gg", config)
//	// errors.Is(err, regolith.ErrInvalidFlags) == true
func CompileWithConfig(pattern, flags string, config Config) (*RegExp, error) {
	set := ParseFlags(flags)
	if config.StrictFlags {
		var err error
		if set, err = ParseFlagsStrict(flags); err != nil {
			return nil, err
		}
	}

	e, err := config.resolveEngine()
	if err != nil {
		return nil, err
	}

	compiled, err := e.Compile(pattern, set.Options())
	if err != nil {
		return nil, &PatternError{
			Pattern: pattern,
			Flags:   flags,
			Engine:  e.Name(),
			Err:     err,
		}
	}

	return &RegExp{
		pattern:  pattern,
		flags:    flags,
		set:      set,
		compiled: compiled,
		engine:   e.Name(),
		config:   config,
	}, nil
}

// Recompile compiles a new pattern and flag string with the configuration
// re was compiled with. re itself is not modified.
func (re *RegExp) Recompile(pattern, flags string) (*RegExp, error) {
	return CompileWithConfig(pattern, flags, re.config)
}

func quote(s string) string {
	if strconv.CanBackquote(s) {
		return "`" + s + "`"
	}
	return strconv.Quote(s)
}

// Test reports whether input contains a match. It ignores the global flag.
//
// Example:
//
//	re := regolith.MustCompile(`foo`, "")
//	re.Test("foobar") // true
func (re *RegExp) Test(input string) bool {
	return re.compiled.IsMatch(input)
}

// Exec returns the leftmost match followed by the text of every capture
// group, in group order, or nil if there is no match. A group that did not
// participate in the match is reported as "". The global flag is ignored.
//
// Example:
//
//	re := regolith.MustCompile(`(foo)(bar)?`, "")
//	re.Exec("foobar") // ["foobar" "foo" "bar"]
//	re.Exec("foo")    // ["foo" "foo" ""]
//	re.Exec("baz")    // nil
func (re *RegExp) Exec(input string) []string {
	groups, ok := re.compiled.Captures(input)
	if !ok {
		return nil
	}
	result := make([]string, len(groups))
	for i, g := range groups {
		if g.Matched {
			result[i] = g.Text
		}
	}
	return result
}

// Match returns the text of the leftmost match as a single-element slice,
// or, when the global flag is set, the text of every non-overlapping match
// in order. It returns nil, never an empty slice, when nothing matches.
//
// Example:
//
//	regolith.MustCompile(`foo`, "").Match("foofoo")  // ["foo"]
//	regolith.MustCompile(`foo`, "g").Match("foofoo") // ["foo" "foo"]
func (re *RegExp) Match(input string) []string {
	if !re.set.Has(FlagGlobal) {
		m, ok := re.compiled.FindFirst(input)
		if !ok {
			return nil
		}
		return []string{m.Text}
	}

	var matches []string
	for m := range re.compiled.FindAll(input) {
		matches = append(matches, m.Text)
	}
	if len(matches) == 0 {
		return nil
	}
	return matches
}

// Replace replaces the leftmost match with replacement, or every
// non-overlapping match when the global flag is set. Group references in
// replacement are expanded with the engine's own template syntax.
//
// Example:
//
//	regolith.MustCompile(`foo`, "").Replace("foofoo", "bar")  // "barfoo"
//	regolith.MustCompile(`foo`, "g").Replace("foofoo", "bar") // "barbar"
func (re *RegExp) Replace(input, replacement string) string {
	if re.set.Has(FlagGlobal) {
		return re.compiled.ReplaceAll(input, replacement)
	}
	return re.compiled.ReplaceFirst(input, replacement)
}

// Search returns the character offset of the leftmost match, or -1 if
// there is no match. Offsets count runes, not bytes. The global flag is
// ignored.
//
// Example:
//
//	re := regolith.MustCompile(`foo`, "")
//	re.Search("barfoo") // 3
//	re.Search("éfoo")   // 1
func (re *RegExp) Search(input string) int {
	m, ok := re.compiled.FindFirst(input)
	if !ok {
		return -1
	}
	return conv.ByteToRuneOffset(input, m.Start)
}

// Split slices input around every match. The optional limit bounds the
// number of substrings returned; the last substring is then the unsplit
// remainder. A missing or zero limit returns all substrings.
//
// Example:
//
//	re := regolith.MustCompile(`,`, "")
//	re.Split("a,b,c")    // ["a" "b" "c"]
//	re.Split("a,b,c", 2) // ["a" "b,c"]
func (re *RegExp) Split(input string, limit ...uint) []string {
	if len(limit) == 0 || limit[0] == 0 {
		return re.compiled.Split(input)
	}
	return re.compiled.SplitN(input, conv.UintToInt(limit[0]))
}

// Source returns the pattern exactly as it was passed to Compile.
func (re *RegExp) Source() string { return re.pattern }

// Flags returns the flag string exactly as it was passed to Compile.
func (re *RegExp) Flags() string { return re.flags }

// Global reports whether the g flag is set.
func (re *RegExp) Global() bool { return re.set.Has(FlagGlobal) }

// IgnoreCase reports whether the i flag is set.
func (re *RegExp) IgnoreCase() bool { return re.set.Has(FlagIgnoreCase) }

// Multiline reports whether the m flag is set.
func (re *RegExp) Multiline() bool { return re.set.Has(FlagMultiline) }

// DotAll reports whether the s flag is set.
func (re *RegExp) DotAll() bool { return re.set.Has(FlagDotAll) }

// FlagSet returns the parsed flags.
func (re *RegExp) FlagSet() FlagSet { return re.set }

// Engine returns the name of the engine that compiled the pattern.
func (re *RegExp) Engine() string { return re.engine }

// String returns the pattern in JavaScript literal notation, /source/flags.
func (re *RegExp) String() string {
	source := re.pattern
	if source == "" {
		source = "(?:)"
	}
	return "/" + source + "/" + re.flags
}
