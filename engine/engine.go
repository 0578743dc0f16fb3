// Package engine defines the contract between regolith and the regular
// expression libraries it delegates matching to.
//
// An Engine compiles a pattern under a set of Options into a Pattern. A
// Pattern answers the primitive questions regolith needs (is there a match,
// where is the first one, what are all of them, what did the groups capture)
// and performs the replace and split operations the way its library does
// natively.
//
// Engine implementations live in subpackages and register themselves from
// init, so importing a package for its side effect makes the engine available
// by name:
//
//	import _ "github.com/coregx/regolith/engine/ecma"
//
//	re, err := regolith.CompileWithConfig(`\d+`, "g", regolith.Config{EngineName: "ecma"})
package engine

import (
	"iter"
	"sort"
	"sync"
)

// Options is the compile-time configuration derived from a flag string.
// The global flag is deliberately absent: global mode is a per-call switch.
type Options struct {
	// CaseInsensitive enables case-insensitive matching (flag i).
	CaseInsensitive bool

	// MultiLine makes ^ and $ match at line boundaries (flag m).
	MultiLine bool

	// DotAll makes . match line terminators (flag s).
	DotAll bool
}

// InlineFlags returns the options as an inline flag group prefix such as
// "(?is)", or "" when no option is set. Engines whose libraries only accept
// flags inside the pattern use it to wrap the source.
func (o Options) InlineFlags() string {
	var b []byte
	if o.CaseInsensitive {
		b = append(b, 'i')
	}
	if o.MultiLine {
		b = append(b, 'm')
	}
	if o.DotAll {
		b = append(b, 's')
	}
	if len(b) == 0 {
		return ""
	}
	return "(?" + string(b) + ")"
}

// Match is a located match. Start and End are byte offsets into the text
// that was searched, so Text == text[Start:End].
type Match struct {
	Start int
	End   int
	Text  string
}

// Group is one capture group of a match.
// Matched is false when the group did not participate in the match.
type Group struct {
	Text    string
	Matched bool
}

// Engine compiles patterns.
type Engine interface {
	// Name returns the registry name of the engine.
	Name() string

	// Compile compiles pattern under opts. The returned error carries the
	// library's own diagnostic.
	Compile(pattern string, opts Options) (Pattern, error)
}

// Pattern is a compiled pattern. Implementations must be safe for concurrent
// use by multiple goroutines.
type Pattern interface {
	// IsMatch reports whether text contains any match.
	IsMatch(text string) bool

	// FindFirst returns the leftmost match.
	FindFirst(text string) (Match, bool)

	// FindAll returns the successive non-overlapping matches in text.
	// The sequence is evaluated lazily and may be iterated more than once.
	FindAll(text string) iter.Seq[Match]

	// Captures returns the groups of the leftmost match, index 0 being the
	// whole match.
	Captures(text string) ([]Group, bool)

	// ReplaceFirst replaces the leftmost match with repl, expanding repl
	// with the library's native template syntax.
	ReplaceFirst(text, repl string) string

	// ReplaceAll replaces every non-overlapping match with repl, expanding
	// repl with the library's native template syntax.
	ReplaceAll(text, repl string) string

	// Split returns the substrings of text between matches.
	Split(text string) []string

	// SplitN is like Split but returns at most n substrings; the last one is
	// the unsplit remainder. n must be positive.
	SplitN(text string, n int) []string
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Engine)
)

// Register makes an engine available by its name. Registering a second
// engine under the same name replaces the first.
func Register(e Engine) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[e.Name()] = e
}

// Lookup returns the engine registered under name.
func Lookup(name string) (Engine, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	e, ok := registry[name]
	return e, ok
}

// Names returns the sorted names of all registered engines.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
