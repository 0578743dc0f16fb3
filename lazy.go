package regolith

import (
	"os"
	"strings"
	"sync"
)

// Lazy is a RegExp compiled the first time it is used. It allows package
// level patterns without paying for their compilation at init.
//
// Example:
//
//	var dateRE = regolith.NewLazy(`(\d{4})-(\d{2})-(\d{2})`, "g")
//
//	func dates(s string) []string { return dateRE.Match(s) }
type Lazy struct {
	pattern string
	flags   string
	once    sync.Once
	re      *RegExp
	err     error
}

var inTest = len(os.Args) > 0 && strings.HasSuffix(strings.TrimSuffix(os.Args[0], ".exe"), ".test")

// NewLazy returns a Lazy for pattern and flags. The first use panics, as
// MustCompile does, if the pattern is invalid. Under go test the pattern is
// compiled immediately so that invalid patterns fail early.
func NewLazy(pattern, flags string) *Lazy {
	l := &Lazy{pattern: pattern, flags: flags}
	if inTest {
		l.RegExp()
	}
	return l
}

// RegExp returns the compiled pattern, compiling it on first call. It
// panics on every call if the pattern does not compile.
func (l *Lazy) RegExp() *RegExp {
	l.once.Do(func() {
		l.re, l.err = Compile(l.pattern, l.flags)
	})
	if l.err != nil {
		panic(compilePanic(l.pattern, l.flags, l.err))
	}
	return l.re
}

func (l *Lazy) Test(input string) bool { return l.RegExp().Test(input) }

func (l *Lazy) Exec(input string) []string { return l.RegExp().Exec(input) }

func (l *Lazy) Match(input string) []string { return l.RegExp().Match(input) }

func (l *Lazy) Replace(input, replacement string) string {
	return l.RegExp().Replace(input, replacement)
}

func (l *Lazy) Search(input string) int { return l.RegExp().Search(input) }

func (l *Lazy) Split(input string, limit ...uint) []string {
	return l.RegExp().Split(input, limit...)
}

// Source returns the pattern without compiling it.
func (l *Lazy) Source() string { return l.pattern }

// Flags returns the flag string without compiling the pattern.
func (l *Lazy) Flags() string { return l.flags }
