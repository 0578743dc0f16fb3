// Package goregexp adapts libraries that mirror the regexp.Regexp API
// (the standard library, coregex, go-re2) to engine.Pattern.
package goregexp

import (
	"iter"

	"github.com/coregx/regolith/engine"
	"github.com/coregx/regolith/internal/expand"
)

// Regexp is the subset of the regexp.Regexp method set a Pattern needs.
type Regexp interface {
	MatchString(s string) bool
	FindStringIndex(s string) []int
	FindAllStringIndex(s string, n int) [][]int
	FindStringSubmatchIndex(s string) []int
	FindAllStringSubmatchIndex(s string, n int) [][]int
	SubexpNames() []string
}

// Pattern implements engine.Pattern on top of a Regexp. Replacement
// templates are expanded with the regexp.Expand rules for both ReplaceFirst
// and ReplaceAll.
type Pattern struct {
	re Regexp
}

// Compile compiles pattern with the options applied as a leading inline flag
// group. On failure the error is the one for pattern alone, so that the
// diagnostic quotes the caller's pattern rather than the prefixed one.
func Compile[R Regexp](compile func(string) (R, error), pattern string, opts engine.Options) (engine.Pattern, error) {
	prefix := opts.InlineFlags()
	re, err := compile(prefix + pattern)
	if err != nil {
		if prefix != "" {
			if _, bareErr := compile(pattern); bareErr != nil {
				return nil, bareErr
			}
		}
		return nil, err
	}
	return New(re), nil
}

// New returns a Pattern backed by re.
func New(re Regexp) *Pattern {
	return &Pattern{re: re}
}

func (p *Pattern) IsMatch(text string) bool {
	return p.re.MatchString(text)
}

func (p *Pattern) FindFirst(text string) (engine.Match, bool) {
	loc := p.re.FindStringIndex(text)
	if loc == nil {
		return engine.Match{}, false
	}
	return engine.Match{Start: loc[0], End: loc[1], Text: text[loc[0]:loc[1]]}, true
}

func (p *Pattern) FindAll(text string) iter.Seq[engine.Match] {
	return func(yield func(engine.Match) bool) {
		for _, loc := range p.re.FindAllStringIndex(text, -1) {
			if !yield(engine.Match{Start: loc[0], End: loc[1], Text: text[loc[0]:loc[1]]}) {
				return
			}
		}
	}
}

func (p *Pattern) Captures(text string) ([]engine.Group, bool) {
	loc := p.re.FindStringSubmatchIndex(text)
	if loc == nil {
		return nil, false
	}
	return Groups(text, loc), true
}

func (p *Pattern) ReplaceFirst(text, repl string) string {
	loc := p.re.FindStringSubmatchIndex(text)
	if loc == nil {
		return text
	}
	return expand.Replace(text, repl, p.re.SubexpNames(), [][]int{loc})
}

func (p *Pattern) ReplaceAll(text, repl string) string {
	return expand.Replace(text, repl, p.re.SubexpNames(), p.re.FindAllStringSubmatchIndex(text, -1))
}

func (p *Pattern) Split(text string) []string {
	return p.SplitN(text, -1)
}

// SplitN returns at most n pieces. The libraries' own Split methods are not
// used because they disagree on n == 1.
func (p *Pattern) SplitN(text string, n int) []string {
	limit := -1
	if n > 0 {
		limit = n
	}
	return expand.Split(text, p.re.FindAllStringIndex(text, limit), n)
}

// Groups converts submatch index pairs into groups. Pairs of -1 become
// unmatched groups.
func Groups(text string, loc []int) []engine.Group {
	groups := make([]engine.Group, len(loc)/2)
	for i := range groups {
		if loc[2*i] >= 0 {
			groups[i] = engine.Group{Text: text[loc[2*i]:loc[2*i+1]], Matched: true}
		}
	}
	return groups
}
