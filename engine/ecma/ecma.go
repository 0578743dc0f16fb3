// Package ecma registers github.com/dlclark/regexp2 in ECMAScript mode as the
// "ecma" engine. It is the engine to pick when patterns are written for
// JavaScript: it supports lookaround and backreferences, and replacement
// templates use the JavaScript forms $1, $&, $` and $'.
//
// regexp2 is a backtracking engine. Set a timeout with New to bound the time
// spent on a single match; a match that times out is reported as no match.
package ecma

import (
	"iter"
	"time"

	"github.com/dlclark/regexp2"

	"github.com/coregx/regolith/engine"
	"github.com/coregx/regolith/internal/conv"
	"github.com/coregx/regolith/internal/expand"
)

// Name is the registry name of the engine.
const Name = "ecma"

func init() {
	engine.Register(New(0))
}

// Engine compiles patterns with regexp2.Compile and the ECMAScript option.
type Engine struct {
	timeout time.Duration
}

// New returns an engine whose patterns give up matching after timeout.
// A zero timeout means no limit.
func New(timeout time.Duration) *Engine {
	return &Engine{timeout: timeout}
}

// Name implements engine.Engine.
func (e *Engine) Name() string { return Name }

// Compile implements engine.Engine.
func (e *Engine) Compile(pattern string, opts engine.Options) (engine.Pattern, error) {
	re, err := regexp2.Compile(pattern, regexpOptions(opts))
	if err != nil {
		return nil, err
	}
	if e.timeout > 0 {
		re.MatchTimeout = e.timeout
	}
	return &Pattern{re: re}, nil
}

func regexpOptions(opts engine.Options) regexp2.RegexOptions {
	var flags regexp2.RegexOptions = regexp2.ECMAScript
	if opts.CaseInsensitive {
		flags |= regexp2.IgnoreCase
	}
	if opts.MultiLine {
		flags |= regexp2.Multiline
	}
	if opts.DotAll {
		flags |= regexp2.Singleline
	}
	return flags
}

// Pattern wraps a compiled *regexp2.Regexp. regexp2 reports positions in
// runes; Pattern converts them to byte offsets.
type Pattern struct {
	re *regexp2.Regexp
}

func (p *Pattern) IsMatch(text string) bool {
	ok, err := p.re.MatchString(text)
	return err == nil && ok
}

func (p *Pattern) FindFirst(text string) (engine.Match, bool) {
	m, err := p.re.FindStringMatch(text)
	if err != nil || m == nil {
		return engine.Match{}, false
	}
	return toMatch(text, conv.RuneOffsets(text), m.Index, m.Length), true
}

func (p *Pattern) FindAll(text string) iter.Seq[engine.Match] {
	return func(yield func(engine.Match) bool) {
		m, err := p.re.FindStringMatch(text)
		if err != nil || m == nil {
			return
		}
		offsets := conv.RuneOffsets(text)
		for m != nil {
			if !yield(toMatch(text, offsets, m.Index, m.Length)) {
				return
			}
			if m, err = p.re.FindNextMatch(m); err != nil {
				return
			}
		}
	}
}

func (p *Pattern) Captures(text string) ([]engine.Group, bool) {
	m, err := p.re.FindStringMatch(text)
	if err != nil || m == nil {
		return nil, false
	}
	all := m.Groups()
	groups := make([]engine.Group, len(all))
	for i, g := range all {
		if len(g.Captures) > 0 {
			groups[i] = engine.Group{Text: g.String(), Matched: true}
		}
	}
	return groups, true
}

func (p *Pattern) ReplaceFirst(text, repl string) string {
	out, err := p.re.Replace(text, repl, -1, 1)
	if err != nil {
		return text
	}
	return out
}

func (p *Pattern) ReplaceAll(text, repl string) string {
	out, err := p.re.Replace(text, repl, -1, -1)
	if err != nil {
		return text
	}
	return out
}

// Split has no regexp2 counterpart; substrings are cut around the matches
// with the regexp.Regexp.Split rules.
func (p *Pattern) Split(text string) []string {
	return expand.Split(text, p.locations(text), -1)
}

func (p *Pattern) SplitN(text string, n int) []string {
	return expand.Split(text, p.locations(text), n)
}

func (p *Pattern) locations(text string) [][]int {
	var locs [][]int
	for m := range p.FindAll(text) {
		locs = append(locs, []int{m.Start, m.End})
	}
	return locs
}

func toMatch(text string, offsets []int, index, length int) engine.Match {
	start, end := offsets[index], offsets[index+length]
	return engine.Match{Start: start, End: end, Text: text[start:end]}
}
