//go:build rure

// Package rure registers github.com/BurntSushi/rure-go as the "rure" engine.
//
// rure-go binds the C API of the Rust regex crate, so patterns behave exactly
// as they do for Rust programs. It needs cgo and librure, and is only built
// with the rure build tag:
//
//	go build -tags rure ./...
package rure

import (
	"iter"

	rure "github.com/BurntSushi/rure-go"

	"github.com/coregx/regolith/engine"
	"github.com/coregx/regolith/internal/expand"
)

// Name is the registry name of the engine.
const Name = "rure"

func init() {
	engine.Register(Engine{})
}

// Engine compiles patterns with rure.CompileOptions.
type Engine struct{}

// Name implements engine.Engine.
func (Engine) Name() string { return Name }

// Compile implements engine.Engine.
func (Engine) Compile(pattern string, opts engine.Options) (engine.Pattern, error) {
	re, err := rure.CompileOptions(pattern, compileFlags(opts), rure.NewOptions())
	if err != nil {
		return nil, err
	}
	return &Pattern{re: re}, nil
}

func compileFlags(opts engine.Options) uint32 {
	flags := uint32(rure.DefaultFlags)
	if opts.CaseInsensitive {
		flags |= uint32(rure.FlagCaseI)
	}
	if opts.MultiLine {
		flags |= uint32(rure.FlagMulti)
	}
	if opts.DotAll {
		flags |= uint32(rure.FlagDotNL)
	}
	return flags
}

// Pattern wraps a compiled *rure.Regex. Replacement templates use the
// regex crate syntax, which is the regexp.Expand syntax, except that named
// group references are not resolved and expand to nothing.
type Pattern struct {
	re *rure.Regex
}

func (p *Pattern) IsMatch(text string) bool {
	return p.re.IsMatch(text)
}

func (p *Pattern) FindFirst(text string) (engine.Match, bool) {
	start, end, ok := p.re.Find(text)
	if !ok {
		return engine.Match{}, false
	}
	return engine.Match{Start: start, End: end, Text: text[start:end]}, true
}

func (p *Pattern) FindAll(text string) iter.Seq[engine.Match] {
	return func(yield func(engine.Match) bool) {
		it := p.re.Iter(text)
		var m rure.Match
		for it.Next(&m) {
			if !yield(engine.Match{Start: m.Start, End: m.End, Text: text[m.Start:m.End]}) {
				return
			}
		}
	}
}

func (p *Pattern) Captures(text string) ([]engine.Group, bool) {
	loc, ok := p.submatch(text)
	if !ok {
		return nil, false
	}
	groups := make([]engine.Group, len(loc)/2)
	for i := range groups {
		if loc[2*i] >= 0 {
			groups[i] = engine.Group{Text: text[loc[2*i]:loc[2*i+1]], Matched: true}
		}
	}
	return groups, true
}

// submatch returns the index pairs of the leftmost match and its groups,
// -1 marking a group that did not participate.
func (p *Pattern) submatch(text string) ([]int, bool) {
	caps := p.re.NewCaptures()
	if !p.re.Captures(caps, text) {
		return nil, false
	}
	return captureIndices(caps), true
}

func captureIndices(caps *rure.Captures) []int {
	loc := make([]int, 2*caps.Len())
	for i := 0; i < caps.Len(); i++ {
		start, end, ok := caps.Group(i)
		if !ok {
			start, end = -1, -1
		}
		loc[2*i], loc[2*i+1] = start, end
	}
	return loc
}

func (p *Pattern) ReplaceFirst(text, repl string) string {
	loc, ok := p.submatch(text)
	if !ok {
		return text
	}
	return expand.Replace(text, repl, nil, [][]int{loc})
}

func (p *Pattern) ReplaceAll(text, repl string) string {
	var locs [][]int
	it := p.re.Iter(text)
	caps := p.re.NewCaptures()
	for it.NextCaptures(caps) {
		locs = append(locs, captureIndices(caps))
	}
	return expand.Replace(text, repl, nil, locs)
}

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
