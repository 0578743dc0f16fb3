// Package literal registers the "literal" engine, which serves patterns that
// are a literal string or an alternation of literal strings, such as
// `error|warning|fatal`, with a github.com/coregx/ahocorasick automaton.
//
// Escaped metacharacters are literals (`a\.b` matches "a.b"). Any other
// syntax, an empty alternative or the case-insensitive option makes Compile
// fail with ErrNotLiteral. The multi-line and dot-all options have no effect
// on literals and are accepted.
package literal

import (
	"errors"
	"fmt"
	"iter"
	"regexp/syntax"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/regolith/engine"
	"github.com/coregx/regolith/internal/expand"
)

// Name is the registry name of the engine.
const Name = "literal"

// ErrNotLiteral is returned by Compile for patterns the engine cannot serve.
var ErrNotLiteral = errors.New("not a literal alternation")

func init() {
	engine.Register(Engine{})
}

// Engine compiles literal alternations into Aho-Corasick automata.
type Engine struct{}

// Name implements engine.Engine.
func (Engine) Name() string { return Name }

// Compile implements engine.Engine.
func (Engine) Compile(pattern string, opts engine.Options) (engine.Pattern, error) {
	if opts.CaseInsensitive {
		return nil, fmt.Errorf("%w: case-insensitive matching is not supported", ErrNotLiteral)
	}
	lits, err := literals(pattern)
	if err != nil {
		return nil, err
	}

	builder := ahocorasick.NewBuilder().SetMatchKind(ahocorasick.LeftmostFirst)
	for _, lit := range lits {
		builder.AddPattern([]byte(lit))
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &Pattern{auto: auto}, nil
}

// literals splits pattern on unescaped '|' and decodes every alternative,
// which must parse to a plain literal.
func literals(pattern string) ([]string, error) {
	var pieces []string
	start := 0
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '\\':
			i++
		case '|':
			pieces = append(pieces, pattern[start:i])
			start = i + 1
		}
	}
	pieces = append(pieces, pattern[start:])

	lits := make([]string, 0, len(pieces))
	for _, piece := range pieces {
		re, err := syntax.Parse(piece, syntax.Perl)
		if err != nil {
			return nil, err
		}
		if re.Op != syntax.OpLiteral || re.Flags&syntax.FoldCase != 0 {
			return nil, fmt.Errorf("%w: %#q", ErrNotLiteral, piece)
		}
		lits = append(lits, string(re.Rune))
	}
	return lits, nil
}

// Pattern is a compiled literal alternation.
type Pattern struct {
	auto *ahocorasick.Automaton
}

// find returns the leftmost match at or after at. Among alternatives that
// start at the same position, the first one in pattern order wins, as it
// does in a regex alternation.
func (p *Pattern) find(haystack []byte, at int) (start, end int, ok bool) {
	m := p.auto.Find(haystack, at)
	if m == nil {
		return 0, 0, false
	}
	return m.Start, m.End, true
}

func (p *Pattern) IsMatch(text string) bool {
	return p.auto.IsMatch([]byte(text))
}

func (p *Pattern) FindFirst(text string) (engine.Match, bool) {
	start, end, ok := p.find([]byte(text), 0)
	if !ok {
		return engine.Match{}, false
	}
	return engine.Match{Start: start, End: end, Text: text[start:end]}, true
}

func (p *Pattern) FindAll(text string) iter.Seq[engine.Match] {
	return func(yield func(engine.Match) bool) {
		haystack := []byte(text)
		at := 0
		for at < len(haystack) {
			start, end, ok := p.find(haystack, at)
			if !ok {
				return
			}
			if !yield(engine.Match{Start: start, End: end, Text: text[start:end]}) {
				return
			}
			// Alternatives are never empty, so end > start.
			at = end
		}
	}
}

func (p *Pattern) Captures(text string) ([]engine.Group, bool) {
	m, ok := p.FindFirst(text)
	if !ok {
		return nil, false
	}
	return []engine.Group{{Text: m.Text, Matched: true}}, true
}

func (p *Pattern) ReplaceFirst(text, repl string) string {
	m, ok := p.FindFirst(text)
	if !ok {
		return text
	}
	return expand.Replace(text, repl, nil, [][]int{{m.Start, m.End}})
}

func (p *Pattern) ReplaceAll(text, repl string) string {
	return expand.Replace(text, repl, nil, p.locations(text))
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
