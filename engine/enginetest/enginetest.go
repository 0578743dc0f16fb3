// Package enginetest provides a conformance suite for engine.Engine
// implementations. Every engine package runs it from its tests:
//
//	func TestConformance(t *testing.T) {
//	    enginetest.Suite{Engine: Engine{}}.Run(t)
//	}
package enginetest

import (
	"reflect"
	"testing"

	"github.com/coregx/regolith/engine"
)

// Suite describes the engine under test.
type Suite struct {
	Engine engine.Engine

	// LiteralOnly skips the cases that need regex syntax or the
	// case-insensitive option.
	LiteralOnly bool

	// SkipCaseInsensitive skips the cases that use the case-insensitive
	// option, for engines whose case folding is known to be broken.
	SkipCaseInsensitive bool
}

// Run runs every applicable case as a subtest of t.
func (s Suite) Run(t *testing.T) {
	t.Helper()
	t.Run("IsMatch", s.testIsMatch)
	t.Run("FindFirst", s.testFindFirst)
	t.Run("FindAll", s.testFindAll)
	t.Run("FindAllRestartable", s.testFindAllRestartable)
	t.Run("ReplaceLiteral", s.testReplaceLiteral)
	t.Run("Split", s.testSplit)
	t.Run("InvalidPattern", s.testInvalidPattern)
	if s.LiteralOnly {
		return
	}
	t.Run("Captures", s.testCaptures)
	t.Run("ReplaceGroups", s.testReplaceGroups)
	t.Run("Options", s.testOptions)
}

func (s Suite) compile(t *testing.T, pattern string, opts engine.Options) engine.Pattern {
	t.Helper()
	p, err := s.Engine.Compile(pattern, opts)
	if err != nil {
		t.Fatalf("%s: Compile(%q, %+v) failed: %v", s.Engine.Name(), pattern, opts, err)
	}
	return p
}

func (s Suite) testIsMatch(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		want    bool
	}{
		{`foo`, "foobar", true},
		{`foo`, "barbaz", false},
		{`foo|baz`, "barbaz", true},
		{`foo`, "", false},
	}

	for _, tt := range tests {
		p := s.compile(t, tt.pattern, engine.Options{})
		if got := p.IsMatch(tt.input); got != tt.want {
			t.Errorf("IsMatch(%q, %q) = %v, want %v", tt.pattern, tt.input, got, tt.want)
		}
	}
}

func (s Suite) testFindFirst(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		want    engine.Match
		ok      bool
	}{
		{`foo`, "barfoo", engine.Match{Start: 3, End: 6, Text: "foo"}, true},
		{`foo`, "éfoo", engine.Match{Start: 2, End: 5, Text: "foo"}, true},
		{`日本`, "こんにちは日本", engine.Match{Start: 15, End: 21, Text: "日本"}, true},
		{`foo|foobar`, "xfoobar", engine.Match{Start: 1, End: 4, Text: "foo"}, true},
		{`foo`, "barbaz", engine.Match{}, false},
	}

	for _, tt := range tests {
		p := s.compile(t, tt.pattern, engine.Options{})
		got, ok := p.FindFirst(tt.input)
		if ok != tt.ok || got != tt.want {
			t.Errorf("FindFirst(%q, %q) = %+v, %v, want %+v, %v",
				tt.pattern, tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func (s Suite) testFindAll(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		want    []string
	}{
		{`foo`, "foofoo", []string{"foo", "foo"}},
		{`a`, "aaa", []string{"a", "a", "a"}},
		{`ab|cd`, "xabcdab", []string{"ab", "cd", "ab"}},
		{`foo`, "bar", nil},
	}

	for _, tt := range tests {
		p := s.compile(t, tt.pattern, engine.Options{})
		var got []string
		for m := range p.FindAll(tt.input) {
			if tt.input[m.Start:m.End] != m.Text {
				t.Errorf("FindAll(%q, %q): match %+v text does not match offsets", tt.pattern, tt.input, m)
			}
			got = append(got, m.Text)
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("FindAll(%q, %q) = %q, want %q", tt.pattern, tt.input, got, tt.want)
		}
	}
}

func (s Suite) testFindAllRestartable(t *testing.T) {
	p := s.compile(t, `ab`, engine.Options{})
	seq := p.FindAll("ab ab ab")

	count := func() int {
		n := 0
		for range seq {
			n++
		}
		return n
	}
	if first, second := count(), count(); first != 3 || second != 3 {
		t.Errorf("FindAll iterated twice = %d, %d matches, want 3, 3", first, second)
	}

	// Stopping early must not panic.
	for range seq {
		break
	}
}

func (s Suite) testReplaceLiteral(t *testing.T) {
	p := s.compile(t, `foo`, engine.Options{})
	if got := p.ReplaceFirst("foofoo", "bar"); got != "barfoo" {
		t.Errorf("ReplaceFirst = %q, want %q", got, "barfoo")
	}
	if got := p.ReplaceAll("foofoo", "bar"); got != "barbar" {
		t.Errorf("ReplaceAll = %q, want %q", got, "barbar")
	}
	if got := p.ReplaceAll("nothing", "bar"); got != "nothing" {
		t.Errorf("ReplaceAll without match = %q, want %q", got, "nothing")
	}
}

func (s Suite) testSplit(t *testing.T) {
	p := s.compile(t, `,`, engine.Options{})
	tests := []struct {
		input string
		n     int
		want  []string
	}{
		{"a,b,c", 0, []string{"a", "b", "c"}},
		{"a,b,c", 1, []string{"a,b,c"}},
		{"a,b,c", 2, []string{"a", "b,c"}},
		{"a,b,c", 10, []string{"a", "b", "c"}},
		{"abc", 0, []string{"abc"}},
		{",a,", 0, []string{"", "a", ""}},
		{"", 0, []string{""}},
	}

	for _, tt := range tests {
		var got []string
		if tt.n == 0 {
			got = p.Split(tt.input)
		} else {
			got = p.SplitN(tt.input, tt.n)
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Split(%q, %d) = %q, want %q", tt.input, tt.n, got, tt.want)
		}
	}
}

func (s Suite) testInvalidPattern(t *testing.T) {
	for _, pattern := range []string{`(`, `[a`} {
		if _, err := s.Engine.Compile(pattern, engine.Options{}); err == nil {
			t.Errorf("Compile(%q) succeeded, want error", pattern)
		}
	}
}

func (s Suite) testCaptures(t *testing.T) {
	p := s.compile(t, `(foo)(bar)?`, engine.Options{})
	tests := []struct {
		input string
		want  []engine.Group
		ok    bool
	}{
		{"foobar", []engine.Group{{Text: "foobar", Matched: true}, {Text: "foo", Matched: true}, {Text: "bar", Matched: true}}, true},
		{"foo", []engine.Group{{Text: "foo", Matched: true}, {Text: "foo", Matched: true}, {Text: "", Matched: false}}, true},
		{"baz", nil, false},
	}

	for _, tt := range tests {
		got, ok := p.Captures(tt.input)
		if ok != tt.ok || !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Captures(%q) = %+v, %v, want %+v, %v", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func (s Suite) testReplaceGroups(t *testing.T) {
	p := s.compile(t, `(\w+)@(\w+)`, engine.Options{})
	if got := p.ReplaceFirst("a@b c@d", "$2@$1"); got != "b@a c@d" {
		t.Errorf("ReplaceFirst = %q, want %q", got, "b@a c@d")
	}
	if got := p.ReplaceAll("a@b c@d", "$2@$1"); got != "b@a d@c" {
		t.Errorf("ReplaceAll = %q, want %q", got, "b@a d@c")
	}
}

func (s Suite) testOptions(t *testing.T) {
	tests := []struct {
		pattern string
		opts    engine.Options
		input   string
		want    bool
	}{
		{`foo`, engine.Options{}, "FOO", false},
		{`foo`, engine.Options{CaseInsensitive: true}, "FOO", true},
		{`^b`, engine.Options{}, "a\nb", false},
		{`^b`, engine.Options{MultiLine: true}, "a\nb", true},
		{`a$`, engine.Options{MultiLine: true}, "a\nb", true},
		{`a.b`, engine.Options{}, "a\nb", false},
		{`a.b`, engine.Options{DotAll: true}, "a\nb", true},
		{`^A.B$`, engine.Options{CaseInsensitive: true, MultiLine: true, DotAll: true}, "x\na\nb\ny", true},
	}

	for _, tt := range tests {
		if tt.opts.CaseInsensitive && s.SkipCaseInsensitive {
			t.Logf("skipping %q with %+v: case folding is not supported", tt.pattern, tt.opts)
			continue
		}
		p := s.compile(t, tt.pattern, tt.opts)
		if got := p.IsMatch(tt.input); got != tt.want {
			t.Errorf("IsMatch(%q, %+v, %q) = %v, want %v", tt.pattern, tt.opts, tt.input, got, tt.want)
		}
	}
}
