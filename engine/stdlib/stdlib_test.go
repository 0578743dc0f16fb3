package stdlib_test

import (
	"reflect"
	"regexp"
	"testing"

	"github.com/coregx/regolith/engine"
	"github.com/coregx/regolith/engine/enginetest"
	stdlibengine "github.com/coregx/regolith/engine/stdlib"
)

func TestConformance(t *testing.T) {
	enginetest.Suite{Engine: stdlibengine.Engine{}}.Run(t)
}

func TestRegistered(t *testing.T) {
	e, ok := engine.Lookup(stdlibengine.Name)
	if !ok {
		t.Fatalf("engine %q is not registered", stdlibengine.Name)
	}
	if e.Name() != stdlibengine.Name {
		t.Errorf("Name() = %q, want %q", e.Name(), stdlibengine.Name)
	}
}

func TestMatchesRegexp(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		repl    string
	}{
		{`(\w+)@(\w+)\.com`, "a@b.com, c@d.com", "$2 at $1"},
		{`(?P<y>\d{4})-(?P<m>\d{2})`, "2024-01 and 2025-12", "${m}/${y}"},
		{`x*`, "abc", "-"},
		{`a|b`, "abcab", "[$0]"},
	}

	for _, tt := range tests {
		re := regexp.MustCompile(tt.pattern)
		p, err := stdlibengine.Engine{}.Compile(tt.pattern, engine.Options{})
		if err != nil {
			t.Fatalf("Compile(%q) failed: %v", tt.pattern, err)
		}

		if got, want := p.ReplaceAll(tt.input, tt.repl), re.ReplaceAllString(tt.input, tt.repl); got != want {
			t.Errorf("ReplaceAll(%q, %q, %q) = %q, want %q", tt.pattern, tt.input, tt.repl, got, want)
		}
		if got, want := p.Split(tt.input), re.Split(tt.input, -1); !reflect.DeepEqual(got, want) {
			t.Errorf("Split(%q, %q) = %q, want %q", tt.pattern, tt.input, got, want)
		}
	}
}
