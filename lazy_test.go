package regolith

import (
	"reflect"
	"strings"
	"testing"
)

func TestLazy(t *testing.T) {
	l := NewLazy(`(\d+)-(\d+)`, "g")

	if l.Source() != `(\d+)-(\d+)` || l.Flags() != "g" {
		t.Errorf("Source/Flags = %q, %q", l.Source(), l.Flags())
	}
	if !l.Test("1-2") {
		t.Error("Test = false, want true")
	}
	if got := l.Exec("x 1-2"); !reflect.DeepEqual(got, []string{"1-2", "1", "2"}) {
		t.Errorf("Exec = %q", got)
	}
	if got := l.Match("1-2 3-4"); !reflect.DeepEqual(got, []string{"1-2", "3-4"}) {
		t.Errorf("Match = %q", got)
	}
	if got := l.Replace("1-2 3-4", "$2-$1"); got != "2-1 4-3" {
		t.Errorf("Replace = %q", got)
	}
	if got := l.Search("ab 1-2"); got != 3 {
		t.Errorf("Search = %d, want 3", got)
	}
	if got := l.Split("a1-2b3-4c", 2); !reflect.DeepEqual(got, []string{"a", "b3-4c"}) {
		t.Errorf("Split = %q", got)
	}
	if l.RegExp() != l.RegExp() {
		t.Error("RegExp() compiled twice")
	}
}

func TestLazyInvalidPanicsInTest(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewLazy with an invalid pattern did not panic under go test")
		}
	}()
	NewLazy(`(`, "")
}

func TestLazyInvalidPanicsOnEveryUse(t *testing.T) {
	l := &Lazy{pattern: `(`, flags: "g"}

	for i := range 2 {
		func() {
			defer func() {
				msg, ok := recover().(string)
				if !ok || !strings.HasPrefix(msg, "regolith: Compile(`(`, `g`): invalid regex pattern: ") {
					t.Errorf("use %d panicked with %q, want the compile error", i+1, msg)
				}
			}()
			l.Test("x")
		}()
	}
}
