package expand

import (
	"reflect"
	"regexp"
	"testing"
)

func TestAppendMatchesStdlib(t *testing.T) {
	tests := []struct {
		pattern  string
		input    string
		template string
	}{
		{`(\w+)@(\w+)\.(\w+)`, "user@example.com", "$1 at $2 dot $3"},
		{`(?P<first>\w+) (?P<last>\w+)`, "John Smith", "$last, $first"},
		{`(?P<first>\w+) (?P<last>\w+)`, "John Smith", "${last}x ${first}"},
		{`(a)(b)?`, "a", "[$1][$2]"},
		{`(\d+)`, "42", "$$1 costs $1"},
		{`(\d+)`, "42", "$1x"},
		{`(\d+)`, "42", "${1}x"},
		{`(\d+)`, "42", "$"},
		{`(\d+)`, "42", "${1"},
		{`(\d+)`, "42", "$9"},
		{`(\d+)`, "42", "$01"},
	}

	for _, tt := range tests {
		re := regexp.MustCompile(tt.pattern)
		loc := re.FindStringSubmatchIndex(tt.input)
		want := string(re.ExpandString(nil, tt.template, tt.input, loc))
		got := string(Append(nil, tt.template, tt.input, loc, re.SubexpNames()))
		if got != want {
			t.Errorf("Append(%q, %q) = %q, want %q", tt.pattern, tt.template, got, want)
		}
	}
}

func TestReplace(t *testing.T) {
	re := regexp.MustCompile(`(\d)`)
	src := "a1b2c3"
	locs := re.FindAllStringSubmatchIndex(src, -1)

	if got := Replace(src, "<$1>", re.SubexpNames(), locs); got != "a<1>b<2>c<3>" {
		t.Errorf("Replace all = %q", got)
	}
	if got := Replace(src, "<$1>", re.SubexpNames(), locs[:1]); got != "a<1>b2c3" {
		t.Errorf("Replace first = %q", got)
	}
	if got := Replace(src, "x", nil, nil); got != src {
		t.Errorf("Replace without matches = %q, want %q", got, src)
	}
}

func TestSplitMatchesStdlib(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		n       int
	}{
		{`,`, "a,b,c", -1},
		{`,`, "a,b,c", 2},
		{`,`, "a,b,c", 1},
		{`,`, ",a,", -1},
		{`x*`, "abc", -1},
		{`a*`, "baaac", -1},
		{`\s+`, "  lead and trail  ", -1},
		{`z`, "abc", -1},
		{`z`, "abc", 3},
	}

	for _, tt := range tests {
		re := regexp.MustCompile(tt.pattern)
		want := re.Split(tt.input, tt.n)
		got := Split(tt.input, re.FindAllStringIndex(tt.input, -1), tt.n)
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Split(%q, %q, %d) = %q, want %q", tt.pattern, tt.input, tt.n, got, want)
		}
	}
}

func TestSplitEmptyInput(t *testing.T) {
	if got := Split("", nil, -1); !reflect.DeepEqual(got, []string{""}) {
		t.Errorf("Split(\"\") = %q, want [\"\"]", got)
	}
}
