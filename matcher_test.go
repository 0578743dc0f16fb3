package regolith

import (
	"errors"
	"sync"
	"testing"
)

func TestMatcherBeforeCompile(t *testing.T) {
	m := NewMatcher(DefaultConfig())
	if m.DoMatch("anything") {
		t.Error("DoMatch before Compile = true, want false")
	}
	if m.Current() != nil {
		t.Error("Current() before Compile is not nil")
	}
	if m.Err() != nil {
		t.Errorf("Err() before Compile = %v, want nil", m.Err())
	}
}

func TestMatcherCompile(t *testing.T) {
	m := NewMatcher(DefaultConfig())

	if !m.Compile(`foo`, "i") {
		t.Fatalf("Compile(foo) = false: %v", m.Err())
	}
	if !m.DoMatch("FOO") {
		t.Error("DoMatch(FOO) = false, want true")
	}

	first := m.Current()
	if m.Compile(`(`, "") {
		t.Fatal("Compile(`(`) = true, want false")
	}
	if !errors.Is(m.Err(), ErrInvalidPattern) {
		t.Errorf("Err() = %v, want ErrInvalidPattern", m.Err())
	}
	if m.Current() != first {
		t.Error("failed Compile replaced the current pattern")
	}
	if !m.DoMatch("foo") {
		t.Error("DoMatch after failed Compile = false, want previous pattern to match")
	}

	if !m.Compile(`bar`, "") {
		t.Fatalf("Compile(bar) = false: %v", m.Err())
	}
	if m.Err() != nil {
		t.Errorf("Err() after successful Compile = %v", m.Err())
	}
	if m.DoMatch("foo") || !m.DoMatch("bar") {
		t.Error("Compile(bar) did not replace the pattern")
	}
	if first.Source() != "foo" || !first.Test("FOO") {
		t.Error("recompiling modified the previous RegExp")
	}
}

func TestMatcherConcurrentCompile(t *testing.T) {
	m := NewMatcher(DefaultConfig())
	m.Compile(`a`, "")

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.Compile(`a|b`, "")
				m.Compile(`a`, "")
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if !m.DoMatch("a") {
					t.Error("DoMatch(a) = false during recompilation")
					return
				}
			}
		}()
	}
	wg.Wait()
}
