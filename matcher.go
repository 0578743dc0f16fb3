package regolith

import "sync/atomic"

// Matcher holds a pattern that can be replaced after construction.
//
// Compile reports failure as false instead of an error, and DoMatch on a
// Matcher that has nothing compiled yet returns false. Each successful
// Compile installs a new immutable RegExp, so a Matcher may be recompiled
// while other goroutines are matching with it; they see either the old or
// the new pattern.
type Matcher struct {
	config  Config
	current atomic.Pointer[RegExp]
	lastErr atomic.Pointer[compileResult]
}

type compileResult struct {
	err error
}

// NewMatcher returns an empty Matcher that compiles with config.
func NewMatcher(config Config) *Matcher {
	return &Matcher{config: config}
}

// Compile compiles pattern with flags and, on success, makes it the current
// pattern. On failure the current pattern is left unchanged, false is
// returned and the error is available from Err.
func (m *Matcher) Compile(pattern, flags string) bool {
	re, err := CompileWithConfig(pattern, flags, m.config)
	m.lastErr.Store(&compileResult{err: err})
	if err != nil {
		return false
	}
	m.current.Store(re)
	return true
}

// DoMatch reports whether input contains a match of the current pattern.
// It returns false if no pattern has been compiled.
func (m *Matcher) DoMatch(input string) bool {
	re := m.current.Load()
	if re == nil {
		return false
	}
	return re.Test(input)
}

// Current returns the current pattern, or nil if none has been compiled.
func (m *Matcher) Current() *RegExp {
	return m.current.Load()
}

// Err returns the error of the most recent Compile, or nil if it succeeded
// or Compile was never called.
func (m *Matcher) Err() error {
	if r := m.lastErr.Load(); r != nil {
		return r.err
	}
	return nil
}
