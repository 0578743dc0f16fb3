// Package stdlib registers the Go standard library regexp package as the
// "stdlib" engine. Syntax is RE2; replacement templates use regexp.Expand.
package stdlib

import (
	"regexp"

	"github.com/coregx/regolith/engine"
	"github.com/coregx/regolith/internal/goregexp"
)

// Name is the registry name of the engine.
const Name = "stdlib"

func init() {
	engine.Register(Engine{})
}

// Engine compiles patterns with regexp.Compile.
type Engine struct{}

// Name implements engine.Engine.
func (Engine) Name() string { return Name }

// Compile implements engine.Engine. Options are applied as a leading inline
// flag group.
func (Engine) Compile(pattern string, opts engine.Options) (engine.Pattern, error) {
	return goregexp.Compile(regexp.Compile, pattern, opts)
}
