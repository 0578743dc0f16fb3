// Package re2 registers github.com/wasilibs/go-re2 as the "re2" engine.
//
// go-re2 runs the C++ RE2 library compiled to WebAssembly, so it needs
// neither cgo nor a system library. Its syntax is the RE2 syntax shared with
// the standard library, and it is usually faster than regexp on large inputs.
package re2

import (
	"github.com/wasilibs/go-re2"

	"github.com/coregx/regolith/engine"
	"github.com/coregx/regolith/internal/goregexp"
)

// Name is the registry name of the engine.
const Name = "re2"

func init() {
	engine.Register(Engine{})
}

// Engine compiles patterns with re2.Compile.
type Engine struct{}

// Name implements engine.Engine.
func (Engine) Name() string { return Name }

// Compile implements engine.Engine.
func (Engine) Compile(pattern string, opts engine.Options) (engine.Pattern, error) {
	return goregexp.Compile(re2.Compile, pattern, opts)
}
