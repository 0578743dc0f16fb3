// Package coregex registers github.com/coregx/coregex as the "coregex" engine.
//
// coregex accepts Go regexp (RE2) syntax, so flags are applied as an inline
// flag group. Replacement templates follow regexp.Expand: $1, ${1}, $name,
// ${name} and $$.
//
// Known issue: coregex v0.10.0 does not fold case reliably. Patterns such as
// (?i)foo, (?i:foo) and even [fF][oO][oO] fail to match "foo", so the i flag
// is unreliable on this engine. It is therefore not the default
// engine; select it explicitly where its speed matters and case folding does
// not.
package coregex

import (
	"github.com/coregx/coregex"
	"github.com/coregx/coregex/meta"
	"golang.org/x/sys/cpu"

	"github.com/coregx/regolith/engine"
	"github.com/coregx/regolith/internal/goregexp"
)

// Name is the registry name of the engine.
const Name = "coregex"

func init() {
	engine.Register(New(coregex.DefaultConfig()))
}

// Engine compiles patterns with coregex.CompileWithConfig.
type Engine struct {
	config meta.Config
}

// New returns an engine compiling with config. The engine is not registered;
// hand it to regolith through Config.Engine.
//
// Example:
//
//	config := coregex.DefaultConfig()
//	config.MaxDFAStates = 100000
//	cfg := regolith.Config{Engine: coregexengine.New(config)}
//	re, err := regolith.CompileWithConfig(`(a|b|c)*`, "", cfg)
func New(config meta.Config) *Engine {
	return &Engine{config: config}
}

// Name implements engine.Engine.
func (e *Engine) Name() string { return Name }

// Compile implements engine.Engine.
func (e *Engine) Compile(pattern string, opts engine.Options) (engine.Pattern, error) {
	return goregexp.Compile(func(p string) (*coregex.Regex, error) {
		return coregex.CompileWithConfig(p, e.config)
	}, pattern, opts)
}

// Features reports the CPU features coregex's SIMD search primitives are
// able to use on this machine.
func Features() map[string]bool {
	return map[string]bool{
		"avx2":  cpu.X86.HasAVX2,
		"ssse3": cpu.X86.HasSSSE3,
		"neon":  cpu.ARM64.HasASIMD,
	}
}
