package regolith

import (
	"fmt"

	"github.com/coregx/regolith/engine"
	// The default engine is always available.
	_ "github.com/coregx/regolith/engine/stdlib"
)

// DefaultEngine is the name of the engine used when a Config names none.
const DefaultEngine = "stdlib"

// Config controls how CompileWithConfig builds a RegExp.
type Config struct {
	// Engine compiles the pattern. When nil, the engine registered under
	// EngineName is used.
	Engine engine.Engine

	// EngineName selects a registered engine when Engine is nil.
	// Empty means DefaultEngine.
	EngineName string

	// StrictFlags rejects unrecognized and repeated flag characters
	// instead of ignoring them.
	StrictFlags bool
}

// DefaultConfig returns the configuration used by Compile.
//
// Example:
//
//	config := regolith.DefaultConfig()
//	config.EngineName = "stdlib"
//	re, err := regolith.CompileWithConfig(`\d+`, "g", config)
func DefaultConfig() Config {
	return Config{EngineName: DefaultEngine}
}

// resolveEngine returns the engine the configuration selects.
func (c Config) resolveEngine() (engine.Engine, error) {
	if c.Engine != nil {
		return c.Engine, nil
	}
	name := c.EngineName
	if name == "" {
		name = DefaultEngine
	}
	e, ok := engine.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, name)
	}
	return e, nil
}

// Engines returns the names of all registered engines.
func Engines() []string {
	return engine.Names()
}
