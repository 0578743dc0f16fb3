package regolith

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPattern is matched by errors returned when a pattern fails
	// to compile.
	ErrInvalidPattern = errors.New("invalid regex pattern")

	// ErrInvalidFlags is matched by errors returned for a flag string
	// rejected in strict mode.
	ErrInvalidFlags = errors.New("invalid regex flags")

	// ErrUnknownEngine is returned when no engine is registered under the
	// configured name.
	ErrUnknownEngine = errors.New("unknown regex engine")
)

// PatternError reports a pattern the engine failed to compile.
// Err is the engine's own error, unchanged, for the pattern as written.
type PatternError struct {
	Pattern string
	Flags   string
	Engine  string
	Err     error
}

func (e *PatternError) Error() string {
	return "invalid regex pattern: " + e.Err.Error()
}

// Unwrap makes both ErrInvalidPattern and the engine error visible to
// errors.Is and errors.As.
func (e *PatternError) Unwrap() []error {
	return []error{ErrInvalidPattern, e.Err}
}

// FlagError reports a flag string rejected in strict mode.
type FlagError struct {
	Flags     string
	Char      rune
	Duplicate bool
}

func (e *FlagError) Error() string {
	if e.Duplicate {
		return fmt.Sprintf("invalid regex flags %q: duplicate flag %q", e.Flags, e.Char)
	}
	return fmt.Sprintf("invalid regex flags %q: unknown flag %q", e.Flags, e.Char)
}

func (e *FlagError) Unwrap() error {
	return ErrInvalidFlags
}
