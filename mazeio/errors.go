package mazeio

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingStart indicates the text has no start symbol.
	ErrMissingStart = errors.New("mazeio: maze has no start cell")
	// ErrMissingEnd indicates the text has no end symbol.
	ErrMissingEnd = errors.New("mazeio: maze has no end cell")
	// ErrDuplicateStart indicates a second start symbol.
	ErrDuplicateStart = errors.New("mazeio: maze has more than one start cell")
	// ErrDuplicateEnd indicates a second end symbol.
	ErrDuplicateEnd = errors.New("mazeio: maze has more than one end cell")
	// ErrUnknownSymbol indicates a rune outside the configured alphabet.
	ErrUnknownSymbol = errors.New("mazeio: unknown symbol")
	// ErrBadSymbols indicates an alphabet with repeated or unprintable runes.
	ErrBadSymbols = errors.New("mazeio: invalid symbol set")
)

// SyntaxError locates a parse failure in the input text.
// Line and Col are 1-based; Col counts runes, not bytes.
type SyntaxError struct {
	Line int
	Col  int
	Rune rune
	Err  error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d, col %d (%q): %v", e.Line, e.Col, e.Rune, e.Err)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *SyntaxError) Unwrap() error { return e.Err }
