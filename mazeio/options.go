package mazeio

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/katalvlaran/mazepath/gridgraph"
	"github.com/katalvlaran/mazepath/statespace"
)

// TileGlyph marks a cell lying on an optimal path in rendered output.
const TileGlyph = 'O'

// Symbols is the alphabet of the maze text format.
type Symbols struct {
	Wall  rune
	Start rune
	End   rune
	Floor rune
}

// DefaultSymbols returns '#', 'S', 'E' and '.'.
func DefaultSymbols() Symbols {
	return Symbols{Wall: '#', Start: 'S', End: 'E', Floor: '.'}
}

// renderGlyphs are drawn by Render and may not appear in an alphabet.
const renderGlyphs = string(TileGlyph) + ">v<^"

// Validate reports ErrBadSymbols when two roles share a rune, a rune is not
// printable, or a rune collides with the rendering glyphs (TileGlyph and
// the path arrows).
func (s Symbols) Validate() error {
	runes := []rune{s.Wall, s.Start, s.End, s.Floor}
	seen := make(map[rune]bool, len(runes))
	for _, r := range runes {
		if !unicode.IsPrint(r) || unicode.IsSpace(r) {
			return fmt.Errorf("%w: %q is not a printable glyph", ErrBadSymbols, r)
		}
		if strings.ContainsRune(renderGlyphs, r) {
			return fmt.Errorf("%w: %q is reserved for rendering", ErrBadSymbols, r)
		}
		if seen[r] {
			return fmt.Errorf("%w: %q used twice", ErrBadSymbols, r)
		}
		seen[r] = true
	}

	return nil
}

// options configures both Parse and Render.
type options struct {
	symbols Symbols
	tiles   []gridgraph.Position
	path    []statespace.State
	err     error
}

// Option configures parsing and rendering via functional arguments.
// An invalid Option is recorded and returned by the call it is passed to.
type Option func(*options)

func defaultOptions() options {
	return options{symbols: DefaultSymbols()}
}

func buildOptions(opts []Option) (options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// WithSymbols replaces the default alphabet.
func WithSymbols(s Symbols) Option {
	return func(o *options) {
		if err := s.Validate(); err != nil {
			o.err = err
			return
		}
		o.symbols = s
	}
}

// WithTiles marks the given floor cells with TileGlyph when rendering.
// Start and end keep their own symbols.
func WithTiles(cells []gridgraph.Position) Option {
	return func(o *options) {
		o.tiles = cells
	}
}

// WithPath draws one route when rendering: every intermediate cell shows
// the heading it was entered with (>, v, <, ^). Drawn over WithTiles.
func WithPath(states []statespace.State) Option {
	return func(o *options) {
		o.path = states
	}
}
