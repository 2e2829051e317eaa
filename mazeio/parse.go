// Package mazeio reads and writes the character-grid maze format:
// one line per row, '#' for walls, '.' for floor, 'S' for the start cell
// and 'E' for the end cell. The alphabet can be swapped with WithSymbols.
//
// Parse is strict. Every rune must belong to the alphabet, the start and
// end must each appear exactly once, and all rows must have equal length.
// Trailing blank lines and '\r' line endings are tolerated.
package mazeio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/mazepath/gridgraph"
)

// maxLineBytes bounds a single row of input.
const maxLineBytes = 1 << 20

// Parse reads a maze from r.
//
// Errors:
//   - *SyntaxError wrapping ErrUnknownSymbol, ErrDuplicateStart or ErrDuplicateEnd.
//   - ErrMissingStart / ErrMissingEnd.
//   - gridgraph.ErrEmptyGrid / gridgraph.ErrNonRectangular for shape problems.
//   - ErrBadSymbols for an invalid WithSymbols alphabet.
func Parse(r io.Reader, opts ...Option) (*gridgraph.Grid, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	sym := o.symbols

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)

	var (
		walls      [][]bool
		start, end gridgraph.Position
		haveStart  bool
		haveEnd    bool
	)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSuffix(sc.Text(), "\r")
		row := make([]bool, 0, len(text))
		col := 0
		for _, ch := range text {
			col++
			here := gridgraph.Position{Row: line - 1, Col: col - 1}
			switch ch {
			case sym.Wall:
				row = append(row, true)
			case sym.Floor:
				row = append(row, false)
			case sym.Start:
				if haveStart {
					return nil, &SyntaxError{Line: line, Col: col, Rune: ch, Err: ErrDuplicateStart}
				}
				start, haveStart = here, true
				row = append(row, false)
			case sym.End:
				if haveEnd {
					return nil, &SyntaxError{Line: line, Col: col, Rune: ch, Err: ErrDuplicateEnd}
				}
				end, haveEnd = here, true
				row = append(row, false)
			default:
				return nil, &SyntaxError{Line: line, Col: col, Rune: ch, Err: ErrUnknownSymbol}
			}
		}
		walls = append(walls, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("mazeio: read: %w", err)
	}

	// Drop trailing blank lines.
	for len(walls) > 0 && len(walls[len(walls)-1]) == 0 {
		walls = walls[:len(walls)-1]
	}
	if len(walls) == 0 {
		return nil, gridgraph.ErrEmptyGrid
	}
	if !haveStart {
		return nil, ErrMissingStart
	}
	if !haveEnd {
		return nil, ErrMissingEnd
	}

	return gridgraph.NewGrid(walls, start, end)
}

// ParseString is Parse over a string.
func ParseString(s string, opts ...Option) (*gridgraph.Grid, error) {
	return Parse(strings.NewReader(s), opts...)
}

// IsInputError reports whether err describes malformed maze text, as
// opposed to an I/O failure or a bad option. A row longer than the line
// limit counts as malformed text.
func IsInputError(err error) bool {
	var syn *SyntaxError
	switch {
	case errors.As(err, &syn),
		errors.Is(err, bufio.ErrTooLong),
		errors.Is(err, ErrMissingStart),
		errors.Is(err, ErrMissingEnd),
		errors.Is(err, gridgraph.ErrEmptyGrid),
		errors.Is(err, gridgraph.ErrNonRectangular),
		errors.Is(err, gridgraph.ErrOutOfBounds),
		errors.Is(err, gridgraph.ErrStartIsWall),
		errors.Is(err, gridgraph.ErrEndIsWall):
		return true
	}

	return false
}
