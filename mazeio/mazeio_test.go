package mazeio_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/gridgraph"
	"github.com/katalvlaran/mazepath/mazeio"
	"github.com/katalvlaran/mazepath/statespace"
)

const turnMaze = `#####
###E#
###.#
#S..#
#####
`

func pos(r, c int) gridgraph.Position { return gridgraph.Position{Row: r, Col: c} }

func TestParse_Basic(t *testing.T) {
	g, err := mazeio.ParseString(turnMaze)
	require.NoError(t, err)

	assert.Equal(t, 5, g.Rows())
	assert.Equal(t, 5, g.Cols())
	assert.Equal(t, pos(3, 1), g.Start())
	assert.Equal(t, pos(1, 3), g.End())
	assert.True(t, g.IsWall(pos(0, 0)))
	assert.False(t, g.IsWall(pos(3, 2)))
	assert.Equal(t, 5, g.FloorCount())
}

func TestParse_LineEndings(t *testing.T) {
	crlf := strings.ReplaceAll(turnMaze, "\n", "\r\n")
	g1, err := mazeio.ParseString(crlf)
	require.NoError(t, err)

	noTrailer := strings.TrimSuffix(turnMaze, "\n")
	g2, err := mazeio.ParseString(noTrailer)
	require.NoError(t, err)

	blankTail := turnMaze + "\n\n"
	g3, err := mazeio.ParseString(blankTail)
	require.NoError(t, err)

	assert.Equal(t, g1.Fingerprint(), g2.Fingerprint())
	assert.Equal(t, g1.Fingerprint(), g3.Fingerprint())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		text string
		want error
	}{
		{"empty", "", gridgraph.ErrEmptyGrid},
		{"only blank lines", "\n\n", gridgraph.ErrEmptyGrid},
		{"no start", "#.E#\n", mazeio.ErrMissingStart},
		{"no end", "#S.#\n", mazeio.ErrMissingEnd},
		{"two starts", "S.S\n..E\n", mazeio.ErrDuplicateStart},
		{"two ends", "SE.\n..E\n", mazeio.ErrDuplicateEnd},
		{"unknown rune", "S.x\n..E\n", mazeio.ErrUnknownSymbol},
		{"ragged", "S..\n.E\n", gridgraph.ErrNonRectangular},
		{"blank row inside", "S..\n\n..E\n", gridgraph.ErrNonRectangular},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := mazeio.ParseString(tc.text)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			assert.True(t, mazeio.IsInputError(err), "IsInputError(%v)", err)
		})
	}
}

func TestParse_SyntaxErrorLocation(t *testing.T) {
	_, err := mazeio.ParseString("S..\n.?E\n")
	var syn *mazeio.SyntaxError
	require.True(t, errors.As(err, &syn))
	assert.Equal(t, 2, syn.Line)
	assert.Equal(t, 2, syn.Col)
	assert.Equal(t, '?', syn.Rune)
	assert.Contains(t, err.Error(), "line 2, col 2")
}

func TestParse_CustomSymbols(t *testing.T) {
	sym := mazeio.Symbols{Wall: 'X', Start: 'A', End: 'B', Floor: ' '}
	// A space is rejected as a glyph.
	_, err := mazeio.ParseString("XAB", mazeio.WithSymbols(sym))
	assert.ErrorIs(t, err, mazeio.ErrBadSymbols)
	assert.False(t, mazeio.IsInputError(err))

	sym.Floor = '_'
	g, err := mazeio.ParseString("XXXXX\nXA_BX\nXXXXX\n", mazeio.WithSymbols(sym))
	require.NoError(t, err)
	assert.Equal(t, pos(1, 1), g.Start())
	assert.Equal(t, pos(1, 3), g.End())

	out, err := mazeio.RenderString(g, mazeio.WithSymbols(sym))
	require.NoError(t, err)
	assert.Equal(t, "XXXXX\nXA_BX\nXXXXX\n", out)
}

func TestSymbols_Validate(t *testing.T) {
	assert.NoError(t, mazeio.DefaultSymbols().Validate())
	dup := mazeio.DefaultSymbols()
	dup.End = dup.Start
	assert.ErrorIs(t, dup.Validate(), mazeio.ErrBadSymbols)

	// Rendering glyphs would make tiles or arrows indistinguishable.
	for _, r := range []rune{mazeio.TileGlyph, '>', 'v', '<', '^'} {
		sym := mazeio.DefaultSymbols()
		sym.Floor = r
		assert.ErrorIs(t, sym.Validate(), mazeio.ErrBadSymbols, "floor %q", r)
	}
}

func TestParse_OverlongLine(t *testing.T) {
	_, err := mazeio.ParseString("S" + strings.Repeat(".", 1<<20) + "E\n")
	require.Error(t, err)
	assert.True(t, mazeio.IsInputError(err), "IsInputError(%v)", err)
}

func TestRender_RoundTrip(t *testing.T) {
	g, err := mazeio.ParseString(turnMaze)
	require.NoError(t, err)

	out, err := mazeio.RenderString(g)
	require.NoError(t, err)
	assert.Equal(t, turnMaze, out)
	assert.Equal(t, g.String(), out)

	back, err := mazeio.ParseString(out)
	require.NoError(t, err)
	assert.Equal(t, g.Fingerprint(), back.Fingerprint())
}

func TestRender_Tiles(t *testing.T) {
	g, err := mazeio.ParseString(turnMaze)
	require.NoError(t, err)

	tiles := []gridgraph.Position{pos(3, 1), pos(3, 2), pos(3, 3), pos(2, 3), pos(1, 3)}
	out, err := mazeio.RenderString(g, mazeio.WithTiles(tiles))
	require.NoError(t, err)
	assert.Equal(t, "#####\n###E#\n###O#\n#SOO#\n#####\n", out)
}

func TestRender_Path(t *testing.T) {
	g, err := mazeio.ParseString(turnMaze)
	require.NoError(t, err)

	path := []statespace.State{
		{Pos: pos(3, 1), Heading: statespace.East},
		{Pos: pos(3, 2), Heading: statespace.East},
		{Pos: pos(3, 3), Heading: statespace.East},
		{Pos: pos(2, 3), Heading: statespace.North},
		{Pos: pos(1, 3), Heading: statespace.North},
	}
	out, err := mazeio.RenderString(g, mazeio.WithPath(path))
	require.NoError(t, err)
	assert.Equal(t, "#####\n###E#\n###^#\n#S>>#\n#####\n", out)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRender_WriterError(t *testing.T) {
	g, err := mazeio.ParseString(turnMaze)
	require.NoError(t, err)
	assert.Error(t, mazeio.Render(failingWriter{}, g))
}
