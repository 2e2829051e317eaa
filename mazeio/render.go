package mazeio

import (
	"bufio"
	"io"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/mazepath/gridgraph"
)

// Render writes g in the text format, one '\n'-terminated line per row.
// Without WithTiles or WithPath the output parses back to an equal grid.
func Render(w io.Writer, g *gridgraph.Grid, opts ...Option) error {
	o, err := buildOptions(opts)
	if err != nil {
		return err
	}
	sym := o.symbols

	tiles := mapset.New[gridgraph.Position]()
	for _, p := range o.tiles {
		tiles.Put(p)
	}
	arrows := make(map[gridgraph.Position]rune, len(o.path))
	for _, s := range o.path {
		arrows[s.Pos] = rune(s.Heading.Glyph())
	}

	bw := bufio.NewWriter(w)
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			p := gridgraph.Position{Row: r, Col: c}
			ch := sym.Floor
			switch {
			case p == g.Start():
				ch = sym.Start
			case p == g.End():
				ch = sym.End
			case g.IsWall(p):
				ch = sym.Wall
			default:
				if a, ok := arrows[p]; ok {
					ch = a
				} else if tiles.Has(p) {
					ch = TileGlyph
				}
			}
			if _, err := bw.WriteRune(ch); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// RenderString is Render into a string. Errors can only come from options.
func RenderString(g *gridgraph.Grid, opts ...Option) (string, error) {
	var sb strings.Builder
	if err := Render(&sb, g, opts...); err != nil {
		return "", err
	}

	return sb.String(), nil
}
