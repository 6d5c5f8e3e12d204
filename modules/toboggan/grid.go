package toboggan

import (
	"errors"
	"fmt"

	"github.com/vk/advent2020/internal/fsutil"
	"github.com/vk/advent2020/internal/parse"
)

// Tile is the content of one grid cell.
type Tile uint8

const (
	Open Tile = iota
	Tree
)

// ErrInvalidSlope is returned for a slope that would never leave the grid.
var ErrInvalidSlope = errors.New("invalid slope")

// Grid is a map whose pattern repeats infinitely to the right.
type Grid struct {
	Rows  int
	Cols  int
	tiles []Tile
}

// ParseGrid parses lines of '.' (open) and '#' (tree). Every row must be
// as wide as the first.
func ParseGrid(text string) (*Grid, error) {
	lines := fsutil.SplitLines(text)
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, parse.Errorf(1, "grid is empty")
	}

	g := &Grid{Rows: len(lines), Cols: len(lines[0])}
	g.tiles = make([]Tile, 0, g.Rows*g.Cols)
	for y, line := range lines {
		if len(line) != g.Cols {
			return nil, parse.Errorf(y+1, "row has width %d, expected %d", len(line), g.Cols)
		}
		for x, c := range []byte(line) {
			switch c {
			case '.':
				g.tiles = append(g.tiles, Open)
			case '#':
				g.tiles = append(g.tiles, Tree)
			default:
				return nil, &parse.Error{Line: y + 1, Column: x + 1, Msg: fmt.Sprintf("unexpected character %q", c)}
			}
		}
	}
	return g, nil
}

// At returns the tile at column x, row y. Columns wrap; rows do not.
func (g *Grid) At(x, y int) Tile {
	return g.tiles[y*g.Cols+x%g.Cols]
}

// CountTrees walks from the top-left corner by (dx, dy) and counts the
// trees on visited cells, including the starting cell. A cell is visited
// only while the step that follows it still lands within the grid height,
// so with dy > 1 the last rows may be skipped.
func (g *Grid) CountTrees(dx, dy int) (int, error) {
	if dy <= 0 || dx < 0 {
		return 0, fmt.Errorf("%w: (%d, %d)", ErrInvalidSlope, dx, dy)
	}
	trees := 0
	for x, y := 0, 0; y+dy <= g.Rows; x, y = x+dx, y+dy {
		if g.At(x, y) == Tree {
			trees++
		}
	}
	return trees, nil
}
