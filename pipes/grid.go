package pipes

import (
	"fmt"
	"strings"
)

// Grid is an immutable rectangular field of pipe cells with exactly one start.
// Cells are stored row-major: cells[y*Width+x].
type Grid struct {
	Width, Height int
	cells         []Shape
	start         Point
}

// Parse builds a Grid from glyph lines. Trailing "\r" is ignored.
// Returns *SymbolError for unknown glyphs, plus every error NewGrid reports.
// Complexity: O(W×H).
func Parse(lines []string) (*Grid, error) {
	rows := make([][]Shape, 0, len(lines))
	for y, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		row := make([]Shape, 0, len(line))
		for x, r := range []rune(line) {
			s, ok := ShapeOf(r)
			if !ok {
				return nil, &SymbolError{X: x, Y: y, Glyph: r}
			}
			row = append(row, s)
		}
		rows = append(rows, row)
	}
	return NewGrid(rows)
}

// NewGrid constructs a Grid from a non-empty, rectangular slice of rows.
// It copies the input to ensure immutability.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrNoStart or ErrMultipleStarts.
func NewGrid(rows [][]Shape) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	g := &Grid{Width: w, Height: h, cells: make([]Shape, 0, w*h)}
	starts := 0
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		for x, s := range row {
			if s == Start {
				starts++
				g.start = Point{X: x, Y: y}
			}
		}
		g.cells = append(g.cells, row...)
	}
	switch {
	case starts == 0:
		return nil, ErrNoStart
	case starts > 1:
		return nil, fmt.Errorf("%w: found %d", ErrMultipleStarts, starts)
	}
	return g, nil
}

// Start returns the position of the start cell.
func (g *Grid) Start() Point { return g.start }

// InBounds reports whether p lies within the grid boundaries.
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// At returns the shape at p, or Empty outside the grid.
func (g *Grid) At(p Point) Shape {
	if !g.InBounds(p) {
		return Empty
	}
	return g.cells[g.index(p)]
}

// String renders the grid back to glyph lines.
func (g *Grid) String() string {
	var b strings.Builder
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			b.WriteString(g.cells[y*g.Width+x].String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// step returns the neighbour of p in direction o when that neighbour lies in
// the grid and declares a connection back to p.
func (g *Grid) step(p Point, o Offset) (Point, bool) {
	q := p.Add(o)
	if !g.InBounds(q) {
		return Point{}, false
	}
	if !g.cells[g.index(q)].Connects(o.Reverse()) {
		return Point{}, false
	}
	return q, true
}

// exits returns the directions the search may leave p by: all four axes for
// the start cell, the shape's two openings otherwise.
func (g *Grid) exits(p Point) []Offset {
	if p == g.start {
		return startProbes[:]
	}
	a, b, ok := g.cells[g.index(p)].Offsets()
	if !ok {
		return nil
	}
	return []Offset{a, b}
}

// index maps p to its row-major index.
func (g *Grid) index(p Point) int {
	return p.Y*g.Width + p.X
}

// coordinate converts a row-major index back to a Point.
func (g *Grid) coordinate(idx int) Point {
	return Point{X: idx % g.Width, Y: idx / g.Width}
}
