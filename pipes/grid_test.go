package pipes_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc23/pipes"
)

// TestParse_Errors verifies that Parse rejects malformed grids.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
		err   error
	}{
		{"EmptyRows", nil, pipes.ErrEmptyGrid},
		{"EmptyCols", []string{""}, pipes.ErrEmptyGrid},
		{"NonRectangular", []string{"S-", "|"}, pipes.ErrNonRectangular},
		{"UnknownGlyph", []string{"S-x"}, pipes.ErrMalformedInput},
		{"NoStart", []string{".|.", "-L-"}, pipes.ErrNoStart},
		{"TwoStarts", []string{"S.S"}, pipes.ErrMultipleStarts},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pipes.Parse(tc.lines)
			if !errors.Is(err, tc.err) {
				t.Errorf("Parse(%q) error = %v; want %v", tc.lines, err, tc.err)
			}
		})
	}
}

// TestParse_SymbolError checks the reported position of an unknown glyph.
func TestParse_SymbolError(t *testing.T) {
	_, err := pipes.Parse([]string{"S-7", "|.#"})
	var se *pipes.SymbolError
	require.ErrorAs(t, err, &se)
	require.Equal(t, 2, se.X)
	require.Equal(t, 1, se.Y)
	require.Equal(t, '#', se.Glyph)
}

// TestParse_RoundTrip checks that glyphs survive parsing and rendering.
func TestParse_RoundTrip(t *testing.T) {
	lines := []string{"-L|F7", "7S-7|", "L|7||", "-L-J|", "L|-JF"}
	g, err := pipes.Parse(lines)
	require.NoError(t, err)
	require.Equal(t, 5, g.Width)
	require.Equal(t, 5, g.Height)
	require.Equal(t, pipes.Point{X: 1, Y: 1}, g.Start())
	require.Equal(t, "-L|F7\n7S-7|\nL|7||\n-L-J|\nL|-JF\n", g.String())
}

// TestShapes covers the glyph table and each pipe's two openings.
func TestShapes(t *testing.T) {
	cases := []struct {
		glyph rune
		shape pipes.Shape
		a, b  pipes.Offset
		pipe  bool
	}{
		{'.', pipes.Empty, pipes.Offset{}, pipes.Offset{}, false},
		{'|', pipes.Vertical, pipes.North, pipes.South, true},
		{'-', pipes.Horizontal, pipes.East, pipes.West, true},
		{'L', pipes.BendNE, pipes.North, pipes.East, true},
		{'J', pipes.BendNW, pipes.North, pipes.West, true},
		{'7', pipes.BendSW, pipes.South, pipes.West, true},
		{'F', pipes.BendSE, pipes.South, pipes.East, true},
		{'S', pipes.Start, pipes.Offset{}, pipes.Offset{}, false},
	}
	for _, tc := range cases {
		t.Run(string(tc.glyph), func(t *testing.T) {
			s, ok := pipes.ShapeOf(tc.glyph)
			require.True(t, ok)
			require.Equal(t, tc.shape, s)
			require.Equal(t, string(tc.glyph), s.String())

			a, b, pipe := s.Offsets()
			require.Equal(t, tc.pipe, pipe)
			require.Equal(t, tc.a, a)
			require.Equal(t, tc.b, b)
			if pipe {
				require.True(t, s.Connects(a))
				require.True(t, s.Connects(b))
				require.False(t, s.Connects(pipes.Offset{}))
			}
		})
	}

	_, ok := pipes.ShapeOf('x')
	require.False(t, ok)
}

// TestGrid_AtAndInBounds checks lookups inside and outside the grid.
func TestGrid_AtAndInBounds(t *testing.T) {
	g, err := pipes.Parse([]string{"S7", "LJ"})
	require.NoError(t, err)

	require.Equal(t, pipes.BendSW, g.At(pipes.Point{X: 1, Y: 0}))
	require.Equal(t, pipes.BendNE, g.At(pipes.Point{X: 0, Y: 1}))
	for _, p := range []pipes.Point{{X: -1}, {X: 2}, {Y: 2}, {Y: -1}} {
		require.False(t, g.InBounds(p), "InBounds(%v)", p)
		require.Equal(t, pipes.Empty, g.At(p))
	}
}
