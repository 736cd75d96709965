package pipes

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and tracing.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("pipes: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("pipes: all rows must have the same length")
	// ErrMalformedInput indicates a glyph that is not a known pipe shape.
	ErrMalformedInput = errors.New("pipes: malformed input")
	// ErrNoStart indicates the grid carries no start marker.
	ErrNoStart = errors.New("pipes: no start cell")
	// ErrMultipleStarts indicates more than one start marker.
	ErrMultipleStarts = errors.New("pipes: more than one start cell")
	// ErrStartDegree indicates the start does not join exactly two pipes.
	ErrStartDegree = errors.New("pipes: start must connect to exactly two pipes")
	// ErrLoopNotClosed indicates the search ran out of cells before the two
	// fronts of the loop met.
	ErrLoopNotClosed = errors.New("pipes: loop does not close")
)

// SymbolError reports an unknown glyph at a grid position.
type SymbolError struct {
	X, Y  int
	Glyph rune
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("pipes: unknown glyph %q at (%d,%d)", e.Glyph, e.X, e.Y)
}

// Unwrap lets errors.Is match ErrMalformedInput.
func (e *SymbolError) Unwrap() error { return ErrMalformedInput }

// Point is a zero-indexed, row-major grid position.
type Point struct {
	X, Y int
}

// Add returns p moved by o.
func (p Point) Add(o Offset) Point {
	return Point{X: p.X + o.DX, Y: p.Y + o.DY}
}

// Offset is a unit step along one axis. Y grows downwards.
type Offset struct {
	DX, DY int
}

// Reverse returns the opposite step.
func (o Offset) Reverse() Offset {
	return Offset{DX: -o.DX, DY: -o.DY}
}

// Axis steps, in the order the start cell probes them.
var (
	East  = Offset{DX: 1}
	West  = Offset{DX: -1}
	South = Offset{DY: 1}
	North = Offset{DY: -1}
)

// startProbes is the fixed probe order from the start cell.
var startProbes = [4]Offset{East, West, South, North}

// Shape classifies a cell.
type Shape uint8

const (
	Empty      Shape = iota // '.'
	Vertical                // '|' north–south
	Horizontal              // '-' east–west
	BendNE                  // 'L' north–east
	BendNW                  // 'J' north–west
	BendSW                  // '7' south–west
	BendSE                  // 'F' south–east
	Start                   // 'S'
)

// shapeInfo binds a shape to its glyph and, for pipes, its two connections.
type shapeInfo struct {
	glyph   rune
	pipe    bool
	offsets [2]Offset
}

var shapes = [...]shapeInfo{
	Empty:      {glyph: '.'},
	Vertical:   {glyph: '|', pipe: true, offsets: [2]Offset{North, South}},
	Horizontal: {glyph: '-', pipe: true, offsets: [2]Offset{East, West}},
	BendNE:     {glyph: 'L', pipe: true, offsets: [2]Offset{North, East}},
	BendNW:     {glyph: 'J', pipe: true, offsets: [2]Offset{North, West}},
	BendSW:     {glyph: '7', pipe: true, offsets: [2]Offset{South, West}},
	BendSE:     {glyph: 'F', pipe: true, offsets: [2]Offset{South, East}},
	Start:      {glyph: 'S'},
}

// ShapeOf maps a glyph to its Shape.
func ShapeOf(glyph rune) (Shape, bool) {
	for s, info := range shapes {
		if info.glyph == glyph {
			return Shape(s), true
		}
	}
	return Empty, false
}

// Offsets returns the two neighbour directions a pipe connects.
// ok is false for Empty and Start.
func (s Shape) Offsets() (a, b Offset, ok bool) {
	if int(s) >= len(shapes) || !shapes[s].pipe {
		return Offset{}, Offset{}, false
	}
	info := shapes[s]
	return info.offsets[0], info.offsets[1], true
}

// Connects reports whether s has an opening in direction o.
func (s Shape) Connects(o Offset) bool {
	a, b, ok := s.Offsets()
	return ok && (a == o || b == o)
}

// String returns the glyph of s.
func (s Shape) String() string {
	if int(s) >= len(shapes) {
		return fmt.Sprintf("Shape(%d)", s)
	}
	return string(shapes[s].glyph)
}

// DistanceMap records, per cell, the BFS distance from the start; -1 marks
// an unvisited cell. It shares the row-major layout of its Grid.
type DistanceMap struct {
	Width, Height int
	dist          []int
}

// At returns the distance recorded at p, or -1 if p is unvisited or out of range.
func (m DistanceMap) At(p Point) int {
	if p.X < 0 || p.X >= m.Width || p.Y < 0 || p.Y >= m.Height {
		return -1
	}
	return m.dist[p.Y*m.Width+p.X]
}

// Visited returns the number of cells reached.
func (m DistanceMap) Visited() int {
	n := 0
	for _, d := range m.dist {
		if d >= 0 {
			n++
		}
	}
	return n
}

// Result is the outcome of a loop trace.
//   - Farthest: distance along the loop from the start to its farthest cell.
//   - Meet: the cell where the two search fronts collided.
//   - Distances: every distance recorded during the search.
type Result struct {
	Farthest  int
	Meet      Point
	Distances DistanceMap
}

// Option configures Trace via functional arguments.
type Option func(*TraceOptions)

// TraceOptions holds trace callbacks.
type TraceOptions struct {
	// OnEnqueue is called when a cell is first reached, with its distance.
	OnEnqueue func(p Point, depth int)
}

// DefaultOptions returns TraceOptions with a no-op OnEnqueue hook.
func DefaultOptions() TraceOptions {
	return TraceOptions{
		OnEnqueue: func(Point, int) {},
	}
}

// WithOnEnqueue registers a callback run each time a cell is first reached.
func WithOnEnqueue(fn func(p Point, depth int)) Option {
	return func(o *TraceOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}
