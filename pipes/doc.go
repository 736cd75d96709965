// Package pipes traces the closed pipe loop that runs through the start
// cell of a 2D grid of pipe segments.
//
// What:
//
//   - Grid holds a rectangular, immutable field of Shape cells parsed from
//     glyphs: '.', '|', '-', 'L', 'J', '7', 'F' and exactly one 'S'.
//   - Every pipe shape connects exactly two axis neighbours; the start cell's
//     own connections are unknown and are discovered by probing.
//   - Trace runs a breadth-first search from the start and stops at the
//     loop-closing collision: the first step that lands on a cell already
//     reached at the same distance. That distance is the farthest point of
//     the loop from the start.
//
// Adjacency:
//
//	A step A→B is taken only when B lies inside the grid and B's shape
//	declares the reverse offset back to A. Geometrically adjacent pipes that
//	do not point at each other are never joined.
//
// Complexity:
//
//   - Parse/NewGrid: O(W×H) time and memory.
//   - Trace:         O(W×H) time, O(W×H) memory for the DistanceMap and queue.
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular: malformed dimensions.
//   - ErrMalformedInput (via *SymbolError): unknown glyph.
//   - ErrNoStart, ErrMultipleStarts: start marker missing or repeated.
//   - ErrStartDegree: the start does not connect to exactly two pipes.
//   - ErrLoopNotClosed: the search exhausted without the fronts meeting.
package pipes
