package pipes

import "fmt"

// walker encapsulates mutable trace state for one call to Trace.
type walker struct {
	grid  *Grid
	opts  TraceOptions
	dist  []int
	queue []int
	head  int
}

// Trace runs a breadth-first search from the start cell of g and returns
// the farthest loop distance at the loop-closing collision.
//
// Behavior:
//  1. Validate that exactly two neighbours connect back to the start.
//  2. Seed the queue with the start at distance 0.
//  3. Pop cells FIFO; for each valid exit compute the next distance:
//     • unvisited neighbour → record distance, enqueue
//     • visited at the same distance → the fronts met, return it
//     • visited at a smaller distance → skip
//  4. Queue exhausted → ErrLoopNotClosed.
//
// Complexity: O(W×H) time and memory.
func Trace(g *Grid, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrEmptyGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	degree := 0
	for _, d := range startProbes {
		if _, ok := g.step(g.start, d); ok {
			degree++
		}
	}
	if degree != 2 {
		return nil, fmt.Errorf("%w: start at (%d,%d) has %d", ErrStartDegree, g.start.X, g.start.Y, degree)
	}

	w := &walker{
		grid:  g,
		opts:  o,
		dist:  make([]int, g.Width*g.Height),
		queue: make([]int, 0, g.Width*g.Height),
	}
	for i := range w.dist {
		w.dist[i] = -1
	}
	w.enqueue(g.index(g.start), 0)

	return w.loop()
}

// Farthest is Trace without hooks, returning only the distance.
func Farthest(g *Grid) (int, error) {
	res, err := Trace(g)
	if err != nil {
		return 0, err
	}
	return res.Farthest, nil
}

// enqueue records distance d for idx, fires OnEnqueue and queues idx.
func (w *walker) enqueue(idx, d int) {
	w.dist[idx] = d
	w.opts.OnEnqueue(w.grid.coordinate(idx), d)
	w.queue = append(w.queue, idx)
}

// loop drains the queue until the fronts meet or no cells remain.
func (w *walker) loop() (*Result, error) {
	for w.head < len(w.queue) {
		u := w.queue[w.head]
		w.head++
		next := w.dist[u] + 1
		p := w.grid.coordinate(u)

		for _, d := range w.grid.exits(p) {
			q, ok := w.grid.step(p, d)
			if !ok {
				continue
			}
			v := w.grid.index(q)
			switch w.dist[v] {
			case -1:
				w.enqueue(v, next)
			case next:
				return w.result(next, q), nil
			}
		}
	}
	return nil, ErrLoopNotClosed
}

func (w *walker) result(farthest int, meet Point) *Result {
	return &Result{
		Farthest: farthest,
		Meet:     meet,
		Distances: DistanceMap{
			Width:  w.grid.Width,
			Height: w.grid.Height,
			dist:   w.dist,
		},
	}
}
