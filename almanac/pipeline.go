package almanac

// Pipeline is an ordered chain of stages applied left to right.
type Pipeline []*Stage

// Lookup maps v through every stage in turn.
func (p Pipeline) Lookup(v int64) int64 {
	for _, s := range p {
		v = s.Lookup(v)
	}
	return v
}

// Apply maps the whole interval set through each stage before moving on to
// the next one and returns the final set. ivs is not modified.
func (p Pipeline) Apply(ivs []Interval) []Interval {
	cur := append([]Interval(nil), ivs...)
	next := make([]Interval, 0, len(ivs))
	for _, s := range p {
		next = next[:0]
		for _, iv := range cur {
			next = s.Apply(iv, next)
		}
		cur, next = next, cur
	}
	return cur
}
