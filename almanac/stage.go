package almanac

import (
	"fmt"
	"slices"
	"sort"
)

// Stage is one table of range mappings applied as a unit. It is immutable
// once built and its mappings are sorted by SourceStart.
type Stage struct {
	From, To string
	mappings []RangeMapping
}

// NewStage copies mappings, sorts them by SourceStart and validates them.
// Zero-length mappings are dropped.
// Returns ErrNegativeLength or ErrOverlap for invalid tables.
func NewStage(from, to string, mappings ...RangeMapping) (*Stage, error) {
	ms := make([]RangeMapping, 0, len(mappings))
	for _, m := range mappings {
		if m.Length < 0 {
			return nil, fmt.Errorf("%w: %d at source %d", ErrNegativeLength, m.Length, m.SourceStart)
		}
		if m.Length > 0 {
			ms = append(ms, m)
		}
	}
	sort.Slice(ms, func(i, j int) bool { return ms[i].SourceStart < ms[j].SourceStart })
	for i := 1; i < len(ms); i++ {
		if ms[i].SourceStart < ms[i-1].SourceEnd() {
			return nil, fmt.Errorf("%w: %v and %v", ErrOverlap, ms[i-1], ms[i])
		}
	}
	return &Stage{From: from, To: to, mappings: ms}, nil
}

// Name returns "<from>-to-<to>".
func (s *Stage) Name() string { return s.From + "-to-" + s.To }

// Mappings returns a copy of the sorted mapping table.
func (s *Stage) Mappings() []RangeMapping { return slices.Clone(s.mappings) }

// Lookup maps a single value through the stage; values outside every
// mapping map to themselves.
func (s *Stage) Lookup(v int64) int64 {
	// first mapping that starts after v; the candidate is the one before it
	i := sort.Search(len(s.mappings), func(i int) bool { return s.mappings[i].SourceStart > v })
	if i > 0 {
		if m := s.mappings[i-1]; m.Contains(v) {
			return m.DestStart + (v - m.SourceStart)
		}
	}
	return v
}

// Apply appends to dst the image of iv under s and returns the extended slice.
// The emitted intervals are disjoint, follow the source order of iv, and
// their lengths sum to iv.Length. An empty iv emits nothing.
//
// The sweep keeps a cursor at the first unmapped value of iv:
//  1. before a mapping's source range, the gap maps to itself;
//  2. inside it, the overlap is translated to DestStart+offset;
//  3. after the last mapping, the remainder maps to itself.
func (s *Stage) Apply(iv Interval, dst []Interval) []Interval {
	cursor, end := iv.Start, iv.End()
	for _, m := range s.mappings {
		if cursor >= end {
			break
		}
		if cursor < m.SourceStart {
			n := min(m.SourceStart, end) - cursor
			dst = append(dst, Interval{Start: cursor, Length: n})
			cursor += n
			if cursor >= end {
				break
			}
		}
		if m.Contains(cursor) {
			local := cursor - m.SourceStart
			n := min(m.Length-local, end-cursor)
			dst = append(dst, Interval{Start: m.DestStart + local, Length: n})
			cursor += n
		}
	}
	if cursor < end {
		dst = append(dst, Interval{Start: cursor, Length: end - cursor})
	}
	return dst
}
