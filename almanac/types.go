package almanac

import (
	"errors"
	"fmt"
)

// Sentinel errors for stage construction, parsing and evaluation.
var (
	// ErrNegativeLength indicates a mapping with Length < 0.
	ErrNegativeLength = errors.New("almanac: mapping length must be non-negative")
	// ErrOverlap indicates two mappings in one stage share source values.
	ErrOverlap = errors.New("almanac: overlapping source ranges")
	// ErrMalformedInput indicates almanac text that cannot be parsed.
	ErrMalformedInput = errors.New("almanac: malformed input")
	// ErrBrokenChain indicates a stage whose source category does not follow
	// the previous stage's destination category.
	ErrBrokenChain = errors.New("almanac: stage chain is broken")
	// ErrOddSeedCount indicates seed values that cannot be paired into ranges.
	ErrOddSeedCount = errors.New("almanac: seed ranges need an even number of values")
	// ErrNoIntervals indicates a minimum was requested over nothing.
	ErrNoIntervals = errors.New("almanac: no intervals")
)

// RangeMapping translates [SourceStart, SourceStart+Length) onto
// [DestStart, DestStart+Length).
type RangeMapping struct {
	SourceStart int64
	DestStart   int64
	Length      int64
}

// SourceEnd returns the exclusive end of the source range.
func (m RangeMapping) SourceEnd() int64 { return m.SourceStart + m.Length }

// Contains reports whether v lies in the source range.
func (m RangeMapping) Contains(v int64) bool {
	return v >= m.SourceStart && v < m.SourceEnd()
}

func (m RangeMapping) String() string {
	return fmt.Sprintf("[%d,%d)→%d", m.SourceStart, m.SourceEnd(), m.DestStart)
}

// Interval is the half-open range [Start, Start+Length).
type Interval struct {
	Start  int64
	Length int64
}

// End returns the exclusive end of iv.
func (iv Interval) End() int64 { return iv.Start + iv.Length }

// Empty reports whether iv covers no values.
func (iv Interval) Empty() bool { return iv.Length <= 0 }

func (iv Interval) String() string {
	return fmt.Sprintf("[%d,%d)", iv.Start, iv.End())
}

// LowestStart returns the smallest Start across ivs, ignoring empty intervals.
// Returns ErrNoIntervals if nothing non-empty remains.
func LowestStart(ivs []Interval) (int64, error) {
	var (
		lowest int64
		found  bool
	)
	for _, iv := range ivs {
		if iv.Empty() {
			continue
		}
		if !found || iv.Start < lowest {
			lowest, found = iv.Start, true
		}
	}
	if !found {
		return 0, ErrNoIntervals
	}
	return lowest, nil
}
