package almanac

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/aoc23/input"
)

// Almanac is a parsed puzzle input: the seed values and the stage chain that
// carries them to their final category.
type Almanac struct {
	Seeds    []int64
	Pipeline Pipeline
}

// Parse reads an almanac:
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//	...
//
// Each block header names its source and destination categories; a block's
// source must equal the previous block's destination (ErrBrokenChain).
// Mapping lines are "destination source length".
func Parse(lines []string) (*Almanac, error) {
	blocks := input.Blocks(lines)
	if len(blocks) == 0 {
		return nil, fmt.Errorf("%w: empty almanac", ErrMalformedInput)
	}

	header := blocks[0]
	if len(header) != 1 {
		return nil, fmt.Errorf("%w: seeds header must be a single line", ErrMalformedInput)
	}
	rest, ok := strings.CutPrefix(strings.TrimSpace(header[0]), "seeds:")
	if !ok {
		return nil, fmt.Errorf("%w: missing %q prefix in %q", ErrMalformedInput, "seeds:", header[0])
	}
	seeds, err := input.Ints[int64](rest, "")
	if err != nil {
		return nil, fmt.Errorf("%w: seeds: %v", ErrMalformedInput, err)
	}

	a := &Almanac{Seeds: seeds}
	for _, block := range blocks[1:] {
		s, err := parseStage(block)
		if err != nil {
			return nil, err
		}
		if n := len(a.Pipeline); n > 0 && a.Pipeline[n-1].To != s.From {
			return nil, fmt.Errorf("%w: %q follows %q", ErrBrokenChain, s.Name(), a.Pipeline[n-1].Name())
		}
		a.Pipeline = append(a.Pipeline, s)
	}
	return a, nil
}

// parseStage reads one "<from>-to-<to> map:" block.
func parseStage(block []string) (*Stage, error) {
	name, ok := strings.CutSuffix(strings.TrimSpace(block[0]), " map:")
	if !ok {
		return nil, fmt.Errorf("%w: bad map header %q", ErrMalformedInput, block[0])
	}
	from, to, ok := strings.Cut(name, "-to-")
	if !ok || from == "" || to == "" {
		return nil, fmt.Errorf("%w: bad map name %q", ErrMalformedInput, name)
	}

	mappings := make([]RangeMapping, 0, len(block)-1)
	for _, line := range block[1:] {
		vals, err := input.Ints[int64](line, "")
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMalformedInput, name, err)
		}
		if len(vals) != 3 {
			return nil, fmt.Errorf("%w: %s: want 3 values, got %q", ErrMalformedInput, name, line)
		}
		mappings = append(mappings, RangeMapping{DestStart: vals[0], SourceStart: vals[1], Length: vals[2]})
	}

	s, err := NewStage(from, to, mappings...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return s, nil
}

// LowestLocation maps every seed on its own and returns the smallest result.
func (a *Almanac) LowestLocation() (int64, error) {
	if len(a.Seeds) == 0 {
		return 0, ErrNoIntervals
	}
	lowest := a.Pipeline.Lookup(a.Seeds[0])
	for _, seed := range a.Seeds[1:] {
		lowest = min(lowest, a.Pipeline.Lookup(seed))
	}
	return lowest, nil
}

// SeedRanges reads the seeds as (start, length) pairs.
func (a *Almanac) SeedRanges() ([]Interval, error) {
	if len(a.Seeds)%2 != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrOddSeedCount, len(a.Seeds))
	}
	ivs := make([]Interval, 0, len(a.Seeds)/2)
	for i := 0; i < len(a.Seeds); i += 2 {
		ivs = append(ivs, Interval{Start: a.Seeds[i], Length: a.Seeds[i+1]})
	}
	return ivs, nil
}

// LowestRangeLocation treats the seeds as ranges, sweeps them through the
// pipeline and returns the smallest resulting start.
func (a *Almanac) LowestRangeLocation() (int64, error) {
	ivs, err := a.SeedRanges()
	if err != nil {
		return 0, err
	}
	return LowestStart(a.Pipeline.Apply(ivs))
}
