// Package almanac maps integers and integer intervals through a chain of
// piecewise-linear range tables ("stages").
//
// What:
//
//   - RangeMapping translates [SourceStart, SourceStart+Length) onto
//     [DestStart, DestStart+Length).
//   - Stage is one table of mappings, kept sorted by SourceStart; values
//     outside every mapping pass through unchanged.
//   - Stage.Apply partitions an Interval with a single sweep over the sorted
//     table and emits the disjoint, ordered image intervals.
//   - Pipeline applies stages left to right, either to a whole interval set
//     (Apply) or to a single value (Lookup).
//   - Almanac parses the "seeds:" header and the "<a>-to-<b> map:" blocks.
//
// Precondition:
//
//	The sweep requires each stage sorted by SourceStart. NewStage sorts its
//	input and rejects overlapping sources, and Stage has no other
//	constructor, so every Stage satisfies the precondition.
//
// Complexity:
//
//   - Stage.Apply:  O(M + K) for M mappings and K emitted pieces.
//   - Stage.Lookup: O(log M).
//
// Errors:
//
//   - ErrNegativeLength, ErrOverlap: invalid stage tables.
//   - ErrMalformedInput, ErrBrokenChain: almanac text that cannot be parsed.
//   - ErrOddSeedCount, ErrNoIntervals: seed data unusable for an answer.
package almanac
