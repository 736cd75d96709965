// Package springs counts the ways runs of damaged springs can be placed in
// a partially-known condition record.
//
// A record line looks like "???.### 1,1,3": each glyph is operational '.',
// damaged '#' or unknown '?', followed by the sizes of the contiguous damaged
// groups in order. Arrangements returns how many assignments of the unknown
// glyphs agree with the group list.
//
// The count is a memoized recursion over (suffix of the record, suffix of
// the group list). Both suffixes are identified by their start offsets, so
// the memo is a flat table indexed by (position, group index) rather than a
// map keyed by sub-slices.
//
// Complexity: O(N×G×N) time and O(N×G) memory for N glyphs and G groups.
package springs
