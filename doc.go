// Package aoc23 is a set of small, independent daily puzzle solvers. Each
// solver is a pure function from parsed input to an integer answer.
//
// Under the hood, everything is organized into flat subpackages:
//
//	pipes/    — pipe grid parsing and the loop-closing BFS (farthest loop cell)
//	almanac/  — piecewise range stages, interval sweep, stage pipelines
//	springs/  — memoized counting of damaged-spring arrangements
//	input/    — line reading, blank-line blocks, generic integer fields
//	cmd/aoc/  — command-line driver, one subcommand per day
//
// Quick ASCII example (pipes):
//
//	.S-7.
//	.|.|.
//	.L-J.
//
// is a loop of eight cells; its farthest cell is four steps from S.
package aoc23
