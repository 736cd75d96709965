// Package input holds the small line-oriented helpers every solver shares:
// reading a puzzle file into lines, splitting a file into blank-line
// separated blocks, and parsing runs of integers out of a line.
//
// The helpers never interpret puzzle semantics; each solver package owns its
// own grammar and error taxonomy.
package input
