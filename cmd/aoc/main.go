// Command aoc runs the daily puzzle solvers against their input files and
// prints the answers.
//
// Usage:
//
//	aoc day5  [file]
//	aoc day10 [file]
//	aoc day12 [file] [--unfold 5]
//
// Without a file argument each command reads <input-dir>/dayN/input.txt.
// Settings come from flags, then AOC_* environment variables, then an
// optional .env file in the working directory.
package main

import (
	"log"
	"os"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("aoc: ")

	if err := newRootCmd(os.Args[1:]).Execute(); err != nil {
		log.Fatal(err)
	}
}
