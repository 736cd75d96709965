package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// ErrBadInteger is returned when a field cannot be parsed as an integer
// of the requested width.
var ErrBadInteger = errors.New("input: malformed integer field")

// ReadLines returns every line of r with trailing "\r" removed.
// A trailing newline at the end of r does not produce an empty last line.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("input: scanning lines: %w", err)
	}
	return lines, nil
}

// ReadFile opens path and returns its lines.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	defer f.Close()

	return ReadLines(f)
}

// Blocks splits lines on empty lines. Runs of empty lines never produce
// empty blocks.
func Blocks(lines []string) [][]string {
	var (
		blocks [][]string
		cur    []string
	)
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			if len(cur) > 0 {
				blocks = append(blocks, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, l)
	}
	if len(cur) > 0 {
		blocks = append(blocks, cur)
	}
	return blocks
}

// Ints parses the integers in s. With sep == "" fields are separated by
// any run of whitespace; otherwise s is split on sep and each field is
// trimmed. Empty input yields an empty, non-nil slice.
func Ints[T constraints.Signed](s, sep string) ([]T, error) {
	var fields []string
	if sep == "" {
		fields = strings.Fields(s)
	} else if strings.TrimSpace(s) != "" {
		fields = strings.Split(s, sep)
	}

	var zero T
	bits := 8 * int(unsafe.Sizeof(zero))
	out := make([]T, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseInt(strings.TrimSpace(f), 10, bits)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadInteger, f)
		}
		out = append(out, T(v))
	}
	return out, nil
}
