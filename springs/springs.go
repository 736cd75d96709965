package springs

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/aoc23/input"
)

// Condition is the state of one spring.
type Condition byte

const (
	Operational Condition = '.'
	Damaged     Condition = '#'
	Unknown     Condition = '?'
)

// Sentinel errors for record parsing.
var (
	// ErrMalformedInput indicates a record line that cannot be parsed.
	ErrMalformedInput = errors.New("springs: malformed input")
	// ErrBadGroup indicates a group size below one.
	ErrBadGroup = errors.New("springs: group sizes must be positive")
)

// SymbolError reports an unknown condition glyph.
type SymbolError struct {
	Pos   int
	Glyph rune
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("springs: unknown condition %q at %d", e.Glyph, e.Pos)
}

// Unwrap lets errors.Is match ErrMalformedInput.
func (e *SymbolError) Unwrap() error { return ErrMalformedInput }

// Record is one row of the condition report.
type Record struct {
	Conditions []Condition
	Groups     []int
}

// ParseRecord reads a line such as "?#?#?#?#?#?#?#? 1,3,1,6".
func ParseRecord(line string) (Record, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Record{}, fmt.Errorf("%w: want conditions and groups, got %q", ErrMalformedInput, line)
	}

	conds := make([]Condition, 0, len(fields[0]))
	for i, r := range fields[0] {
		switch r {
		case rune(Operational), rune(Damaged), rune(Unknown):
			conds = append(conds, Condition(r))
		default:
			return Record{}, &SymbolError{Pos: i, Glyph: r}
		}
	}

	groups, err := input.Ints[int](fields[1], ",")
	if err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	for _, g := range groups {
		if g < 1 {
			return Record{}, fmt.Errorf("%w: %d", ErrBadGroup, g)
		}
	}
	return Record{Conditions: conds, Groups: groups}, nil
}

// String renders r back to its input form.
func (r Record) String() string {
	var b strings.Builder
	for _, c := range r.Conditions {
		b.WriteByte(byte(c))
	}
	b.WriteByte(' ')
	for i, g := range r.Groups {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprint(&b, g)
	}
	return b.String()
}

// Unfold returns the record repeated copies times, with the condition copies
// joined by Unknown. copies < 1 is treated as 1.
func (r Record) Unfold(copies int) Record {
	copies = max(copies, 1)
	out := Record{
		Conditions: make([]Condition, 0, copies*(len(r.Conditions)+1)-1),
		Groups:     make([]int, 0, copies*len(r.Groups)),
	}
	for i := 0; i < copies; i++ {
		if i > 0 {
			out.Conditions = append(out.Conditions, Unknown)
		}
		out.Conditions = append(out.Conditions, r.Conditions...)
		out.Groups = append(out.Groups, r.Groups...)
	}
	return out
}

// Arrangements counts the assignments of Unknown springs that produce
// exactly r.Groups.
func (r Record) Arrangements() int64 {
	c := counter{
		conds:  r.Conditions,
		groups: r.Groups,
		stride: len(r.Groups) + 1,
	}
	c.memo = make([]int64, (len(r.Conditions)+1)*c.stride)
	for i := range c.memo {
		c.memo[i] = -1
	}
	return c.count(0, 0)
}

// counter holds the memo table for one record.
// memo[pos*stride+gi] caches count(pos, gi); -1 marks an empty slot.
type counter struct {
	conds  []Condition
	groups []int
	stride int
	memo   []int64
}

// count returns the arrangements of groups[gi:] within conds[pos:].
// pos may equal len(conds).
func (c *counter) count(pos, gi int) int64 {
	key := pos*c.stride + gi
	if v := c.memo[key]; v >= 0 {
		return v
	}

	n := len(c.conds)
	var total int64
	if gi == len(c.groups) {
		if !slices.Contains(c.conds[pos:], Damaged) {
			total = 1
		}
		c.memo[key] = total
		return total
	}

	size := c.groups[gi]
	for i := pos; i < n; i++ {
		end := i + size
		if end <= n &&
			!slices.Contains(c.conds[i:end], Operational) &&
			(end == n || c.conds[end] != Damaged) {
			// the glyph after the group is its separator
			total += c.count(min(end+1, n), gi+1)
		}
		// a damaged spring cannot be skipped
		if c.conds[i] == Damaged {
			break
		}
	}
	c.memo[key] = total
	return total
}

// Sum parses every line, unfolds it copies times and adds up the
// arrangement counts. Blank lines are skipped.
func Sum(lines []string, copies int) (int64, error) {
	var total int64
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		r, err := ParseRecord(line)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		total += r.Unfold(copies).Arrangements()
	}
	return total, nil
}
