package almanac_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc23/almanac"
)

func mustStage(t testing.TB, ms ...almanac.RangeMapping) *almanac.Stage {
	t.Helper()
	s, err := almanac.NewStage("a", "b", ms...)
	require.NoError(t, err)
	return s
}

// TestNewStage_SortsAndDropsEmpty checks that construction establishes the
// sweep precondition.
func TestNewStage_SortsAndDropsEmpty(t *testing.T) {
	s := mustStage(t,
		almanac.RangeMapping{SourceStart: 98, DestStart: 50, Length: 2},
		almanac.RangeMapping{SourceStart: 10, DestStart: 0, Length: 0},
		almanac.RangeMapping{SourceStart: 50, DestStart: 52, Length: 48},
	)
	want := []almanac.RangeMapping{
		{SourceStart: 50, DestStart: 52, Length: 48},
		{SourceStart: 98, DestStart: 50, Length: 2},
	}
	if diff := cmp.Diff(want, s.Mappings()); diff != "" {
		t.Errorf("Mappings mismatch (-want +got):\n%s", diff)
	}

	// touching ranges are not overlapping
	mustStage(t,
		almanac.RangeMapping{SourceStart: 0, DestStart: 5, Length: 5},
		almanac.RangeMapping{SourceStart: 5, DestStart: 0, Length: 5},
	)
}

// TestApply_Cases covers gaps, partial overlaps and pass-through.
func TestApply_Cases(t *testing.T) {
	seedToSoil := mustStage(t,
		almanac.RangeMapping{DestStart: 50, SourceStart: 98, Length: 2},
		almanac.RangeMapping{DestStart: 52, SourceStart: 50, Length: 48},
	)
	cases := []struct {
		name string
		in   almanac.Interval
		want []almanac.Interval
	}{
		{"InsideOneMapping", almanac.Interval{Start: 79, Length: 14}, []almanac.Interval{{Start: 81, Length: 14}}},
		{"BeforeAll", almanac.Interval{Start: 10, Length: 5}, []almanac.Interval{{Start: 10, Length: 5}}},
		{"GapThenMapping", almanac.Interval{Start: 45, Length: 10}, []almanac.Interval{{Start: 45, Length: 5}, {Start: 52, Length: 5}}},
		{"AcrossBothAndBeyond", almanac.Interval{Start: 96, Length: 6}, []almanac.Interval{{Start: 98, Length: 2}, {Start: 50, Length: 2}, {Start: 100, Length: 2}}},
		{"AfterAll", almanac.Interval{Start: 200, Length: 3}, []almanac.Interval{{Start: 200, Length: 3}}},
		{"EndsAtGap", almanac.Interval{Start: 40, Length: 10}, []almanac.Interval{{Start: 40, Length: 10}}},
		{"Empty", almanac.Interval{Start: 60, Length: 0}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := seedToSoil.Apply(tc.in, nil)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Apply(%v) mismatch (-want +got):\n%s", tc.in, diff)
			}
		})
	}
}

// TestApply_IdentityStage verifies a stage without mappings returns its input.
func TestApply_IdentityStage(t *testing.T) {
	s := mustStage(t)
	in := almanac.Interval{Start: -7, Length: 42}
	require.Equal(t, []almanac.Interval{in}, s.Apply(in, nil))
	require.Equal(t, int64(123), s.Lookup(123))
}

// TestApply_AppendsToDst ensures Apply extends rather than replaces dst.
func TestApply_AppendsToDst(t *testing.T) {
	s := mustStage(t, almanac.RangeMapping{SourceStart: 0, DestStart: 100, Length: 10})
	dst := []almanac.Interval{{Start: 1, Length: 1}}
	dst = s.Apply(almanac.Interval{Start: 5, Length: 2}, dst)
	require.Equal(t, []almanac.Interval{{Start: 1, Length: 1}, {Start: 105, Length: 2}}, dst)
}

// TestApply_CoverageAndScalarAgreement checks on random stages that the
// emitted pieces partition the input in order, and that each piece agrees
// with the scalar Lookup at both of its ends.
func TestApply_CoverageAndScalarAgreement(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for iter := 0; iter < 200; iter++ {
		s := randomStage(t, rng)
		in := almanac.Interval{Start: rng.Int63n(400) - 50, Length: rng.Int63n(120)}
		out := s.Apply(in, nil)

		var total int64
		cursor := in.Start
		for _, piece := range out {
			require.Positive(t, piece.Length)
			assert.Equal(t, s.Lookup(cursor), piece.Start, "iter %d piece %v", iter, piece)
			last := cursor + piece.Length - 1
			assert.Equal(t, s.Lookup(last), piece.End()-1, "iter %d piece %v", iter, piece)
			cursor += piece.Length
			total += piece.Length
		}
		require.Equal(t, in.Length, total, "iter %d coverage of %v", iter, in)
	}
}

// TestPipeline_RangeAgreesWithScalar runs single-point intervals through the
// sample pipeline and compares them with scalar lookups.
func TestPipeline_RangeAgreesWithScalar(t *testing.T) {
	a := mustParse(t)
	for v := int64(0); v < 110; v++ {
		out := a.Pipeline.Apply([]almanac.Interval{{Start: v, Length: 1}})
		require.Len(t, out, 1)
		require.Equal(t, a.Pipeline.Lookup(v), out[0].Start, "value %d", v)
	}
}

// TestPipeline_DoesNotMutateInput guards the caller's slice.
func TestPipeline_DoesNotMutateInput(t *testing.T) {
	a := mustParse(t)
	in := []almanac.Interval{{Start: 79, Length: 14}, {Start: 55, Length: 13}}
	keep := append([]almanac.Interval(nil), in...)
	_ = a.Pipeline.Apply(in)
	require.Equal(t, keep, in)
}

// TestLowestStart ignores empty intervals.
func TestLowestStart(t *testing.T) {
	got, err := almanac.LowestStart([]almanac.Interval{{Start: 5, Length: 1}, {Start: 1, Length: 0}, {Start: 3, Length: 2}})
	require.NoError(t, err)
	require.Equal(t, int64(3), got)

	_, err = almanac.LowestStart(nil)
	require.ErrorIs(t, err, almanac.ErrNoIntervals)
}

// randomStage builds a stage of up to six sorted, non-overlapping mappings.
func randomStage(t testing.TB, rng *rand.Rand) *almanac.Stage {
	var (
		ms  []almanac.RangeMapping
		pos = rng.Int63n(50)
	)
	for n := rng.Intn(7); n > 0; n-- {
		length := 1 + rng.Int63n(40)
		ms = append(ms, almanac.RangeMapping{SourceStart: pos, DestStart: rng.Int63n(500), Length: length})
		pos += length + rng.Int63n(20)
	}
	rng.Shuffle(len(ms), func(i, j int) { ms[i], ms[j] = ms[j], ms[i] })
	return mustStage(t, ms...)
}
