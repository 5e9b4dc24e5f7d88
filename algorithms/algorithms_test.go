// This file is part of Gophersort.
//
// Gophersort is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gophersort is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gophersort.  If not, see <https://www.gnu.org/licenses/>.

package algorithms_test

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jetsetilly/gophersort/algorithms"
	"github.com/jetsetilly/gophersort/curated"
	"github.com/jetsetilly/gophersort/test"
)

// the maximum number of steps any algorithm should need for 200 values. quite
// generous because bubble sort produces two steps for every comparison
const maxSteps = 200 * 200 * 4

// run the producer to the end and return every step, including the final step
func run(t *testing.T, p algorithms.Producer) []algorithms.Step {
	t.Helper()

	var steps []algorithms.Step
	for range maxSteps {
		s, done := p.Next()
		steps = append(steps, s)
		if done {
			return steps
		}
	}

	t.Fatalf("producer did not finish after %d steps", maxSteps)
	return nil
}

func values(rnd *rand.Rand, n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = float64(rnd.IntN(n) + 1)
	}
	return v
}

func sortedCopy(v []float64) []float64 {
	c := slices.Clone(v)
	slices.Sort(c)
	return c
}

func TestProperties(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))

	for _, alg := range algorithms.List() {
		for _, n := range []int{0, 1, 2, 3, 50, 200} {
			tag := fmt.Sprintf("%s n=%d", alg, n)

			input := values(rnd, n)
			multiset := sortedCopy(input)

			p, err := algorithms.NewProducer(alg, input)
			test.DemandSuccess(t, err, tag)

			steps := run(t, p)

			var prev algorithms.Step
			for i, s := range steps {
				// permutation invariant
				if d := cmp.Diff(multiset, sortedCopy(s.Array)); d != "" {
					t.Fatalf("%s: step %d is not a permutation of the input: %s", tag, i, d)
				}

				// monotonicity
				if i > 0 {
					test.ExpectSuccess(t, s.Comparisons >= prev.Comparisons, tag, i)
					test.ExpectSuccess(t, s.Swaps >= prev.Swaps, tag, i)
					test.ExpectSuccess(t, len(s.Sorted) >= len(prev.Sorted), tag, i)
					for _, idx := range prev.Sorted {
						test.ExpectSuccess(t, slices.Contains(s.Sorted, idx), tag, i)
					}
				}

				// a step is either a comparison or a change but never both
				if i < len(steps)-1 {
					test.ExpectSuccess(t, (len(s.Comparing) == 0) != (len(s.Swapped) == 0), tag, i)
				}

				prev = s
			}

			// termination correctness
			final := steps[len(steps)-1]
			test.ExpectSuccess(t, algorithms.IsSorted(final.Array), tag)
			test.ExpectEquality(t, len(final.Sorted), n, tag)
			for i := range n {
				test.ExpectEquality(t, final.Sorted[i], i, tag)
			}
			test.ExpectEquality(t, len(final.Comparing), 0, tag)
			test.ExpectEquality(t, len(final.Swapped), 0, tag)
		}
	}
}

func TestInputUnchanged(t *testing.T) {
	for _, alg := range algorithms.List() {
		input := []float64{5, 4, 3, 2, 1}
		p, err := algorithms.NewProducer(alg, input)
		test.DemandSuccess(t, err)
		run(t, p)
		test.ExpectEquality(t, cmp.Diff(input, []float64{5, 4, 3, 2, 1}), "", alg)
	}
}

func TestTrivialInput(t *testing.T) {
	for _, alg := range algorithms.List() {
		for _, input := range [][]float64{{}, {7}} {
			p, err := algorithms.NewProducer(alg, input)
			test.DemandSuccess(t, err)

			s, done := p.Next()
			test.ExpectSuccess(t, done, alg)
			test.ExpectEquality(t, s.Comparisons, 0, alg)
			test.ExpectEquality(t, s.Swaps, 0, alg)
			test.ExpectEquality(t, len(s.Sorted), len(input), alg)
		}
	}
}

func TestExhaustedProducer(t *testing.T) {
	p, err := algorithms.NewProducer(algorithms.Quick, []float64{2, 1})
	test.DemandSuccess(t, err)

	steps := run(t, p)
	final := steps[len(steps)-1]

	// further calls continue to return the final step
	for range 3 {
		s, done := p.Next()
		test.ExpectSuccess(t, done)
		test.ExpectEquality(t, s.Comparisons, final.Comparisons)
		test.ExpectEquality(t, s.Swaps, final.Swaps)
	}
}

func TestBubbleScenario(t *testing.T) {
	p, err := algorithms.NewProducer(algorithms.Bubble, []float64{3, 1, 2})
	test.DemandSuccess(t, err)

	steps := run(t, p)
	final := steps[len(steps)-1]
	test.ExpectEquality(t, final.Comparisons, 3)
	test.ExpectEquality(t, final.Swaps, 2)
	test.ExpectEquality(t, cmp.Diff(final.Array, []float64{1, 2, 3}), "")

	// three comparisons, two swaps and the final step
	test.ExpectEquality(t, len(steps), 6)
}

func TestQuickEqualValues(t *testing.T) {
	p, err := algorithms.NewProducer(algorithms.Quick, []float64{5, 5, 5})
	test.DemandSuccess(t, err)

	steps := run(t, p)

	// the only swaps are the pivot placements and the pivot never moves
	for _, s := range steps {
		if len(s.Swapped) > 0 {
			test.ExpectEquality(t, s.Swapped[0], s.Swapped[1])
		}
		if len(s.Comparing) > 0 {
			test.ExpectEquality(t, s.Array[s.Comparing[0]] <= s.Array[s.Comparing[1]], true)
		}
	}

	final := steps[len(steps)-1]
	test.ExpectEquality(t, final.Swaps, 2)
	test.ExpectEquality(t, final.Comparisons, 3)
	test.ExpectEquality(t, cmp.Diff(final.Array, []float64{5, 5, 5}), "")
}

func TestMergeTrivial(t *testing.T) {
	for _, input := range [][]float64{{}, {7}} {
		p, err := algorithms.NewProducer(algorithms.Merge, input)
		test.DemandSuccess(t, err)

		steps := run(t, p)
		test.DemandEquality(t, len(steps), 1)
		test.ExpectEquality(t, steps[0].Comparisons, 0)
		test.ExpectEquality(t, steps[0].Swaps, 0)
		test.ExpectEquality(t, len(steps[0].Sorted), len(input))
	}
}

func TestMergeMoves(t *testing.T) {
	p, err := algorithms.NewProducer(algorithms.Merge, []float64{2, 1})
	test.DemandSuccess(t, err)

	steps := run(t, p)

	// one comparison, the right value rotated into position zero and then
	// the remaining left value written at position one
	test.DemandEquality(t, len(steps), 4)
	test.ExpectEquality(t, cmp.Diff(steps[0].Comparing, []int{0, 1}), "")
	test.ExpectEquality(t, cmp.Diff(steps[1].Swapped, []int{0}), "")
	test.ExpectEquality(t, cmp.Diff(steps[1].Array, []float64{1, 2}), "")
	test.ExpectEquality(t, cmp.Diff(steps[2].Swapped, []int{1}), "")
	test.ExpectEquality(t, steps[3].Swaps, 2)
}

// move is the part of a step that shows what the algorithm did
type move struct {
	Comparing []int
	Swapped   []int
}

func moves(steps []algorithms.Step) []move {
	m := make([]move, 0, len(steps))
	for _, s := range steps {
		m = append(m, move{Comparing: s.Comparing, Swapped: s.Swapped})
	}
	return m
}

func cmpr(i, j int) move {
	return move{Comparing: []int{i, j}}
}

func swpd(i ...int) move {
	return move{Swapped: i}
}

func TestStepSequences(t *testing.T) {
	tests := []struct {
		alg         algorithms.Algorithm
		input       []float64
		moves       []move
		comparisons int
		swaps       int
	}{
		// the left child is compared before the right child. extraction
		// swaps the root with the end of the heap
		{
			alg:   algorithms.Heap,
			input: []float64{4, 2, 3, 1},
			moves: []move{
				cmpr(1, 3), cmpr(0, 1), cmpr(0, 2),
				swpd(0, 3), cmpr(0, 1), cmpr(1, 2), swpd(0, 2),
				swpd(0, 2), cmpr(0, 1), swpd(0, 1),
				swpd(0, 1),
				{},
			},
			comparisons: 6,
			swaps:       5,
		},

		// equal values are taken from the left run
		{
			alg:   algorithms.Merge,
			input: []float64{2, 1, 2},
			moves: []move{
				cmpr(0, 1), swpd(0), swpd(1),
				cmpr(0, 2), swpd(0), cmpr(1, 2), swpd(1), swpd(2),
				{},
			},
			comparisons: 3,
			swaps:       5,
		},

		// values no greater than the pivot are swapped to the front of the
		// partition and the pivot is then swapped into place
		{
			alg:   algorithms.Quick,
			input: []float64{3, 1, 2},
			moves: []move{
				cmpr(0, 2), cmpr(1, 2), swpd(0, 1), swpd(1, 2),
				{},
			},
			comparisons: 2,
			swaps:       2,
		},
		{
			alg:   algorithms.Quick,
			input: []float64{1, 2, 3},
			moves: []move{
				cmpr(0, 2), cmpr(1, 2), swpd(2, 2),
				cmpr(0, 1), swpd(1, 1),
				{},
			},
			comparisons: 3,
			swaps:       2,
		},

		// a swap only happens when a smaller value was found
		{
			alg:   algorithms.Selection,
			input: []float64{2, 1, 3},
			moves: []move{
				cmpr(0, 1), cmpr(1, 2), swpd(0, 1),
				cmpr(1, 2),
				{},
			},
			comparisons: 3,
			swaps:       1,
		},
		{
			alg:   algorithms.Selection,
			input: []float64{1, 3, 2},
			moves: []move{
				cmpr(0, 1), cmpr(0, 2),
				cmpr(1, 2), swpd(1, 2),
				{},
			},
			comparisons: 3,
			swaps:       1,
		},
	}

	for _, tt := range tests {
		tag := fmt.Sprintf("%s %v", tt.alg, tt.input)

		p, err := algorithms.NewProducer(tt.alg, tt.input)
		test.DemandSuccess(t, err, tag)

		steps := run(t, p)
		test.ExpectEquality(t, cmp.Diff(moves(steps), tt.moves), "", tag)

		final := steps[len(steps)-1]
		test.ExpectEquality(t, final.Comparisons, tt.comparisons, tag)
		test.ExpectEquality(t, final.Swaps, tt.swaps, tag)
		test.ExpectEquality(t, cmp.Diff(final.Array, sortedCopy(tt.input)), "", tag)
	}
}

func TestHeapSortedOrder(t *testing.T) {
	p, err := algorithms.NewProducer(algorithms.Heap, []float64{4, 2, 3, 1})
	test.DemandSuccess(t, err)

	steps := run(t, p)
	test.DemandEquality(t, len(steps), 12)

	// the end of the array is marked after each extraction and position zero
	// is only marked by the final step
	test.ExpectEquality(t, len(steps[3].Sorted), 0)
	test.ExpectEquality(t, cmp.Diff(steps[4].Sorted, []int{3}), "")
	test.ExpectEquality(t, cmp.Diff(steps[8].Sorted, []int{2, 3}), "")
	test.ExpectEquality(t, cmp.Diff(steps[10].Sorted, []int{2, 3}), "")
	test.ExpectEquality(t, cmp.Diff(steps[11].Sorted, []int{0, 1, 2, 3}), "")
	for _, s := range steps[:11] {
		test.ExpectFailure(t, slices.Contains(s.Sorted, 0))
	}
}

func TestComparisonPrecedesSwap(t *testing.T) {
	rnd := rand.New(rand.NewPCG(3, 4))
	input := values(rnd, 30)

	for _, alg := range []algorithms.Algorithm{algorithms.Bubble, algorithms.Insertion} {
		p, err := algorithms.NewProducer(alg, input)
		test.DemandSuccess(t, err)

		steps := run(t, p)
		for i, s := range steps {
			if len(s.Swapped) > 0 {
				test.DemandSuccess(t, i > 0, alg)
				test.ExpectEquality(t, cmp.Diff(steps[i-1].Comparing, s.Swapped), "", alg, i)
			}
		}
	}
}

func TestExchangeCounts(t *testing.T) {
	// insertion sort of sorted input needs one comparison per value and
	// never swaps
	p, err := algorithms.NewProducer(algorithms.Insertion, []float64{1, 2, 3, 4, 5})
	test.DemandSuccess(t, err)
	steps := run(t, p)
	test.ExpectEquality(t, steps[len(steps)-1].Comparisons, 4)
	test.ExpectEquality(t, steps[len(steps)-1].Swaps, 0)

	// selection sort always compares every pair but only swaps when the
	// minimum is not already at the front
	p, err = algorithms.NewProducer(algorithms.Selection, []float64{3, 2, 1})
	test.DemandSuccess(t, err)
	steps = run(t, p)
	test.ExpectEquality(t, steps[len(steps)-1].Comparisons, 3)
	test.ExpectEquality(t, steps[len(steps)-1].Swaps, 1)

	// bubble sort of sorted input stops after the first pass
	p, err = algorithms.NewProducer(algorithms.Bubble, []float64{1, 2, 3, 4, 5})
	test.DemandSuccess(t, err)
	steps = run(t, p)
	test.ExpectEquality(t, steps[len(steps)-1].Comparisons, 4)
	test.ExpectEquality(t, len(steps), 5)
}

func TestNonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := algorithms.NewProducer(algorithms.Heap, []float64{1, v, 3})
		test.ExpectSuccess(t, curated.Is(err, algorithms.ProducerInitError))
	}
}

func TestParse(t *testing.T) {
	for _, alg := range algorithms.List() {
		a, err := algorithms.Parse(alg.String())
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, a, alg)

		a, err = algorithms.Parse(alg.Short())
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, a, alg)
	}

	a, err := algorithms.Parse("QUICKSORT")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, a, algorithms.Quick)

	// unknown names are an error and do not fall back to bubble sort
	_, err = algorithms.Parse("bogo sort")
	test.ExpectSuccess(t, curated.Is(err, algorithms.ConfigOutOfRange))

	_, err = algorithms.NewProducer(algorithms.Algorithm(100), []float64{1})
	test.ExpectSuccess(t, curated.Is(err, algorithms.ConfigOutOfRange))
}

func TestCycle(t *testing.T) {
	alg := algorithms.Bubble
	for range len(algorithms.List()) {
		alg = alg.Cycle()
	}
	test.ExpectEquality(t, alg, algorithms.Bubble)
}
