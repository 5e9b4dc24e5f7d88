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

package digest_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gophersort/algorithms"
	"github.com/jetsetilly/gophersort/digest"
	"github.com/jetsetilly/gophersort/test"
)

// drain the producer created by the digest's factory. returns the final step
func run(t *testing.T, dig *digest.Steps, alg algorithms.Algorithm, values []float64) algorithms.Step {
	t.Helper()

	p, err := dig.Factory(alg, values)
	test.DemandSuccess(t, err)

	for {
		step, done := p.Next()
		if done {
			return step
		}
	}
}

func TestStepsStability(t *testing.T) {
	values := []float64{5, 3, 8, 1, 9, 2, 7}

	a := digest.NewSteps()
	b := digest.NewSteps()
	zero := a.Hash()
	test.ExpectEquality(t, zero, strings.Repeat("0", 40))

	final := run(t, a, algorithms.Quick, values)
	test.ExpectSuccess(t, algorithms.IsSorted(final.Array))
	run(t, b, algorithms.Quick, values)

	test.ExpectInequality(t, a.Hash(), zero)
	test.ExpectEquality(t, a.Hash(), b.Hash())
	test.ExpectEquality(t, a.Count(), b.Count())

	// a different algorithm produces a different sequence of steps
	c := digest.NewSteps()
	run(t, c, algorithms.Heap, values)
	test.ExpectInequality(t, a.Hash(), c.Hash())

	// a different array produces a different sequence of steps
	d := digest.NewSteps()
	run(t, d, algorithms.Quick, []float64{5, 3, 8, 1, 9, 7, 2})
	test.ExpectInequality(t, a.Hash(), d.Hash())

	a.ResetDigest()
	test.ExpectEquality(t, a.Hash(), zero)
	test.ExpectEquality(t, a.Count(), 0)
}

func TestStepsChained(t *testing.T) {
	values := []float64{3, 1, 2}

	// running twice into the same digest is not the same as running once
	a := digest.NewSteps()
	run(t, a, algorithms.Bubble, values)
	once := a.Hash()
	run(t, a, algorithms.Bubble, values)
	test.ExpectInequality(t, a.Hash(), once)
}

func TestStepsFactoryError(t *testing.T) {
	dig := digest.NewSteps()
	_, err := dig.Factory(algorithms.Algorithm(-1), []float64{1, 2})
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, dig.Count(), 0)
}

func TestAudio(t *testing.T) {
	a := digest.NewAudio()
	b := digest.NewAudio()
	zero := a.Hash()

	values := []float64{1, 2, 3}
	a.OnComparison(values, []int{0, 1}, 3)
	b.OnSwap(values, []int{0, 1}, 3)
	test.ExpectInequality(t, a.Hash(), b.Hash())

	a.ResetDigest()
	b.ResetDigest()
	for _, dig := range []*digest.Audio{a, b} {
		dig.OnComparison(values, []int{0, 2}, 3)
		dig.OnSwap(values, []int{1, 2}, 3)
		dig.OnCompletion()
	}
	test.ExpectEquality(t, a.Hash(), b.Hash())
	test.ExpectInequality(t, a.Hash(), zero)
}
