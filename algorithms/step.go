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

package algorithms

// Step is a snapshot of the algorithm's progress after a single micro-action.
// A Step should be treated as immutable. The slices are not shared with the
// Producer.
type Step struct {
	// the array after the micro-action. always a permutation of the values
	// the Producer was created with
	Array []float64

	// positions being compared. empty if the step is not a comparison
	Comparing []int

	// positions that have just been changed. empty if the step is a
	// comparison
	Swapped []int

	// positions that are known to hold their final value, in ascending order
	Sorted []int

	// running totals
	Comparisons int
	Swaps       int
}

// Producer is implemented by all sorting algorithms in the package.
type Producer interface {
	// Next advances the algorithm by one micro-action and returns the
	// resulting Step. When the algorithm has finished, the final Step is
	// returned with done set to true.
	Next() (step Step, done bool)
}
