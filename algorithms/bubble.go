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

// bubble sort compares adjacent pairs and swaps them if they are out of
// order. after each pass the largest unsorted value has reached its final
// position. a pass without any swaps means that the remaining values are
// already in order.
type bubble struct {
	sequence

	// pass number and position within the pass
	i, j int

	// whether the current pass has swapped anything
	swapped bool
}

func newBubble(values []float64) *bubble {
	return &bubble{sequence: newSequence(values)}
}

// Next implements the Producer interface.
func (b *bubble) Next() (Step, bool) {
	return b.next(b.plan)
}

func (b *bubble) plan() bool {
	n := len(b.values)

	if b.i >= n-1 {
		return false
	}

	if b.j < n-b.i-1 {
		b.compare(b.j, b.j+1)
		if b.values[b.j] > b.values[b.j+1] {
			b.swap(b.j, b.j+1)
			b.swapped = true
		}
		b.j++
		return true
	}

	// end of pass
	b.mark(n - b.i - 1)

	if !b.swapped {
		for k := range n - b.i - 1 {
			b.mark(k)
		}
		return false
	}

	b.i++
	b.j = 0
	b.swapped = false

	return true
}
