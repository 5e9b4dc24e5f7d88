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

// selection sort finds the smallest value in the unsorted part of the array
// and moves it to the front of that part.
type selection struct {
	sequence

	// the front of the unsorted part, the current candidate for the smallest
	// value and the position being compared with the candidate
	i, min, j int
}

func newSelection(values []float64) *selection {
	return &selection{
		sequence: newSequence(values),
		j:        1,
	}
}

// Next implements the Producer interface.
func (s *selection) Next() (Step, bool) {
	return s.next(s.plan)
}

func (s *selection) plan() bool {
	n := len(s.values)

	if s.i >= n-1 {
		s.mark(n - 1)
		return false
	}

	if s.j < n {
		s.compare(s.min, s.j)
		if s.values[s.j] < s.values[s.min] {
			s.min = s.j
		}
		s.j++
		return true
	}

	if s.min != s.i {
		s.swap(s.i, s.min)
	}
	s.mark(s.i)

	s.i++
	s.min = s.i
	s.j = s.i + 1

	return true
}
