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

// insertion sort grows a sorted prefix one value at a time. the new value is
// moved leftwards, one adjacent swap at a time, until its left neighbour is
// not larger than it.
type insertion struct {
	sequence

	// the value being inserted started at position i and is now at j+1
	i, j int

	// the value being inserted has found its place
	placed bool
}

func newInsertion(values []float64) *insertion {
	s := &insertion{
		sequence: newSequence(values),
		i:        1,
		j:        0,
	}
	if len(values) > 1 {
		s.mark(0)
	}
	return s
}

// Next implements the Producer interface.
func (s *insertion) Next() (Step, bool) {
	return s.next(s.plan)
}

func (s *insertion) plan() bool {
	n := len(s.values)

	if s.i >= n {
		return false
	}

	if s.j >= 0 && !s.placed {
		s.compare(s.j, s.j+1)
		if s.values[s.j] > s.values[s.j+1] {
			s.swap(s.j, s.j+1)
			s.j--
		} else {
			s.placed = true
		}
		return true
	}

	s.mark(s.i)
	s.i++
	s.j = s.i - 1
	s.placed = false

	return true
}
