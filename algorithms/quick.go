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

// quickFrame is a pending call to sort the range low to high inclusive
type quickFrame struct {
	low, high int

	// partitioning has started
	partitioning bool

	// i is the end of the partition of values no greater than the pivot. j
	// is the position being compared with the pivot
	i, j int
}

// quick sort partitions the range around the last value in the range (the
// pivot) and then sorts both sides of the pivot.
type quick struct {
	sequence
	frames []quickFrame
}

func newQuick(values []float64) *quick {
	s := &quick{sequence: newSequence(values)}
	if len(values) > 1 {
		s.frames = append(s.frames, quickFrame{low: 0, high: len(values) - 1})
	}
	return s
}

// Next implements the Producer interface.
func (s *quick) Next() (Step, bool) {
	return s.next(s.plan)
}

func (s *quick) plan() bool {
	if len(s.frames) == 0 {
		return false
	}

	f := &s.frames[len(s.frames)-1]

	if !f.partitioning {
		switch {
		case f.low < f.high:
			f.partitioning = true
			f.i = f.low - 1
			f.j = f.low
		case f.low == f.high:
			s.mark(f.low)
			s.frames = s.frames[:len(s.frames)-1]
		default:
			s.frames = s.frames[:len(s.frames)-1]
		}
		return true
	}

	if f.j < f.high {
		s.compare(f.j, f.high)
		if s.values[f.j] <= s.values[f.high] {
			f.i++
			if f.i != f.j {
				s.swap(f.i, f.j)
			}
		}
		f.j++
		return true
	}

	// the pivot is always swapped into place, even if it is already there
	p := f.i + 1
	s.swap(p, f.high)
	s.mark(p)

	low, high := f.low, f.high
	s.frames = s.frames[:len(s.frames)-1]

	// the left side is sorted first so it is pushed last
	s.frames = append(s.frames, quickFrame{low: p + 1, high: high})
	s.frames = append(s.frames, quickFrame{low: low, high: p - 1})

	return true
}
