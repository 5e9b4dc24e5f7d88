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

type mergePhase int

const (
	mergeSplit mergePhase = iota
	mergeLeftSorted
	mergeRightSorted
	mergeMerging
)

// mergeFrame is a pending call to sort the range start to end inclusive
type mergeFrame struct {
	start, end int
	mid        int
	phase      mergePhase

	// during merging, k is the output position, the left run occupies k to m
	// and the head of the right run is at r. r is always m+1
	k, m, r int
}

// merge sort splits the range at the midpoint, sorts each half and then merges
// the two halves. merging is performed in place: a value taken from the right
// half is rotated into the output position.
type merge struct {
	sequence
	frames []mergeFrame
}

func newMerge(values []float64) *merge {
	s := &merge{sequence: newSequence(values)}
	if len(values) > 1 {
		s.frames = append(s.frames, mergeFrame{start: 0, end: len(values) - 1})
	}
	return s
}

// Next implements the Producer interface.
func (s *merge) Next() (Step, bool) {
	return s.next(s.plan)
}

func (s *merge) push(start, end int) {
	s.frames = append(s.frames, mergeFrame{start: start, end: end})
}

func (s *merge) pop() {
	s.frames = s.frames[:len(s.frames)-1]
}

func (s *merge) plan() bool {
	if len(s.frames) == 0 {
		return false
	}

	f := &s.frames[len(s.frames)-1]

	switch f.phase {
	case mergeSplit:
		if f.start > f.end {
			s.pop()
			return true
		}
		if f.start == f.end {
			s.mark(f.start)
			s.pop()
			return true
		}
		f.mid = (f.start + f.end) / 2
		f.phase = mergeLeftSorted

		// f is not valid after the push
		s.push(f.start, f.mid)

	case mergeLeftSorted:
		f.phase = mergeRightSorted
		s.push(f.mid+1, f.end)

	case mergeRightSorted:
		f.phase = mergeMerging
		f.k = f.start
		f.m = f.mid
		f.r = f.mid + 1

	case mergeMerging:
		if f.k <= f.m && f.r <= f.end {
			s.compare(f.k, f.r)
			if s.values[f.k] <= s.values[f.r] {
				s.write(f.k)
			} else {
				s.rotate(f.k, f.r)
				f.m++
				f.r++
			}
			f.k++
			return true
		}

		// one of the runs is exhausted and the values that remain are
		// already in place
		if f.k <= f.end {
			s.write(f.k)
			f.k++
			return true
		}

		for i := f.start; i <= f.end; i++ {
			s.mark(i)
		}
		s.pop()
	}

	return true
}
