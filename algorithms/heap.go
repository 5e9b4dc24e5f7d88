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

type siftStage int

const (
	siftLeft siftStage = iota
	siftRight
	siftExchange
	siftReturn
)

// siftFrame is a pending call to sift the value at root down through a heap
// of the given size
type siftFrame struct {
	size    int
	root    int
	largest int
	stage   siftStage
}

// heap sort arranges the array into a max-heap and then repeatedly moves the
// root of the heap (the largest value) to the end of the unsorted part of the
// array.
type heap struct {
	sequence
	frames []siftFrame

	// building is true while the heap is being built. cursor is the next
	// root to sift down when building and the next position to receive the
	// root of the heap when extracting
	building bool
	cursor   int
}

func newHeap(values []float64) *heap {
	return &heap{
		sequence: newSequence(values),
		building: true,
		cursor:   len(values)/2 - 1,
	}
}

// Next implements the Producer interface.
func (s *heap) Next() (Step, bool) {
	return s.next(s.plan)
}

func (s *heap) sift(size int, root int) {
	s.frames = append(s.frames, siftFrame{size: size, root: root, largest: root})
}

func (s *heap) plan() bool {
	if len(s.frames) > 0 {
		s.planSift()
		return true
	}

	if s.building {
		if s.cursor >= 0 {
			s.sift(len(s.values), s.cursor)
			s.cursor--
			return true
		}
		s.building = false
		s.cursor = len(s.values) - 1
		return true
	}

	if s.cursor > 0 {
		s.swap(0, s.cursor)
		s.mark(s.cursor)
		s.sift(s.cursor, 0)
		s.cursor--
		return true
	}

	s.mark(0)
	return false
}

func (s *heap) planSift() {
	f := &s.frames[len(s.frames)-1]

	switch f.stage {
	case siftLeft:
		f.stage = siftRight
		if l := 2*f.root + 1; l < f.size {
			s.compare(f.largest, l)
			if s.values[l] > s.values[f.largest] {
				f.largest = l
			}
		}

	case siftRight:
		f.stage = siftExchange
		if r := 2*f.root + 2; r < f.size {
			s.compare(f.largest, r)
			if s.values[r] > s.values[f.largest] {
				f.largest = r
			}
		}

	case siftExchange:
		if f.largest == f.root {
			s.frames = s.frames[:len(s.frames)-1]
			return
		}
		f.stage = siftReturn
		s.swap(f.root, f.largest)

		// f is not valid after the push
		s.sift(f.size, f.largest)

	case siftReturn:
		s.frames = s.frames[:len(s.frames)-1]
	}
}
