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

// the micro-actions that an algorithm can plan
type opKind int

const (
	// compare the values at positions i and j
	opCompare opKind = iota

	// exchange the values at positions i and j
	opSwap

	// move the value at position j to position i. the values between i and
	// j-1 shift one position to the right. i must be less than j
	opRotate

	// the value at position i is already in its output position. the step
	// counts as a swap because the position has been written
	opWrite

	// position i holds its final value. this does not produce a step
	opMark
)

type op struct {
	kind opKind
	i, j int
}

// sequence is the engine shared by all algorithms. an algorithm plans one or
// more operations at a time and the sequence applies them one at a time, with
// each call to next() applying exactly one operation that produces a step.
//
// the plan function is only called when the queue is empty so the algorithm
// always sees the array after every previously planned operation has been
// applied.
type sequence struct {
	values []float64
	sorted []bool

	comparisons int
	swaps       int

	queue []op

	// the algorithm has nothing more to plan. once the queue is also empty
	// the sequence is finished
	exhausted bool
}

func newSequence(values []float64) sequence {
	s := sequence{
		values: make([]float64, len(values)),
		sorted: make([]bool, len(values)),
		queue:  make([]op, 0, 4),
	}
	copy(s.values, values)

	// a single value or no values at all is already sorted. the first call
	// to next() will return the final step
	s.exhausted = len(values) <= 1

	return s
}

func (s *sequence) compare(i, j int) {
	s.queue = append(s.queue, op{kind: opCompare, i: i, j: j})
}

func (s *sequence) swap(i, j int) {
	s.queue = append(s.queue, op{kind: opSwap, i: i, j: j})
}

func (s *sequence) rotate(i, j int) {
	s.queue = append(s.queue, op{kind: opRotate, i: i, j: j})
}

func (s *sequence) write(i int) {
	s.queue = append(s.queue, op{kind: opWrite, i: i})
}

func (s *sequence) mark(i int) {
	s.queue = append(s.queue, op{kind: opMark, i: i})
}

// next applies planned operations until one of them produces a step. the plan
// function is called whenever the queue is empty. plan should return false
// when there is nothing left to plan, although it may still have added
// operations to the queue on that call.
func (s *sequence) next(plan func() bool) (Step, bool) {
	for {
		for len(s.queue) > 0 {
			o := s.queue[0]
			s.queue = s.queue[1:]
			if step, ok := s.apply(o); ok {
				return step, false
			}
		}

		if s.exhausted {
			return s.final(), true
		}

		if !plan() {
			s.exhausted = true
		}
	}
}

// apply the operation to the array. returns true if the operation produces a
// step.
func (s *sequence) apply(o op) (Step, bool) {
	switch o.kind {
	case opCompare:
		s.comparisons++
		return s.snapshot([]int{o.i, o.j}, nil), true

	case opSwap:
		s.values[o.i], s.values[o.j] = s.values[o.j], s.values[o.i]
		s.swaps++
		return s.snapshot(nil, []int{o.i, o.j}), true

	case opRotate:
		v := s.values[o.j]
		copy(s.values[o.i+1:o.j+1], s.values[o.i:o.j])
		s.values[o.i] = v
		s.swaps++
		return s.snapshot(nil, []int{o.i}), true

	case opWrite:
		s.swaps++
		return s.snapshot(nil, []int{o.i}), true

	case opMark:
		s.sorted[o.i] = true
	}

	return Step{}, false
}

// final marks every position as sorted and returns the terminal step
func (s *sequence) final() Step {
	for i := range s.sorted {
		s.sorted[i] = true
	}
	return s.snapshot(nil, nil)
}

func (s *sequence) snapshot(comparing []int, swapped []int) Step {
	st := Step{
		Array:       make([]float64, len(s.values)),
		Comparing:   comparing,
		Swapped:     swapped,
		Sorted:      make([]int, 0, len(s.sorted)),
		Comparisons: s.comparisons,
		Swaps:       s.swaps,
	}
	copy(st.Array, s.values)
	for i, ok := range s.sorted {
		if ok {
			st.Sorted = append(st.Sorted, i)
		}
	}
	return st
}
