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

package audio

// Sink is implemented by anything that reacts to the audible events of a
// sorting run. Implementations must not block.
type Sink interface {
	// values is the array at the time of the event and indices are the
	// positions involved. maxValue is the largest value in the array
	OnComparison(values []float64, indices []int, maxValue float64)
	OnSwap(values []float64, indices []int, maxValue float64)
	OnCompletion()
}

// Multi forwards events to every Sink in the list.
type Multi []Sink

// OnComparison implements the Sink interface.
func (m Multi) OnComparison(values []float64, indices []int, maxValue float64) {
	for _, s := range m {
		s.OnComparison(values, indices, maxValue)
	}
}

// OnSwap implements the Sink interface.
func (m Multi) OnSwap(values []float64, indices []int, maxValue float64) {
	for _, s := range m {
		s.OnSwap(values, indices, maxValue)
	}
}

// OnCompletion implements the Sink interface.
func (m Multi) OnCompletion() {
	for _, s := range m {
		s.OnCompletion()
	}
}

// EventKind identifies the kind of an Event.
type EventKind int

// List of event kinds.
const (
	Comparison EventKind = iota
	Swap
	Completion
)

func (k EventKind) String() string {
	switch k {
	case Comparison:
		return "comparison"
	case Swap:
		return "swap"
	case Completion:
		return "completion"
	}
	return ""
}

// Event is a record of a single call to a Sink.
type Event struct {
	Kind     EventKind
	Values   []float64
	Indices  []int
	MaxValue float64
}

// Recorder is a Sink that remembers every event it receives.
type Recorder struct {
	Events []Event
}

func (r *Recorder) record(kind EventKind, values []float64, indices []int, maxValue float64) {
	e := Event{
		Kind:     kind,
		Values:   append([]float64(nil), values...),
		Indices:  append([]int(nil), indices...),
		MaxValue: maxValue,
	}
	r.Events = append(r.Events, e)
}

// OnComparison implements the Sink interface.
func (r *Recorder) OnComparison(values []float64, indices []int, maxValue float64) {
	r.record(Comparison, values, indices, maxValue)
}

// OnSwap implements the Sink interface.
func (r *Recorder) OnSwap(values []float64, indices []int, maxValue float64) {
	r.record(Swap, values, indices, maxValue)
}

// OnCompletion implements the Sink interface.
func (r *Recorder) OnCompletion() {
	r.record(Completion, nil, nil, 0)
}

// Count returns the number of recorded events of the kind.
func (r *Recorder) Count(kind EventKind) int {
	var n int
	for _, e := range r.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
