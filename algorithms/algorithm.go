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

import (
	"strings"

	"github.com/jetsetilly/gophersort/curated"
)

// Sentinal error patterns.
const (
	ProducerInitError = "producer init: %v"
	ConfigOutOfRange  = "config out of range: %v"
)

// Algorithm identifies one of the sorting algorithms that can be used to create
// a Producer.
type Algorithm int

// List of valid Algorithm values.
const (
	Bubble Algorithm = iota
	Selection
	Insertion
	Merge
	Quick
	Heap
	numAlgorithms
)

var names = [numAlgorithms]string{
	"Bubble Sort",
	"Selection Sort",
	"Insertion Sort",
	"Merge Sort",
	"Quick Sort",
	"Heap Sort",
}

var shortNames = [numAlgorithms]string{
	"bubble",
	"selection",
	"insertion",
	"merge",
	"quick",
	"heap",
}

func (alg Algorithm) String() string {
	if !alg.Valid() {
		return "unknown algorithm"
	}
	return names[alg]
}

// Short returns the lower case name of the algorithm without the "sort"
// suffix.
func (alg Algorithm) Short() string {
	if !alg.Valid() {
		return "unknown"
	}
	return shortNames[alg]
}

// Valid returns false if the Algorithm value is not one of the listed values.
func (alg Algorithm) Valid() bool {
	return alg >= 0 && alg < numAlgorithms
}

// Cycle returns the algorithm that follows alg in the list, wrapping around
// at the end.
func (alg Algorithm) Cycle() Algorithm {
	return (alg + 1) % numAlgorithms
}

// List returns all algorithms in order.
func List() []Algorithm {
	l := make([]Algorithm, 0, numAlgorithms)
	for alg := range numAlgorithms {
		l = append(l, alg)
	}
	return l
}

// Parse converts a name into an Algorithm. The name can be either the display
// name returned by String() or the short name returned by Short(). Matching is
// case insensitive.
//
// An unrecognised name is a ConfigOutOfRange error.
func Parse(name string) (Algorithm, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.TrimSuffix(n, "sort")
	n = strings.TrimRight(n, " -_")

	for alg := range numAlgorithms {
		if n == shortNames[alg] {
			return alg, nil
		}
	}

	return 0, curated.Errorf(ConfigOutOfRange, curated.Errorf("unknown algorithm (%s)", name))
}

// NewProducer creates a new producer for the algorithm. The values are copied
// and the caller is free to change the slice afterwards.
//
// An invalid algorithm value is a ConfigOutOfRange error. Values that are not
// finite numbers cause a ProducerInitError.
func NewProducer(alg Algorithm, values []float64) (Producer, error) {
	if !alg.Valid() {
		return nil, curated.Errorf(ConfigOutOfRange, curated.Errorf("unknown algorithm (%d)", int(alg)))
	}

	if err := Check(values); err != nil {
		return nil, curated.Errorf(ProducerInitError, err)
	}

	switch alg {
	case Bubble:
		return newBubble(values), nil
	case Selection:
		return newSelection(values), nil
	case Insertion:
		return newInsertion(values), nil
	case Merge:
		return newMerge(values), nil
	case Quick:
		return newQuick(values), nil
	case Heap:
		return newHeap(values), nil
	}

	panic("unreachable")
}
