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

package controller

import (
	"time"

	"github.com/jetsetilly/gophersort/govern"
)

// Tick is the configuration for a single call to Advance(). It is created
// once per host tick and shared by every Controller advanced during that tick.
type Tick struct {
	Now   time.Time
	Speed int
	Sound bool
}

// Outcome is the result of a call to Advance().
type Outcome int

// List of valid Outcome values.
const (
	// the Controller was not running and nothing happened
	Ignored Outcome = iota

	// a step was applied
	Stepped

	// the algorithm has finished and the Controller is now complete
	Completed
)

func (o Outcome) String() string {
	switch o {
	case Ignored:
		return "ignored"
	case Stepped:
		return "stepped"
	case Completed:
		return "completed"
	}
	return ""
}

// Snapshot is a copy of the state of a run. It contains everything needed to
// render a panel.
type Snapshot struct {
	AlgorithmName string
	State         govern.State

	Array     []float64
	Comparing []int
	Swapped   []int
	Sorted    []int

	Comparisons int
	Swaps       int
	TimeElapsed time.Duration

	IsComplete bool
	IsLoading  bool

	// the error message. empty if there is no error
	Error string
}

// MaxValue returns the largest value in the array. Returns zero for an empty
// array.
func (s Snapshot) MaxValue() float64 {
	var m float64
	for _, v := range s.Array {
		m = max(m, v)
	}
	return m
}
