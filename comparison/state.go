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

package comparison

import (
	"slices"

	"github.com/jetsetilly/gophersort/algorithms"
	"github.com/jetsetilly/gophersort/arrays"
)

// Panel identifies one side of the comparison.
type Panel int

// List of valid Panel values.
const (
	Left Panel = iota
	Right
	NumPanels
)

func (p Panel) String() string {
	switch p {
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown panel"
}

// Panels returns all panels in order.
func Panels() []Panel {
	return []Panel{Left, Right}
}

// GlobalState is the configuration and run status shared by both panels.
type GlobalState struct {
	// the array being sorted by both panels
	Array []float64

	ElementCount int
	Distribution arrays.Distribution
	Speed        int
	Sound        bool

	// Running is true while either panel has a run in progress. Paused is
	// true if no panel is running but at least one is paused
	Running bool
	Paused  bool

	Algorithms [NumPanels]algorithms.Algorithm
}

func (g GlobalState) clone() GlobalState {
	g.Array = slices.Clone(g.Array)
	return g
}
