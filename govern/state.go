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

package govern

// State indicates the state of a sorting run.
type State int

// List of possible states.
const (
	Idle State = iota
	Running
	Paused
	Complete
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Running:
		return "Running"
	case Paused:
		return "Paused"
	case Complete:
		return "Complete"
	}
	return ""
}

// Command is a request to change the state of a run.
type Command int

// List of possible commands.
const (
	Start Command = iota
	Pause
	Reset
	Advance
)

func (c Command) String() string {
	switch c {
	case Start:
		return "start"
	case Pause:
		return "pause"
	case Reset:
		return "reset"
	case Advance:
		return "advance"
	}
	return ""
}

// Permitted returns true if the command has an effect in the state.
//
// Rules:
//
//  1. Reset is permitted in every state
//
//  2. Start is permitted in the Idle and Paused states
//
//  3. Pause and Advance are permitted only in the Running state
func Permitted(state State, cmd Command) bool {
	switch cmd {
	case Reset:
		return true
	case Start:
		return state == Idle || state == Paused
	case Pause, Advance:
		return state == Running
	}
	return false
}
