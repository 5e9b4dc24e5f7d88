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

package terminal

import (
	"bufio"
	"io"
)

// Action is a request from the keyboard.
type Action int

// List of valid Action values.
const (
	StartPause Action = iota
	Reset
	NewArray
	Faster
	Slower
	ToggleSound
	CycleLeft
	CycleRight
	CycleDistribution
	Quit
)

func (a Action) String() string {
	switch a {
	case StartPause:
		return "start/pause"
	case Reset:
		return "reset"
	case NewArray:
		return "new array"
	case Faster:
		return "faster"
	case Slower:
		return "slower"
	case ToggleSound:
		return "sound"
	case CycleLeft:
		return "left algorithm"
	case CycleRight:
		return "right algorithm"
	case CycleDistribution:
		return "distribution"
	case Quit:
		return "quit"
	}
	return "unknown action"
}

// ActionForKey returns the Action for the key. Returns false if the key has
// no action.
func ActionForKey(key rune) (Action, bool) {
	switch key {
	case ' ':
		return StartPause, true
	case 'r', 'R':
		return Reset, true
	case 'n', 'N':
		return NewArray, true
	case '+', '=':
		return Faster, true
	case '-', '_':
		return Slower, true
	case 's', 'S':
		return ToggleSound, true
	case '1':
		return CycleLeft, true
	case '2':
		return CycleRight, true
	case 'd', 'D':
		return CycleDistribution, true
	case 'q', 'Q', 3:
		return Quit, true
	}
	return 0, false
}

// KeyHelp is a one line summary of the keys.
const KeyHelp = "space start/pause  r reset  n new array  +/- speed  s sound  1/2 algorithm  d distribution  q quit"

// ReadKeys reads runes from the reader and sends them on the returned channel.
// The channel is closed when the reader returns an error, including io.EOF.
//
// The goroutine started by ReadKeys() is blocked in the reader most of the
// time. It ends when the reader returns an error.
func ReadKeys(r io.Reader) <-chan rune {
	keys := make(chan rune, 16)
	go func() {
		defer close(keys)
		br := bufio.NewReader(r)
		for {
			k, _, err := br.ReadRune()
			if err != nil {
				return
			}
			keys <- k
		}
	}()
	return keys
}
