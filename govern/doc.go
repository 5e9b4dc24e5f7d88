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

// Package govern defines the states a sorting run can be in and the commands
// that move a run from one state to another.
//
// A run begins in the Idle state. Start moves an Idle or Paused run to the
// Running state and Pause moves a Running run to the Paused state. A Running
// run becomes Complete when the algorithm has no more steps. Reset returns a
// run in any state to Idle.
package govern
