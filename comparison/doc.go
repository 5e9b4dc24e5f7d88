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

// Package comparison runs two sorting algorithms side by side over the same
// array. Each side of the comparison is called a panel and has its own
// controller.Controller and scheduler.Scheduler.
//
// The Comparison type is the only writer of the GlobalState. Commands from the
// host (keyboard input, command line, preferences) are applied through the
// methods of the Comparison and the host calls Tick() once per display
// refresh. All methods must be called from the same goroutine.
//
// Changing the array or either algorithm discards both runs. Changing the
// speed or the sound setting takes effect from the next tick and does not
// interrupt the runs.
//
// When both panels have completed the comparison is reset automatically after
// coordinator.AutoResetDelay.
package comparison
