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

// Package controller implements the Controller type. A Controller runs a
// single sorting algorithm over an array, one step at a time, and keeps the
// state of the run: the most recent step, the run metrics and whether the run
// has completed.
//
// A Controller does not decide when to advance. That is the job of the
// scheduler package, which calls Advance() at a rate dictated by the speed
// setting.
//
// The state of the run can be retrieved at any time with Snapshot(). A
// Snapshot is a copy and can be kept by the caller.
//
// Audible feedback is sent to an audio.Sink as the run advances. Feedback is
// only sent if the Tick passed to Advance() says that sound is enabled. A
// comparison or swap involving the same positions as the previous comparison
// or swap is not repeated.
//
// Errors are never retried. If the algorithm cannot be started, or if it
// fails while advancing, the error is stored and the Controller is reset. The
// error remains visible in the Snapshot until the next call to Start() or
// Reset().
package controller
