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

// Package scheduler paces the advance of a controller.Controller. The host
// calls Tick() on every display refresh and the Scheduler decides whether
// enough time has passed since the previous step for another step to be
// applied.
//
// The time between steps is decided by the speed setting. See the Delay()
// function for details.
//
// At most one step is applied per Tick() and steps are never batched, even if
// the host has fallen behind. The Scheduler stops itself when the Controller
// is no longer running, either because it has been paused or reset, because
// the run has completed or because of an error. A stopped Scheduler must be
// restarted with Schedule(), which always begins a fresh loop.
package scheduler
