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

	"github.com/jetsetilly/gophersort/algorithms"
)

// Metrics accumulates the counts and timing of a run. Time spent paused does
// not count towards the elapsed time.
type Metrics struct {
	Comparisons int
	Swaps       int

	// time accumulated before the most recent resume
	accumulated time.Duration

	// the time the clock was most recently started. the zero value means
	// the clock is not running
	since time.Time

	elapsed time.Duration
}

// Elapsed returns the time spent running at the time of the most recent
// update.
func (m *Metrics) Elapsed() time.Duration {
	return m.elapsed
}

func (m *Metrics) reset() {
	*m = Metrics{}
}

// start or resume the clock
func (m *Metrics) resume(now time.Time) {
	m.since = now
}

// stop the clock. the elapsed time no longer changes
func (m *Metrics) suspend(now time.Time) {
	if m.since.IsZero() {
		return
	}
	m.accumulated += now.Sub(m.since)
	m.elapsed = m.accumulated
	m.since = time.Time{}
}

// update counts from step and the elapsed time from the clock
func (m *Metrics) update(step algorithms.Step, now time.Time) {
	m.Comparisons = step.Comparisons
	m.Swaps = step.Swaps
	if !m.since.IsZero() {
		m.elapsed = m.accumulated + now.Sub(m.since)
	}
}
