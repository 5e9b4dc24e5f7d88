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

// Package coordinator watches the completion of the two panels of a
// comparison and decides when the comparison should be reset automatically.
//
// The Coordinator has no goroutine of its own. The deadline is checked every
// time Tick() is called, which means the reset happens on the first tick after
// the deadline has passed.
package coordinator

import (
	"time"

	"github.com/jetsetilly/gophersort/logger"
)

// AutoResetDelay is the time between both panels completing and the
// automatic reset.
const AutoResetDelay = 3 * time.Second

// Coordinator implements the automatic reset.
type Coordinator struct {
	armed    bool
	deadline time.Time
}

// Tick should be called on every host tick with the completion status of
// both panels. Returns true when the comparison should be reset. After
// returning true the Coordinator is disarmed and will not return true again
// until both panels have completed again.
func (co *Coordinator) Tick(now time.Time, leftComplete bool, rightComplete bool) bool {
	if !leftComplete || !rightComplete {
		if co.armed {
			logger.Log(logger.Allow, "coordinator", "auto reset cancelled")
		}
		co.armed = false
		return false
	}

	if !co.armed {
		co.armed = true
		co.deadline = now.Add(AutoResetDelay)
		logger.Logf(logger.Allow, "coordinator", "auto reset armed for %s", AutoResetDelay)
		return false
	}

	if now.Before(co.deadline) {
		return false
	}

	co.armed = false
	logger.Log(logger.Allow, "coordinator", "auto reset")

	return true
}

// Cancel a pending automatic reset. The timer is armed again the next time
// Tick() sees both panels complete.
func (co *Coordinator) Cancel() {
	co.armed = false
}

// Armed returns true if an automatic reset is pending.
func (co *Coordinator) Armed() bool {
	return co.armed
}

// Deadline returns the time of the pending automatic reset. The value is
// meaningless if Armed() returns false.
func (co *Coordinator) Deadline() time.Time {
	return co.deadline
}
