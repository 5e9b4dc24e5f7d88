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

package scheduler

import (
	"time"

	"github.com/jetsetilly/gophersort/controller"
	"github.com/jetsetilly/gophersort/govern"
	"github.com/jetsetilly/gophersort/logger"
)

// The range of valid speed values.
const (
	MinSpeed = 1
	MaxSpeed = 10
)

// ClampSpeed forces the speed into the range MinSpeed to MaxSpeed.
func ClampSpeed(speed int) int {
	return min(max(speed, MinSpeed), MaxSpeed)
}

// Delay returns the minimum time between steps for the speed. The speed is
// clamped to the valid range before the delay is calculated.
//
//	delay = 510 - 50 * speed milliseconds
//
// The slowest speed of 1 is a delay of 460ms and the fastest speed of 10 is a
// delay of 10ms.
func Delay(speed int) time.Duration {
	return time.Duration(510-50*ClampSpeed(speed)) * time.Millisecond
}

// Advancer is the part of the controller.Controller that the Scheduler uses.
type Advancer interface {
	Advance(tick controller.Tick) (controller.Outcome, error)
	State() govern.State
}

// Handle identifies a scheduling loop. The zero value is not a valid handle.
type Handle int

// Scheduler paces an Advancer.
type Scheduler struct {
	ctl Advancer

	// the active loop. zero if there is no active loop
	handle Handle
	next   Handle

	// the time the most recent step was applied
	baseline    time.Time
	hasBaseline bool
}

// NewScheduler is the preferred method of initialisation for the Scheduler
// type.
func NewScheduler(ctl Advancer) *Scheduler {
	return &Scheduler{ctl: ctl}
}

// Schedule begins a new loop. Any previous loop is forgotten and the first
// Tick() of the new loop applies a step immediately.
func (s *Scheduler) Schedule() Handle {
	s.next++
	s.handle = s.next
	s.hasBaseline = false
	return s.handle
}

// Cancel the active loop.
func (s *Scheduler) Cancel() {
	s.handle = 0
}

// Active returns true if there is an active loop.
func (s *Scheduler) Active() bool {
	return s.handle != 0
}

// Handle returns the handle of the active loop. Returns zero if there is no
// active loop.
func (s *Scheduler) Handle() Handle {
	return s.handle
}

// Tick is called by the host on every display refresh. Returns true if a step
// was applied. An error from the Advancer ends the loop and is returned.
func (s *Scheduler) Tick(tick controller.Tick) (bool, error) {
	if s.handle == 0 {
		return false, nil
	}

	if s.ctl.State() != govern.Running {
		s.Cancel()
		return false, nil
	}

	if s.hasBaseline && tick.Now.Sub(s.baseline) < Delay(tick.Speed) {
		return false, nil
	}

	s.baseline = tick.Now
	s.hasBaseline = true

	o, err := s.ctl.Advance(tick)
	if err != nil {
		logger.Logf(logger.Allow, "scheduler", "loop %d ended by error", s.handle)
		s.Cancel()
		return false, err
	}

	if o == controller.Completed || s.ctl.State() != govern.Running {
		s.Cancel()
	}

	return o != controller.Ignored, nil
}
