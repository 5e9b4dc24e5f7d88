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

// Package limiter paces the host loop at a fixed number of frames per second.
//
// A new FpsLimiter can be created with (error handling removed for clarity):
//
//	fps, _ := limiter.NewFPSLimiter(60)
//	defer fps.Stop()
//
// Each frame of the host loop then begins with a call to Wait(), which
// returns the time of the frame. For example:
//
//	for {
//		now := fps.Wait()
//		ctl.Tick(now)
//	}
//
// The Virtual type also implements the Pulse interface. It never blocks and
// instead advances a simulated clock by one frame on every call to Wait(). It
// is useful for running the sorting display as quickly as possible while
// keeping the timing of each step exactly as it would be in real time.
package limiter

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Pulse is implemented by types that pace the host loop.
type Pulse interface {
	Wait() time.Time
}

// FpsLimiter will trigger every frames per second.
type FpsLimiter struct {
	// read by the ticker goroutine
	secondsPerFrame atomic.Int64

	tick chan time.Time
	quit chan bool

	// measurement of actual rate
	measureStart time.Time
	measureCount int
	actual       float64
}

// NewFPSLimiter is the preferred method of initialisation for FpsLimiter
// type.
func NewFPSLimiter(framesPerSecond int) (*FpsLimiter, error) {
	if framesPerSecond <= 0 {
		return nil, fmt.Errorf("limiter: frames per second must be positive (%d)", framesPerSecond)
	}

	lim := &FpsLimiter{
		tick: make(chan time.Time),
		quit: make(chan bool),
	}
	lim.SetLimit(framesPerSecond)

	// run ticker concurrently
	go func() {
		adjusted := time.Duration(lim.secondsPerFrame.Load())
		t := time.Now()
		for {
			select {
			case lim.tick <- t:
			case <-lim.quit:
				return
			}
			time.Sleep(adjusted)
			nt := time.Now()

			// correct for drift but never let the adjustment take the sleep
			// time to zero or less
			spf := time.Duration(lim.secondsPerFrame.Load())
			adjusted -= nt.Sub(t) - spf
			adjusted = min(max(adjusted, spf/10), spf*2)
			t = nt
		}
	}()

	return lim, nil
}

// SetLimit changes the limit at which the FpsLimiter waits.
func (lim *FpsLimiter) SetLimit(framesPerSecond int) {
	lim.secondsPerFrame.Store(int64(time.Second / time.Duration(max(framesPerSecond, 1))))
}

// Stop the FpsLimiter. It should not be used after this function has been
// called.
func (lim *FpsLimiter) Stop() {
	close(lim.quit)
}

// Wait will block until trigger. Returns the time of the trigger.
func (lim *FpsLimiter) Wait() time.Time {
	t := <-lim.tick
	lim.measure(t)
	return t
}

// HasWaited will return true if time has already elapsed and false it it is
// still yet to happen.
func (lim *FpsLimiter) HasWaited() bool {
	select {
	case t := <-lim.tick:
		lim.measure(t)
		return true
	default:
		return false
	}
}

func (lim *FpsLimiter) measure(t time.Time) {
	if lim.measureStart.IsZero() {
		lim.measureStart = t
		return
	}
	lim.measureCount++
	if d := t.Sub(lim.measureStart); d >= time.Second {
		lim.actual = float64(lim.measureCount) / d.Seconds()
		lim.measureStart = t
		lim.measureCount = 0
	}
}

// Actual returns the measured number of frames per second. The value is
// updated once a second.
func (lim *FpsLimiter) Actual() float64 {
	return lim.actual
}

// Virtual implements the Pulse interface with a simulated clock.
type Virtual struct {
	now   time.Time
	frame time.Duration
}

// NewVirtual is the preferred method of initialisation for the Virtual type.
// The first call to Wait() returns the start time.
func NewVirtual(framesPerSecond int, start time.Time) *Virtual {
	return &Virtual{
		now:   start.Add(-time.Second / time.Duration(max(framesPerSecond, 1))),
		frame: time.Second / time.Duration(max(framesPerSecond, 1)),
	}
}

// Wait advances the simulated clock by one frame and returns the new time.
func (v *Virtual) Wait() time.Time {
	v.now = v.now.Add(v.frame)
	return v.now
}

// Now returns the simulated time without advancing the clock.
func (v *Virtual) Now() time.Time {
	return v.now
}
