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

package scheduler_test

import (
	"errors"
	"testing"
	"time"

	"github.com/jetsetilly/gophersort/algorithms"
	"github.com/jetsetilly/gophersort/controller"
	"github.com/jetsetilly/gophersort/govern"
	"github.com/jetsetilly/gophersort/scheduler"
	"github.com/jetsetilly/gophersort/test"
)

func TestDelay(t *testing.T) {
	test.ExpectEquality(t, scheduler.Delay(1), 460*time.Millisecond)
	test.ExpectEquality(t, scheduler.Delay(5), 260*time.Millisecond)
	test.ExpectEquality(t, scheduler.Delay(10), 10*time.Millisecond)

	// out of range speeds are clamped
	test.ExpectEquality(t, scheduler.Delay(0), 460*time.Millisecond)
	test.ExpectEquality(t, scheduler.Delay(-5), 460*time.Millisecond)
	test.ExpectEquality(t, scheduler.Delay(11), 10*time.Millisecond)
}

// counter is an Advancer that counts the number of calls to Advance()
type counter struct {
	state    govern.State
	advances int
	limit    int
	err      error
}

func (c *counter) Advance(_ controller.Tick) (controller.Outcome, error) {
	if c.err != nil {
		c.state = govern.Idle
		return controller.Ignored, c.err
	}
	c.advances++
	if c.advances >= c.limit {
		c.state = govern.Complete
		return controller.Completed, nil
	}
	return controller.Stepped, nil
}

func (c *counter) State() govern.State {
	return c.state
}

var epoch = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

func at(ms int, speed int) controller.Tick {
	return controller.Tick{Now: epoch.Add(time.Duration(ms) * time.Millisecond), Speed: speed}
}

func TestOneStepPerTick(t *testing.T) {
	c := &counter{state: govern.Running, limit: 1000}
	s := scheduler.NewScheduler(c)

	// not scheduled
	ok, err := s.Tick(at(0, 10))
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, c.advances, 0)

	s.Schedule()
	test.ExpectSuccess(t, s.Active())

	// the first tick of a new loop always steps
	ok, _ = s.Tick(at(0, 1))
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, c.advances, 1)

	// ticks at 60Hz with a delay of 460ms
	for ms := 16; ms < 460; ms += 16 {
		ok, _ = s.Tick(at(ms, 1))
		test.ExpectFailure(t, ok, ms)
	}
	test.ExpectEquality(t, c.advances, 1)

	ok, _ = s.Tick(at(460, 1))
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, c.advances, 2)

	// a long gap between ticks is still only one step
	ok, _ = s.Tick(at(10000, 1))
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, c.advances, 3)
}

func TestSelfTermination(t *testing.T) {
	c := &counter{state: govern.Running, limit: 2}
	s := scheduler.NewScheduler(c)
	s.Schedule()

	s.Tick(at(0, 10))
	s.Tick(at(10, 10))
	test.ExpectEquality(t, c.advances, 2)
	test.ExpectFailure(t, s.Active())

	// the controller is complete. the loop does not continue
	ok, _ := s.Tick(at(100, 10))
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, c.advances, 2)
}

func TestStopsWhenNotRunning(t *testing.T) {
	c := &counter{state: govern.Running, limit: 1000}
	s := scheduler.NewScheduler(c)
	s.Schedule()

	s.Tick(at(0, 10))
	c.state = govern.Paused

	ok, _ := s.Tick(at(100, 10))
	test.ExpectFailure(t, ok)
	test.ExpectFailure(t, s.Active())

	// resuming needs a fresh loop. the first tick steps immediately even
	// though the delay has not passed since the previous step
	c.state = govern.Running
	h := s.Schedule()
	test.ExpectInequality(t, h, scheduler.Handle(0))
	ok, _ = s.Tick(at(101, 1))
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, c.advances, 2)
}

func TestCancel(t *testing.T) {
	c := &counter{state: govern.Running, limit: 1000}
	s := scheduler.NewScheduler(c)

	first := s.Schedule()
	s.Cancel()
	test.ExpectEquality(t, s.Handle(), scheduler.Handle(0))

	ok, _ := s.Tick(at(0, 10))
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, c.advances, 0)

	second := s.Schedule()
	test.ExpectInequality(t, first, second)
}

func TestError(t *testing.T) {
	c := &counter{state: govern.Running, limit: 1000, err: errors.New("fault")}
	s := scheduler.NewScheduler(c)
	s.Schedule()

	ok, err := s.Tick(at(0, 10))
	test.ExpectFailure(t, ok)
	test.ExpectFailure(t, err)
	test.ExpectFailure(t, s.Active())
}

func TestWithController(t *testing.T) {
	ctl := controller.NewController("test", algorithms.Bubble, []float64{3, 1, 2}, nil, nil)
	ctl.SetQuiet(true)
	s := scheduler.NewScheduler(ctl)

	test.DemandSuccess(t, ctl.Start(epoch))
	s.Schedule()

	// speed 10 is a delay of 10ms. tick every 5ms
	var steps int
	for ms := 0; s.Active(); ms += 5 {
		ok, err := s.Tick(at(ms, 10))
		test.DemandSuccess(t, err)
		if ok {
			steps++
		}
		test.DemandSuccess(t, ms < 1000)
	}

	// five steps and the completion
	test.ExpectEquality(t, steps, 6)
	test.ExpectEquality(t, ctl.State(), govern.Complete)
}
