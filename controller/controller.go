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
	"slices"
	"time"

	"github.com/jetsetilly/gophersort/algorithms"
	"github.com/jetsetilly/gophersort/audio"
	"github.com/jetsetilly/gophersort/curated"
	"github.com/jetsetilly/gophersort/govern"
	"github.com/jetsetilly/gophersort/logger"
	"github.com/jetsetilly/gophersort/notifications"
)

// Sentinal error patterns.
const (
	StepAdvanceError = "step advance: %v"
)

// Factory creates the Producer used by a run. The default Factory is
// algorithms.NewProducer.
type Factory func(alg algorithms.Algorithm, values []float64) (algorithms.Producer, error)

// Controller runs a single sorting algorithm over an array.
type Controller struct {
	label string
	quiet bool

	alg      algorithms.Algorithm
	original []float64
	maxValue float64

	factory  Factory
	producer algorithms.Producer

	state govern.State

	// the most recent step. before the first step this is a step built from
	// the original array
	step    algorithms.Step
	stepped bool

	metrics Metrics
	err     error

	sink   audio.Sink
	notify notifications.Notify

	// the indices of the most recent audio events
	lastComparing []int
	lastSwapped   []int
}

// NewController is the preferred method of initialisation for the Controller
// type. The label is used to identify the Controller in the log and in
// notifications. The sink and notify arguments can be nil.
func NewController(label string, alg algorithms.Algorithm, values []float64, sink audio.Sink, notify notifications.Notify) *Controller {
	c := &Controller{
		label:   label,
		alg:     alg,
		factory: algorithms.NewProducer,
		sink:    sink,
		notify:  notify,
	}
	c.SetArray(values)
	return c
}

func (c *Controller) String() string {
	return c.label
}

// AllowLogging implements the logger.Permission interface.
func (c *Controller) AllowLogging() bool {
	return !c.quiet
}

// SetQuiet prevents the Controller from adding entries to the log.
func (c *Controller) SetQuiet(quiet bool) {
	c.quiet = quiet
}

// SetFactory changes how the Producer for a run is created. The new Factory
// is used from the next call to Start() from the Idle state.
func (c *Controller) SetFactory(f Factory) {
	c.factory = f
}

// Algorithm returns the algorithm used by the Controller.
func (c *Controller) Algorithm() algorithms.Algorithm {
	return c.alg
}

// State returns the current state of the run.
func (c *Controller) State() govern.State {
	return c.state
}

// Err returns the error that ended the most recent run. Returns nil if the
// run did not end in error.
func (c *Controller) Err() error {
	return c.err
}

// SetAlgorithm changes the algorithm. Any run in progress is discarded.
func (c *Controller) SetAlgorithm(alg algorithms.Algorithm) {
	c.alg = alg
	c.Reset()
}

// SetArray changes the array to sort. The values are copied. Any run in
// progress is discarded.
func (c *Controller) SetArray(values []float64) {
	c.original = slices.Clone(values)
	c.maxValue = 0
	for _, v := range c.original {
		c.maxValue = max(c.maxValue, v)
	}
	c.Reset()
}

// Start begins a run if the Controller is Idle or resumes a run if it is
// Paused. Start has no effect in any other state.
//
// An error creating the Producer is returned and the Controller remains in the
// Idle state.
func (c *Controller) Start(now time.Time) error {
	if !govern.Permitted(c.state, govern.Start) {
		logger.Logf(c, "controller", "%s: start ignored while %s", c.label, c.state)
		return nil
	}

	if c.state == govern.Paused {
		c.state = govern.Running
		c.metrics.resume(now)
		logger.Logf(c, "controller", "%s: resumed %s", c.label, c.alg)
		return nil
	}

	c.err = nil

	p, err := c.factory(c.alg, c.original)
	if err != nil {
		return c.fail(err)
	}

	c.producer = p
	c.state = govern.Running
	c.metrics.reset()
	c.metrics.resume(now)

	logger.Logf(c, "controller", "%s: started %s with %d values", c.label, c.alg, len(c.original))

	return nil
}

// Pause suspends a Running run. The state of the algorithm is kept and the
// run can be continued with Start().
func (c *Controller) Pause(now time.Time) {
	if !govern.Permitted(c.state, govern.Pause) {
		logger.Logf(c, "controller", "%s: pause ignored while %s", c.label, c.state)
		return
	}
	c.state = govern.Paused
	c.metrics.suspend(now)
	logger.Logf(c, "controller", "%s: paused %s", c.label, c.alg)
}

// Reset discards the run and any error from the previous run. Calling Reset()
// more than once has the same effect as calling it once.
func (c *Controller) Reset() {
	c.err = nil
	c.reset()
}

// reset the run but not the error
func (c *Controller) reset() {
	c.producer = nil
	c.state = govern.Idle
	c.stepped = false
	c.metrics.reset()
	c.lastComparing = nil
	c.lastSwapped = nil
	c.step = algorithms.Step{
		Array:  slices.Clone(c.original),
		Sorted: []int{},
	}
}

// fail stores the error, resets the run and returns the error
func (c *Controller) fail(err error) error {
	c.err = err
	c.reset()
	logger.Logf(c, "controller", "%s: %v", c.label, err)
	if c.notify != nil {
		c.notify.Notify(notifications.NotifyPanelError, c.label)
	}
	return err
}

// pull the next step from the producer, recovering from any panic
func (c *Controller) pull() (step algorithms.Step, done bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = curated.Errorf(StepAdvanceError, r)
		}
	}()
	step, done = c.producer.Next()
	return step, done, nil
}

// Advance applies the next step of the algorithm. Advance has no effect unless
// the Controller is Running.
//
// An error while advancing is returned and the Controller is reset. The error
// is also available through Err() and the Snapshot.
func (c *Controller) Advance(tick Tick) (Outcome, error) {
	if !govern.Permitted(c.state, govern.Advance) {
		return Ignored, nil
	}

	step, done, err := c.pull()
	if err != nil {
		return Ignored, c.fail(err)
	}

	c.stepped = true

	if done {
		// the final step always reports every position as sorted
		step.Sorted = make([]int, len(step.Array))
		for i := range step.Sorted {
			step.Sorted[i] = i
		}
		step.Comparing = nil
		step.Swapped = nil

		c.step = step
		c.metrics.update(step, tick.Now)
		c.metrics.suspend(tick.Now)
		c.state = govern.Complete
		c.producer = nil

		logger.Logf(c, "controller", "%s: %s complete (%d comparisons, %d swaps)", c.label, c.alg, step.Comparisons, step.Swaps)

		if tick.Sound && c.sink != nil {
			c.sink.OnCompletion()
		}
		if c.notify != nil {
			c.notify.Notify(notifications.NotifyPanelComplete, c.label)
		}

		return Completed, nil
	}

	c.step = step
	c.metrics.update(step, tick.Now)

	if tick.Sound {
		c.feedback(step)
	}

	return Stepped, nil
}

// send audio events for the step. a comparison and a swap are separate events
// and neither is repeated if the positions are the same as the previous event
// of that kind
func (c *Controller) feedback(step algorithms.Step) {
	if c.sink == nil {
		return
	}

	if len(step.Comparing) > 0 && !slices.Equal(step.Comparing, c.lastComparing) {
		c.sink.OnComparison(step.Array, step.Comparing, c.maxValue)
		c.lastComparing = step.Comparing
	}

	if len(step.Swapped) > 0 && !slices.Equal(step.Swapped, c.lastSwapped) {
		c.sink.OnSwap(step.Array, step.Swapped, c.maxValue)
		c.lastSwapped = step.Swapped
	}
}

// Snapshot returns a copy of the state of the run.
func (c *Controller) Snapshot() Snapshot {
	s := Snapshot{
		AlgorithmName: c.alg.String(),
		State:         c.state,
		Array:         slices.Clone(c.step.Array),
		Comparing:     slices.Clone(c.step.Comparing),
		Swapped:       slices.Clone(c.step.Swapped),
		Sorted:        slices.Clone(c.step.Sorted),
		Comparisons:   c.metrics.Comparisons,
		Swaps:         c.metrics.Swaps,
		TimeElapsed:   c.metrics.Elapsed(),
		IsComplete:    c.state == govern.Complete,
		IsLoading:     c.state == govern.Running && !c.stepped,
	}
	if c.err != nil {
		s.Error = c.err.Error()
	}
	return s
}

// Metrics returns a copy of the run metrics.
func (c *Controller) Metrics() Metrics {
	return c.metrics
}
