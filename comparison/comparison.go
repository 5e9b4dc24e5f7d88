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

package comparison

import (
	"time"

	"github.com/jetsetilly/gophersort/algorithms"
	"github.com/jetsetilly/gophersort/arrays"
	"github.com/jetsetilly/gophersort/audio"
	"github.com/jetsetilly/gophersort/controller"
	"github.com/jetsetilly/gophersort/coordinator"
	"github.com/jetsetilly/gophersort/curated"
	"github.com/jetsetilly/gophersort/govern"
	"github.com/jetsetilly/gophersort/logger"
	"github.com/jetsetilly/gophersort/notifications"
	"github.com/jetsetilly/gophersort/scheduler"
)

// Sentinal error patterns.
const (
	PanelError = "%v panel: %v"
)

type panel struct {
	ctl   *controller.Controller
	sched *scheduler.Scheduler
}

// Comparison runs two algorithms over the same array.
type Comparison struct {
	gen    arrays.Generator
	notify notifications.Notify
	prefs  *Preferences

	state  GlobalState
	panels [NumPanels]panel
	coord  coordinator.Coordinator
}

// NewComparison is the preferred method of initialisation for the Comparison
// type. The initial configuration is taken from the preferences. If prefs is
// nil then the default preferences are used. The sink and notify arguments can
// be nil.
//
// An array is generated immediately.
func NewComparison(gen arrays.Generator, sink audio.Sink, notify notifications.Notify, prefs *Preferences) (*Comparison, error) {
	if prefs == nil {
		var err error
		prefs, err = NewPreferences("")
		if err != nil {
			return nil, err
		}
	}

	cmp := &Comparison{
		gen:    gen,
		notify: notify,
		prefs:  prefs,
	}

	var err error

	cmp.state.Algorithms[Left], err = algorithms.Parse(prefs.Left.String())
	if err != nil {
		return nil, err
	}
	cmp.state.Algorithms[Right], err = algorithms.Parse(prefs.Right.String())
	if err != nil {
		return nil, err
	}
	cmp.state.Distribution, err = arrays.ParseDistribution(prefs.Distribution.String())
	if err != nil {
		return nil, err
	}
	cmp.state.ElementCount = arrays.ClampCount(prefs.ElementCount.Get().(int))
	cmp.state.Speed = scheduler.ClampSpeed(prefs.Speed.Get().(int))
	cmp.state.Sound = prefs.Sound.Get().(bool)

	for _, p := range Panels() {
		ctl := controller.NewController(p.String(), cmp.state.Algorithms[p], nil, sink, notify)
		cmp.panels[p] = panel{
			ctl:   ctl,
			sched: scheduler.NewScheduler(ctl),
		}
	}

	cmp.GenerateArray()

	return cmp, nil
}

func (cmp *Comparison) notice(notice notifications.Notice, label string) {
	if cmp.notify == nil {
		return
	}
	if err := cmp.notify.Notify(notice, label); err != nil {
		logger.Logf(logger.Allow, "comparison", "notification: %v", err)
	}
}

// update the running and paused flags from the state of the controllers
func (cmp *Comparison) refresh() {
	var running, paused bool
	for _, p := range cmp.panels {
		switch p.ctl.State() {
		case govern.Running:
			running = true
		case govern.Paused:
			paused = true
		}
	}
	cmp.state.Running = running || paused
	cmp.state.Paused = paused && !running
}

// Start both panels. A paused panel is resumed. A panel that has completed
// is left alone while the other panel is still running or paused, otherwise
// it is reset and started again.
//
// An error starting one panel does not prevent the other panel from starting.
// Errors are returned as PanelError errors.
func (cmp *Comparison) Start(now time.Time) []error {
	var errs []error

	cmp.coord.Cancel()

	fresh := true
	for _, pn := range cmp.panels {
		switch pn.ctl.State() {
		case govern.Running, govern.Paused:
			fresh = false
		}
	}

	for _, p := range Panels() {
		pn := cmp.panels[p]

		switch pn.ctl.State() {
		case govern.Running:
			continue
		case govern.Complete:
			if !fresh {
				continue
			}
			pn.ctl.Reset()
		}

		if err := pn.ctl.Start(now); err != nil {
			errs = append(errs, curated.Errorf(PanelError, p, err))
			continue
		}
		pn.sched.Schedule()
	}

	cmp.refresh()

	return errs
}

// Pause both panels.
func (cmp *Comparison) Pause(now time.Time) {
	for _, pn := range cmp.panels {
		pn.sched.Cancel()
		pn.ctl.Pause(now)
	}
	cmp.refresh()
}

// StartPause starts the comparison if it is not running and pauses it if it
// is.
func (cmp *Comparison) StartPause(now time.Time) []error {
	if cmp.state.Running && !cmp.state.Paused {
		cmp.Pause(now)
		return nil
	}
	return cmp.Start(now)
}

// Reset both panels. The array is not changed.
func (cmp *Comparison) Reset() {
	cmp.coord.Cancel()
	for _, pn := range cmp.panels {
		pn.sched.Cancel()
		pn.ctl.Reset()
	}
	cmp.refresh()
}

// SetAlgorithm changes the algorithm of a panel. Both panels are reset.
//
// An invalid algorithm or panel is a ConfigOutOfRange error.
func (cmp *Comparison) SetAlgorithm(p Panel, alg algorithms.Algorithm) error {
	if p < Left || p >= NumPanels {
		return curated.Errorf(algorithms.ConfigOutOfRange, curated.Errorf("unknown panel (%d)", int(p)))
	}
	if !alg.Valid() {
		return curated.Errorf(algorithms.ConfigOutOfRange, curated.Errorf("unknown algorithm (%d)", int(alg)))
	}

	cmp.Reset()
	cmp.state.Algorithms[p] = alg
	cmp.panels[p].ctl.SetAlgorithm(alg)
	cmp.prefs.algorithm(p).Set(alg.Short())

	logger.Logf(logger.Allow, "comparison", "%s panel: %s", p, alg)

	return nil
}

// CycleAlgorithm changes the algorithm of the panel to the next algorithm in
// the list.
func (cmp *Comparison) CycleAlgorithm(p Panel) error {
	if p < Left || p >= NumPanels {
		return curated.Errorf(algorithms.ConfigOutOfRange, curated.Errorf("unknown panel (%d)", int(p)))
	}
	return cmp.SetAlgorithm(p, cmp.state.Algorithms[p].Cycle())
}

// SetElementCount changes the number of values in the array. The count is
// clamped to the range arrays.MinCount to arrays.MaxCount. A new array is
// generated.
func (cmp *Comparison) SetElementCount(n int) {
	cmp.state.ElementCount = arrays.ClampCount(n)
	cmp.prefs.ElementCount.Set(cmp.state.ElementCount)
	cmp.GenerateArray()
}

// SetDistribution changes the distribution of values in the array. A new array
// is generated.
func (cmp *Comparison) SetDistribution(d arrays.Distribution) error {
	if d < 0 || d >= arrays.Distribution(len(arrays.Distributions())) {
		return curated.Errorf(algorithms.ConfigOutOfRange, curated.Errorf(arrays.UnknownDistribution, int(d)))
	}
	cmp.state.Distribution = d
	cmp.prefs.Distribution.Set(d.String())
	cmp.GenerateArray()
	return nil
}

// CycleDistribution changes to the next distribution in the list. A new array
// is generated.
func (cmp *Comparison) CycleDistribution() {
	_ = cmp.SetDistribution(cmp.state.Distribution.Cycle())
}

// SetSpeed changes the speed of the comparison. The speed is clamped to the
// range scheduler.MinSpeed to scheduler.MaxSpeed.
func (cmp *Comparison) SetSpeed(s int) {
	cmp.state.Speed = scheduler.ClampSpeed(s)
	cmp.prefs.Speed.Set(cmp.state.Speed)
}

// SetSound turns audio feedback on or off.
func (cmp *Comparison) SetSound(sound bool) {
	cmp.state.Sound = sound
	cmp.prefs.Sound.Set(sound)
}

// ToggleSound turns audio feedback on if it is off and off if it is on.
func (cmp *Comparison) ToggleSound() {
	cmp.SetSound(!cmp.state.Sound)
}

// GenerateArray creates a new array from the current element count and
// distribution. Both panels are reset.
func (cmp *Comparison) GenerateArray() {
	cmp.Reset()
	cmp.state.Array = cmp.gen.Generate(cmp.state.ElementCount, cmp.state.Distribution)
	for _, pn := range cmp.panels {
		pn.ctl.SetArray(cmp.state.Array)
	}

	logger.Logf(logger.Allow, "comparison", "new %s array with %d values", cmp.state.Distribution, len(cmp.state.Array))
	cmp.notice(notifications.NotifyNewArray, "")
}

// Tick advances the comparison. It should be called once per display
// refresh. Errors that stop a panel are returned as PanelError errors.
func (cmp *Comparison) Tick(now time.Time) []error {
	tick := controller.Tick{
		Now:   now,
		Speed: cmp.state.Speed,
		Sound: cmp.state.Sound,
	}

	var errs []error

	for _, p := range Panels() {
		if _, err := cmp.panels[p].sched.Tick(tick); err != nil {
			errs = append(errs, curated.Errorf(PanelError, p, err))
		}
	}

	armed := cmp.coord.Armed()
	if cmp.coord.Tick(now, cmp.panels[Left].ctl.State() == govern.Complete, cmp.panels[Right].ctl.State() == govern.Complete) {
		cmp.Reset()
		cmp.notice(notifications.NotifyAutoReset, "")
	} else if !armed && cmp.coord.Armed() {
		cmp.notice(notifications.NotifyAutoResetArmed, "")
	}

	cmp.refresh()

	return errs
}

// Snapshot returns the state of the panel.
func (cmp *Comparison) Snapshot(p Panel) controller.Snapshot {
	if p < Left || p >= NumPanels {
		return controller.Snapshot{}
	}
	return cmp.panels[p].ctl.Snapshot()
}

// Global returns a copy of the GlobalState.
func (cmp *Comparison) Global() GlobalState {
	return cmp.state.clone()
}

// AutoResetPending returns true if the comparison will be reset
// automatically. The time of the reset is also returned.
func (cmp *Comparison) AutoResetPending() (bool, time.Time) {
	return cmp.coord.Armed(), cmp.coord.Deadline()
}

// Preferences returns the preferences used by the comparison.
func (cmp *Comparison) Preferences() *Preferences {
	return cmp.prefs
}

// SetFactory changes how the producer for the panel is created. Any run in
// progress on the panel is discarded.
func (cmp *Comparison) SetFactory(p Panel, f controller.Factory) error {
	if p < Left || p >= NumPanels {
		return curated.Errorf(algorithms.ConfigOutOfRange, curated.Errorf("unknown panel (%d)", int(p)))
	}
	cmp.panels[p].ctl.SetFactory(f)
	cmp.panels[p].ctl.Reset()
	cmp.panels[p].sched.Cancel()
	cmp.coord.Cancel()
	cmp.refresh()
	return nil
}

// SetQuiet prevents the controllers from adding entries to the log.
func (cmp *Comparison) SetQuiet(quiet bool) {
	for _, pn := range cmp.panels {
		pn.ctl.SetQuiet(quiet)
	}
}
