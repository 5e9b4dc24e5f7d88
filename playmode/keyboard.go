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

package playmode

import (
	"fmt"
	"strings"
	"time"

	"github.com/jetsetilly/gophersort/comparison"
	"github.com/jetsetilly/gophersort/curated"
	"github.com/jetsetilly/gophersort/logger"
	"github.com/jetsetilly/gophersort/terminal"
)

// Sentinal error patterns.
const (
	QuitEvent = "playmode: quit"
)

// Session applies keyboard actions to a comparison and keeps the status
// message shown below the panels.
type Session struct {
	cmp *comparison.Comparison

	// the most recent error and the time it was reported. the message is
	// shown for a short time only
	lastErr     string
	lastErrTime time.Time
}

// how long an error message stays in the footer
const errorDisplayTime = 5 * time.Second

// NewSession is the preferred method of initialisation for the Session type.
func NewSession(cmp *comparison.Comparison) *Session {
	return &Session{cmp: cmp}
}

// Comparison returns the comparison being driven by the session.
func (s *Session) Comparison() *comparison.Comparison {
	return s.cmp
}

func (s *Session) report(now time.Time, errs ...error) {
	for _, err := range errs {
		if err == nil {
			continue
		}
		logger.Log(logger.Allow, "playmode", err)
		s.lastErr = err.Error()
		s.lastErrTime = now
	}
}

// Action applies the action to the comparison. Returns a QuitEvent error if
// the action is Quit.
func (s *Session) Action(a terminal.Action, now time.Time) error {
	g := s.cmp.Global()

	switch a {
	case terminal.StartPause:
		s.report(now, s.cmp.StartPause(now)...)
	case terminal.Reset:
		s.cmp.Reset()
	case terminal.NewArray:
		s.cmp.GenerateArray()
	case terminal.Faster:
		s.cmp.SetSpeed(g.Speed + 1)
	case terminal.Slower:
		s.cmp.SetSpeed(g.Speed - 1)
	case terminal.ToggleSound:
		s.cmp.ToggleSound()
	case terminal.CycleLeft:
		s.report(now, s.cmp.CycleAlgorithm(comparison.Left))
	case terminal.CycleRight:
		s.report(now, s.cmp.CycleAlgorithm(comparison.Right))
	case terminal.CycleDistribution:
		s.cmp.CycleDistribution()
	case terminal.Quit:
		return curated.Errorf(QuitEvent)
	default:
		return fmt.Errorf("playmode: unknown action: %v", a)
	}

	return nil
}

// Key applies the action for the key. Keys without an action are ignored.
func (s *Session) Key(key rune, now time.Time) error {
	a, ok := terminal.ActionForKey(key)
	if !ok {
		return nil
	}
	return s.Action(a, now)
}

// Tick advances the comparison. Errors are logged and shown in the footer.
func (s *Session) Tick(now time.Time) {
	s.report(now, s.cmp.Tick(now)...)
}

// Footer returns the line shown underneath the panels.
func (s *Session) Footer(now time.Time) string {
	var b strings.Builder
	b.WriteString(terminal.KeyHelp)

	if pending, at := s.cmp.AutoResetPending(); pending {
		secs := at.Sub(now).Seconds()
		fmt.Fprintf(&b, "\nreset in %.0fs", max(secs, 0))
	} else if s.lastErr != "" && now.Sub(s.lastErrTime) < errorDisplayTime {
		fmt.Fprintf(&b, "\n%s", s.lastErr)
	}

	return b.String()
}
