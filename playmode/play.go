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
	"os"
	"os/signal"
	"time"

	"github.com/jetsetilly/gophersort/comparison"
	"github.com/jetsetilly/gophersort/curated"
	"github.com/jetsetilly/gophersort/logger"
	"github.com/jetsetilly/gophersort/performance/limiter"
	"github.com/jetsetilly/gophersort/terminal"
	"github.com/jetsetilly/gophersort/terminal/easyterm"
)

// DefaultFPS is the rate at which the display is updated and the comparison
// is ticked.
const DefaultFPS = 60

// Flusher is implemented by audio outputs that need to be serviced once per
// frame. The sdlaudio.Audio type implements this interface.
type Flusher interface {
	Flush(now time.Time) error
}

// Config for the Play() function.
type Config struct {
	// if FPS is zero then DefaultFPS is used
	FPS int

	// the terminal. if either are nil then stdin and stdout are used
	Input  *os.File
	Output *os.File

	// the audio output. can be nil
	Audio Flusher
}

type playmode struct {
	session *Session
	term    easyterm.Terminal
	render  *terminal.Renderer
	audio   Flusher

	keys    <-chan rune
	intChan chan os.Signal
}

// Play runs the comparison interactively until the user quits.
func Play(cmp *comparison.Comparison, cfg Config) error {
	if cfg.FPS == 0 {
		cfg.FPS = DefaultFPS
	}
	if cfg.Input == nil {
		cfg.Input = os.Stdin
	}
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	lim, err := limiter.NewFPSLimiter(cfg.FPS)
	if err != nil {
		return fmt.Errorf("playmode: %w", err)
	}
	defer lim.Stop()

	pl := &playmode{
		session: NewSession(cmp),
		audio:   cfg.Audio,
	}

	err = pl.term.Initialise(cfg.Input, cfg.Output)
	if err != nil {
		return fmt.Errorf("playmode: %w", err)
	}
	defer pl.term.CleanUp()
	pl.term.CBreakMode()

	pl.render = terminal.NewRenderer(cfg.Output)
	pl.render.Begin()
	defer pl.render.End()

	pl.keys = terminal.ReadKeys(cfg.Input)

	// we need to make sure the terminal is restored even when ctrl-c is
	// pressed. redirect interrupt signal to an os.Signal channel
	pl.intChan = make(chan os.Signal, 1)
	signal.Notify(pl.intChan, os.Interrupt)
	defer signal.Stop(pl.intChan)

	logger.Logf(logger.Allow, "playmode", "running at %d fps", cfg.FPS)

	for {
		now := lim.Wait()

		err := pl.eventHandler(now)
		if err != nil {
			if curated.Is(err, QuitEvent) || curated.Is(err, UserInterrupt) {
				logger.Log(logger.Allow, "playmode", err)
				return nil
			}
			pl.session.report(now, err)
		}

		pl.session.Tick(now)

		if pl.audio != nil {
			if err := pl.audio.Flush(now); err != nil {
				logger.Logf(logger.Allow, "playmode", "audio: %v", err)
			}
		}

		geom := pl.term.Geometry()
		pl.render.SetSize(geom.Cols, geom.Rows)
		pl.render.Draw(cmp.Snapshot(comparison.Left), cmp.Snapshot(comparison.Right), cmp.Global(), pl.session.Footer(now))
	}
}
