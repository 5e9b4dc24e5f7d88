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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gophersort/algorithms"
	"github.com/jetsetilly/gophersort/arrays"
	"github.com/jetsetilly/gophersort/controller"
	"github.com/jetsetilly/gophersort/curated"
)

// only check for end of measurement period every performanceBrake steps.
// checking the timer channel is relatively expensive
const performanceBrake = 1000

// CalcRate takes the number of steps and duration (in seconds) and returns
// the steps-per-second.
func CalcRate(numSteps int, duration float64) float64 {
	if duration <= 0 {
		return 0
	}
	return float64(numSteps) / duration
}

// Check the performance of an algorithm. Arrays are created by the generator
// and sorted one after the other until the duration has elapsed.
//
// The run will create a cpu, memory profile, a trace (or a combination of
// those) as defined by the Profile argument.
func Check(output io.Writer, profile Profile, alg algorithms.Algorithm, gen arrays.Generator, count int, dist arrays.Distribution, duration time.Duration) error {
	if !alg.Valid() {
		return curated.Errorf(algorithms.ConfigOutOfRange, curated.Errorf("unknown algorithm (%d)", int(alg)))
	}

	ctl := controller.NewController("performance", alg, nil, nil, nil)
	ctl.SetQuiet(true)

	var numSteps int
	var numSorts int

	runner := func() error {
		timerChan := make(chan bool, 1)
		t := time.AfterFunc(duration, func() {
			timerChan <- true
		})
		defer t.Stop()

		brake := 0

		for {
			ctl.SetArray(gen.Generate(count, dist))

			tick := controller.Tick{Now: time.Now()}
			if err := ctl.Start(tick.Now); err != nil {
				return err
			}

			for {
				o, err := ctl.Advance(tick)
				if err != nil {
					return err
				}
				if o != controller.Stepped && o != controller.Completed {
					return fmt.Errorf("unexpected outcome: %v", o)
				}

				numSteps++

				brake++
				if brake >= performanceBrake {
					brake = 0
					select {
					case <-timerChan:
						return nil
					default:
					}
				}

				if o == controller.Completed {
					numSorts++
					break
				}
			}
		}
	}

	// launch runner directly or through the profiler, depending on supplied
	// arguments
	err := RunProfiler(profile, "performance", runner)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	rate := CalcRate(numSteps, duration.Seconds())
	_, err = fmt.Fprintf(output, "%s: %.2f steps/sec (%d steps in %.2f seconds, %d arrays sorted)\n",
		alg, rate, numSteps, duration.Seconds(), numSorts)

	return err
}
