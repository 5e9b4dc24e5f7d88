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
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/jetsetilly/gophersort/algorithms"
	"github.com/jetsetilly/gophersort/arrays"
	"github.com/jetsetilly/gophersort/controller"
	"github.com/jetsetilly/gophersort/curated"
	"github.com/jetsetilly/gophersort/logger"
)

// Sentinal error patterns.
const (
	SurveyError = "survey: %v: %v"
)

// SurveyResult is the average behaviour of an algorithm over the arrays of a
// survey.
type SurveyResult struct {
	Algorithm   algorithms.Algorithm
	Arrays      int
	Comparisons float64
	Swaps       float64
}

// the outcome of a single sort in a survey
type sortResult struct {
	comparisons int
	swaps       int
	err         error
}

// Survey sorts n arrays with every algorithm and returns the average number
// of comparisons and swaps for each algorithm. The arrays are created by the
// generator before any sorting begins and every algorithm sorts the same
// arrays.
//
// Sorting is performed by a pool of workers. A workers value of zero or less
// means one worker.
func Survey(gen arrays.Generator, count int, dist arrays.Distribution, n int, workers int) ([]SurveyResult, error) {
	n = max(n, 0)
	workers = max(workers, 1)

	// the generator is not safe for concurrent use
	values := make([][]float64, n)
	for i := range values {
		values[i] = gen.Generate(count, dist)
	}

	pool, err := ants.NewPool(workers, ants.WithPanicHandler(func(v any) {
		logger.Logf(logger.Allow, "performance", "survey worker panic: %v", v)
	}))
	if err != nil {
		return nil, fmt.Errorf("performance: %w", err)
	}
	defer pool.Release()

	algs := algorithms.List()

	// each task writes to its own slot in the results
	results := make([][]sortResult, len(algs))

	var wg sync.WaitGroup

	for a, alg := range algs {
		results[a] = make([]sortResult, n)
		for i := range values {
			wg.Add(1)
			err := pool.Submit(func() {
				defer wg.Done()
				results[a][i] = sortHeadless(alg, values[i])
			})
			if err != nil {
				wg.Done()
				results[a][i].err = err
			}
		}
	}

	wg.Wait()

	survey := make([]SurveyResult, 0, len(algs))
	for a, alg := range algs {
		r := SurveyResult{Algorithm: alg}
		for _, s := range results[a] {
			if s.err != nil {
				return nil, curated.Errorf(SurveyError, alg, s.err)
			}
			r.Comparisons += float64(s.comparisons)
			r.Swaps += float64(s.swaps)
			r.Arrays++
		}
		if r.Arrays > 0 {
			r.Comparisons /= float64(r.Arrays)
			r.Swaps /= float64(r.Arrays)
		}
		survey = append(survey, r)
	}

	return survey, nil
}

// sort the values to completion with a quiet controller
func sortHeadless(alg algorithms.Algorithm, values []float64) sortResult {
	ctl := controller.NewController("survey", alg, values, nil, nil)
	ctl.SetQuiet(true)

	tick := controller.Tick{Now: time.Now()}
	if err := ctl.Start(tick.Now); err != nil {
		return sortResult{err: err}
	}

	for {
		o, err := ctl.Advance(tick)
		if err != nil {
			return sortResult{err: err}
		}
		if o == controller.Completed {
			m := ctl.Metrics()
			return sortResult{comparisons: m.Comparisons, swaps: m.Swaps}
		}
		if o != controller.Stepped {
			return sortResult{err: fmt.Errorf("unexpected outcome: %v", o)}
		}
	}
}

// WriteSurvey writes the results of a survey as a table.
func WriteSurvey(output io.Writer, survey []SurveyResult) error {
	for _, r := range survey {
		_, err := fmt.Fprintf(output, "%-14s  %d arrays  comparisons %10.1f  swaps %10.1f\n",
			r.Algorithm, r.Arrays, r.Comparisons, r.Swaps)
		if err != nil {
			return err
		}
	}
	return nil
}
