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

package main

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gophersort/test"
)

func TestHelp(t *testing.T) {
	w := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"-help"}, w), 0)
	test.ExpectSuccess(t, strings.Contains(w.String(), "PERFORMANCE"))
}

func TestVersion(t *testing.T) {
	w := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"VERSION"}, w), 0)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "Gophersort "))
}

func TestTrace(t *testing.T) {
	w := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"TRACE", "-algorithm", "bubble", "3", "1", "2"}, w), 0)

	lines := w.Lines()
	test.DemandEquality(t, len(lines), 7)
	test.ExpectEquality(t, lines[0], "Bubble Sort: [3 1 2]")
	test.ExpectEquality(t, lines[1], "   0  compare  [0 1]  [3 1 2]")
	test.ExpectEquality(t, lines[2], "   1  swap     [0 1]  [1 3 2]")
	test.ExpectEquality(t, lines[6], "   5  done     [1 2 3]  comparisons 3  swaps 2")

	w.Clear()
	test.ExpectEquality(t, launch([]string{"TRACE", "-algorithm", "bogo"}, w), 20)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "* error in TRACE mode"))
}

func TestRun(t *testing.T) {
	t.Chdir(t.TempDir())

	args := []string{"RUN", "-count", "12", "-seed", "7", "-speed", "10", "-digest", "-format", "yaml"}

	a := &test.Writer{}
	test.DemandEquality(t, launch(args, a), 0)
	test.ExpectSuccess(t, strings.Contains(a.String(), "elements: 12\n"))
	test.ExpectSuccess(t, strings.Contains(a.String(), "seed: 7\n"))
	test.ExpectSuccess(t, strings.Contains(a.String(), "digest: "))
	test.ExpectSuccess(t, strings.Contains(a.String(), "audioDigest: "))

	// the same seed produces the same run
	b := &test.Writer{}
	test.DemandEquality(t, launch(args, b), 0)
	test.ExpectEquality(t, a.String(), b.String())

	// the command line does not change the preferences file
	c := &test.Writer{}
	test.DemandEquality(t, launch([]string{"RUN", "-seed", "7"}, c), 0)
	test.ExpectSuccess(t, strings.Contains(c.String(), "30 values"))
}

func TestRunErrors(t *testing.T) {
	t.Chdir(t.TempDir())

	w := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"RUN", "-format", "xml"}, w), 20)

	w.Clear()
	test.ExpectEquality(t, launch([]string{"RUN", "-left", "bogo"}, w), 20)

	w.Clear()
	test.ExpectEquality(t, launch([]string{"RUN", "extra"}, w), 20)
}
