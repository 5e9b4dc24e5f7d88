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

package prefs_test

import (
	"testing"

	"github.com/jetsetilly/gophersort/prefs"
	"github.com/jetsetilly/gophersort/test"
)

func TestCommandLineStackValues(t *testing.T) {
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	prefs.PushCommandLineStack("sorting.speed::7")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "sorting.speed::7")

	// surrounding space is removed
	prefs.PushCommandLineStack("   sorting.speed:: 7 ")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "sorting.speed::7")

	// the unused string is sorted by key
	prefs.PushCommandLineStack("sorting.speed::7; sorting.sound::false")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "sorting.sound::false; sorting.speed::7")

	// entries without a separator are ignored
	prefs.PushCommandLineStack("sorting.speed")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
	prefs.PushCommandLineStack("sorting.speed;sorting.sound::false")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "sorting.sound::false")

	// a used value is removed from the group
	prefs.PushCommandLineStack("sorting.speed::7;sorting.sound::false")
	ok, v := prefs.GetCommandLinePref("sorting.speed")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, prefs.Value("7"))
	ok, _ = prefs.GetCommandLinePref("sorting.speed")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "sorting.sound::false")
}

func TestCommandLineStack(t *testing.T) {
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)

	prefs.PushCommandLineStack("sorting.left::merge")
	prefs.PushCommandLineStack("sorting.right::heap")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 2)

	// only the top group is visible
	ok, _ := prefs.GetCommandLinePref("sorting.left")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "sorting.right::heap")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "sorting.left::merge")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}
