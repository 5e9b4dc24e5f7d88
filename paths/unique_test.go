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

package paths

import (
	"testing"
	"time"

	"github.com/jetsetilly/gophersort/test"
)

func TestUniqueFilename(t *testing.T) {
	n := time.Date(2021, 3, 4, 5, 6, 7, 0, time.UTC)
	test.ExpectEquality(t, uniqueFilename("gophersort", "bubble_quick", n), "gophersort_bubble_quick_20210304_050607")
	test.ExpectEquality(t, uniqueFilename("gophersort", "  ", n), "gophersort_20210304_050607")
}
