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

package limiter_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/gophersort/performance/limiter"
	"github.com/jetsetilly/gophersort/test"
)

func TestVirtual(t *testing.T) {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	v := limiter.NewVirtual(50, start)

	test.ExpectEquality(t, v.Wait(), start)
	test.ExpectEquality(t, v.Wait(), start.Add(20*time.Millisecond))
	test.ExpectEquality(t, v.Now(), start.Add(20*time.Millisecond))

	var p limiter.Pulse = v
	test.ExpectEquality(t, p.Wait(), start.Add(40*time.Millisecond))
}

func TestFPSLimiter(t *testing.T) {
	_, err := limiter.NewFPSLimiter(0)
	test.ExpectFailure(t, err)

	lim, err := limiter.NewFPSLimiter(100)
	test.DemandSuccess(t, err)
	defer lim.Stop()

	a := lim.Wait()
	b := lim.Wait()
	test.ExpectSuccess(t, b.After(a))
}
