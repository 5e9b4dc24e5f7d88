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

package coordinator_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/gophersort/coordinator"
	"github.com/jetsetilly/gophersort/test"
)

var epoch = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

func at(ms int) time.Time {
	return epoch.Add(time.Duration(ms) * time.Millisecond)
}

func TestFire(t *testing.T) {
	var co coordinator.Coordinator

	test.ExpectFailure(t, co.Tick(at(0), true, false))
	test.ExpectFailure(t, co.Armed())

	// both complete. the timer is armed but does not fire
	test.ExpectFailure(t, co.Tick(at(100), true, true))
	test.ExpectSuccess(t, co.Armed())
	test.ExpectEquality(t, co.Deadline(), at(3100))

	test.ExpectFailure(t, co.Tick(at(3099), true, true))
	test.ExpectSuccess(t, co.Tick(at(3100), true, true))
	test.ExpectFailure(t, co.Armed())
}

func TestFlagDrops(t *testing.T) {
	var co coordinator.Coordinator

	co.Tick(at(0), true, true)
	test.ExpectSuccess(t, co.Armed())

	// the left panel has been restarted before the deadline
	test.ExpectFailure(t, co.Tick(at(1000), false, true))
	test.ExpectFailure(t, co.Armed())

	// completing again arms a new deadline
	co.Tick(at(2000), true, true)
	test.ExpectFailure(t, co.Tick(at(3000), true, true))
	test.ExpectSuccess(t, co.Tick(at(5000), true, true))
}

func TestCancel(t *testing.T) {
	var co coordinator.Coordinator

	co.Tick(at(0), true, true)
	co.Cancel()
	test.ExpectFailure(t, co.Armed())

	// the cancelled deadline does not fire. the next tick arms a new one
	test.ExpectFailure(t, co.Tick(at(3000), true, true))
	test.ExpectSuccess(t, co.Armed())
	test.ExpectEquality(t, co.Deadline(), at(6000))
}
