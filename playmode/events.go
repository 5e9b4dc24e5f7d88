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
	"time"

	"github.com/jetsetilly/gophersort/curated"
)

// UserInterrupt is returned by the event handler when an interrupt signal has
// been received.
const UserInterrupt = "playmode: interrupted"

// eventHandler checks for a pending event without blocking.
func (pl *playmode) eventHandler(now time.Time) error {
	select {
	case <-pl.intChan:
		return curated.Errorf(UserInterrupt)

	case k, ok := <-pl.keys:
		if !ok {
			// input has been closed. treat this as a request to quit
			pl.keys = nil
			return curated.Errorf(QuitEvent)
		}
		return pl.session.Key(k, now)

	default:
	}

	return nil
}
