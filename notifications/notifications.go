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

package notifications

// Notice describes events that somehow change the presentation of a sorting
// run.
type Notice string

// List of defined notifications.
const (
	// a panel has run out of steps
	NotifyPanelComplete Notice = "NotifyPanelComplete"

	// a panel has stopped because of an error
	NotifyPanelError Notice = "NotifyPanelError"

	// both panels have completed and an automatic reset has been scheduled
	NotifyAutoResetArmed Notice = "NotifyAutoResetArmed"

	// the automatic reset has happened
	NotifyAutoReset Notice = "NotifyAutoReset"

	// a new array has been generated
	NotifyNewArray Notice = "NotifyNewArray"
)

// Notify is implemented by the host of a sorting run. The label identifies the
// panel the notice applies to. It is empty if the notice applies to both
// panels.
type Notify interface {
	Notify(notice Notice, label string) error
}

// Record is a Notify implementation that remembers every notice it receives.
type Record struct {
	Notices []Notice
	Labels  []string
}

// Notify implements the Notify interface.
func (r *Record) Notify(notice Notice, label string) error {
	r.Notices = append(r.Notices, notice)
	r.Labels = append(r.Labels, label)
	return nil
}

// Count returns the number of times the notice has been received.
func (r *Record) Count(notice Notice) int {
	var n int
	for _, v := range r.Notices {
		if v == notice {
			n++
		}
	}
	return n
}
