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

package digest

// the kind of audio event. included in the hash so that a comparison and a
// swap of the same indices produce different values
const (
	audioComparison = iota
	audioSwap
	audioCompletion
)

// Audio implements the audio.Sink interface. The hash covers every event
// received by the sink.
type Audio struct {
	chain
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	return &Audio{}
}

// Hash implements the Digest interface.
func (dig *Audio) Hash() string {
	return dig.hash()
}

// ResetDigest implements the Digest interface.
func (dig *Audio) ResetDigest() {
	dig.reset()
}

func (dig *Audio) event(kind int, values []float64, indices []int, maxValue float64) {
	dig.begin()
	dig.putInt(kind)
	dig.putInts(indices)
	for _, i := range indices {
		if i >= 0 && i < len(values) {
			dig.putFloats([]float64{values[i]})
		}
	}
	dig.putFloats([]float64{maxValue})
	dig.end()
}

// OnComparison implements the audio.Sink interface.
func (dig *Audio) OnComparison(values []float64, indices []int, maxValue float64) {
	dig.event(audioComparison, values, indices, maxValue)
}

// OnSwap implements the audio.Sink interface.
func (dig *Audio) OnSwap(values []float64, indices []int, maxValue float64) {
	dig.event(audioSwap, values, indices, maxValue)
}

// OnCompletion implements the audio.Sink interface.
func (dig *Audio) OnCompletion() {
	dig.event(audioCompletion, nil, nil, 0)
}
