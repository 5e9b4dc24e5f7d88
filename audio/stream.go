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

package audio

import (
	"encoding/binary"
	"math"
	"time"
)

// Stream mixes the sound of audio events for live playback. Events are mixed
// into a pending buffer at the current play position and the host takes the
// audio that has become due on every frame with Take().
//
// Stream implements the Sink interface.
type Stream struct {
	synth *Synth

	// audio that has not yet been taken. the first sample is at the current
	// play position
	pending []float32

	last    time.Time
	running bool

	// the maximum number of pending samples. events that would extend the
	// pending buffer beyond this are dropped
	limit int
}

// NewStream is the preferred method of initialisation for the Stream type.
// The limit is the longest duration of pending audio. Events are dropped rather
// than let the pending audio grow longer than the limit.
func NewStream(sampleRate int, limit time.Duration) *Stream {
	s := &Stream{
		synth: NewSynth(sampleRate),
	}
	s.limit = s.synth.Samples(limit)
	return s
}

// SampleRate returns the sample rate of the Stream.
func (s *Stream) SampleRate() int {
	return s.synth.SampleRate
}

// SetJingle replaces the completion sound with the sample.
func (s *Stream) SetJingle(smp *Sample) {
	s.synth.SetJingle(smp)
}

// Pending returns the number of samples waiting to be taken.
func (s *Stream) Pending() int {
	return len(s.pending)
}

func (s *Stream) mix(rendered []float32) {
	if len(rendered) > s.limit {
		return
	}
	if len(rendered) > len(s.pending) {
		s.pending = append(s.pending, make([]float32, len(rendered)-len(s.pending))...)
	}
	Mix(s.pending, rendered, 0)
}

// OnComparison implements the Sink interface.
func (s *Stream) OnComparison(values []float64, indices []int, maxValue float64) {
	s.mix(s.synth.Render(ComparisonTones(values, indices, maxValue)))
}

// OnSwap implements the Sink interface.
func (s *Stream) OnSwap(values []float64, indices []int, maxValue float64) {
	s.mix(s.synth.Render(SwapTones(values, indices, maxValue)))
}

// OnCompletion implements the Sink interface.
func (s *Stream) OnCompletion() {
	s.mix(s.synth.Completion())
}

// Take removes the audio that has become due since the previous call to Take()
// and returns it as 16bit signed little-endian PCM data. The first call to
// Take() returns nothing.
func (s *Stream) Take(now time.Time) []byte {
	if !s.running {
		s.running = true
		s.last = now
		return nil
	}

	n := s.synth.Samples(now.Sub(s.last))
	if n <= 0 {
		return nil
	}
	s.last = now

	n = min(n, len(s.pending))
	out := make([]byte, n*2)
	for i, v := range s.pending[:n] {
		binary.LittleEndian.PutUint16(out[i*2:], uint16(int16(math.Round(float64(v)*math.MaxInt16))))
	}
	s.pending = s.pending[n:]

	return out
}
