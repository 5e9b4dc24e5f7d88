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
	"math"
	"time"
)

// DefaultSampleRate is the sample rate used by the sinks if no other rate is
// requested.
const DefaultSampleRate = 44100

// the level a tone decays to at the end of its duration
const decayFloor = 0.001

// Synth renders tones as mono PCM data. Samples are in the range -1.0 to 1.0.
type Synth struct {
	SampleRate int

	// if jingle is not nil it replaces the completion arpeggio
	jingle []float32
}

// NewSynth is the preferred method of initialisation for the Synth type.
func NewSynth(sampleRate int) *Synth {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	return &Synth{SampleRate: sampleRate}
}

// SetJingle replaces the completion arpeggio with the sample. The sample is
// resampled to the sample rate of the Synth. A nil sample restores the
// arpeggio.
func (s *Synth) SetJingle(smp *Sample) {
	if smp == nil {
		s.jingle = nil
		return
	}
	s.jingle = smp.Resample(float64(s.SampleRate))
}

// Samples returns the number of samples required for the duration.
func (s *Synth) Samples(d time.Duration) int {
	return int(math.Round(d.Seconds() * float64(s.SampleRate)))
}

// Render the tones into a new buffer. The buffer is long enough for the last
// tone to finish.
func (s *Synth) Render(tones []Tone) []float32 {
	var end time.Duration
	for _, t := range tones {
		end = max(end, t.Start+t.Duration)
	}

	buf := make([]float32, s.Samples(end))
	for _, t := range tones {
		s.mix(buf, t)
	}
	return buf
}

// Completion renders the completion sound.
func (s *Synth) Completion() []float32 {
	if s.jingle != nil {
		return append([]float32(nil), s.jingle...)
	}
	return s.Render(CompletionTones())
}

func (s *Synth) mix(buf []float32, t Tone) {
	start := s.Samples(t.Start)
	n := s.Samples(t.Duration)
	if n == 0 {
		return
	}

	// exponential decay from the tone's gain to the decay floor
	decay := math.Pow(decayFloor/t.Gain, 1.0/float64(n))
	gain := t.Gain

	step := t.Frequency / float64(s.SampleRate)
	for i := range n {
		o := start + i
		if o >= len(buf) {
			break
		}

		phase := math.Mod(float64(i)*step, 1.0)

		var v float64
		switch t.Waveform {
		case Sine:
			v = math.Sin(2 * math.Pi * phase)
		case Triangle:
			v = 4*math.Abs(phase-0.5) - 1
		}

		buf[o] = clamp(buf[o] + float32(v*gain))
		gain *= decay
	}
}

func clamp(v float32) float32 {
	return min(max(v, -1.0), 1.0)
}

// Mix adds src into dst beginning at the offset. Samples that would fall
// beyond the end of dst are not mixed.
func Mix(dst []float32, src []float32, offset int) {
	for i, v := range src {
		o := offset + i
		if o < 0 {
			continue
		}
		if o >= len(dst) {
			return
		}
		dst[o] = clamp(dst[o] + v)
	}
}
