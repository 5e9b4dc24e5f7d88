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

import "time"

// The range of frequencies used to represent values.
const (
	MinFrequency = 220.0
	MaxFrequency = 880.0
)

// Frequency maps a value to a frequency between MinFrequency and
// MaxFrequency. Larger values have a higher pitch.
func Frequency(value float64, maxValue float64) float64 {
	if maxValue <= 0 {
		return MinFrequency
	}
	return MinFrequency + (value/maxValue)*(MaxFrequency-MinFrequency)
}

// Waveform is the shape of a tone.
type Waveform int

// List of waveforms.
const (
	Sine Waveform = iota
	Triangle
)

// Tone describes a single note. The gain decays exponentially over the
// duration of the note.
type Tone struct {
	Frequency float64
	Waveform  Waveform
	Gain      float64

	// offset from the beginning of the event
	Start    time.Duration
	Duration time.Duration
}

// tone parameters for the different kinds of event
const (
	comparisonGain     = 0.1
	comparisonDuration = 100 * time.Millisecond
	comparisonSpacing  = 150 * time.Millisecond

	swapGain     = 0.15
	swapDuration = 150 * time.Millisecond
	swapSpacing  = 200 * time.Millisecond

	completionGain     = 0.2
	completionDuration = 200 * time.Millisecond
	completionSpacing  = 150 * time.Millisecond
)

// the C major arpeggio played on completion: C4, E4, G4, C5
var completionNotes = []float64{261.63, 329.63, 392.00, 523.25}

func tones(values []float64, indices []int, maxValue float64, wf Waveform, gain float64, duration, spacing time.Duration) []Tone {
	// a single index is not a comparison or a swap
	if len(indices) < 2 {
		return nil
	}

	t := make([]Tone, 0, len(indices))
	for i, idx := range indices {
		if idx < 0 || idx >= len(values) {
			continue
		}
		t = append(t, Tone{
			Frequency: Frequency(values[idx], maxValue),
			Waveform:  wf,
			Gain:      gain,
			Start:     time.Duration(i) * spacing,
			Duration:  duration,
		})
	}
	return t
}

// ComparisonTones returns the tones for a comparison event.
func ComparisonTones(values []float64, indices []int, maxValue float64) []Tone {
	return tones(values, indices, maxValue, Sine, comparisonGain, comparisonDuration, comparisonSpacing)
}

// SwapTones returns the tones for a swap event.
func SwapTones(values []float64, indices []int, maxValue float64) []Tone {
	return tones(values, indices, maxValue, Triangle, swapGain, swapDuration, swapSpacing)
}

// CompletionTones returns the tones for the completion arpeggio.
func CompletionTones() []Tone {
	t := make([]Tone, 0, len(completionNotes))
	for i, f := range completionNotes {
		t = append(t, Tone{
			Frequency: f,
			Waveform:  Sine,
			Gain:      completionGain,
			Start:     time.Duration(i) * completionSpacing,
			Duration:  completionDuration,
		})
	}
	return t
}
