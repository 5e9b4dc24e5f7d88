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

package audio_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/gophersort/audio"
	"github.com/jetsetilly/gophersort/test"
)

func TestFrequency(t *testing.T) {
	test.ExpectApproximate(t, audio.Frequency(0, 100), 220.0, 0.001)
	test.ExpectApproximate(t, audio.Frequency(100, 100), 880.0, 0.001)
	test.ExpectApproximate(t, audio.Frequency(50, 100), 550.0, 0.001)
	test.ExpectApproximate(t, audio.Frequency(50, 0), 220.0, 0.001)
}

func TestTones(t *testing.T) {
	values := []float64{10, 20, 30}

	c := audio.ComparisonTones(values, []int{0, 2}, 30)
	test.DemandEquality(t, len(c), 2)
	test.ExpectEquality(t, c[0].Waveform, audio.Sine)
	test.ExpectEquality(t, c[1].Start, 150*time.Millisecond)
	test.ExpectApproximate(t, c[1].Frequency, 880.0, 0.001)

	s := audio.SwapTones(values, []int{0, 1}, 30)
	test.DemandEquality(t, len(s), 2)
	test.ExpectEquality(t, s[0].Waveform, audio.Triangle)
	test.ExpectEquality(t, s[1].Start, 200*time.Millisecond)

	// a single index does not make a sound
	test.ExpectEquality(t, len(audio.ComparisonTones(values, []int{1}, 30)), 0)

	test.ExpectEquality(t, len(audio.CompletionTones()), 4)
}

func TestRender(t *testing.T) {
	syn := audio.NewSynth(1000)

	buf := syn.Render(audio.SwapTones([]float64{1, 2}, []int{0, 1}, 2))

	// second tone starts at 200ms and lasts 150ms
	test.ExpectEquality(t, len(buf), 350)

	for _, v := range buf {
		test.DemandSuccess(t, v >= -1.0 && v <= 1.0)
	}

	// completion arpeggio is four notes 150ms apart, each lasting 200ms
	test.ExpectEquality(t, len(syn.Completion()), 650)
}

func TestJingle(t *testing.T) {
	syn := audio.NewSynth(1000)
	syn.SetJingle(&audio.Sample{SampleRate: 500, Data: []float32{0, 0.5, 1.0, 0.5}})

	// twice the sample rate means twice the number of samples
	buf := syn.Completion()
	test.DemandEquality(t, len(buf), 8)
	test.ExpectApproximate(t, buf[1], 0.25, 0.001)

	syn.SetJingle(nil)
	test.ExpectEquality(t, len(syn.Completion()), 650)
}

func TestMix(t *testing.T) {
	dst := make([]float32, 4)
	audio.Mix(dst, []float32{0.5, 0.5, 0.9}, 2)
	test.ExpectApproximate(t, dst[2], 0.5, 0.001)
	test.ExpectApproximate(t, dst[3], 0.5, 0.001)

	// mixing is clamped
	audio.Mix(dst, []float32{0.9}, 3)
	test.ExpectApproximate(t, dst[3], 1.0, 0.001)
}

func TestMulti(t *testing.T) {
	a := &audio.Recorder{}
	b := &audio.Recorder{}
	m := audio.Multi{a, b}

	m.OnComparison([]float64{1, 2}, []int{0, 1}, 2)
	m.OnSwap([]float64{1, 2}, []int{0, 1}, 2)
	m.OnCompletion()

	for _, r := range []*audio.Recorder{a, b} {
		test.ExpectEquality(t, r.Count(audio.Comparison), 1)
		test.ExpectEquality(t, r.Count(audio.Swap), 1)
		test.ExpectEquality(t, r.Count(audio.Completion), 1)
	}
}

func TestStream(t *testing.T) {
	s := audio.NewStream(1000, time.Second)
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	test.ExpectEquality(t, len(s.Take(start)), 0)

	// two comparison tones. the second ends at 250ms
	s.OnComparison([]float64{1, 2}, []int{0, 1}, 2)
	test.ExpectEquality(t, s.Pending(), 250)

	// a swap at the same position is mixed with the comparison
	s.OnSwap([]float64{1, 2}, []int{0, 1}, 2)
	test.ExpectEquality(t, s.Pending(), 350)

	// 100ms of audio is two bytes per sample
	test.ExpectEquality(t, len(s.Take(start.Add(100*time.Millisecond))), 200)
	test.ExpectEquality(t, s.Pending(), 250)

	// never more than is pending
	test.ExpectEquality(t, len(s.Take(start.Add(time.Hour))), 500)
	test.ExpectEquality(t, s.Pending(), 0)

	// an event longer than the limit is dropped
	s = audio.NewStream(1000, 100*time.Millisecond)
	s.OnCompletion()
	test.ExpectEquality(t, s.Pending(), 0)
}
