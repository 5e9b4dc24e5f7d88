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

// Package wavwriter records the audio events of a comparison to a WAV file.
// Note that audio data is buffered in memory in its entirety and written to
// disk when EndMixing() is called.
//
// The position of each event in the recording is decided by the clock
// function given to New(). In the RUN mode the clock is the virtual clock and
// the recording has the same timing as a comparison in real time, even though
// the comparison ran as quickly as possible.
package wavwriter

import (
	"fmt"
	"math"
	"os"
	"time"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/jetsetilly/gophersort/audio"
	"github.com/jetsetilly/gophersort/logger"
)

// the output is always 16bit mono PCM
const (
	bitDepth    = 16
	numChannels = 1
	pcmFormat   = 1
)

// WavWriter implements the audio.Sink interface.
type WavWriter struct {
	filename string
	clock    func() time.Time
	synth    *audio.Synth

	// the time of the first event. events are positioned relative to this
	start   time.Time
	started bool

	buffer []float32
}

// New is the preferred method of initialisation for the WavWriter type. A
// sample rate of zero selects audio.DefaultSampleRate.
func New(filename string, sampleRate int, clock func() time.Time) (*WavWriter, error) {
	if filename == "" {
		return nil, fmt.Errorf("wavwriter: no filename")
	}
	if clock == nil {
		clock = time.Now
	}
	return &WavWriter{
		filename: filename,
		clock:    clock,
		synth:    audio.NewSynth(sampleRate),
	}, nil
}

// SetJingle replaces the completion sound with the sample.
func (aw *WavWriter) SetJingle(smp *audio.Sample) {
	aw.synth.SetJingle(smp)
}

// Filename returns the name of the file the recording will be written to.
func (aw *WavWriter) Filename() string {
	return aw.filename
}

// Duration returns the length of the recording so far.
func (aw *WavWriter) Duration() time.Duration {
	return time.Duration(len(aw.buffer)) * time.Second / time.Duration(aw.synth.SampleRate)
}

// mix the rendered sound at the current time
func (aw *WavWriter) mix(rendered []float32) {
	now := aw.clock()
	if !aw.started {
		aw.start = now
		aw.started = true
	}

	offset := aw.synth.Samples(now.Sub(aw.start))
	if need := offset + len(rendered); need > len(aw.buffer) {
		aw.buffer = append(aw.buffer, make([]float32, need-len(aw.buffer))...)
	}
	audio.Mix(aw.buffer, rendered, offset)
}

// OnComparison implements the audio.Sink interface.
func (aw *WavWriter) OnComparison(values []float64, indices []int, maxValue float64) {
	aw.mix(aw.synth.Render(audio.ComparisonTones(values, indices, maxValue)))
}

// OnSwap implements the audio.Sink interface.
func (aw *WavWriter) OnSwap(values []float64, indices []int, maxValue float64) {
	aw.mix(aw.synth.Render(audio.SwapTones(values, indices, maxValue)))
}

// OnCompletion implements the audio.Sink interface.
func (aw *WavWriter) OnCompletion() {
	aw.mix(aw.synth.Completion())
}

// EndMixing writes the recording to disk. The WavWriter should not be used
// after this function has been called.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = fmt.Errorf("wavwriter: %w", err)
		}
	}()

	enc := wav.NewEncoder(f, aw.synth.SampleRate, bitDepth, numChannels, pcmFormat)

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: numChannels,
			SampleRate:  aw.synth.SampleRate,
		},
		Data:           make([]int, len(aw.buffer)),
		SourceBitDepth: bitDepth,
	}
	for i, v := range aw.buffer {
		buf.Data[i] = int(math.Round(float64(v) * math.MaxInt16))
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}

	logger.Logf(logger.Allow, "wavwriter", "wrote %s of audio to %s", aw.Duration().Round(time.Millisecond), aw.filename)

	return nil
}
