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
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jetsetilly/gophersort/logger"
)

// Sample is mono PCM data loaded from a file.
type Sample struct {
	SampleRate float64

	// samples are in the range -1.0 to 1.0. the data is taken from the left
	// channel in the case of stereo source files
	Data []float32
}

// Duration returns the length of the sample in seconds.
func (smp *Sample) Duration() float64 {
	if smp.SampleRate == 0 {
		return 0
	}
	return float64(len(smp.Data)) / smp.SampleRate
}

// Resample returns the data of the sample at a different sample rate. Linear
// interpolation is used between source samples.
func (smp *Sample) Resample(rate float64) []float32 {
	if len(smp.Data) == 0 || smp.SampleRate == 0 {
		return nil
	}
	if rate == smp.SampleRate {
		return append([]float32(nil), smp.Data...)
	}

	ratio := smp.SampleRate / rate
	n := int(float64(len(smp.Data)) / ratio)
	out := make([]float32, n)
	for i := range out {
		p := float64(i) * ratio
		j := int(p)
		if j+1 >= len(smp.Data) {
			out[i] = smp.Data[len(smp.Data)-1]
			continue
		}
		f := float32(p - float64(j))
		out[i] = smp.Data[j]*(1-f) + smp.Data[j+1]*f
	}
	return out
}

// LoadSample decodes a WAV or MP3 file. The file type is decided by the
// filename extension.
func LoadSample(filename string) (*Sample, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("audio: %w", err)
	}
	defer f.Close()

	var smp *Sample

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav":
		smp, err = decodeWAV(f)
	case ".mp3":
		smp, err = decodeMP3(f)
	default:
		return nil, fmt.Errorf("audio: unsupported file type (%s)", filepath.Ext(filename))
	}
	if err != nil {
		return nil, err
	}

	logger.Logf(logger.Allow, "audio", "loaded %s: %.0fHz, %.2fs", filepath.Base(filename), smp.SampleRate, smp.Duration())

	return smp, nil
}

func decodeWAV(r io.ReadSeeker) (*Sample, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("wav: not a valid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("wav: %w", err)
	}

	chans := int(dec.NumChans)
	if chans == 0 {
		return nil, fmt.Errorf("wav: no channels")
	}

	// normalise integer samples to the range -1.0 to 1.0
	scale := float32(int(1) << (dec.BitDepth - 1))

	smp := &Sample{
		SampleRate: float64(dec.SampleRate),
		Data:       make([]float32, 0, len(buf.Data)/chans),
	}

	// first channel only
	for i := 0; i < len(buf.Data); i += chans {
		smp.Data = append(smp.Data, float32(buf.Data[i])/scale)
	}

	return smp, nil
}

func decodeMP3(r io.Reader) (*Sample, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("mp3: %w", err)
	}

	smp := &Sample{
		SampleRate: float64(dec.SampleRate()),
	}

	// the decoded stream is always 16bit little endian with two channels.
	// a sample is therefore four bytes and we want the first two of them
	chunk := make([]byte, 4096)
	for {
		n, err := io.ReadFull(dec, chunk)
		for i := 0; i+1 < n; i += 4 {
			v := int16(uint16(chunk[i]) | uint16(chunk[i+1])<<8)
			smp.Data = append(smp.Data, float32(v)/32768.0)
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("mp3: %w", err)
		}
	}

	return smp, nil
}
