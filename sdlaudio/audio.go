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

// Package sdlaudio plays the audio events of a comparison through an SDL audio
// device. The events are mixed by an audio.Stream and the mixed audio is
// queued on the device by Flush(), which the host should call once per
// frame.
//
// Queueing is never allowed to block. If the device has fallen behind, the
// queue is cleared before new audio is added.
package sdlaudio

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/gophersort/audio"
	"github.com/jetsetilly/gophersort/logger"
)

// the number of samples in the device buffer. a short buffer keeps the delay
// between an event and its sound to a minimum
const bufferLength = 512

// the most audio that can be waiting in the mixer
const pendingLimit = 2 * time.Second

// the most audio that can be queued on the device before the queue is
// cleared
const queueLimit = 250 * time.Millisecond

// Audio outputs sound using SDL.
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	*audio.Stream

	// the size of the device queue in bytes that triggers a clear
	queueLimit uint32
}

// NewAudio is the preferred method of initialisation for the Audio Type.
func NewAudio() (*Audio, error) {
	if err := sdl.InitSubSystem(sdl.INIT_AUDIO); err != nil {
		return nil, fmt.Errorf("sdlaudio: %w", err)
	}

	aud := &Audio{}

	request := &sdl.AudioSpec{
		Freq:     audio.DefaultSampleRate,
		Format:   sdl.AUDIO_S16LSB,
		Channels: 1,
		Samples:  bufferLength,
	}

	var err error
	aud.id, err = sdl.OpenAudioDevice("", false, request, &aud.spec, 0)
	if err != nil {
		sdl.QuitSubSystem(sdl.INIT_AUDIO)
		return nil, fmt.Errorf("sdlaudio: %w", err)
	}

	aud.Stream = audio.NewStream(int(aud.spec.Freq), pendingLimit)
	aud.queueLimit = uint32(aud.Stream.SampleRate()*2) * uint32(queueLimit/time.Millisecond) / 1000

	logger.Logf(logger.Allow, "sdlaudio", "frequency: %d samples/sec", aud.spec.Freq)
	logger.Logf(logger.Allow, "sdlaudio", "buffer size: %d samples", aud.spec.Samples)

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// Flush queues the audio that has become due since the previous call.
func (aud *Audio) Flush(now time.Time) error {
	data := aud.Stream.Take(now)
	if len(data) == 0 {
		return nil
	}

	if sdl.GetQueuedAudioSize(aud.id) > aud.queueLimit {
		sdl.ClearQueuedAudio(aud.id)
		logger.Log(logger.Allow, "sdlaudio", "audio queue cleared")
	}

	if err := sdl.QueueAudio(aud.id, data); err != nil {
		return fmt.Errorf("sdlaudio: %w", err)
	}

	return nil
}

// End closes the audio device.
func (aud *Audio) End() {
	sdl.CloseAudioDevice(aud.id)
	sdl.QuitSubSystem(sdl.INIT_AUDIO)
}
