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

package wavwriter_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-audio/wav"

	"github.com/jetsetilly/gophersort/audio"
	"github.com/jetsetilly/gophersort/test"
	"github.com/jetsetilly/gophersort/wavwriter"
)

func TestWavWriter(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.wav")

	now := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	aw, err := wavwriter.New(fn, 8000, clock)
	test.DemandSuccess(t, err)

	var sink audio.Sink = aw
	values := []float64{1, 2, 3, 4}

	// a comparison of two values at the start of the recording is two tones
	// of 100ms, 150ms apart
	sink.OnComparison(values, []int{0, 1}, 4)
	test.ExpectEquality(t, aw.Duration(), 250*time.Millisecond)

	// a swap a second later
	now = now.Add(time.Second)
	sink.OnSwap(values, []int{2, 3}, 4)
	test.ExpectEquality(t, aw.Duration(), 1350*time.Millisecond)

	test.DemandSuccess(t, aw.EndMixing())

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.ExpectSuccess(t, dec.IsValidFile())
	test.ExpectEquality(t, dec.SampleRate, uint32(8000))
	test.ExpectEquality(t, dec.NumChans, uint16(1))
	test.ExpectEquality(t, dec.BitDepth, uint16(16))

	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(buf.Data), 8000*1350/1000)

	// the silence between the comparison and the swap
	for _, v := range buf.Data[8000*300/1000 : 8000*950/1000] {
		test.DemandEquality(t, v, 0)
	}

	// the start of the recording is not silent
	var loud bool
	for _, v := range buf.Data[:100] {
		loud = loud || v != 0
	}
	test.ExpectSuccess(t, loud)
}

func TestNoFilename(t *testing.T) {
	_, err := wavwriter.New("", 0, nil)
	test.ExpectFailure(t, err)
}
