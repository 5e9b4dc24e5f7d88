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

// Package audio defines the Sink interface through which a sorting run reports
// audible events, and the tone synthesis used by the sinks that produce
// sound.
//
// A sorting run never produces sound directly. It calls the methods of a Sink
// and the Sink decides what to do. The wavwriter package renders the events to
// a WAV file and the sdlaudio package plays them through an SDL audio device,
// using the Stream type to mix overlapping events. Sink implementations must
// never block the caller.
//
// The pitch of a tone depends on the value it represents. The lowest value
// sounds at 220Hz and the maximum value at 880Hz. Comparisons are heard as
// short sine tones, one for each compared position, 150ms apart. Swaps are
// heard as triangle tones 200ms apart. Completion is a rising C major
// arpeggio, or a sample loaded with LoadSample().
package audio
