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

// Package algorithms decomposes sorting algorithms into sequences of atomic
// steps. Each algorithm is implemented as a Producer, a resumable state object
// that advances by exactly one micro-action (a comparison, a swap or a move)
// every time Next() is called.
//
// A Step is an immutable snapshot of the array and of the positions involved
// in the most recent micro-action. Every Step carries the running count of
// comparisons and swaps and the set of positions that are known to hold their
// final value.
//
// Producers are created with NewProducer(). The input slice is copied and is
// never modified. The sequence of steps is finite and cannot be restarted. When
// the sequence is exhausted Next() returns the final Step, in which every
// position is marked as sorted, and the done flag is set. Any further call to
// Next() returns the final Step again.
//
// The recursive algorithms (merge, quick and heap) do not use the Go call
// stack. Each pending recursive call is a frame on an explicit stack, so that
// the algorithm can be suspended between any two steps.
package algorithms
