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

// Package digest contains implementations of the algorithms.Producer and
// audio.Sink interfaces such that a cryptographic hash is produced. The hash
// can then be used to compare the output from subsequent runs. If a new hash
// differs from a previously recorded value then something has changed.
//
// Each new value is chained to the previous value, so the hash identifies the
// entire sequence and not just the most recent event.
package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"
	"math"
)

// Digest implementations should return a cryptographic hash in response to a
// Hash() request. Generation of the hash is achieved via another interface.
type Digest interface {
	Hash() string
	ResetDigest()
}

// chain is the shared part of the digest implementations. the first sha1.Size
// bytes of the buffer are always the previous digest value
type chain struct {
	digest [sha1.Size]byte
	buffer []byte
}

func (ch *chain) hash() string {
	return fmt.Sprintf("%x", ch.digest)
}

func (ch *chain) reset() {
	clear(ch.digest[:])
}

func (ch *chain) begin() {
	ch.buffer = append(ch.buffer[:0], ch.digest[:]...)
}

func (ch *chain) putInt(v int) {
	ch.buffer = binary.BigEndian.AppendUint64(ch.buffer, uint64(v))
}

func (ch *chain) putInts(v []int) {
	ch.putInt(len(v))
	for _, i := range v {
		ch.putInt(i)
	}
}

func (ch *chain) putFloats(v []float64) {
	ch.putInt(len(v))
	for _, f := range v {
		ch.buffer = binary.BigEndian.AppendUint64(ch.buffer, math.Float64bits(f))
	}
}

func (ch *chain) end() {
	ch.digest = sha1.Sum(ch.buffer)
}
