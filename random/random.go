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

package random

import (
	"math/rand/v2"
	"time"
)

// Random is a seeded random number generator.
type Random struct {
	seed uint64
	rng  *rand.Rand

	// use zero seed rather than the random base seed. the value of ZeroSeed
	// is checked on every call to Reseed()
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type. A
// seed of zero means that the seed should be taken from the current time.
func NewRandom(seed int64) *Random {
	rnd := &Random{}
	if seed == 0 {
		rnd.seed = uint64(time.Now().UnixNano())
	} else {
		rnd.seed = uint64(seed)
	}
	rnd.rng = rand.New(rand.NewPCG(rnd.seed, 0))
	return rnd
}

// Seed returns the seed used to initialise the generator.
func (rnd *Random) Seed() int64 {
	if rnd.ZeroSeed {
		return 0
	}
	return int64(rnd.seed)
}

// Reseed restarts the sequence of random numbers from the beginning.
func (rnd *Random) Reseed() {
	if rnd.ZeroSeed {
		rnd.rng = rand.New(rand.NewPCG(0, 0))
		return
	}
	rnd.rng = rand.New(rand.NewPCG(rnd.seed, 0))
}

// Intn returns a random number in the range 0 to n-1.
func (rnd *Random) Intn(n int) int {
	return rnd.rng.IntN(n)
}

// Shuffle randomises the order of n elements using the swap function.
func (rnd *Random) Shuffle(n int, swap func(i, j int)) {
	rnd.rng.Shuffle(n, swap)
}
