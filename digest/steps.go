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

package digest

import (
	"github.com/jetsetilly/gophersort/algorithms"
)

// Steps produces a hash of every step produced by the producers it creates.
type Steps struct {
	chain
	count int
}

// NewSteps is the preferred method of initialisation for the Steps type.
func NewSteps() *Steps {
	return &Steps{}
}

// Hash implements the Digest interface.
func (dig *Steps) Hash() string {
	return dig.hash()
}

// ResetDigest implements the Digest interface.
func (dig *Steps) ResetDigest() {
	dig.reset()
	dig.count = 0
}

// Count returns the number of steps that have contributed to the hash.
func (dig *Steps) Count() int {
	return dig.count
}

// Add the step to the digest.
func (dig *Steps) Add(step algorithms.Step, done bool) {
	dig.begin()
	dig.putFloats(step.Array)
	dig.putInts(step.Comparing)
	dig.putInts(step.Swapped)
	dig.putInts(step.Sorted)
	dig.putInt(step.Comparisons)
	dig.putInt(step.Swaps)
	if done {
		dig.putInt(1)
	} else {
		dig.putInt(0)
	}
	dig.end()
	dig.count++
}

// Factory creates a producer for the algorithm in the same way as
// algorithms.NewProducer(). Every step taken from the producer is added to the
// digest. The function signature matches controller.Factory.
func (dig *Steps) Factory(alg algorithms.Algorithm, values []float64) (algorithms.Producer, error) {
	p, err := algorithms.NewProducer(alg, values)
	if err != nil {
		return nil, err
	}
	return &producer{Producer: p, dig: dig}, nil
}

type producer struct {
	algorithms.Producer
	dig *Steps
}

func (p *producer) Next() (algorithms.Step, bool) {
	step, done := p.Producer.Next()
	p.dig.Add(step, done)
	return step, done
}
