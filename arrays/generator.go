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

package arrays

import (
	"github.com/jetsetilly/gophersort/random"
)

// The range of the number of values in a generated array.
const (
	MinCount = 10
	MaxCount = 200
)

// ClampCount forces the count into the range MinCount to MaxCount.
func ClampCount(count int) int {
	return min(max(count, MinCount), MaxCount)
}

// Generator is implemented by any type that can supply arrays.
type Generator interface {
	Generate(count int, d Distribution) []float64
}

// generator is the default implementation of the Generator interface.
type generator struct {
	rnd *random.Random
}

// NewGenerator is the preferred method of initialisation for the default
// Generator. The count passed to Generate() is not clamped, the caller should
// use ClampCount() if required.
func NewGenerator(rnd *random.Random) Generator {
	return &generator{rnd: rnd}
}

// Generate implements the Generator interface.
func (g *generator) Generate(count int, d Distribution) []float64 {
	count = max(count, 0)

	v := make([]float64, count)
	for i := range v {
		v[i] = float64(i + 1)
	}

	switch d {
	case Random:
		g.rnd.Shuffle(count, func(i, j int) {
			v[i], v[j] = v[j], v[i]
		})

	case Ascending:

	case Descending:
		reverse(v)

	case SplitAscending:
		// upper half followed by the lower half, both ascending
		h := count / 2
		v = append(append(make([]float64, 0, count), v[h:]...), v[:h]...)

	case SplitDescending:
		// lower half followed by the upper half, both descending
		h := count / 2
		reverse(v[:h])
		reverse(v[h:])

	case NearlySorted:
		if count < 2 {
			break
		}

		// swap about ten percent of the values
		swaps := max(1, count/10)
		for range swaps {
			i := g.rnd.Intn(count)
			j := g.rnd.Intn(count)
			v[i], v[j] = v[j], v[i]
		}

	case FewUnique:
		unique := max(2, min(10, count/10))
		for i := range v {
			v[i] = float64(g.rnd.Intn(unique) + 1)
		}
	}

	return v
}

func reverse(v []float64) {
	for i, j := 0, len(v)-1; i < j; i, j = i+1, j-1 {
		v[i], v[j] = v[j], v[i]
	}
}

// Fixed is a Generator that always supplies a copy of the same array,
// regardless of the requested count and distribution.
type Fixed []float64

// Generate implements the Generator interface.
func (f Fixed) Generate(_ int, _ Distribution) []float64 {
	return append([]float64(nil), f...)
}
