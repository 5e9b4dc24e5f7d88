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

package algorithms

import (
	"fmt"
	"math"
)

// IsSorted returns true if the values are in ascending order.
func IsSorted(values []float64) bool {
	for i := 1; i < len(values); i++ {
		if values[i-1] > values[i] {
			return false
		}
	}
	return true
}

// Check returns an error if any of the values is not a finite number.
func Check(values []float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("value at position %d is not a finite number (%v)", i, v)
		}
	}
	return nil
}
