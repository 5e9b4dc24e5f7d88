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

// Package arrays generates the arrays of values that are sorted by the
// algorithms. The shape of the array is decided by a Distribution.
//
// Values are always positive integers, stored as float64 because that is what
// the algorithms package works with. With the exception of FewUnique, the
// array is a permutation of the values 1 to count.
//
// The Generator interface allows the source of arrays to be replaced. For
// example, a test can supply a fixed array.
package arrays
