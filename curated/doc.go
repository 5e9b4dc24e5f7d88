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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It takes a pattern,
// placeholder values and returns an error. The pattern is what differentiates
// one kind of curated error from another. For example, the controller package
// declares:
//
//	const StepAdvanceError = "step advance: %v"
//
// and callers check for it with:
//
//	if curated.Is(err, controller.StepAdvanceError) {
//		...
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain. A chain is formed by passing a curated error as one of the
// values to Errorf().
//
//	e := curated.Errorf(algorithms.ConfigOutOfRange, "unknown algorithm")
//	f := curated.Errorf(algorithms.ProducerInitError, e)
//
//	curated.Has(f, algorithms.ConfigOutOfRange) // true
//	curated.Is(f, algorithms.ConfigOutOfRange)  // false
//
// The Error() function ensures that the error chain is normalised.
// Specifically, the chain does not contain duplicate adjacent parts. Parts are
// separated by the sub-string ': '. For example, if the pattern "error: %v" is
// used to wrap another error created with the same pattern then the message
// will be:
//
//	error: not yet implemented
//
// and not:
//
//	error: error: not yet implemented
//
// Curated errors also support the Unwrap() convention of the standard errors
// package. The first error found among the values is the wrapped error.
package curated
