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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect functions report a failure but allow the test to continue. The
// Demand functions stop the test immediately and should be used when later
// parts of the test depend on the value being correct. For example, testing
// that the lengths of two slices are equal before iterating over them in
// unison.
//
// Success and failure are judged according to the type of the value being
// tested. A bool is successful if it is true and an error is successful if it
// is nil. It is worth noting that an untyped nil is considered a success, which
// follows from how errors are usually interpreted.
//
// All functions accept optional tags that are prepended to any failure
// message. This is useful when testing in a loop, to identify which iteration
// failed.
//
// The Writer type implements the io.Writer interface and can be used to
// capture output. Writer.Compare() can then be used to test for equality.
package test
