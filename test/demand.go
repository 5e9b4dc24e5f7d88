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

package test

import "testing"

// DemandEquality is used to test equality between one value and another. If the
// test fails it is a testing fatality
func DemandEquality[T comparable](t *testing.T, value T, expectedValue T, tags ...any) {
	t.Helper()
	if value != expectedValue {
		t.Fatalf("%sequality test of type %T failed: '%v' does not equal '%v'", id(tags...), value, value, expectedValue)
	}
}

// DemandSuccess is used to test for a value which indicates a 'successful'
// value for the type. See ExpectSuccess() for the list of supported types. If
// the test fails it is a testing fatality
func DemandSuccess(t *testing.T, v any, tags ...any) {
	t.Helper()
	switch v := v.(type) {
	case bool:
		if !v {
			t.Fatalf("%sdemanded success (bool)", id(tags...))
		}
	case error:
		if v != nil {
			t.Fatalf("%sdemanded success (error: %v)", id(tags...), v)
		}
	case nil:
	default:
		t.Fatalf("%sunsupported type (%T) for demand testing", id(tags...), v)
	}
}

// DemandFailure is used to test for a value which indicates an 'unsuccessful'
// value for the type. See ExpectFailure() for the list of supported types. If
// the test fails it is a testing fatality
func DemandFailure(t *testing.T, v any, tags ...any) {
	t.Helper()
	switch v := v.(type) {
	case bool:
		if v {
			t.Fatalf("%sdemanded failure (bool)", id(tags...))
		}
	case error:
		if v == nil {
			t.Fatalf("%sdemanded failure (error)", id(tags...))
		}
	case nil:
		t.Fatalf("%sdemanded failure (nil)", id(tags...))
	default:
		t.Fatalf("%sunsupported type (%T) for demand testing", id(tags...), v)
	}
}
