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

// Package logger is the central log repository for gophersort. Log entries
// are tagged and collected in a bounded ring; the oldest entries are forgotten
// once the limit is reached.
//
// Identical consecutive entries are collapsed into a single entry with a
// repeat count, so a component that logs the same problem every tick does not
// fill the log.
//
// Logging requires a Permission. Components that can run quietly (for example
// the controllers used during a batch survey) implement the Permission
// interface and return false from AllowLogging(). The Allow value should be
// used where logging is always permitted.
package logger
