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

// Package playmode is the interactive front end. It shows the two panels of a
// comparison in the terminal and maps keypresses to comparison commands.
//
// The terminal is put into cbreak mode for the duration of Play() so that
// keypresses are delivered immediately. Ctrl-C is still delivered as an
// interrupt signal and ends the session in the same way as the quit key.
//
// The Session type contains the part of play mode that does not depend on a
// terminal and can be driven directly.
package playmode
