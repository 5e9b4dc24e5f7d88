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

// Package terminal draws a comparison in a text terminal and reads keyboard
// input for the interactive PLAY mode.
//
// The Renderer draws the two panels of a comparison side by side. Each value
// in the array is drawn as a vertical bar using the eighth-block characters,
// with colour showing which positions are being compared, which have just
// been swapped and which are known to be sorted. When there are more values
// than there are columns available, neighbouring values share a column and
// the column shows the largest of them.
//
// The keyboard reader in the package is the only goroutine used by the PLAY
// mode. Keys are sent over a channel which the host drains between frames.
//
// The easyterm sub-package puts the terminal into cbreak mode so that keys are
// received as soon as they are pressed.
package terminal
