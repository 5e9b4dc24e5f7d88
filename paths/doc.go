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

// Package paths contains functions to prepare paths to Gophersort resources.
//
// The ResourcePath() function joins the supplied sub-path and filename to the
// base resource path. For example, the following will return the path to the
// preferences file.
//
//	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
//
// The base resource path depends on how the program was built. In the default
// build it is the ".gophersort" directory in the current working directory.
// When built with the "release" tag it is the "gophersort" directory in the
// user's configuration directory, as returned by os.UserConfigDir().
//
// In either case, the directory for the sub-path is created if it does not
// exist. The file itself is not created.
package paths
