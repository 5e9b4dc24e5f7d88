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

// Package prefs holds the preferences of the application and the means of
// saving them to disk.
//
// Preference values are created by declaring a variable of one of the prefs
// types (Bool, Int, Float or String) and adding it to a Disk instance with a
// unique key:
//
//	dsk, _ := prefs.NewDisk(filename)
//
//	var speed prefs.Int
//	dsk.Add("sorting.speed", &speed)
//
// Values can then be read and written with Get() and Set(). Set() accepts the
// Go type of the preference or a string, which is parsed as required.
//
// Calls to Save() write every registered value to the file. Values in the
// file that have not been registered with the Disk are preserved, which
// means more than one Disk can share a file without clobbering each other.
//
// Hook functions can be attached to any preference with SetHookPre() and
// SetHookPost(). The pre hook can prevent the value being changed by
// returning an error. Int values can also be given a range with SetRange(),
// in which case new values are clamped silently.
//
// Preferences can also be set from the command line. PushCommandLineStack()
// takes a string of the form "key::value; key::value" and Load() will prefer
// values from the top of the stack over those found in the file.
package prefs
