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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes and
// allows different flags for each mode.
//
// Arguments are given to the Modes type with NewArgs() and parsed with
// Parse(). Parse() takes no arguments, which is what allows the same argument
// list to be parsed in layers. For example, the top layer of the gophersort
// command line selects the mode:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("PLAY", "RUN", "TRACE", "PERFORMANCE", "VERSION")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// The first sub-mode in the list is the default mode. If the first argument
// after the flags does not name a sub-mode, the default is used and the
// argument is left for the next layer. Sub-mode comparisons are case
// insensitive and Mode() always returns the sub-mode in upper case.
//
// The next layer is started with NewMode(). The flags for the mode are then
// added before Parse() is called again:
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		speed := md.AddInt("speed", 5, "speed of the comparison (1 to 10)")
//		p, err := md.Parse()
//		...
//		run(*speed, md.RemainingArgs())
//	}
//
// Flags with a type that the flag package does not support directly can be
// added with AddFunc(). The function is called with the string value of the
// flag and should return an error if the value is not valid. This is how the
// algorithm and distribution flags are handled:
//
//	alg := algorithms.Bubble
//	md.AddFunc("left", "algorithm for the left panel", func(s string) error {
//		var err error
//		alg, err = algorithms.Parse(s)
//		return err
//	})
//
// Help is printed automatically when the -help flag is given. The return value
// of ParseHelp tells the caller that nothing else needs to be done.
package modalflag
