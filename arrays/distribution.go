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

package arrays

import (
	"strings"

	"github.com/jetsetilly/gophersort/algorithms"
	"github.com/jetsetilly/gophersort/curated"
)

// Sentinal error patterns.
const (
	UnknownDistribution = "unknown distribution: %v"
)

// Distribution describes the initial ordering of an array.
type Distribution int

// List of valid Distribution values.
const (
	Random Distribution = iota
	Ascending
	Descending
	SplitAscending
	SplitDescending
	NearlySorted
	FewUnique
	numDistributions
)

var distributionNames = [numDistributions]string{
	"random",
	"ascending",
	"descending",
	"split-ascending",
	"split-descending",
	"nearly-sorted",
	"few-unique",
}

func (d Distribution) String() string {
	if d < 0 || d >= numDistributions {
		return "unknown"
	}
	return distributionNames[d]
}

// Cycle returns the distribution that follows d in the list, wrapping around
// at the end.
func (d Distribution) Cycle() Distribution {
	return (d + 1) % numDistributions
}

// Distributions returns all distributions in order.
func Distributions() []Distribution {
	l := make([]Distribution, 0, numDistributions)
	for d := range numDistributions {
		l = append(l, d)
	}
	return l
}

// ParseDistribution converts a name to a Distribution. Matching is case
// insensitive and spaces or underscores can be used in place of hyphens.
//
// An unrecognised name is a ConfigOutOfRange error.
func ParseDistribution(name string) (Distribution, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.NewReplacer(" ", "-", "_", "-").Replace(n)
	for d := range numDistributions {
		if n == distributionNames[d] {
			return d, nil
		}
	}
	return Random, curated.Errorf(algorithms.ConfigOutOfRange, curated.Errorf(UnknownDistribution, name))
}
