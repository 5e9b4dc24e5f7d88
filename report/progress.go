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

package report

import (
	"fmt"
	"io"

	"github.com/guptarohit/asciigraph"

	"github.com/jetsetilly/gophersort/comparison"
)

// Progress records the counts of both panels over time. Call Sample() once
// per tick.
type Progress struct {
	labels      [comparison.NumPanels]string
	comparisons [comparison.NumPanels][]float64
	swaps       [comparison.NumPanels][]float64
}

// Sample the counts of both panels.
func (prg *Progress) Sample(cmp *comparison.Comparison) {
	for _, p := range comparison.Panels() {
		snp := cmp.Snapshot(p)
		prg.labels[p] = snp.AlgorithmName
		prg.comparisons[p] = append(prg.comparisons[p], float64(snp.Comparisons))
		prg.swaps[p] = append(prg.swaps[p], float64(snp.Swaps))
	}
}

// Len returns the number of samples.
func (prg *Progress) Len() int {
	return len(prg.comparisons[comparison.Left])
}

// Graph draws the comparison and swap curves of both panels. If colour is
// true then the left panel is drawn in red and the right panel in blue.
func (prg *Progress) Graph(w io.Writer, width int, height int, colour bool) error {
	if prg.Len() == 0 {
		return nil
	}

	plot := func(caption string, series [comparison.NumPanels][]float64) string {
		opts := []asciigraph.Option{
			asciigraph.Height(height),
			asciigraph.Width(width),
			asciigraph.Precision(0),
			asciigraph.Caption(caption),
		}
		if colour {
			opts = append(opts, asciigraph.SeriesColors(asciigraph.Red, asciigraph.Blue))
		}
		return asciigraph.PlotMany(series[:], opts...)
	}

	legend := fmt.Sprintf("%s (left) and %s (right)", prg.labels[comparison.Left], prg.labels[comparison.Right])

	_, err := fmt.Fprintf(w, "%s\n\n%s\n",
		plot(fmt.Sprintf("comparisons: %s", legend), prg.comparisons),
		plot(fmt.Sprintf("swaps: %s", legend), prg.swaps))
	return err
}
