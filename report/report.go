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
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jetsetilly/gophersort/algorithms"
	"github.com/jetsetilly/gophersort/comparison"
	"github.com/jetsetilly/gophersort/curated"
)

// Sentinal error patterns.
const (
	UnknownFormat = "report: unknown format (%s)"
)

// Format of the written summary.
type Format int

// List of valid Format values.
const (
	Text Format = iota
	YAML
)

func (f Format) String() string {
	switch f {
	case Text:
		return "text"
	case YAML:
		return "yaml"
	}
	return "unknown format"
}

// ParseFormat returns the Format for the name. Matching is case insensitive.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "text", "":
		return Text, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return Text, curated.Errorf(algorithms.ConfigOutOfRange, curated.Errorf(UnknownFormat, name))
}

// Panel is the summary of one side of the comparison.
type Panel struct {
	Panel       string `yaml:"panel"`
	Algorithm   string `yaml:"algorithm"`
	Comparisons int    `yaml:"comparisons"`
	Swaps       int    `yaml:"swaps"`
	Elapsed     string `yaml:"elapsed"`
	Sorted      bool   `yaml:"sorted"`
	Error       string `yaml:"error,omitempty"`
	Digest      string `yaml:"digest,omitempty"`

	elapsed int64
}

// Summary of a comparison.
type Summary struct {
	Elements     int     `yaml:"elements"`
	Distribution string  `yaml:"distribution"`
	Seed         int64   `yaml:"seed"`
	Speed        int     `yaml:"speed"`
	Panels       []Panel `yaml:"panels"`
	Winner       string  `yaml:"winner"`

	// digest of the audio events from both panels
	AudioDigest string `yaml:"audioDigest,omitempty"`
}

// NewSummary creates a summary of the current state of the comparison.
func NewSummary(cmp *comparison.Comparison, seed int64) Summary {
	g := cmp.Global()

	s := Summary{
		Elements:     len(g.Array),
		Distribution: g.Distribution.String(),
		Seed:         seed,
		Speed:        g.Speed,
	}

	for _, p := range comparison.Panels() {
		snp := cmp.Snapshot(p)
		s.Panels = append(s.Panels, Panel{
			Panel:       p.String(),
			Algorithm:   snp.AlgorithmName,
			Comparisons: snp.Comparisons,
			Swaps:       snp.Swaps,
			Elapsed:     snp.TimeElapsed.String(),
			Sorted:      snp.IsComplete && algorithms.IsSorted(snp.Array),
			Error:       snp.Error,
			elapsed:     int64(snp.TimeElapsed),
		})
	}

	s.Winner = winner(s.Panels)

	return s
}

// the panel that sorted the array in the shortest time. panels that did not
// complete can not win
func winner(panels []Panel) string {
	var w *Panel
	var draw bool
	for i := range panels {
		p := &panels[i]
		if !p.Sorted {
			continue
		}
		switch {
		case w == nil || p.elapsed < w.elapsed:
			w = p
			draw = false
		case p.elapsed == w.elapsed:
			draw = true
		}
	}

	if w == nil {
		return "none"
	}
	if draw {
		return "draw"
	}
	return w.Panel
}

// SetDigest adds a digest value to the summary of the panel.
func (s *Summary) SetDigest(p comparison.Panel, hash string) {
	if int(p) < 0 || int(p) >= len(s.Panels) {
		return
	}
	s.Panels[p].Digest = hash
}

// Write the summary in the specified format.
func (s Summary) Write(w io.Writer, f Format) error {
	switch f {
	case Text:
		return s.writeText(w)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("report: %w", err)
		}
		return enc.Close()
	}
	return curated.Errorf(UnknownFormat, f)
}

func (s Summary) writeText(w io.Writer) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%d values, %s, seed %d, speed %d\n", s.Elements, s.Distribution, s.Seed, s.Speed)

	for _, p := range s.Panels {
		status := "sorted"
		if p.Error != "" {
			status = p.Error
		} else if !p.Sorted {
			status = "incomplete"
		}
		fmt.Fprintf(&b, "%-5s  %-14s  comparisons %6d  swaps %6d  time %s  %s\n",
			p.Panel, p.Algorithm, p.Comparisons, p.Swaps, p.Elapsed, status)
		if p.Digest != "" {
			fmt.Fprintf(&b, "%-5s  digest %s\n", "", p.Digest)
		}
	}

	if s.AudioDigest != "" {
		fmt.Fprintf(&b, "audio digest %s\n", s.AudioDigest)
	}

	fmt.Fprintf(&b, "winner: %s\n", s.Winner)

	_, err := io.WriteString(w, b.String())
	return err
}
