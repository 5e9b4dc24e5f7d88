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

package terminal

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/jetsetilly/gophersort/comparison"
	"github.com/jetsetilly/gophersort/controller"
)

// the eighth-block characters used to draw the top of each bar
var blocks = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// the smallest dimensions of a panel
const (
	minBarRows = 4
	minBarCols = 10
)

// the number of rows used by everything that is not a bar
const chromeRows = 9

// the mark given to each column of a panel. higher values take priority when
// values share a column
type mark int

const (
	plain mark = iota
	sorted
	swapped
	comparing
)

// Renderer draws a comparison.
type Renderer struct {
	out *termenv.Output
	lip *lipgloss.Renderer

	cols int
	rows int

	marks  map[mark]lipgloss.Style
	panel  lipgloss.Style
	title  lipgloss.Style
	status lipgloss.Style
	faint  lipgloss.Style
	alert  lipgloss.Style
}

// NewRenderer is the preferred method of initialisation for the Renderer type.
// The options are passed to termenv and can be used to force a colour profile.
func NewRenderer(w io.Writer, opts ...termenv.OutputOption) *Renderer {
	out := termenv.NewOutput(w, opts...)
	lip := lipgloss.NewRenderer(w, opts...)

	r := &Renderer{
		out:  out,
		lip:  lip,
		cols: 80,
		rows: 24,
	}

	r.marks = map[mark]lipgloss.Style{
		plain:     lip.NewStyle().Foreground(lipgloss.Color("7")),
		sorted:    lip.NewStyle().Foreground(lipgloss.Color("2")),
		swapped:   lip.NewStyle().Foreground(lipgloss.Color("1")),
		comparing: lip.NewStyle().Foreground(lipgloss.Color("3")),
	}
	r.panel = lip.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	r.title = lip.NewStyle().Bold(true)
	r.status = lip.NewStyle().Italic(true)
	r.faint = lip.NewStyle().Faint(true)
	r.alert = lip.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

	return r
}

// SetSize sets the dimensions of the terminal in characters.
func (r *Renderer) SetSize(cols int, rows int) {
	if cols > 0 {
		r.cols = cols
	}
	if rows > 0 {
		r.rows = rows
	}
}

// Begin prepares the terminal for drawing.
func (r *Renderer) Begin() {
	r.out.AltScreen()
	r.out.HideCursor()
	r.out.ClearScreen()
}

// End restores the terminal.
func (r *Renderer) End() {
	r.out.ShowCursor()
	r.out.ExitAltScreen()
}

// Draw the comparison at the top of the terminal.
func (r *Renderer) Draw(left controller.Snapshot, right controller.Snapshot, g comparison.GlobalState, footer string) {
	r.out.MoveCursor(1, 1)
	s := r.Render(left, right, g, footer)

	// clear to the end of each line so that shorter lines do not leave
	// characters from the previous frame
	for _, l := range strings.Split(s, "\n") {
		fmt.Fprint(r.out, l)
		r.out.ClearLineRight()
		fmt.Fprint(r.out, "\n")
	}
}

// Render returns the comparison as a string.
func (r *Renderer) Render(left controller.Snapshot, right controller.Snapshot, g comparison.GlobalState, footer string) string {
	// two panels side by side. each panel has a border and padding of two
	// columns either side
	width := max(minBarCols, r.cols/2-4)
	height := max(minBarRows, r.rows-chromeRows)

	panels := lipgloss.JoinHorizontal(lipgloss.Top,
		r.renderPanel(left, width, height),
		r.renderPanel(right, width, height),
	)

	sound := "off"
	if g.Sound {
		sound = "on"
	}
	info := fmt.Sprintf("%d values  %s  speed %d  sound %s", len(g.Array), g.Distribution, g.Speed, sound)

	var b strings.Builder
	b.WriteString(panels)
	b.WriteString("\n")
	b.WriteString(info)
	if footer != "" {
		b.WriteString("\n")
		b.WriteString(r.faint.Render(footer))
	}

	return b.String()
}

func (r *Renderer) renderPanel(s controller.Snapshot, width int, height int) string {
	var b strings.Builder

	b.WriteString(r.title.Render(s.AlgorithmName))
	b.WriteString("\n")
	b.WriteString(r.bars(s, width, height))
	b.WriteString("\n")
	fmt.Fprintf(&b, "comparisons: %d\n", s.Comparisons)
	fmt.Fprintf(&b, "swaps: %d\n", s.Swaps)
	fmt.Fprintf(&b, "time: %s\n", s.TimeElapsed.Round(10*time.Millisecond))

	switch {
	case s.Error != "":
		b.WriteString(r.alert.Render(s.Error))
	case s.IsComplete:
		b.WriteString(r.status.Render("complete"))
	case s.IsLoading:
		b.WriteString(r.status.Render("starting"))
	default:
		b.WriteString(r.status.Render(strings.ToLower(s.State.String())))
	}

	return r.panel.Width(width + 2).Render(b.String())
}

// the marks for every position of the array
func marks(s controller.Snapshot) []mark {
	m := make([]mark, len(s.Array))
	set := func(indices []int, v mark) {
		for _, i := range indices {
			if i >= 0 && i < len(m) {
				m[i] = max(m[i], v)
			}
		}
	}
	set(s.Sorted, sorted)
	set(s.Swapped, swapped)
	set(s.Comparing, comparing)
	return m
}

// Columns reduces the array to no more than width columns. Each column is
// the largest value of the positions that share it.
func Columns(values []float64, width int) []float64 {
	n := min(len(values), width)
	c := make([]float64, n)
	for i := range n {
		lo, hi := i*len(values)/n, (i+1)*len(values)/n
		c[i] = slices.Max(values[lo:hi])
	}
	return c
}

func (r *Renderer) bars(s controller.Snapshot, width int, height int) string {
	n := min(len(s.Array), width)
	if n == 0 {
		return strings.Repeat(strings.Repeat(" ", width)+"\n", height-1) + strings.Repeat(" ", width)
	}

	values := Columns(s.Array, width)
	maxValue := s.MaxValue()

	// the mark of each column is the highest mark of its positions
	pm := marks(s)
	cm := make([]mark, n)
	for i := range n {
		lo, hi := i*len(s.Array)/n, (i+1)*len(s.Array)/n
		cm[i] = slices.Max(pm[lo:hi])
	}

	// the height of each column in eighths of a row
	eighths := make([]int, n)
	for i, v := range values {
		if maxValue > 0 {
			eighths[i] = int(v / maxValue * float64(height*8))
		}
	}

	rows := make([]string, height)
	for row := range height {
		// the number of eighths below this row
		base := (height - 1 - row) * 8

		var b strings.Builder
		for i := range n {
			fill := min(max(eighths[i]-base, 0), 8)
			b.WriteString(r.marks[cm[i]].Render(string(blocks[fill])))
		}
		b.WriteString(strings.Repeat(" ", width-n))
		rows[row] = b.String()
	}

	return strings.Join(rows, "\n")
}
