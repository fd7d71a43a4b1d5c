package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/gridwalk/gridgraph"
)

var (
	colorCyan   = lipgloss.Color("6")
	colorGreen  = lipgloss.Color("2")
	colorYellow = lipgloss.Color("3")
	colorDim    = lipgloss.Color("240")
)

// view renders grids and result lines for one output stream. Styles are
// bound to a renderer for that stream so colors are dropped when it is not
// a terminal.
type view struct {
	w io.Writer

	title  lipgloss.Style
	number lipgloss.Style
	trail  lipgloss.Style
	marker lipgloss.Style
	wall   lipgloss.Style
}

func newView(w io.Writer) *view {
	r := lipgloss.NewRenderer(w)
	return &view{
		w:      w,
		title:  r.NewStyle().Bold(true).Foreground(colorCyan),
		number: r.NewStyle().Foreground(colorCyan),
		trail:  r.NewStyle().Bold(true).Foreground(colorGreen),
		marker: r.NewStyle().Bold(true).Foreground(colorYellow),
		wall:   r.NewStyle().Foreground(colorDim),
	}
}

// line writes "label: value".
func (v *view) line(label string, value any) {
	fmt.Fprintln(v.w, v.title.Render(label+":"), v.number.Render(fmt.Sprint(value)))
}

// grid writes g one row per line. Cells in marked are drawn as mark unless
// they hold one of the keep runes; walls are dimmed.
func (v *view) grid(g *gridgraph.Graph[rune], marked map[gridgraph.Key]bool, mark rune, wall rune, keep ...rune) {
	var b strings.Builder
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			n, _ := g.Node(x, y)
			c := n.Value()
			switch {
			case containsRune(keep, c):
				b.WriteString(v.marker.Render(string(c)))
			case marked[n.Key()]:
				b.WriteString(v.trail.Render(string(mark)))
			case c == wall:
				b.WriteString(v.wall.Render(string(c)))
			default:
				b.WriteRune(c)
			}
		}
		b.WriteByte('\n')
	}
	io.WriteString(v.w, b.String())
}

func containsRune(rs []rune, r rune) bool {
	for _, c := range rs {
		if c == r {
			return true
		}
	}
	return false
}

func keySet[T any](p gridgraph.Path[T]) map[gridgraph.Key]bool {
	set := make(map[gridgraph.Key]bool, len(p))
	for _, n := range p {
		set[n.Key()] = true
	}
	return set
}
