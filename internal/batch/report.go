package batch

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	fileStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("2"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

// reporter prints batch progress. A nil writer discards everything.
type reporter struct {
	w io.Writer
}

func newReporter(w io.Writer) reporter {
	if w == nil {
		w = io.Discard
	}
	return reporter{w: w}
}

func (r reporter) start(o Options) {
	fmt.Fprintln(r.w, headerStyle.Render(fmt.Sprintf(
		"Generating %d %s sprites (%dx%d, palette=%s)", o.Count, o.Kind, o.Size, o.Size, o.Palette)))
}

func (r reporter) wrote(res Result) {
	fmt.Fprintf(r.w, "  %s %s\n", fileStyle.Render(res.Name), mutedStyle.Render(fmt.Sprintf("(%.1fKB)", res.KB())))
}

func (r reporter) done(n int, dir string) {
	fmt.Fprintf(r.w, "\nDone. %d sprites saved to %s\n", n, dir)
}
