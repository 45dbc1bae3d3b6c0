package plugin

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/sznuper/dircount/internal/runner"
	"github.com/sznuper/dircount/internal/status"
)

var statusColors = map[status.Status]lipgloss.Color{
	status.OK:       lipgloss.Color("2"),
	status.Warning:  lipgloss.Color("3"),
	status.Critical: lipgloss.Color("1"),
	status.Unknown:  lipgloss.Color("5"),
}

// WriteBreakdown prints one line per measured directory: path, entry count
// and status. Status words are colored when color is true.
func WriteBreakdown(w io.Writer, res runner.Result, color bool) error {
	width := 0
	for _, m := range res.Measurements {
		width = max(width, len(m.Path))
	}

	renderer := lipgloss.NewRenderer(w)
	for _, m := range res.Measurements {
		word := m.Status.String()
		if color {
			word = renderer.NewStyle().Bold(true).Foreground(statusColors[m.Status]).Render(word)
		}
		if _, err := fmt.Fprintf(w, "%-*s %8d  %s\n", width, m.Path, m.Count, word); err != nil {
			return err
		}
	}
	return nil
}
