package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// report prints the progress of a render. Styles are only
// applied when writing to a terminal.
type report struct {
	w       io.Writer
	styled  bool
	label   lipgloss.Style
	path    lipgloss.Style
	summary lipgloss.Style
}

func newReport(w io.Writer) *report {
	styled := false
	if f, ok := w.(*os.File); ok {
		styled = term.IsTerminal(int(f.Fd()))
	}
	return &report{
		w:       w,
		styled:  styled,
		label:   lipgloss.NewStyle().Foreground(lipgloss.Color("71")), // muted green
		path:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		summary: lipgloss.NewStyle().Bold(true),
	}
}

func (r *report) render(s lipgloss.Style, text string) string {
	if !r.styled {
		return text
	}
	return s.Render(text)
}

func (r *report) created(path string) {
	fmt.Fprintf(r.w, "%s %s\n", r.render(r.label, "Created:"), r.render(r.path, path))
}

func (r *report) done(n int, dir string) {
	fmt.Fprintln(r.w, r.render(r.summary, fmt.Sprintf("%d mockup(s) written to %s", n, dir)))
}
