// Package ui styles the human-facing diagnostics add_days prints on stderr.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Semantic colors
var (
	Destructive = lipgloss.Color("#e53935") // Red
	Warning     = lipgloss.Color("#FFC107") // Yellow
	Muted       = lipgloss.Color("#8a94a6") // Grey
)

// Printer writes prefixed diagnostics to w. Colors are only emitted when
// w is a terminal that supports them.
type Printer struct {
	w       io.Writer
	prog    lipgloss.Style
	errTag  lipgloss.Style
	warnTag lipgloss.Style
}

// NewPrinter returns a Printer whose renderer detects w's color profile.
func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:       w,
		prog:    r.NewStyle().Foreground(Muted),
		errTag:  r.NewStyle().Foreground(Destructive).Bold(true),
		warnTag: r.NewStyle().Foreground(Warning).Bold(true),
	}
}

// Error prints "add_days: error: msg".
func (p *Printer) Error(msg string) {
	fmt.Fprintf(p.w, "%s %s %s\n", p.prog.Render("add_days:"), p.errTag.Render("error:"), msg)
}

// Warn prints "add_days: warning: msg".
func (p *Printer) Warn(msg string) {
	fmt.Fprintf(p.w, "%s %s %s\n", p.prog.Render("add_days:"), p.warnTag.Render("warning:"), msg)
}
