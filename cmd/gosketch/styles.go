package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
	headStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(16)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// printTitle writes an underlined report title
func printTitle(w io.Writer, title string) {
	fmt.Fprintln(w, titleStyle.Render(title))
	fmt.Fprintln(w, titleStyle.Render(repeat("=", lipgloss.Width(title))))
}

// printSection writes a section heading preceded by a blank line
func printSection(w io.Writer, name string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, headStyle.Render(name))
}

// printField writes an aligned "label value" line
func printField(w io.Writer, label string, format string, args ...any) {
	fmt.Fprintln(w, "  "+labelStyle.Render(label)+valueStyle.Render(fmt.Sprintf(format, args...)))
}

func repeat(s string, n int) string {
	out := ""
	for i := 0; i < n; i++ {
		out += s
	}
	return out
}
