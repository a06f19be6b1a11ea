package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Color modes accepted by ShouldStyle
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// reportStyles holds the lipgloss styles for the text report
type reportStyles struct {
	Title     lipgloss.Style
	Separator lipgloss.Style
	Label     lipgloss.Style
	Value     lipgloss.Style
	Endpoint  lipgloss.Style
	Success   lipgloss.Style
	Danger    lipgloss.Style
}

func newReportStyles(w io.Writer) *reportStyles {
	// Styling was already decided by the caller, so skip lipgloss' own detection.
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.ANSI256)
	return &reportStyles{
		Title:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),  // Cyan
		Separator: r.NewStyle().Foreground(lipgloss.Color("239")),            // Dark gray
		Label:     r.NewStyle().Foreground(lipgloss.Color("244")),            // Gray
		Value:     r.NewStyle().Bold(true),
		Endpoint:  r.NewStyle().Foreground(lipgloss.Color("33")),             // Blue
		Success:   r.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),  // Green
		Danger:    r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true), // Red
	}
}

// ShouldStyle decides whether the report written to w gets ANSI styling.
// In auto mode only terminals are styled.
func ShouldStyle(mode string, w io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
