package output

import (
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vburojevic/reqlog/internal/domain"
)

const (
	reportTitle    = "Log Analysis Results"
	topErrorsTitle = "Top 3 Endpoints with Most Errors:"
)

// ReportWriter renders an AnalysisResult as the plain-text report
type ReportWriter struct {
	w      io.Writer
	styles *reportStyles // nil writes unstyled text
}

// NewReportWriter creates a report writer. styled enables ANSI styling.
func NewReportWriter(w io.Writer, styled bool) *ReportWriter {
	rw := &ReportWriter{w: w}
	if styled {
		rw.styles = newReportStyles(w)
	}
	return rw
}

// Write renders the report with a single write, so a failing writer never
// leaves half a report behind.
func (r *ReportWriter) Write(result *domain.AnalysisResult) error {
	var b strings.Builder

	b.WriteString(r.paint(titleStyle, reportTitle) + "\n")
	b.WriteString(r.paint(separatorStyle, strings.Repeat("-", len(reportTitle))) + "\n")

	errorStyle := successStyle
	if result.HasErrors() {
		errorStyle = dangerStyle
	}
	b.WriteString(r.paint(labelStyle, "Total Requests:") + " " + r.paint(valueStyle, strconv.Itoa(result.Total)) + "\n")
	b.WriteString(r.paint(labelStyle, "Error Requests:") + " " + r.paint(errorStyle, strconv.Itoa(result.Errors)) + "\n")

	b.WriteString("\n" + r.paint(titleStyle, topErrorsTitle) + "\n")
	for _, e := range result.TopErrors {
		b.WriteString("  " + r.paint(endpointStyle, e.Endpoint) + ": " + r.paint(valueStyle, strconv.Itoa(e.Count)) + " errors\n")
	}

	_, err := io.WriteString(r.w, b.String())
	return err
}

func (r *ReportWriter) paint(pick func(*reportStyles) lipgloss.Style, text string) string {
	if r.styles == nil {
		return text
	}
	return pick(r.styles).Render(text)
}

func titleStyle(s *reportStyles) lipgloss.Style     { return s.Title }
func separatorStyle(s *reportStyles) lipgloss.Style { return s.Separator }
func labelStyle(s *reportStyles) lipgloss.Style     { return s.Label }
func valueStyle(s *reportStyles) lipgloss.Style     { return s.Value }
func endpointStyle(s *reportStyles) lipgloss.Style  { return s.Endpoint }
func successStyle(s *reportStyles) lipgloss.Style   { return s.Success }
func dangerStyle(s *reportStyles) lipgloss.Style    { return s.Danger }
