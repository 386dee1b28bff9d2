package provisioning

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorGreen = lipgloss.Color("#22c55e")
	colorRed   = lipgloss.Color("#ef4444")
	colorDim   = lipgloss.Color("#6b7280")
	colorWhite = lipgloss.Color("#f9fafb")

	reportTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorWhite)

	okStyle = lipgloss.NewStyle().
		Foreground(colorGreen)

	failStyle = lipgloss.NewStyle().
			Foreground(colorRed)

	skipStyle = lipgloss.NewStyle().
			Foreground(colorDim)
)

const (
	checkMark = "[OK]"
	crossMark = "[!!]"
	pending   = "[  ]"
)

// Render formats the report for terminal output. stages is the full
// planned sequence; stages beyond the failure point are shown as not
// attempted.
func (r *Report) Render(stages []Stage) string {
	var b strings.Builder

	title := "Provisioning report"
	if r.Service != "" {
		title = fmt.Sprintf("Provisioning report for %s", r.Service)
	}
	b.WriteString(reportTitleStyle.Render(title))
	b.WriteString("\n")

	attempted := make(map[string]StageResult, len(r.Results))
	for _, res := range r.Results {
		attempted[res.Stage] = res
	}

	for _, stage := range stages {
		res, ok := attempted[stage.Name()]
		switch {
		case !ok:
			b.WriteString(skipStyle.Render(fmt.Sprintf("%s %s (not attempted)", pending, stage.Name())))
		case res.Success:
			line := fmt.Sprintf("%s %s", checkMark, stage.Name())
			if res.Detail != "" {
				line += ": " + res.Detail
			}
			line += fmt.Sprintf(" (%v)", res.Duration.Round(time.Millisecond))
			b.WriteString(okStyle.Render(line))
		default:
			b.WriteString(failStyle.Render(fmt.Sprintf("%s %s: %v", crossMark, stage.Name(), res.Err)))
		}
		b.WriteString("\n")
	}

	return b.String()
}
