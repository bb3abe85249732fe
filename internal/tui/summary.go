package tui

import (
	"strings"

	"github.com/rshade/footprint/internal/engine"
)

// RenderSummary renders the headline total and the equivalency line.
// Styled output is boxed and coloured.
func RenderSummary(report *engine.Report, styled bool) string {
	lines := []string{report.Headline()}
	if !report.Equivalency.IsEmpty {
		lines = append(lines, report.Equivalency.DisplayText)
	}

	if !styled {
		return strings.Join(lines, "\n") + "\n"
	}

	body := ValueStyle.Render(lines[0])
	if len(lines) > 1 {
		body += "\n" + LabelStyle.Render(IconLeaf+" "+lines[1])
	}
	return BoxStyle.Render(body) + "\n"
}

// RenderReport renders the summary followed by the stacked chart.
func RenderReport(report *engine.Report, opts ChartOptions) string {
	var sb strings.Builder
	sb.WriteString(RenderSummary(report, opts.Styled))
	sb.WriteString("\n")
	if opts.Styled {
		sb.WriteString(HeaderStyle.Render("Emissions by category ("+report.Unit+" CO2-eq)") + "\n")
	} else {
		sb.WriteString("Emissions by category (" + report.Unit + " CO2-eq)\n")
	}
	sb.WriteString(RenderStackedChart(report, opts))
	return sb.String()
}
