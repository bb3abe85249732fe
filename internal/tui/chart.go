package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/footprint/internal/emissions"
	"github.com/rshade/footprint/internal/engine"
	"github.com/rshade/footprint/internal/greenops"
)

// Chart bounds.
const (
	MinChartWidth     = 10
	DefaultChartWidth = 50
	legendColumns     = 3
	legendGap         = 2
)

// ChartOptions controls RenderStackedChart.
type ChartOptions struct {
	// Width is the number of cells of the longest bar.
	Width int
	// Styled colours segments; otherwise glyphs distinguish them.
	Styled bool
}

// segment is one activity's share of a bar.
type segment struct {
	index int
	name  string
	kg    float64
	cells int
}

// RenderStackedChart draws one horizontal bar per category. Each bar is
// split into one segment per activity with positive emissions; a legend
// maps segments to activity names. Bars are scaled so the largest category
// fills Width cells.
func RenderStackedChart(report *engine.Report, opts ChartOptions) string {
	width := opts.Width
	if width < MinChartWidth {
		width = DefaultChartWidth
	}

	maxTotal := 0.0
	for _, cat := range report.Result.Categories {
		maxTotal = math.Max(maxTotal, positiveSum(cat.Activities))
	}

	labelWidth := 0
	for _, cat := range report.Result.Categories {
		labelWidth = max(labelWidth, len(cat.Category.String()))
	}

	var sb strings.Builder
	var legend []segment
	seen := map[int]bool{}
	index := 0

	for _, cat := range report.Result.Categories {
		var segs []segment
		for _, a := range cat.Activities {
			if a.Kg > 0 {
				segs = append(segs, segment{index: index, name: a.Name, kg: a.Kg})
			}
			index++
		}
		scaleSegments(segs, maxTotal, width)

		fmt.Fprintf(&sb, "%-*s ", labelWidth, cat.Category)
		drawn := 0
		for _, s := range segs {
			if s.cells == 0 {
				continue
			}
			sb.WriteString(renderSegment(s, opts.Styled))
			drawn += s.cells
			if !seen[s.index] {
				seen[s.index] = true
				legend = append(legend, s)
			}
		}
		sb.WriteString(strings.Repeat(" ", width-drawn))
		fmt.Fprintf(&sb, " %s\n", greenops.FormatFloat(report.Convert(cat.Total), report.Precision))
	}

	sb.WriteString("\n")
	if len(legend) == 0 {
		sb.WriteString("No emissions recorded.\n")
		return sb.String()
	}
	sb.WriteString(renderLegend(legend, opts.Styled))
	return sb.String()
}

func positiveSum(activities []emissions.ActivityResult) float64 {
	total := 0.0
	for _, a := range activities {
		if a.Kg > 0 {
			total += a.Kg
		}
	}
	return total
}

// scaleSegments assigns cells by rounding cumulative boundaries, so a bar's
// length depends only on its total and rounding never accumulates.
func scaleSegments(segs []segment, maxTotal float64, width int) {
	if maxTotal <= 0 {
		return
	}
	cum := 0.0
	prev := 0
	for i := range segs {
		cum += segs[i].kg
		edge := int(math.Round(cum / maxTotal * float64(width)))
		segs[i].cells = edge - prev
		prev = edge
	}
}

func renderSegment(s segment, styled bool) string {
	if styled {
		style := lipgloss.NewStyle().Foreground(segmentColors[s.index%len(segmentColors)])
		return style.Render(strings.Repeat("█", s.cells))
	}
	return strings.Repeat(string(plainGlyphs[s.index%len(plainGlyphs)]), s.cells)
}

func renderLegend(legend []segment, styled bool) string {
	nameWidth := 0
	for _, s := range legend {
		nameWidth = max(nameWidth, len(s.name))
	}

	var sb strings.Builder
	for i, s := range legend {
		key := renderSegment(segment{index: s.index, cells: 1}, styled)
		fmt.Fprintf(&sb, "%s %-*s", key, nameWidth, s.name)
		if (i+1)%legendColumns == 0 || i == len(legend)-1 {
			sb.WriteString("\n")
		} else {
			sb.WriteString(strings.Repeat(" ", legendGap))
		}
	}
	return sb.String()
}
