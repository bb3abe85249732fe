// Package tui holds the terminal presentation of footprint reports: lipgloss
// styles, the stacked category chart, the summary box, output-mode
// detection and the interactive Bubble Tea form.
package tui

import "github.com/charmbracelet/lipgloss"

// Palette.
const (
	ColorHeader    = lipgloss.Color("39")
	ColorBorder    = lipgloss.Color("240")
	ColorLabel     = lipgloss.Color("245")
	ColorValue     = lipgloss.Color("252")
	ColorMuted     = lipgloss.Color("241")
	ColorHighlight = lipgloss.Color("212")
	ColorOK        = lipgloss.Color("42")
	ColorError     = lipgloss.Color("196")
	ColorSpinner   = lipgloss.Color("69")
)

// Icons.
const (
	IconFocus   = "→"
	IconEditing = ">"
	IconLeaf    = "🌱"
)

// Shared styles.
//
//nolint:gochecknoglobals // Style values are immutable and shared by all views.
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHeader).
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)
	HeaderStyle    = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	LabelStyle     = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle     = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	MutedStyle     = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)
	HighlightStyle = lipgloss.NewStyle().Foreground(ColorHighlight).Bold(true)
	ErrorStyle     = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	BoxStyle       = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorOK).
			Padding(0, 1)
)

// segmentColors colour chart segments; activities cycle through them in
// catalog order.
//
//nolint:gochecknoglobals // Fixed palette.
var segmentColors = []lipgloss.Color{
	"34", "70", "106", "142", "178", "214", "208", "202", "196", "160", "124",
	"33", "39", "45", "51", "87", "123", "171", "135", "99", "63",
}

// plainGlyphs fill chart segments when colour is unavailable.
//
//nolint:gochecknoglobals // Fixed glyph table.
var plainGlyphs = []rune{'#', '=', '+', '*', '%', '@', 'o', 'x', '~', ':', '&', '$'}
