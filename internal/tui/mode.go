package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode is how human-readable output is presented.
type OutputMode int

const (
	// OutputModePlain writes uncoloured text.
	OutputModePlain OutputMode = iota
	// OutputModeStyled writes coloured, boxed text.
	OutputModeStyled
	// OutputModeInteractive runs the Bubble Tea form.
	OutputModeInteractive
)

// String returns the mode name.
func (m OutputMode) String() string {
	switch m {
	case OutputModeStyled:
		return "styled"
	case OutputModeInteractive:
		return "interactive"
	default:
		return "plain"
	}
}

// defaultTerminalWidth is used when the width cannot be determined.
const defaultTerminalWidth = 80

// chartReserve is the room a chart row needs besides its bar: the
// category label and the total.
const chartReserve = 28

// DetectOutputMode picks the presentation for stdout. plain and NO_COLOR
// force plain text; CI environments and dumb terminals never get colour.
// interactive is honoured only when both stdin and stdout are terminals.
func DetectOutputMode(interactive, plain, forceColor bool) OutputMode {
	if plain || os.Getenv("NO_COLOR") != "" {
		return OutputModePlain
	}
	tty := IsTTY()
	if interactive && IsInteractive() {
		return OutputModeInteractive
	}
	if forceColor {
		return OutputModeStyled
	}
	if !tty || os.Getenv("CI") != "" || os.Getenv("TERM") == "dumb" {
		return OutputModePlain
	}
	return OutputModeStyled
}

// IsTTY reports whether stdout is a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// IsInteractive reports whether both stdin and stdout are terminals.
func IsInteractive() bool {
	return IsTTY() && term.IsTerminal(int(os.Stdin.Fd()))
}

// TerminalWidth returns the stdout width, or 80 when it is not a terminal.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultTerminalWidth
	}
	return width
}

// ForceColor reports whether CLICOLOR_FORCE asks for colour even when
// stdout is not a terminal.
func ForceColor() bool {
	v := os.Getenv("CLICOLOR_FORCE")
	return v != "" && v != "0"
}

// FitChartWidth shrinks width so a chart row fits the terminal. Widths
// that would fall below MinChartWidth are left alone.
func FitChartWidth(width int) int {
	avail := TerminalWidth() - chartReserve
	if avail < width && avail >= MinChartWidth {
		return avail
	}
	return width
}
