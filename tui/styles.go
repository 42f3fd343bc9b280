package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorText    = lipgloss.Color("#CDD6F4")
	colorSubtext = lipgloss.Color("#A6ADC8")
	colorDim     = lipgloss.Color("#585B70")
	colorAccent  = lipgloss.Color("#89B4FA")
	colorTitle   = lipgloss.Color("#B4BEFE")
	colorBase    = lipgloss.Color("#1E1E2E")
	colorBlank   = lipgloss.Color("#313244")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	tabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBase).
			Background(colorAccent)

	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(colorSubtext)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorSubtext)

	valueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	helpKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	detailDateStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorTitle)

	blankStyle = lipgloss.NewStyle().
			Foreground(colorBlank)
)

// zeroFillHex colors already-played days with no plays. It matches the
// zero fill used by the SVG and PNG renderers.
const zeroFillHex = "#ebedf0"
