package tui

import (
	"image/color"

	"github.com/JPM1118/spritegen/internal/palette"
	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors
	colorHeader  = lipgloss.Color("12") // bright blue
	colorMuted   = lipgloss.Color("8")  // dim
	colorError   = lipgloss.Color("1")  // red
	colorCheckA  = lipgloss.Color("236")
	colorCheckB  = lipgloss.Color("238")
	colorKindTag = lipgloss.Color("6") // cyan

	// Styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorHeader)

	subheaderStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	kindStyle = lipgloss.NewStyle().
			Foreground(colorKindTag).
			Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	notificationBarStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Italic(true)

	errorBarStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	checkStyleA = lipgloss.NewStyle().Background(colorCheckA)
	checkStyleB = lipgloss.NewStyle().Background(colorCheckB)
)

// pixelCell renders one sprite pixel as a two-column terminal cell.
// Transparent pixels show a checkerboard; translucent ones are blended over
// black.
func pixelCell(c color.NRGBA, x, y int) string {
	if c.A == 0 {
		if (x+y)%2 == 0 {
			return checkStyleA.Render("  ")
		}
		return checkStyleB.Render("  ")
	}
	blended := color.NRGBA{
		R: uint8(uint16(c.R) * uint16(c.A) / 255),
		G: uint8(uint16(c.G) * uint16(c.A) / 255),
		B: uint8(uint16(c.B) * uint16(c.A) / 255),
		A: 255,
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(palette.Hex(blended))).
		Render("  ")
}

// Swatch renders a palette as a row of colored blocks.
func Swatch(p palette.Palette) string {
	s := ""
	for _, c := range p {
		s += lipgloss.NewStyle().Background(lipgloss.Color(palette.Hex(c))).Render("   ")
	}
	return s
}
