package style

import "github.com/charmbracelet/lipgloss"

// Palette of the full screen interface.
var (
	Base    = lipgloss.Color("#141018")
	Text    = lipgloss.Color("#ece4f0")
	Subtext = lipgloss.Color("#b7a9c2")
	Overlay = lipgloss.Color("#6c6477")
	Surface = lipgloss.Color("#2a2231")

	Rose     = lipgloss.Color("#e8466e")
	Pink     = lipgloss.Color("#f5a3c0")
	Peach    = lipgloss.Color("#fab387")
	Yellow   = lipgloss.Color("#f9e2af")
	Green    = lipgloss.Color("#a6e3a1")
	Sky      = lipgloss.Color("#89dceb")
	Lavender = lipgloss.Color("#b4befe")
	Red      = lipgloss.Color("#f38ba8")

	AccentColor    = Rose
	SecondaryColor = Lavender
	SuccessColor   = Green
	WarningColor   = Yellow
	ErrorColor     = Red
	FaintColor     = Overlay

	BorderColor       = Surface
	ActiveBorderColor = AccentColor
)
