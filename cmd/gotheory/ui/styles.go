// Package ui provides the visual styling for the gotheory terminal
// output and the lesson browser, with light/dark mode support.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. The primary hues follow the Go brand colors so the
// curriculum looks at home next to go.dev.
var (
	// Light mode colors (default)
	LightBackground = lipgloss.Color("#f5f7fa")
	LightForeground = lipgloss.Color("#1f2a37")
	LightPrimary    = lipgloss.Color("#007d9c") // Go dark aqua
	LightAccent     = lipgloss.Color("#00add8") // Gopher blue
	LightSecondary  = lipgloss.Color("#e2e8f0")
	LightMuted      = lipgloss.Color("#7b8794")
	LightBorder     = lipgloss.Color("#d7dde4")
	LightCard       = lipgloss.Color("#ffffff")

	// Dark mode colors
	DarkBackground = lipgloss.Color("#15202b")
	DarkForeground = lipgloss.Color("#ecf0f4")
	DarkPrimary    = lipgloss.Color("#00add8") // Gopher blue (flipped)
	DarkAccent     = lipgloss.Color("#5dc9e2") // Light gopher blue
	DarkSecondary  = lipgloss.Color("#1e2e3e")
	DarkMuted      = lipgloss.Color("#64748b")
	DarkBorder     = lipgloss.Color("#2c3e50")
	DarkCard       = lipgloss.Color("#1b2836")

	// Semantic colors (same in both modes)
	Destructive = lipgloss.Color("#e53935")
	SuccessCol  = lipgloss.Color("#43a047")
	WarningCol  = lipgloss.Color("#ffc107")
	InfoCol     = lipgloss.Color("#2196f3")
)

// Theme holds the current color scheme.
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Secondary  lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Card       lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme.
func LightTheme() Theme {
	return Theme{
		Background: LightBackground,
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Accent:     LightAccent,
		Secondary:  LightSecondary,
		Muted:      LightMuted,
		Border:     LightBorder,
		Card:       LightCard,
		IsDark:     false,
	}
}

// DarkTheme returns the dark mode theme.
func DarkTheme() Theme {
	return Theme{
		Background: DarkBackground,
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Accent:     DarkAccent,
		Secondary:  DarkSecondary,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		Card:       DarkCard,
		IsDark:     true,
	}
}

// DetectTheme picks a theme from the terminal environment.
// TODO: muesli/termenv would detect the real background color instead
// of parsing COLORFGBG by hand.
func DetectTheme() Theme {
	if os.Getenv("GOTHEORY_DARK_MODE") == "1" {
		return DarkTheme()
	}

	// COLORFGBG is usually "foreground;background". ANSI background
	// indexes 0-6 and 8 indicate a dark terminal.
	if colorTerm := os.Getenv("COLORFGBG"); colorTerm != "" {
		parts := strings.Split(colorTerm, ";")
		if len(parts) >= 2 {
			if bgIdx, err := strconv.Atoi(parts[len(parts)-1]); err == nil {
				if (bgIdx >= 0 && bgIdx <= 6) || bgIdx == 8 {
					return DarkTheme()
				}
			}
		}
	}

	return LightTheme()
}

// Styles holds the styled components used across commands.
type Styles struct {
	Theme Theme

	// Layout
	Header  lipgloss.Style
	Footer  lipgloss.Style
	Content lipgloss.Style

	// Text
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style

	// Status
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Components
	Badge   lipgloss.Style
	Spinner lipgloss.Style
	Divider lipgloss.Style
	Code    lipgloss.Style
}

// NewStyles creates a Styles instance for the given theme.
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Header: lipgloss.NewStyle().
			Background(theme.Primary).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 2).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 2),

		Content: lipgloss.NewStyle().
			Padding(1, 2),

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Subtitle: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Italic(true),

		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Bold: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		Success: lipgloss.NewStyle().
			Foreground(SuccessCol).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(Destructive).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(WarningCol).
			Bold(true),

		Info: lipgloss.NewStyle().
			Foreground(InfoCol),

		Badge: lipgloss.NewStyle().
			Background(theme.Accent).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 1).
			Bold(true),

		Spinner: lipgloss.NewStyle().
			Foreground(theme.Accent),

		Divider: lipgloss.NewStyle().
			Foreground(theme.Border),

		Code: lipgloss.NewStyle().
			Background(theme.Secondary).
			Foreground(theme.Primary).
			Padding(0, 1),
	}
}

// DefaultStyles returns styles with the detected theme.
func DefaultStyles() Styles {
	return NewStyles(DetectTheme())
}

// RenderDivider returns a horizontal divider line.
func (s Styles) RenderDivider(width int) string {
	if width < 1 {
		width = 1
	}
	return s.Divider.Render(strings.Repeat("─", width))
}
