// Package ui provides the visual styling for the userdeck terminal browser.
// Light and dark palettes only; the theme is picked from config or detected
// from the terminal.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	// Light Mode Colors (Default)
	LightForeground = lipgloss.Color("#212121")
	LightPrimary    = lipgloss.Color("#3f51b5") // Indigo
	LightMuted      = lipgloss.Color("#757575")
	LightBorder     = lipgloss.Color("#d0d4da")
	LightSelected   = lipgloss.Color("#3f51b5")

	// Dark Mode Colors
	DarkForeground = lipgloss.Color("#eeeeee")
	DarkPrimary    = lipgloss.Color("#9fa8da") // Indigo 200
	DarkMuted      = lipgloss.Color("#9e9e9e")
	DarkBorder     = lipgloss.Color("#3a4453")
	DarkSelected   = lipgloss.Color("#9fa8da")

	// Action Colors (same in both modes)
	FetchColor  = lipgloss.Color("#4caf50") // Green
	ActionColor = lipgloss.Color("#007bff") // Blue
	RemoveColor = lipgloss.Color("#f44336") // Red
	OnAction    = lipgloss.Color("#ffffff")
)

// Theme holds the current color scheme
type Theme struct {
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Selected   lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme
func LightTheme() Theme {
	return Theme{
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Muted:      LightMuted,
		Border:     LightBorder,
		Selected:   LightSelected,
		IsDark:     false,
	}
}

// DarkTheme returns the dark mode theme
func DarkTheme() Theme {
	return Theme{
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		Selected:   DarkSelected,
		IsDark:     true,
	}
}

// GlamourStyle names the glamour standard style matching the theme.
func (t Theme) GlamourStyle() string {
	if t.IsDark {
		return "dark"
	}
	return "light"
}

// DetectTheme guesses the palette from COLORFGBG ("fg;bg"). Background
// indices 0-6 and 8 are dark; anything else, or no hint, is light.
func DetectTheme() Theme {
	if colorTerm := os.Getenv("COLORFGBG"); colorTerm != "" {
		parts := strings.Split(colorTerm, ";")
		if bgIdx, err := strconv.Atoi(parts[len(parts)-1]); err == nil {
			if (bgIdx >= 0 && bgIdx <= 6) || bgIdx == 8 {
				return DarkTheme()
			}
		}
	}
	return LightTheme()
}

// ThemeFromName resolves a configured theme name. "auto", the empty string
// and unknown names fall back to DetectTheme.
func ThemeFromName(name string) Theme {
	switch strings.ToLower(name) {
	case "dark":
		return DarkTheme()
	case "light":
		return LightTheme()
	default:
		return DetectTheme()
	}
}

// Styles holds all the styled components
type Styles struct {
	Theme Theme

	// Layout
	Header lipgloss.Style
	Footer lipgloss.Style

	// Text
	Title   lipgloss.Style
	Body    lipgloss.Style
	Muted   lipgloss.Style
	Bold    lipgloss.Style
	Counter lipgloss.Style
	Label   lipgloss.Style

	// Cards
	Card         lipgloss.Style
	SelectedCard lipgloss.Style
	CardName     lipgloss.Style

	// Buttons
	FetchButton  lipgloss.Style
	ActionButton lipgloss.Style
	RemoveButton lipgloss.Style

	Divider lipgloss.Style
}

// NewStyles creates a new Styles instance with the given theme
func NewStyles(theme Theme) Styles {
	button := lipgloss.NewStyle().
		Foreground(OnAction).
		Padding(0, 1).
		Bold(true)

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	return Styles{
		Theme: theme,

		Header: lipgloss.NewStyle().
			Background(theme.Primary).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 2).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Bold: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		Counter: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Label: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Width(9),

		Card: card,

		SelectedCard: card.
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(theme.Selected),

		CardName: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		FetchButton:  button.Background(FetchColor),
		ActionButton: button.Background(ActionColor),
		RemoveButton: button.Background(RemoveColor),

		Divider: lipgloss.NewStyle().
			Foreground(theme.Border),
	}
}

// RenderDivider returns a horizontal divider
func (s Styles) RenderDivider(width int) string {
	if width < 0 {
		width = 0
	}
	return s.Divider.Render(strings.Repeat("─", width))
}
