package config

// UIConfig holds user interface configuration.
type UIConfig struct {
	// Theme selects the palette: auto, light or dark.
	Theme string `yaml:"theme" env:"USERDECK_THEME"`

	// MaxCardWidth caps the card column width in cells (0 = terminal width).
	MaxCardWidth int `yaml:"max_card_width"`

	// ShowAvatarURL adds the avatar link line to each card.
	ShowAvatarURL bool `yaml:"show_avatar_url"`
}

// ValidThemes lists the accepted theme names.
var ValidThemes = []string{"auto", "light", "dark"}

// DefaultUIConfig returns sensible UI defaults.
func DefaultUIConfig() *UIConfig {
	return &UIConfig{
		Theme:         "auto",
		MaxCardWidth:  96,
		ShowAvatarURL: true,
	}
}

func isValidTheme(theme string) bool {
	if theme == "" {
		return true
	}
	for _, t := range ValidThemes {
		if t == theme {
			return true
		}
	}
	return false
}
