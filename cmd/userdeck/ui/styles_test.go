package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectTheme(t *testing.T) {
	t.Setenv("COLORFGBG", "15;0")
	if !DetectTheme().IsDark {
		t.Fatalf("expected dark theme for COLORFGBG=15;0")
	}

	t.Setenv("COLORFGBG", "0;15")
	if DetectTheme().IsDark {
		t.Fatalf("expected light theme for COLORFGBG=0;15")
	}

	t.Setenv("COLORFGBG", "")
	if DetectTheme().IsDark {
		t.Fatalf("expected light theme when COLORFGBG is unset")
	}
}

func TestThemeFromName(t *testing.T) {
	t.Setenv("COLORFGBG", "15;0")

	assert.True(t, ThemeFromName("dark").IsDark)
	assert.True(t, ThemeFromName("DARK").IsDark)
	assert.False(t, ThemeFromName("light").IsDark)
	assert.True(t, ThemeFromName("auto").IsDark, "auto follows detection")
	assert.True(t, ThemeFromName("").IsDark, "empty follows detection")
}

func TestGlamourStyle(t *testing.T) {
	assert.Equal(t, "dark", DarkTheme().GlamourStyle())
	assert.Equal(t, "light", LightTheme().GlamourStyle())
}

func TestRenderDivider(t *testing.T) {
	s := NewStyles(LightTheme())
	assert.Contains(t, s.RenderDivider(4), "────")
	assert.Equal(t, s.RenderDivider(0), s.RenderDivider(-3))
}
