package config

import "github.com/charmbracelet/lipgloss"

// ThemeDetector reports the platform's current appearance
type ThemeDetector func() ThemeMode

// DetectThemeMode asks the terminal for its background color
func DetectThemeMode() ThemeMode {
	if lipgloss.HasDarkBackground() {
		return ThemeDark
	}
	return ThemeLight
}
