// Package config holds the persisted display preferences and the store that
// loads, recovers and saves them.
package config

import (
	"math"
)

// CurrentVersion is written into freshly initialized configs
const CurrentVersion = "1"

// AppName names the per-application config directory and the default streamer message
const AppName = "go-battle-overlay"

// ThemeMode is the light/dark appearance
type ThemeMode string

const (
	ThemeDark  ThemeMode = "dark"
	ThemeLight ThemeMode = "light"
)

// TextStyle is a logical text role
type TextStyle string

const (
	TextHeading   TextStyle = "heading"
	TextBody      TextStyle = "body"
	TextMonospace TextStyle = "monospace"
	TextButton    TextStyle = "button"
	TextSmall     TextStyle = "small"
)

// FontFamily selects proportional or fixed-width glyphs
type FontFamily string

const (
	FamilyProportional FontFamily = "proportional"
	FamilyMonospace    FontFamily = "monospace"
)

// FontID describes the font used for a text role
type FontID struct {
	Size   float64    `json:"size"`
	Family FontFamily `json:"family"`
}

// GraphUnit selects the x axis of the damage graph
type GraphUnit string

const (
	GraphTurn        GraphUnit = "turn"
	GraphActionValue GraphUnit = "action_value"
)

const (
	defaultWidgetOpacity     = 0.30
	lightWidgetOpacity       = 0.75
	defaultPieChartOpacity   = 0.05
	defaultTheme             = "default"
	defaultStreamerMode      = true
	defaultDefenderExclusion = true
	defaultAutoShowHideUI    = false
	defaultLegendTextStyle   = TextMonospace
	defaultGraphUnit         = GraphTurn
	defaultThemeMode         = ThemeDark
	defaultLocale            = "en"
)

// Config is the user's display preferences. Every field has a default, so
// a config decoded from a partial file is still complete once normalized.
type Config struct {
	Version           string               `json:"version"`
	Locale            string               `json:"locale"`
	WidgetOpacity     float64              `json:"widget_opacity"`
	StreamerMode      bool                 `json:"streamer_mode"`
	StreamerMsg       string               `json:"streamer_msg"`
	FontSizes         map[TextStyle]FontID `json:"font_sizes"`
	Theme             string               `json:"theme"`
	ThemeMode         ThemeMode            `json:"theme_mode"`
	LegendTextStyle   TextStyle            `json:"legend_text_style"`
	PieChartOpacity   float64              `json:"pie_chart_opacity"`
	DefenderExclusion bool                 `json:"defender_exclusion"`
	AutoShowHideUI    bool                 `json:"auto_showhide_ui"`
	GraphXUnit        GraphUnit            `json:"graph_x_unit"`
}

// DefaultFontSizes returns the font for every text role
func DefaultFontSizes() map[TextStyle]FontID {
	return map[TextStyle]FontID{
		TextHeading:   {Size: 18.0, Family: FamilyProportional},
		TextBody:      {Size: 12.5, Family: FamilyProportional},
		TextMonospace: {Size: 12.0, Family: FamilyMonospace},
		TextButton:    {Size: 12.5, Family: FamilyProportional},
		TextSmall:     {Size: 9.0, Family: FamilyProportional},
	}
}

// Default returns a config holding every default value
func Default(locale string) *Config {
	if locale == "" {
		locale = defaultLocale
	}
	return &Config{
		Version:           CurrentVersion,
		Locale:            locale,
		WidgetOpacity:     defaultWidgetOpacity,
		StreamerMode:      defaultStreamerMode,
		StreamerMsg:       AppName,
		FontSizes:         DefaultFontSizes(),
		Theme:             defaultTheme,
		ThemeMode:         defaultThemeMode,
		LegendTextStyle:   defaultLegendTextStyle,
		PieChartOpacity:   defaultPieChartOpacity,
		DefenderExclusion: defaultDefenderExclusion,
		AutoShowHideUI:    defaultAutoShowHideUI,
		GraphXUnit:        defaultGraphUnit,
	}
}

// Initial is the config created on first start: defaults adjusted to the
// platform theme, with a more opaque widget background in light mode.
func Initial(locale string, mode ThemeMode) *Config {
	cfg := Default(locale)
	if mode.Valid() {
		cfg.ThemeMode = mode
	}
	if cfg.ThemeMode == ThemeLight {
		cfg.WidgetOpacity = lightWidgetOpacity
	}
	return cfg
}

// Normalize repairs out-of-range or unknown values in place so that every
// field holds something usable. locale fills an empty Locale.
func (c *Config) Normalize(locale string) {
	if c.Version == "" {
		c.Version = CurrentVersion
	}
	if c.Locale == "" {
		c.Locale = locale
		if c.Locale == "" {
			c.Locale = defaultLocale
		}
	}
	c.WidgetOpacity = clampUnit(c.WidgetOpacity, defaultWidgetOpacity)
	c.PieChartOpacity = clampUnit(c.PieChartOpacity, defaultPieChartOpacity)
	if c.Theme == "" {
		c.Theme = defaultTheme
	}
	if !c.ThemeMode.Valid() {
		c.ThemeMode = defaultThemeMode
	}
	if !c.LegendTextStyle.Valid() {
		c.LegendTextStyle = defaultLegendTextStyle
	}
	if !c.GraphXUnit.Valid() {
		c.GraphXUnit = defaultGraphUnit
	}

	defaults := DefaultFontSizes()
	if c.FontSizes == nil {
		c.FontSizes = make(map[TextStyle]FontID, len(defaults))
	}
	for style, font := range defaults {
		current, ok := c.FontSizes[style]
		if !ok || !(current.Size > 0) || math.IsInf(current.Size, 0) {
			c.FontSizes[style] = font
			continue
		}
		if !current.Family.Valid() {
			current.Family = font.Family
			c.FontSizes[style] = current
		}
	}
}

// Clone returns a deep copy
func (c *Config) Clone() *Config {
	out := *c
	out.FontSizes = make(map[TextStyle]FontID, len(c.FontSizes))
	for k, v := range c.FontSizes {
		out.FontSizes[k] = v
	}
	return &out
}

// ToggleGraphUnit flips the damage graph between turn and action value axes
func (c *Config) ToggleGraphUnit() {
	if c.GraphXUnit == GraphActionValue {
		c.GraphXUnit = GraphTurn
		return
	}
	c.GraphXUnit = GraphActionValue
}

// LegendFont returns the font for the legend text style
func (c *Config) LegendFont() FontID {
	if font, ok := c.FontSizes[c.LegendTextStyle]; ok {
		return font
	}
	return DefaultFontSizes()[defaultLegendTextStyle]
}

func (m ThemeMode) Valid() bool {
	return m == ThemeDark || m == ThemeLight
}

func (s TextStyle) Valid() bool {
	switch s {
	case TextHeading, TextBody, TextMonospace, TextButton, TextSmall:
		return true
	}
	return false
}

func (f FontFamily) Valid() bool {
	return f == FamilyProportional || f == FamilyMonospace
}

func (u GraphUnit) Valid() bool {
	return u == GraphTurn || u == GraphActionValue
}

func clampUnit(v, fallback float64) float64 {
	if math.IsNaN(v) {
		return fallback
	}
	return math.Max(0, math.Min(1, v))
}
